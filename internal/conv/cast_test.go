//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		want    uint32
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"position", 4711, 4711, false},
		{"max uint32", math.MaxUint32, math.MaxUint32, false},
		{"negative", -1, 0, true},
		{"too large", math.MaxUint32 + 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntToUint32(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUint32ToInt(t *testing.T) {
	for _, v := range []uint32{0, 1, 123, math.MaxUint32} {
		got, err := Uint32ToInt(v)
		require.NoError(t, err)
		assert.Equal(t, int(v), got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []int{0, 7, 65535, 1 << 20} {
		u, err := IntToUint32(v)
		require.NoError(t, err)
		back, err := Uint32ToInt(u)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}
