package sorted

import (
	"cmp"
	"fmt"
	"strings"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vcoll"
	"github.com/hupe1980/vcoll/testutil"
)

type entry struct {
	key   int
	value string
}

func (e *entry) String() string { return fmt.Sprintf("%d:%s", e.key, e.value) }

func entryKey(e *entry) int { return e.key }

func compareEntry(k int, e *entry) int { return cmp.Compare(k, e.key) }

func newEntryTable(opts ...Option) *Table[int, *entry] {
	return New(compareEntry, entryKey, opts...)
}

func keys(tbl *Table[int, *entry]) []int {
	out := make([]int, 0, tbl.Len())
	for _, e := range tbl.All() {
		out = append(out, e.key)
	}
	return out
}

func TestTable_InsertSearchScenario(t *testing.T) {
	tbl := newEntryTable()

	for _, k := range []int{5, 1, 3} {
		prev, replaced := tbl.Insert(&entry{key: k, value: "v1"})
		assert.False(t, replaced)
		assert.Nil(t, prev)
	}
	assert.Equal(t, []int{1, 3, 5}, keys(tbl))

	got, ok := tbl.Search(3)
	require.True(t, ok)
	assert.Equal(t, 3, got.key)

	missing, ok := tbl.Search(9)
	assert.False(t, ok)
	assert.Nil(t, missing)

	old := got
	replacement := &entry{key: 3, value: "v2"}
	prev, replaced := tbl.Insert(replacement)
	assert.True(t, replaced)
	assert.Same(t, old, prev)

	got, ok = tbl.Search(3)
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []int{1, 3, 5}, keys(tbl))
}

func TestTable_Locate(t *testing.T) {
	tbl := newEntryTable()
	tbl.Load([]*entry{{key: 10}, {key: 20}, {key: 30}, {key: 40}})

	tests := []struct {
		key   int
		index int
		found bool
	}{
		{5, 0, false},
		{10, 0, true},
		{15, 1, false},
		{20, 1, true},
		{30, 2, true},
		{35, 3, false},
		{40, 3, true},
		{45, 4, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("key %d", tt.key), func(t *testing.T) {
			index, found := tbl.Locate(tt.key)
			assert.Equal(t, tt.index, index)
			assert.Equal(t, tt.found, found)
		})
	}

	t.Run("empty table", func(t *testing.T) {
		index, found := newEntryTable().Locate(1)
		assert.Equal(t, 0, index)
		assert.False(t, found)
	})

	t.Run("single element", func(t *testing.T) {
		one := newEntryTable()
		one.Insert(&entry{key: 7})
		for _, tt := range []struct {
			key, index int
			found      bool
		}{{6, 0, false}, {7, 0, true}, {8, 1, false}} {
			index, found := one.Locate(tt.key)
			assert.Equal(t, tt.index, index, "key %d", tt.key)
			assert.Equal(t, tt.found, found, "key %d", tt.key)
		}
	})
}

func TestTable_Delete(t *testing.T) {
	tbl := newEntryTable()
	tbl.Load([]*entry{{key: 1}, {key: 2}, {key: 3}})

	e, ok := tbl.Delete(2)
	require.True(t, ok)
	assert.Equal(t, 2, e.key)
	assert.Equal(t, []int{1, 3}, keys(tbl))

	_, ok = tbl.Search(2)
	assert.False(t, ok)

	_, ok = tbl.Delete(2)
	assert.False(t, ok)
	assert.NoError(t, tbl.Verify())
}

func TestTable_At(t *testing.T) {
	tbl := newEntryTable()
	tbl.Load([]*entry{{key: 2}, {key: 1}})

	e, err := tbl.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2, e.key)

	_, err = tbl.At(2)
	assert.ErrorIs(t, err, vcoll.ErrOutOfRange)
}

func TestTable_Clone(t *testing.T) {
	tbl := newEntryTable()
	tbl.Load([]*entry{{key: 1, value: "a"}, {key: 2, value: "b"}})

	clone := tbl.Clone()
	clone.Insert(&entry{key: 3})
	clone.Delete(1)

	assert.Equal(t, []int{1, 2}, keys(tbl))
	assert.Equal(t, []int{2, 3}, keys(clone))

	// Elements are shared.
	e, _ := clone.Search(2)
	e.value = "changed"
	orig, _ := tbl.Search(2)
	assert.Equal(t, "changed", orig.value)
}

func TestTable_Load(t *testing.T) {
	t.Run("matches repeated insert", func(t *testing.T) {
		batch := []*entry{
			{key: 4, value: "a"}, {key: 2, value: "b"}, {key: 4, value: "c"},
			{key: 9, value: "d"}, {key: 2, value: "e"}, {key: 1, value: "f"},
		}

		loaded := newEntryTable()
		loaded.Insert(&entry{key: 9, value: "old"})
		loaded.Insert(&entry{key: 5, value: "old"})
		loaded.Load(batch)

		inserted := newEntryTable()
		inserted.Insert(&entry{key: 9, value: "old"})
		inserted.Insert(&entry{key: 5, value: "old"})
		for _, e := range batch {
			inserted.Insert(e)
		}

		assert.Equal(t, inserted.Elements(), loaded.Elements())
		assert.Equal(t, "table[5](1:f,2:e,4:c,5:old,9:d)", loaded.String())
		assert.NoError(t, loaded.Verify())
	})

	t.Run("empty batch", func(t *testing.T) {
		tbl := newEntryTable()
		tbl.Load(nil)
		assert.Equal(t, 0, tbl.Len())
	})
}

func TestTable_Retain(t *testing.T) {
	tbl := newEntryTable()
	for k := 0; k < 10; k++ {
		tbl.Insert(&entry{key: k})
	}

	removed, err := tbl.Retain(func(e *entry) bool { return e.key%3 == 0 })
	require.NoError(t, err)
	assert.Equal(t, 6, removed)
	assert.Equal(t, []int{0, 3, 6, 9}, keys(tbl))
	assert.NoError(t, tbl.Verify())

	_, ok := tbl.Search(4)
	assert.False(t, ok)
	_, ok = tbl.Search(6)
	assert.True(t, ok)
}

func TestTable_Verify(t *testing.T) {
	tbl := newEntryTable()
	tbl.Load([]*entry{{key: 1}, {key: 2}, {key: 3}})
	require.NoError(t, tbl.Verify())

	// Corrupt the order behind the table's back.
	elems := tbl.Elements()
	elems[0], elems[2] = elems[2], elems[0]
	assert.ErrorIs(t, tbl.Verify(), ErrUnsorted)
}

func TestTable_Ordered(t *testing.T) {
	tbl := NewOrdered(func(s string) string { return strings.ToLower(s) })
	tbl.Insert("Banana")
	tbl.Insert("apple")
	prev, replaced := tbl.Insert("APPLE")

	assert.True(t, replaced)
	assert.Equal(t, "apple", prev)
	assert.Equal(t, []string{"APPLE", "Banana"}, tbl.Elements())
	assert.True(t, tbl.Contains("banana"))
	assert.False(t, tbl.Contains("cherry"))
}

func TestTable_NilFunctions(t *testing.T) {
	assert.Panics(t, func() { New[int, *entry](nil, entryKey) })
	assert.Panics(t, func() { New[int, *entry](compareEntry, nil) })
}

func TestTable_Clear(t *testing.T) {
	tbl := newEntryTable(WithCapacity(8))
	tbl.Load([]*entry{{key: 1}, {key: 2}})
	tbl.Clear()

	assert.Equal(t, 0, tbl.Len())
	_, ok := tbl.Search(1)
	assert.False(t, ok)
}

type kv struct {
	key   int
	value int
}

// TestTable_RandomInsertsMatchBTree drives a table and a B-tree with the same
// skewed key stream and compares them after every step.
func TestTable_RandomInsertsMatchBTree(t *testing.T) {
	rng := testutil.NewRNG(4711)

	tbl := New(
		func(k int, e kv) int { return cmp.Compare(k, e.key) },
		func(e kv) int { return e.key },
	)
	model := btree.NewG(2, func(a, b kv) bool { return a.key < b.key })

	for step, k := range rng.ZipfKeys(3000, 256, 1.1) {
		e := kv{key: k, value: step}

		prev, replaced := tbl.Insert(e)
		want, existed := model.ReplaceOrInsert(e)
		require.Equal(t, existed, replaced, "step %d", step)
		require.Equal(t, want, prev, "step %d", step)
		require.Equal(t, model.Len(), tbl.Len(), "step %d", step)

		if step%100 == 0 {
			require.NoError(t, tbl.Verify(), "step %d", step)
		}

		// Occasionally delete a random key from both.
		if step%7 == 0 {
			d := rng.Intn(256)
			_, wantOK := model.Delete(kv{key: d})
			_, gotOK := tbl.Delete(d)
			require.Equal(t, wantOK, gotOK, "step %d", step)
		}
	}

	var expected []kv
	model.Ascend(func(item kv) bool {
		expected = append(expected, item)
		return true
	})
	assert.Equal(t, expected, tbl.Elements())

	for k := 0; k < 256; k++ {
		want, wantOK := model.Get(kv{key: k})
		got, gotOK := tbl.Search(k)
		assert.Equal(t, wantOK, gotOK, "key %d", k)
		assert.Equal(t, want, got, "key %d", k)
	}
}

// TestTable_ClonesAreIndependent mutates clones from separate goroutines.
func TestTable_ClonesAreIndependent(t *testing.T) {
	base := NewOrdered(func(v int) int { return v })
	for i := 0; i < 100; i++ {
		base.Insert(i * 2)
	}

	const workers = 8
	clones := make([]*Table[int, int], workers)
	for i := range clones {
		clones[i] = base.Clone()
	}

	var g errgroup.Group
	for w, clone := range clones {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				clone.Insert(i*2 + 1)
			}
			if _, ok := clone.Delete(w * 2); !ok {
				return fmt.Errorf("worker %d: key %d missing", w, w*2)
			}
			return clone.Verify()
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 100, base.Len())
	for _, clone := range clones {
		assert.Equal(t, 199, clone.Len())
	}
}
