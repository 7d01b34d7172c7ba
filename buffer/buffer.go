package buffer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/vcoll"
	"github.com/hupe1980/vcoll/internal/growth"
	"github.com/hupe1980/vcoll/internal/mmap"
)

// Unspecified as a length to AppendN means "up to the first NUL byte, or
// the whole source if it has none".
const Unspecified = 0

// Compile time check to ensure Buffer satisfies the writer interfaces.
var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
)

// Buffer is a growable byte sequence.
// The zero value is an empty growable Buffer ready to use.
// It is not safe for concurrent use.
type Buffer struct {
	// In growable mode len(data) == capacity+1 and data[length] == 0.
	// In fixed mode len(data) == capacity.
	data     []byte
	capacity int
	length   int
	fixed    bool

	release func() error // unmaps installed storage, nil for heap storage
	logger  *vcoll.Logger
}

// New creates an empty, growable Buffer.
func New(opts ...Option) *Buffer {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Buffer{
		logger: o.componentLogger(),
	}
	if o.capacity > 0 {
		b.ensure(o.capacity)
	}
	return b
}

// MapFile creates a fixed-capacity Buffer over a private memory mapping of
// the file at path. Len() and Cap() equal the file size. Writes into the
// buffer are never written back to the file.
//
// Close releases the mapping.
func MapFile(path string, opts ...Option) (*Buffer, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("buffer: map %s: %w", path, err)
	}

	b := New(opts...)
	data := m.Bytes()
	if data == nil {
		// Nothing mapped for an empty file.
		if err := m.Close(); err != nil {
			b.logger.Debug("closing empty mapping failed", "path", path, "error", err)
		}
		data = []byte{}
	} else {
		if err := m.Advise(mmap.AccessSequential); err != nil {
			b.logger.Debug("mapping advice ignored", "path", path, "error", err)
		}
		b.release = m.Close
	}

	b.data = data
	b.capacity = len(data)
	b.length = len(data)
	b.fixed = true

	b.logger.LogInstall(b.capacity, b.length, b.release != nil)
	return b, nil
}

// Len returns the number of bytes in use, excluding the terminator.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Cap returns the number of bytes the buffer can hold without reallocating,
// excluding the terminator.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return b.capacity
}

// Fixed reports whether the buffer is in fixed-capacity mode.
func (b *Buffer) Fixed() bool {
	return b != nil && b.fixed
}

// Bytes returns the contents. The slice aliases the buffer storage and is
// valid until the next mutation.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.data == nil {
		return nil
	}
	return b.data[:b.length:b.length]
}

// String returns the contents as a string.
func (b *Buffer) String() string {
	if b == nil {
		return "<nil>"
	}
	return string(b.data[:b.length])
}

// ensure makes room for minimum bytes plus the terminator and guarantees
// the storage exists. Only valid in growable mode.
func (b *Buffer) ensure(minimum int) {
	if b.data != nil && minimum <= b.capacity {
		return
	}
	oldCap := b.capacity
	newCap := growth.Capacity(oldCap, minimum)

	data := make([]byte, newCap+1)
	copy(data, b.data[:b.length])
	b.data = data
	b.capacity = newCap

	b.logger.LogGrow(oldCap, newCap, b.length)
}

func (b *Buffer) reserve(n int) error {
	need := b.length + n
	if b.fixed {
		if need > b.capacity {
			return fmt.Errorf("%w: need %d bytes, capacity %d", ErrFixedCapacity, need, b.capacity)
		}
		return nil
	}
	b.ensure(need)
	return nil
}

func (b *Buffer) terminate() {
	if !b.fixed {
		b.data[b.length] = 0
	}
}

// AppendN appends the first n bytes of p. With n == Unspecified the bytes
// up to the first NUL in p are appended, or all of p if it has none.
//
// A fixed-capacity buffer that cannot hold the bytes is left unchanged and
// ErrFixedCapacity is returned.
func (b *Buffer) AppendN(p []byte, n int) error {
	switch {
	case n == Unspecified:
		if i := bytes.IndexByte(p, 0); i >= 0 {
			p = p[:i]
		}
	case n < 0:
		return fmt.Errorf("%w: length %d", ErrInvalidSize, n)
	case n > len(p):
		return fmt.Errorf("%w: want %d bytes, have %d", ErrShortData, n, len(p))
	default:
		p = p[:n]
	}

	if err := b.reserve(len(p)); err != nil {
		return err
	}
	b.length += copy(b.data[b.length:], p)
	b.terminate()
	return nil
}

// Cat appends s up to its first NUL byte.
func (b *Buffer) Cat(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	_, err := b.WriteString(s)
	return err
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	b.data[b.length] = c
	b.length++
	b.terminate()
	return nil
}

// Write appends all of p. It implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.reserve(len(p)); err != nil {
		return 0, err
	}
	n := copy(b.data[b.length:], p)
	b.length += n
	b.terminate()
	return n, nil
}

// WriteString appends all of s. It implements io.StringWriter.
func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.reserve(len(s)); err != nil {
		return 0, err
	}
	n := copy(b.data[b.length:], s)
	b.length += n
	b.terminate()
	return n, nil
}

// WriteByte appends c. It implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	return b.AppendByte(c)
}

// SetLength sets the number of bytes in use to n.
//
// A growable buffer grows if n exceeds its capacity, zeroes the bytes it
// gains and is re-terminated at n. A fixed buffer accepts any n up to its
// capacity and exposes whatever the storage holds in the gained range.
func (b *Buffer) SetLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: length %d", ErrInvalidSize, n)
	}
	if b.fixed {
		if n > b.capacity {
			return fmt.Errorf("%w: length %d, capacity %d", ErrFixedCapacity, n, b.capacity)
		}
		b.length = n
		return nil
	}
	b.ensure(n)
	if n > b.length {
		clear(b.data[b.length:n])
	}
	b.length = n
	b.terminate()
	return nil
}

// Clear sets the length to zero, keeping storage and mode.
func (b *Buffer) Clear() {
	_ = b.SetLength(0)
}

// InstallFixed takes ownership of storage and switches the buffer to fixed
// mode. Previously owned storage is dropped, and unmapped if it came from
// MapFile. The buffer then holds size
// bytes, already present at the start of storage, and may grow up to
// len(storage) bytes.
func (b *Buffer) InstallFixed(storage []byte, size int) error {
	if storage == nil {
		return ErrNilStorage
	}
	if size < 0 || size > len(storage) {
		return fmt.Errorf("%w: size %d for %d bytes of storage", ErrInvalidSize, size, len(storage))
	}
	if err := b.releaseStorage(); err != nil {
		b.logger.LogReleaseError(err)
	}

	b.data = storage
	b.capacity = len(storage)
	b.length = size
	b.fixed = true

	b.logger.LogInstall(b.capacity, b.length, false)
	return nil
}

// Extract hands the storage to the caller and resets the buffer to an
// empty, growable state.
//
// The result is never nil. For growable buffers the byte after the returned
// slice, within its capacity, is the NUL terminator; an empty buffer yields
// a fresh one-byte allocation. Mapped storage is copied to the heap and the
// mapping released.
func (b *Buffer) Extract() []byte {
	var out []byte
	copied := false

	switch {
	case b.release != nil:
		out = make([]byte, b.length, b.length+1)
		copy(out, b.data[:b.length])
		copied = true
		if err := b.releaseStorage(); err != nil {
			b.logger.LogReleaseError(err)
		}
	case b.data == nil:
		out = make([]byte, 0, 1)
	default:
		out = b.data[:b.length]
	}

	b.logger.LogExtract(len(out), copied)

	b.data = nil
	b.capacity = 0
	b.length = 0
	b.fixed = false
	return out
}

// Close releases the storage, unmapping it if it came from MapFile, and
// leaves the buffer empty and growable.
func (b *Buffer) Close() error {
	err := b.releaseStorage()
	b.data = nil
	b.capacity = 0
	b.length = 0
	b.fixed = false
	return err
}

func (b *Buffer) releaseStorage() error {
	if b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	b.data = nil
	if err := release(); err != nil {
		return fmt.Errorf("buffer: release storage: %w", err)
	}
	return nil
}
