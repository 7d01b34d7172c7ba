package array

import (
	"errors"
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vcoll"
	"github.com/hupe1980/vcoll/buffer"
	"github.com/hupe1980/vcoll/internal/conv"
	"github.com/hupe1980/vcoll/internal/growth"
)

// ErrNilArray is returned by operations that would have to store into a
// nil *Array.
var ErrNilArray = errors.New("array: nil array")

// Array is a growable, index-addressable sequence of elements.
// The zero value is an empty array ready to use. A nil *Array reads as
// empty; operations that store into it return ErrNilArray.
// It is not safe for concurrent use.
type Array[T any] struct {
	data   []T // len(data) is the capacity
	length int
	logger *vcoll.Logger
}

// New creates an empty Array.
func New[T any](opts ...Option) *Array[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	a := &Array[T]{
		logger: o.componentLogger(),
	}
	if o.capacity > 0 {
		a.data = make([]T, o.capacity)
	}
	return a
}

// From creates an Array holding a copy of elems.
func From[T any](elems []T, opts ...Option) *Array[T] {
	a := New[T](opts...)
	a.grow(len(elems))
	copy(a.data, elems)
	a.length = len(elems)
	return a
}

// Len returns the number of occupied slots.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.length
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// grow ensures room for at least minimum elements.
func (a *Array[T]) grow(minimum int) {
	oldCap := len(a.data)
	if !growth.NeedsGrow(oldCap, minimum) {
		return
	}
	newCap := growth.Capacity(oldCap, minimum)

	data := make([]T, newCap)
	copy(data, a.data[:a.length])
	a.data = data

	a.logger.LogGrow(oldCap, newCap, a.length)
}

// Get returns the element at index.
// An empty or nil array yields the zero value without error.
func (a *Array[T]) Get(index int) (T, error) {
	var zero T
	if a == nil || a.length == 0 {
		return zero, nil
	}
	if index < 0 || index >= a.length {
		return zero, vcoll.NewIndexError("array: get", index, a.length)
	}
	return a.data[index], nil
}

// Set overwrites the element at index and returns the previous one.
//
// If index is beyond the current length the array is extended to index+1;
// the slots in between hold the zero value and the returned previous value
// is the zero value. Set never shortens the array.
func (a *Array[T]) Set(index int, v T) (T, error) {
	var zero T
	if a == nil {
		return zero, ErrNilArray
	}
	if index < 0 {
		return zero, vcoll.NewIndexError("array: set", index, a.length)
	}

	if index < a.length {
		old := a.data[index]
		a.data[index] = v
		return old, nil
	}

	a.grow(index + 1)
	clear(a.data[a.length:index])
	a.data[index] = v
	a.length = index + 1
	return zero, nil
}

// Insert places v at index, shifting the elements at [index, Len()) one
// slot to the right. index may equal Len(), which appends.
func (a *Array[T]) Insert(index int, v T) error {
	if a == nil {
		return ErrNilArray
	}
	if index < 0 || index > a.length {
		return vcoll.NewIndexError("array: insert", index, a.length)
	}

	a.grow(a.length + 1)
	copy(a.data[index+1:a.length+1], a.data[index:a.length])
	a.data[index] = v
	a.length++
	return nil
}

// Remove deletes the element at index and returns it, shifting the elements
// after it one slot to the left.
// Removing from an empty array returns the zero value and changes nothing.
func (a *Array[T]) Remove(index int) (T, error) {
	var zero T
	if a == nil || a.length == 0 {
		return zero, nil
	}
	if index < 0 || index >= a.length {
		return zero, vcoll.NewIndexError("array: remove", index, a.length)
	}

	elem := a.data[index]
	copy(a.data[index:a.length-1], a.data[index+1:a.length])
	a.length--
	a.data[a.length] = zero
	return elem, nil
}

// Push appends v. It does nothing on a nil array.
func (a *Array[T]) Push(v T) {
	_ = a.Insert(a.Len(), v)
}

// Pop removes and returns the last element.
func (a *Array[T]) Pop() (T, bool) {
	if a.Len() == 0 {
		var zero T
		return zero, false
	}
	v, _ := a.Remove(a.length - 1)
	return v, true
}

// Dequeue removes and returns the first element.
func (a *Array[T]) Dequeue() (T, bool) {
	if a.Len() == 0 {
		var zero T
		return zero, false
	}
	v, _ := a.Remove(0)
	return v, true
}

// SetLength truncates or extends the occupied prefix to exactly n elements.
//
// Truncation keeps the allocation and resets the dropped slots to the zero
// value. Extension exposes zero values and grows the storage if n exceeds
// the capacity.
func (a *Array[T]) SetLength(n int) error {
	if a == nil {
		return ErrNilArray
	}
	if n < 0 {
		return vcoll.NewIndexError("array: set length", n, a.length)
	}
	if n < a.length {
		clear(a.data[n:a.length])
	} else {
		a.grow(n)
	}
	a.length = n
	return nil
}

// Clear empties the array without releasing its storage.
func (a *Array[T]) Clear() {
	_ = a.SetLength(0)
}

// Clone returns a shallow copy: a new array holding the same element values
// in the same order, backed by its own storage. The clone of nil is nil.
func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return nil
	}
	clone := &Array[T]{
		logger: a.logger,
	}
	if a.length > 0 {
		clone.grow(a.length)
		copy(clone.data, a.data[:a.length])
		clone.length = a.length
	}
	return clone
}

// Contents returns the occupied elements.
// The slice shares storage with the array and is valid until the next mutation.
func (a *Array[T]) Contents() []T {
	if a == nil {
		return nil
	}
	return a.data[:a.length:a.length]
}

// All returns an iterator over index/element pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// ReleaseAll passes every element to release and then resets the array to
// an empty state without storage.
//
// This is the only operation that treats elements as owned; use it when the
// elements hold resources that must be freed together with the array.
func (a *Array[T]) ReleaseAll(release func(T)) {
	if a == nil {
		return
	}
	n := a.length
	for i := 0; i < n; i++ {
		release(a.data[i])
	}
	a.data = nil
	a.length = 0

	a.logger.LogRelease(n)
}

// IndicesFunc returns the positions of the elements that satisfy pred.
func (a *Array[T]) IndicesFunc(pred func(T) bool) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for i := 0; i < a.Len(); i++ {
		if !pred(a.data[i]) {
			continue
		}
		pos, err := conv.IntToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("array: position %d: %w", i, err)
		}
		bm.Add(pos)
	}
	return bm, nil
}

// RemoveIndices deletes every position in indices and returns how many
// elements were removed. Survivors keep their relative order.
//
// If any position is outside [0, Len()) nothing is removed.
func (a *Array[T]) RemoveIndices(indices *roaring.Bitmap) (int, error) {
	if indices == nil || indices.IsEmpty() {
		return 0, nil
	}

	last, err := conv.Uint32ToInt(indices.Maximum())
	if err != nil {
		return 0, fmt.Errorf("array: remove indices: %w", err)
	}
	if last >= a.Len() {
		return 0, vcoll.NewIndexError("array: remove indices", last, a.Len())
	}

	it := indices.Iterator()
	next := int(it.Next())

	w := 0
	for r := 0; r < a.length; r++ {
		if r == next {
			next = -1
			if it.HasNext() {
				next = int(it.Next())
			}
			continue
		}
		a.data[w] = a.data[r]
		w++
	}

	removed := a.length - w
	clear(a.data[w:a.length])
	a.length = w

	a.logger.WithCount(removed).Debug("indices removed", "length", w)
	return removed, nil
}

// String renders the array as "array[n](e0,e1,...)".
func (a *Array[T]) String() string {
	buf := buffer.New(buffer.WithCapacity(16 + 4*a.Len()))
	_, _ = fmt.Fprintf(buf, "array[%d](", a.Len())
	for i, v := range a.All() {
		if i > 0 {
			_ = buf.AppendByte(',')
		}
		_, _ = fmt.Fprint(buf, v)
	}
	_ = buf.AppendByte(')')
	return buf.String()
}
