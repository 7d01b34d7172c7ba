package sorted

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/vcoll/array"
	"github.com/hupe1980/vcoll/buffer"
)

// ErrUnsorted is returned by Verify when adjacent elements are out of order
// or share a key.
var ErrUnsorted = errors.New("sorted: table out of order")

// Table is an associative table kept sorted by key.
// It is not safe for concurrent use.
type Table[K, E any] struct {
	backing *array.Array[E]
	compare func(key K, elem E) int
	key     func(elem E) K
}

// New creates an empty Table ordered by compare over the keys returned by key.
// It panics if either function is nil.
func New[K, E any](compare func(key K, elem E) int, key func(elem E) K, opts ...Option) *Table[K, E] {
	if compare == nil || key == nil {
		panic("sorted: nil compare or key function")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[K, E]{
		backing: array.New[E](o.arrayOptions()...),
		compare: compare,
		key:     key,
	}
}

// NewOrdered creates an empty Table for keys with a natural order.
func NewOrdered[K cmp.Ordered, E any](key func(elem E) K, opts ...Option) *Table[K, E] {
	return New(Ordered(key), key, opts...)
}

// Ordered builds a comparator that compares k against key(e) with cmp.Compare.
func Ordered[K cmp.Ordered, E any](key func(elem E) K) func(key K, elem E) int {
	return func(k K, e E) int {
		return cmp.Compare(k, key(e))
	}
}

// Len returns the number of elements.
func (t *Table[K, E]) Len() int {
	return t.backing.Len()
}

// Locate searches for key and returns the index of the matching element, or
// the index at which an element with that key would have to be inserted to
// keep the table sorted. found reports whether a match exists.
func (t *Table[K, E]) Locate(key K) (index int, found bool) {
	elems := t.backing.Contents()

	// Invariant: elems[:low] < key <= elems[high:].
	low, high := 0, len(elems)
	for low < high {
		mid := int(uint(low+high) >> 1)
		diff := t.compare(key, elems[mid])
		if diff == 0 {
			found = true
		}
		if diff > 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low, found
}

// Insert adds elem at its sorted position.
//
// If an element with the same key is present it is overwritten in place and
// returned with replaced set; otherwise the zero value and false are
// returned.
func (t *Table[K, E]) Insert(elem E) (prev E, replaced bool) {
	index, found := t.Locate(t.key(elem))
	if found {
		// index < Len(), so Set overwrites and cannot fail.
		prev, _ = t.backing.Set(index, elem)
		return prev, true
	}
	// index <= Len(), so Insert cannot fail.
	_ = t.backing.Insert(index, elem)
	return prev, false
}

// Search returns the element with the given key.
func (t *Table[K, E]) Search(key K) (E, bool) {
	index, found := t.Locate(key)
	if !found {
		var zero E
		return zero, false
	}
	elem, _ := t.backing.Get(index)
	return elem, true
}

// Contains reports whether an element with the given key is present.
func (t *Table[K, E]) Contains(key K) bool {
	_, found := t.Locate(key)
	return found
}

// Delete removes the element with the given key and returns it.
func (t *Table[K, E]) Delete(key K) (E, bool) {
	index, found := t.Locate(key)
	if !found {
		var zero E
		return zero, false
	}
	elem, _ := t.backing.Remove(index)
	return elem, true
}

// At returns the element at position i in key order.
func (t *Table[K, E]) At(i int) (E, error) {
	return t.backing.Get(i)
}

// Elements returns the elements in key order. The slice shares storage with
// the table and is valid until the next mutation; it must not be modified.
func (t *Table[K, E]) Elements() []E {
	return t.backing.Contents()
}

// All returns an iterator over position/element pairs in key order.
func (t *Table[K, E]) All() iter.Seq2[int, E] {
	return t.backing.All()
}

// Clone returns a shallow copy that shares the ordering functions and the
// element values but has its own backing array.
func (t *Table[K, E]) Clone() *Table[K, E] {
	return &Table[K, E]{
		backing: t.backing.Clone(),
		compare: t.compare,
		key:     t.key,
	}
}

// Clear removes all elements, keeping the backing storage.
func (t *Table[K, E]) Clear() {
	t.backing.Clear()
}

// sorter adapts compare and key to a comparison between two elements.
func (t *Table[K, E]) sorter(a, b E) int {
	return t.compare(t.key(a), b)
}

// Load adds elems in bulk. The result is the same as inserting them one by
// one in order: for repeated keys the last element wins.
//
// Load appends, sorts once and then drops superseded duplicates, which is
// cheaper than repeated Insert for large batches.
func (t *Table[K, E]) Load(elems []E) {
	if len(elems) == 0 {
		return
	}
	for _, e := range elems {
		t.backing.Push(e)
	}

	all := t.backing.Contents()
	// Stable, so among equal keys the most recently added sorts last.
	slices.SortStableFunc(all, t.sorter)

	w := 0
	for r := range all {
		if r+1 < len(all) && t.sorter(all[r], all[r+1]) == 0 {
			continue
		}
		all[w] = all[r]
		w++
	}
	_ = t.backing.SetLength(w)
}

// Retain removes every element for which keep returns false and reports how
// many were removed. Order is preserved.
func (t *Table[K, E]) Retain(keep func(E) bool) (int, error) {
	doomed, err := t.backing.IndicesFunc(func(e E) bool { return !keep(e) })
	if err != nil {
		return 0, err
	}
	return t.backing.RemoveIndices(doomed)
}

// Verify checks that the elements are strictly ascending by key.
func (t *Table[K, E]) Verify() error {
	elems := t.backing.Contents()
	for i := 1; i < len(elems); i++ {
		if t.sorter(elems[i-1], elems[i]) >= 0 {
			return fmt.Errorf("%w: index %d", ErrUnsorted, i)
		}
	}
	return nil
}

// String renders the table as "table[n](e0,e1,...)".
func (t *Table[K, E]) String() string {
	buf := buffer.New(buffer.WithCapacity(16 + 4*t.Len()))
	_, _ = fmt.Fprintf(buf, "table[%d](", t.Len())
	for i, e := range t.All() {
		if i > 0 {
			_ = buf.AppendByte(',')
		}
		_, _ = fmt.Fprint(buf, e)
	}
	_ = buf.AppendByte(')')
	return buf.String()
}
