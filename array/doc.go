// Package array provides Array, an exclusively-owned growable array.
//
// # Storage
//
// An Array keeps its elements in a single contiguous allocation. The first
// Len() slots are occupied; the remaining Cap()-Len() slots always hold the
// zero value of T, so extending the array never exposes stale elements.
//
// When more room is needed the capacity grows by doubling plus one
// (0, 1, 3, 7, 15, ...) until it covers the request. Capacity never shrinks;
// Clear and SetLength keep the allocation for reuse.
//
// # Elements
//
// T is usually a pointer or a small value. The array copies element values
// but never what they point to: Clone is shallow and nothing is released
// unless ReleaseAll is called explicitly.
//
// # Bulk Removal
//
// RemoveIndices deletes a set of positions, given as a roaring bitmap, in a
// single compaction pass:
//
//	doomed, _ := a.IndicesFunc(func(v *Item) bool { return v.Expired })
//	removed, err := a.RemoveIndices(doomed)
package array
