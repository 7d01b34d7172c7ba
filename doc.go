// Package vcoll provides small generic containers with explicit growth and
// ordering control.
//
// The containers live in sub-packages:
//
//   - array: an exclusively-owned, index-addressable growable array
//   - buffer: a growable byte buffer with a trailing NUL terminator and an
//     optional fixed-capacity mode
//   - sorted: a sorted associative table over an array, searched with binary
//     search and ordered by a caller-supplied comparator and key extractor
//
// This package holds what they share: the Logger used for debug output and
// the IndexError returned for out-of-range access.
//
// # Quick Start
//
//	byID := sorted.NewOrdered(func(u *User) int { return u.ID })
//	byID.Insert(&User{ID: 5})
//	byID.Insert(&User{ID: 1})
//	u, ok := byID.Search(5)
//
// # Concurrency
//
// None of the containers lock. Every operation runs to completion before it
// returns and callers must serialize access to a single instance. Distinct
// instances, including clones, can be used from different goroutines.
//
// # Ownership
//
// Containers never release or copy what their elements point to. Clone is
// shallow. array.Array.ReleaseAll is the only operation that hands elements to
// a release function, and only when called explicitly.
//
// # Errors
//
// Out-of-range indexes are reported as *IndexError values wrapping
// ErrOutOfRange rather than panics. Allocation failure remains fatal.
package vcoll
