// Package growth implements the capacity policy shared by the growable containers.
//
// Capacity grows by doubling plus one until it reaches the requested minimum.
// Starting from zero this yields 1, 3, 7, 15, ... so every growth event at
// least doubles the allocation and appends amortize to O(1).
package growth

// Capacity returns the capacity to allocate so that at least minimum slots
// are available, starting from current.
//
// A minimum of zero is treated as one so that callers asking for "some"
// storage always get a non-empty allocation. The result is never smaller
// than current.
func Capacity(current, minimum int) int {
	if minimum <= 0 {
		minimum = 1
	}
	newCap := max(current, 0)
	for newCap < minimum {
		newCap = newCap*2 + 1
	}
	return newCap
}

// NeedsGrow reports whether a container with the given capacity must
// reallocate to hold minimum slots.
func NeedsGrow(capacity, minimum int) bool {
	return Capacity(capacity, minimum) > capacity
}
