// Package sorted provides Table, an associative table kept as a sorted array.
//
// A Table trades hashing for binary search: elements live in an array.Array
// in ascending key order, lookups cost O(log n) comparisons and insertions
// cost O(log n) comparisons plus an O(n) shift. For small to medium tables
// the contiguous layout usually beats a hash map.
//
// # Ordering
//
// Ordering is defined by two functions fixed at construction:
//
//   - key extracts the key of an element
//   - compare orders a key against an element, returning a negative value,
//     zero or a positive value like cmp.Compare
//
// Both must be consistent: compare(key(e), e) == 0 for every element, and
// compare must describe a strict weak ordering over keys. Violations are not
// detected; Verify can be used in tests.
//
// # Uniqueness
//
// A Table holds at most one element per key. Inserting an element whose key
// is already present replaces the old element in place and returns it.
//
//	t := sorted.NewOrdered(func(e Entry) string { return e.Name })
//	t.Insert(Entry{Name: "b"})
//	prev, replaced := t.Insert(Entry{Name: "b", Value: 2}) // replaced == true
package sorted
