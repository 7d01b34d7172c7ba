// Package conv provides safe integer type conversion utilities.
//
// Container positions are Go ints while roaring bitmaps address uint32
// positions. These helpers check the conversion in both directions so that
// an index set never silently wraps.
package conv
