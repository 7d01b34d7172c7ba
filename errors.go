package vcoll

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when an index or length violates a container's bounds.
	ErrOutOfRange = errors.New("index out of range")
)

// IndexError reports an index that is outside the range an operation accepts.
//
// It wraps ErrOutOfRange, so errors.Is(err, ErrOutOfRange) holds.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

// NewIndexError returns an IndexError for the named operation.
func NewIndexError(op string, index, length int) *IndexError {
	return &IndexError{Op: op, Index: index, Length: length}
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0:%d]", e.Op, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }
