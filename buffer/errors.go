package buffer

import "errors"

var (
	// ErrFixedCapacity is returned when an append does not fit a fixed-capacity buffer.
	ErrFixedCapacity = errors.New("buffer: fixed capacity exceeded")
	// ErrShortData is returned when more bytes are requested than the source holds.
	ErrShortData = errors.New("buffer: source shorter than requested length")
	// ErrInvalidSize is returned for negative sizes or sizes beyond the storage.
	ErrInvalidSize = errors.New("buffer: invalid size")
	// ErrNilStorage is returned when nil storage is installed.
	ErrNilStorage = errors.New("buffer: nil storage")
)
