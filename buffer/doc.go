// Package buffer provides Buffer, a growable byte buffer with a guaranteed
// trailing NUL terminator.
//
// # Growable Mode
//
// A new Buffer owns its storage and grows by doubling plus one. One byte
// beyond Len() is always reserved and holds 0, so the contents can be handed
// to code that expects NUL-terminated text.
//
//	b := buffer.New()
//	b.Cat("ab")
//	b.Cat("cd") // "abcd", Len() == 4, terminated
//
// # Fixed Mode
//
// InstallFixed hands externally allocated storage to the buffer. From then
// on the buffer never reallocates; appends that do not fit fail with
// ErrFixedCapacity and there is no terminator guarantee. MapFile installs a
// private memory mapping of a file the same way.
//
// # Ownership
//
// Extract gives the storage back to the caller and leaves the buffer empty.
// Installing the extracted bytes with InstallFixed(data, len(data))
// reproduces the same contents.
package buffer
