// Package mmap maps files into memory as private, copy-on-write views.
//
// A Mapping is readable and writable, but writes never reach the file: the
// kernel copies a page the first time it is modified. This makes a mapping
// usable as pre-sized external storage for a fixed-capacity buffer.
//
//	m, err := mmap.Open("table.txt")
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix: mmap(2) with MAP_PRIVATE and madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile with copy-on-write access
//     (Advise is a no-op)
//
// Close is idempotent. Callers must not touch Bytes() after Close returns.
package mmap
