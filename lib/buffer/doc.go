// Package buffer provides the append-only byte buffer used by the array
// encoders. It behaves like a byte stream sink (io.Writer, io.ByteWriter)
// but additionally exposes its backing store so that a caller can fill a
// reserved region with a single bulk copy and commit it afterwards.
//
// The package focuses on:
//   - Exact growth: a reallocation sizes the store to precisely the requested
//     length, never doubling, so benchmark allocations are deterministic
//   - A split reserve / write / commit API (Grow, Raw, Advance) for bulk writes
//     that bypass an intermediate copy
//   - An atomic bulk Write that performs reserve, copy and commit in one call
//
// Key Components:
//
//   - Buffer: the growable byte store with a length cursor. Bytes in [0, Len())
//     are written data, bytes in [Len(), Cap()) are unspecified.
//
//   - PreconditionError: the panic value used for programmer errors such as a
//     negative capacity or advancing past the end of the store.
//
// Thread Safety:
//
//	A Buffer has a single owner and a single writer. It must not be shared
//	between goroutines without external synchronization.
//
// Usage:
//
//	buf := buffer.New(16)
//	buf.Grow(4)
//	n := copy(buf.Raw()[buf.Len():], []byte{1, 2, 3, 4})
//	buf.Advance(n)
//	out := buf.Bytes() // [1 2 3 4], independent of buf
package buffer
