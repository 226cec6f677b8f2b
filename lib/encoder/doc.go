// Package encoder turns int32 arrays into a portable byte sequence. It defines
// a common interface and two implementations that produce byte-identical
// output with very different costs.
//
// Wire format: the values in input order, each as 4 bytes big-endian (most
// significant byte first). There is no length header, separator or padding,
// so the output of n values is exactly 4*n bytes.
//
// Key Components:
//
//   - IArrayEncoder: Core interface that all encoder implementations satisfy.
//
//   - naiveEncoderImpl: Writes every value as four single-byte writes through an
//     io.ByteWriter. Correct on any machine because each byte is extracted and
//     placed explicitly. Used as the reference and as the benchmark baseline.
//
//   - fastEncoderImpl: Byte-swaps all values into a scratch array (only on
//     little-endian machines), views the scratch array as raw bytes and copies
//     it into the output buffer in one bulk copy.
//
// The native byte order is detected once at package initialization
// (NativeOrder, IsLittleEndian).
//
// Thread Safety:
//
//	Both encoders are stateless. Every call allocates its own buffer and scratch
//	array, so encoders are safe for concurrent use.
//
// Usage:
//
//	enc := encoder.NewFastEncoder()
//	data := enc.Encode([]int32{1, 2, 3}) // 12 bytes
package encoder
