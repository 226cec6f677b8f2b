package encoder

// IArrayEncoder is the interface for all int32 array encoders
type IArrayEncoder interface {
	// Encode encodes values as a sequence of 4-byte big-endian integers.
	// The result has length 4*len(values) and is owned by the caller.
	Encode(values []int32) []byte
}

// WordSize is the encoded size of a single value in bytes
const WordSize = 4
