package encoder

import (
	"github.com/ValentinKolb/dBench/lib/buffer"
	"io"
)

// NewNaiveEncoder creates an encoder that writes every value byte by byte
// through a generic byte stream. It is the reference implementation.
func NewNaiveEncoder() IArrayEncoder {
	return &naiveEncoderImpl{}
}

// naiveEncoderImpl implements IArrayEncoder with one single-byte write per output byte
type naiveEncoderImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see encoder.IArrayEncoder)
// --------------------------------------------------------------------------

func (n naiveEncoderImpl) Encode(values []int32) []byte {
	return EncodeNaive(values)
}

// EncodeNaive encodes values in big-endian order, most significant byte first,
// using four independent byte writes per value
func EncodeNaive(values []int32) []byte {
	buf := buffer.New(len(values) * WordSize)
	writeInts(buf, values)
	return buf.Bytes()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// writeInts writes each value to w the way a portable data stream would
func writeInts(w io.ByteWriter, values []int32) {
	for _, v := range values {
		u := uint32(v)
		_ = w.WriteByte(byte(u >> 24))
		_ = w.WriteByte(byte(u >> 16))
		_ = w.WriteByte(byte(u >> 8))
		_ = w.WriteByte(byte(u))
	}
}
