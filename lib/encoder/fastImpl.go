package encoder

import (
	"github.com/ValentinKolb/dBench/lib/buffer"
	"math/bits"
	"unsafe"
)

// NewFastEncoder creates an encoder that fixes the byte order of all values in
// a scratch array and then copies the whole array into the output with a
// single bulk copy
func NewFastEncoder() IArrayEncoder {
	return &fastEncoderImpl{}
}

// fastEncoderImpl implements IArrayEncoder with one bulk copy per call
type fastEncoderImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see encoder.IArrayEncoder)
// --------------------------------------------------------------------------

func (f fastEncoderImpl) Encode(values []int32) []byte {
	return EncodeFast(values)
}

// EncodeFast produces the same bytes as EncodeNaive. On little-endian machines
// every value is byte-swapped into a scratch array first, so that the raw
// memory of the scratch array is already the big-endian wire format.
func EncodeFast(values []int32) []byte {
	size := len(values) * WordSize

	src := values
	if IsLittleEndian {
		src = make([]int32, len(values))
		for i, v := range values {
			src[i] = int32(bits.ReverseBytes32(uint32(v)))
		}
	}

	buf := buffer.New(size)
	buf.Grow(size)
	n := copy(buf.Raw()[buf.Len():], asBytes(src))
	buf.Advance(n)

	return buf.Bytes()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// asBytes views the memory of values as bytes without copying.
// The view shares memory with values and must not outlive it.
func asBytes(values []int32) []byte {
	if len(values) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), len(values)*WordSize)
}
