package encoder

import (
	"fmt"
	"math/bits"
	"testing"
)

// benchmarkSizes are the array lengths used for benchmarking, 32 is the size
// of the default benchmark data set
var benchmarkSizes = []int{0, 1, 8, 32, 256, 4096, 65536}

// sink keeps the compiler from discarding benchmark results
var sink []byte

// benchmarkArray returns [0, 1, ..., n-1]
func benchmarkArray(n int) []int32 {
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(i)
	}
	return values
}

// BenchmarkEncode benchmarks all encoders for various array sizes
func BenchmarkEncode(b *testing.B) {
	for name, factory := range testEncoders {
		for _, size := range benchmarkSizes {
			b.Run(fmt.Sprintf("%s_%d", name, size), func(b *testing.B) {
				enc := factory()
				values := benchmarkArray(size)
				b.SetBytes(int64(size * WordSize))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					sink = enc.Encode(values)
				}
			})
		}
	}
}

// BenchmarkByteSwap measures the scratch array pass of the fast path on its own
func BenchmarkByteSwap(b *testing.B) {
	values := benchmarkArray(32)
	scratch := make([]int32, len(values))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j, v := range values {
			scratch[j] = int32(bits.ReverseBytes32(uint32(v)))
		}
	}
	sink = asBytes(scratch)
}
