package encoder

import (
	"encoding/binary"
	"github.com/google/go-cmp/cmp"
	"math"
	"math/rand"
	"testing"
)

// testEncoders is a map of encoder name to factory function
var testEncoders = map[string]func() IArrayEncoder{
	"Naive": NewNaiveEncoder,
	"Fast":  NewFastEncoder,
}

// testInputs returns inputs covering the edge cases of the wire format
func testInputs() map[string][]int32 {
	sequence := make([]int32, 32)
	for i := range sequence {
		sequence[i] = int32(i)
	}

	return map[string][]int32{
		"Empty":       {},
		"Nil":         nil,
		"Single":      {42},
		"Zero":        {0},
		"MinusOne":    {-1},
		"MinInt32":    {math.MinInt32},
		"MaxInt32":    {math.MaxInt32},
		"Extremes":    {math.MinInt32, -1, 0, math.MaxInt32},
		"Sequence32":  sequence,
		"ByteOrder":   {0x01020304, 0x0a0b0c0d},
		"MixedSigned": {-123456789, 987654321, -2, 2, math.MinInt32 + 1, math.MaxInt32 - 1},
	}
}

// TestEquivalence checks that the fast path produces exactly the bytes of the naive path
func TestEquivalence(t *testing.T) {
	for name, values := range testInputs() {
		t.Run(name, func(t *testing.T) {
			naive := EncodeNaive(values)
			fast := EncodeFast(values)
			if diff := cmp.Diff(naive, fast); diff != "" {
				t.Errorf("Fast encoding differs from naive encoding (-naive +fast):\n%s", diff)
			}
		})
	}
}

// TestEquivalenceRandom compares both paths on random arrays of random length
func TestEquivalenceRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		values := make([]int32, rnd.Intn(300))
		for j := range values {
			values[j] = int32(rnd.Uint32())
		}

		naive := EncodeNaive(values)
		fast := EncodeFast(values)
		if diff := cmp.Diff(naive, fast); diff != "" {
			t.Fatalf("Round %d (len %d): encodings differ (-naive +fast):\n%s", i, len(values), diff)
		}
	}
}

// TestLengthAndOrder checks the length law and compares against encoding/binary
func TestLengthAndOrder(t *testing.T) {
	for name, factory := range testEncoders {
		t.Run(name, func(t *testing.T) {
			enc := factory()

			for inputName, values := range testInputs() {
				got := enc.Encode(values)

				if len(got) != WordSize*len(values) {
					t.Errorf("%s: expected %d bytes, got %d", inputName, WordSize*len(values), len(got))
					continue
				}

				for i, v := range values {
					if word := int32(binary.BigEndian.Uint32(got[i*WordSize:])); word != v {
						t.Errorf("%s: value %d: expected %d, got %d", inputName, i, v, word)
					}
				}
			}
		})
	}
}

// TestKnownEncodings tests exact byte layouts for hand-checked inputs
func TestKnownEncodings(t *testing.T) {
	testCases := []struct {
		name   string
		values []int32
		want   []byte
	}{
		{
			name:   "Empty input",
			values: []int32{},
			want:   []byte{},
		},
		{
			name:   "Most significant byte first",
			values: []int32{0x01020304},
			want:   []byte{0x01, 0x02, 0x03, 0x04},
		},
		{
			name:   "Minus one",
			values: []int32{-1},
			want:   []byte{0xff, 0xff, 0xff, 0xff},
		},
		{
			name:   "MinInt32",
			values: []int32{math.MinInt32},
			want:   []byte{0x80, 0x00, 0x00, 0x00},
		},
		{
			name:   "MaxInt32",
			values: []int32{math.MaxInt32},
			want:   []byte{0x7f, 0xff, 0xff, 0xff},
		},
		{
			name:   "Concatenation without separators",
			values: []int32{1, 256},
			want:   []byte{0, 0, 0, 1, 0, 0, 1, 0},
		},
	}

	for name, factory := range testEncoders {
		enc := factory()
		for _, tc := range testCases {
			t.Run(name+"_"+tc.name, func(t *testing.T) {
				got := enc.Encode(tc.values)
				if got == nil {
					t.Fatalf("Expected a non-nil result")
				}
				if diff := cmp.Diff(tc.want, got); diff != "" {
					t.Errorf("Encoding mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

// TestSequenceScenario encodes the benchmark data set [0, 1, ..., 31]
func TestSequenceScenario(t *testing.T) {
	values := testInputs()["Sequence32"]

	for name, factory := range testEncoders {
		t.Run(name, func(t *testing.T) {
			got := factory().Encode(values)

			if len(got) != 128 {
				t.Fatalf("Expected 128 bytes, got %d", len(got))
			}
			if diff := cmp.Diff([]byte{0, 0, 0, 0}, got[:4]); diff != "" {
				t.Errorf("First word mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]byte{0, 0, 0, 1}, got[4:8]); diff != "" {
				t.Errorf("Second word mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]byte{0, 0, 0, 31}, got[124:]); diff != "" {
				t.Errorf("Last word mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestInputUntouched makes sure the byte swap happens on the scratch copy only
func TestInputUntouched(t *testing.T) {
	values := []int32{0x01020304, -1, math.MinInt32}
	before := append([]int32(nil), values...)

	_ = EncodeFast(values)

	if diff := cmp.Diff(before, values); diff != "" {
		t.Errorf("EncodeFast modified its input (-before +after):\n%s", diff)
	}
}

// TestResultIsOwned checks that results of successive calls do not share memory
func TestResultIsOwned(t *testing.T) {
	for name, factory := range testEncoders {
		t.Run(name, func(t *testing.T) {
			enc := factory()
			first := enc.Encode([]int32{7})
			second := enc.Encode([]int32{7})

			first[3] = 0
			if second[3] != 7 {
				t.Errorf("Results of two calls share memory")
			}
		})
	}
}

func TestNativeOrder(t *testing.T) {
	probe := make([]byte, 4)
	NativeOrder.PutUint32(probe, 0x01020304)

	got := asBytes([]int32{0x01020304})
	if diff := cmp.Diff(probe, got); diff != "" {
		t.Errorf("NativeOrder does not match the memory layout (-want +got):\n%s", diff)
	}

	if IsLittleEndian != (probe[0] == 0x04) {
		t.Errorf("IsLittleEndian=%v but NativeOrder wrote %v", IsLittleEndian, probe)
	}
}
