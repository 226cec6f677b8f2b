package suite

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/ValentinKolb/dBench/bench/common"
	"github.com/ValentinKolb/dBench/lib/encoder"
	"github.com/ValentinKolb/dBench/lib/message"
	"github.com/lni/dragonboat/v4/logger"
	"testing"
)

var Logger = logger.GetLogger("suite")

// ErrEquivalence is returned when two implementations that must produce
// identical output disagree
var ErrEquivalence = errors.New("implementations disagree")

// Case is a single benchmark of a suite
type Case struct {
	// Suite is the name of the suite the case belongs to
	Suite string
	// Name is the name of the case, unique within its suite
	Name string
	// Bytes is the number of bytes processed per operation (0 = not reported)
	Bytes int64
	// Fn is the benchmark body, it runs b.N operations
	Fn func(b *testing.B)
}

// ID returns the unique identifier suite/name
func (c Case) ID() string {
	return c.Suite + "/" + c.Name
}

// sink keeps the compiler from discarding benchmark results
var sink any

// Load builds the cases of all named suites in the given order
func Load(names []string, arraySize int) ([]Case, error) {
	var cases []Case
	for _, name := range names {
		var (
			suiteCases []Case
			err        error
		)

		switch name {
		case common.SuiteArray:
			suiteCases, err = ArraySuite(arraySize)
		case common.SuiteProto:
			suiteCases, err = ProtoSuite()
		default:
			return nil, fmt.Errorf("unknown suite %q", name)
		}

		if err != nil {
			return nil, fmt.Errorf("setup of suite %s failed: %w", name, err)
		}
		Logger.Debugf("loaded suite %s with %d cases", name, len(suiteCases))
		cases = append(cases, suiteCases...)
	}
	return cases, nil
}

// --------------------------------------------------------------------------
// Array suite
// --------------------------------------------------------------------------

// ArrayData returns the data set of the array suite: [0, 1, ..., size-1]
func ArrayData(size int) []int32 {
	data := make([]int32, size)
	for i := range data {
		data[i] = int32(i)
	}
	return data
}

// ArraySuite compares the naive and the fast array encoder on ArrayData(size)
func ArraySuite(size int) ([]Case, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative array size %d", size)
	}
	data := ArrayData(size)

	// make sure that both encoders produce the same bytes before timing them
	if naive, fast := encoder.EncodeNaive(data), encoder.EncodeFast(data); !bytes.Equal(naive, fast) {
		return nil, fmt.Errorf("%w: naive and fast array encoding differ for %d values", ErrEquivalence, size)
	}

	bytesPerOp := int64(size * encoder.WordSize)
	return []Case{
		{
			Suite: common.SuiteArray,
			Name:  "serializeNormal",
			Bytes: bytesPerOp,
			Fn: func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sink = encoder.EncodeNaive(data)
				}
			},
		},
		{
			Suite: common.SuiteArray,
			Name:  "serializeOptimized",
			Bytes: bytesPerOp,
			Fn: func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sink = encoder.EncodeFast(data)
				}
			},
		},
	}, nil
}

// --------------------------------------------------------------------------
// Proto suite
// --------------------------------------------------------------------------

// ProtoSuite compares the size and the speed optimized message strategies on
// build, build+serialize, serialize and deserialize
func ProtoSuite() ([]Case, error) {
	size, speed := message.NewReflectStrategy(), message.NewWireStrategy()

	data, err := CheckMessageEquivalence(size, speed)
	if err != nil {
		return nil, err
	}

	var cases []Case
	for _, s := range []struct {
		suffix   string
		strategy message.IMessageStrategy
	}{
		{"Size", size},
		{"Speed", speed},
	} {
		strategy := s.strategy

		// cached instance for the serialize case
		msg, err := strategy.Build(message.DefaultID, message.DefaultName)
		if err != nil {
			return nil, fmt.Errorf("build %s message: %w", strategy.Name(), err)
		}

		cases = append(cases,
			Case{
				Suite: common.SuiteProto,
				Name:  "build" + s.suffix,
				Fn: func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						m, err := strategy.Build(message.DefaultID, message.DefaultName)
						if err != nil {
							b.Fatal(err)
						}
						sink = m
					}
				},
			},
			Case{
				Suite: common.SuiteProto,
				Name:  "buildAndSerialize" + s.suffix,
				Bytes: int64(len(data)),
				Fn: func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						m, err := strategy.Build(message.DefaultID, message.DefaultName)
						if err != nil {
							b.Fatal(err)
						}
						out, err := strategy.Serialize(m)
						if err != nil {
							b.Fatal(err)
						}
						sink = out
					}
				},
			},
			Case{
				Suite: common.SuiteProto,
				Name:  "serialize" + s.suffix,
				Bytes: int64(len(data)),
				Fn: func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						out, err := strategy.Serialize(msg)
						if err != nil {
							b.Fatal(err)
						}
						sink = out
					}
				},
			},
			Case{
				Suite: common.SuiteProto,
				Name:  "deserialize" + s.suffix,
				Bytes: int64(len(data)),
				Fn: func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						m, err := strategy.Deserialize(data)
						if err != nil {
							b.Fatal(err)
						}
						sink = m
					}
				},
			},
		)
	}
	return cases, nil
}

// CheckMessageEquivalence builds the default person with both strategies and
// checks that they serialize to the same bytes. It returns those bytes.
func CheckMessageEquivalence(a, b message.IMessageStrategy) ([]byte, error) {
	serialize := func(s message.IMessageStrategy) ([]byte, error) {
		msg, err := s.Build(message.DefaultID, message.DefaultName)
		if err != nil {
			return nil, fmt.Errorf("build %s message: %w", s.Name(), err)
		}
		data, err := s.Serialize(msg)
		if err != nil {
			return nil, fmt.Errorf("serialize %s message: %w", s.Name(), err)
		}
		return data, nil
	}

	dataA, err := serialize(a)
	if err != nil {
		return nil, err
	}
	dataB, err := serialize(b)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(dataA, dataB) {
		return nil, fmt.Errorf("%w: %s and %s messages serialize differently (%x vs %x)",
			ErrEquivalence, a.Name(), b.Name(), dataA, dataB)
	}
	return dataA, nil
}
