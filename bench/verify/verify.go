package verify

import (
	"bytes"
	"context"
	"fmt"
	"github.com/ValentinKolb/dBench/bench/common"
	"github.com/ValentinKolb/dBench/bench/suite"
	"github.com/ValentinKolb/dBench/lib/encoder"
	"github.com/ValentinKolb/dBench/lib/message"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"math"
	"math/rand"
	"sort"
	"sync"
)

var Logger = logger.GetLogger("verify")

// edgeValues are mixed into every random sample
var edgeValues = []int32{math.MinInt32, math.MinInt32 + 1, -1, 0, 1, math.MaxInt32 - 1, math.MaxInt32}

// Encoder is a named array encoding function under test
type Encoder struct {
	Name   string
	Encode func(values []int32) []byte
}

// DefaultEncoders compares the fast encoder against the naive reference
var DefaultEncoders = [2]Encoder{
	{Name: "naive", Encode: encoder.EncodeNaive},
	{Name: "fast", Encode: encoder.EncodeFast},
}

// Mismatch describes an input on which the two encoders disagree
type Mismatch struct {
	Sample int
	Input  []int32
	Want   []byte
	Got    []byte
	Reason string
}

// Report is the outcome of a verification run
type Report struct {
	Samples    int
	Mismatches []Mismatch
}

// Err returns an error wrapping suite.ErrEquivalence if mismatches were found
func (r Report) Err() error {
	if len(r.Mismatches) == 0 {
		return nil
	}
	first := r.Mismatches[0]
	return fmt.Errorf("%w: %d of %d samples differ, first at sample %d (%s)",
		suite.ErrEquivalence, len(r.Mismatches), r.Samples, first.Sample, first.Reason)
}

// --------------------------------------------------------------------------
// Public Methods
// --------------------------------------------------------------------------

// Run checks the default encoders and the message strategies
func Run(ctx context.Context, config common.VerifyConfig) (Report, error) {
	if _, err := suite.CheckMessageEquivalence(message.NewReflectStrategy(), message.NewWireStrategy()); err != nil {
		return Report{}, err
	}
	Logger.Infof("message strategies agree")

	return Encoders(ctx, config, DefaultEncoders)
}

// Encoders draws config.Samples random arrays on config.Workers goroutines and
// compares the output of both encoders on each of them. The reference encoder
// is encoders[0]. Sample i is always the same array for a given seed,
// independent of the number of workers.
func Encoders(ctx context.Context, config common.VerifyConfig, encoders [2]Encoder) (Report, error) {
	if err := config.Validate(); err != nil {
		return Report{}, err
	}

	mismatches := xsync.NewMapOf[int, Mismatch]()
	checked := xsync.NewCounter()

	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := worker; i < config.Samples; i += config.Workers {
				if ctx.Err() != nil {
					return
				}
				values := Sample(config.Seed, i, config.MaxLength)
				if m, ok := compare(encoders, values); !ok {
					m.Sample = i
					mismatches.Store(i, m)
				}
				checked.Inc()
			}
		}(w)
	}
	wg.Wait()

	report := Report{Samples: int(checked.Value())}
	mismatches.Range(func(_ int, m Mismatch) bool {
		report.Mismatches = append(report.Mismatches, m)
		return true
	})
	sort.Slice(report.Mismatches, func(i, j int) bool {
		return report.Mismatches[i].Sample < report.Mismatches[j].Sample
	})

	if err := ctx.Err(); err != nil {
		return report, err
	}

	Logger.Infof("checked %d samples with %d workers, %d mismatches", report.Samples, config.Workers, len(report.Mismatches))
	return report, nil
}

// Sample returns the i-th random array for seed. Its length is in [0, maxLength],
// about a quarter of its values are edge values.
func Sample(seed int64, i int, maxLength int) []int32 {
	rnd := rand.New(rand.NewSource(seed + int64(i)))

	values := make([]int32, rnd.Intn(maxLength+1))
	for j := range values {
		if rnd.Intn(4) == 0 {
			values[j] = edgeValues[rnd.Intn(len(edgeValues))]
		} else {
			values[j] = int32(rnd.Uint32())
		}
	}
	return values
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// compare runs both encoders on values and checks byte equality and the length law
func compare(encoders [2]Encoder, values []int32) (Mismatch, bool) {
	want := encoders[0].Encode(values)
	got := encoders[1].Encode(values)

	mismatch := Mismatch{Input: values, Want: want, Got: got}
	switch {
	case len(want) != encoder.WordSize*len(values):
		mismatch.Reason = fmt.Sprintf("%s produced %d bytes for %d values", encoders[0].Name, len(want), len(values))
	case len(got) != encoder.WordSize*len(values):
		mismatch.Reason = fmt.Sprintf("%s produced %d bytes for %d values", encoders[1].Name, len(got), len(values))
	case !bytes.Equal(want, got):
		mismatch.Reason = fmt.Sprintf("%s and %s differ", encoders[0].Name, encoders[1].Name)
	default:
		return Mismatch{}, true
	}
	return mismatch, false
}
