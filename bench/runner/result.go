package runner

import (
	gometrics "github.com/rcrowley/go-metrics"
	"testing"
	"time"
)

// picosPerNano scales ns/op samples before they are stored in the integer
// histogram, sub-nanosecond operations would otherwise all round to 0 or 1
const picosPerNano = 1000

// sampleSize is the reservoir size of the per case histogram
const sampleSize = 1028

// Stats summarizes the ns/op samples of all measurement iterations of a case
type Stats struct {
	StdDeviation float64 `json:"std_deviation"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	P50          float64 `json:"p50"`
	P99          float64 `json:"p99"`
	MinMaxRatio  float64 `json:"min_max_ratio"`
}

// NewStats computes the statistics of a histogram filled with picosecond samples
func NewStats(h gometrics.Histogram) Stats {
	snapshot := h.Snapshot()
	if snapshot.Count() == 0 {
		return Stats{}
	}

	scale := func(v float64) float64 { return v / picosPerNano }
	ps := snapshot.Percentiles([]float64{0.5, 0.99})

	stats := Stats{
		StdDeviation: scale(snapshot.StdDev()),
		Min:          scale(float64(snapshot.Min())),
		Max:          scale(float64(snapshot.Max())),
		Mean:         scale(snapshot.Mean()),
		P50:          scale(ps[0]),
		P99:          scale(ps[1]),
		MinMaxRatio:  1.0,
	}
	if stats.Max > 0 {
		stats.MinMaxRatio = stats.Min / stats.Max
	}
	return stats
}

// Result is the outcome of all measurement iterations of a single case
type Result struct {
	Suite string `json:"suite"`
	Name  string `json:"name"`

	// order is the position of the case in the run
	order int

	// Iterations is the number of measurement iterations
	Iterations int `json:"iterations"`
	// Ops is the total number of measured operations
	Ops int `json:"ops"`
	// Duration is the total measured time
	Duration time.Duration `json:"duration"`

	// NsPerOp holds the statistics over the per iteration ns/op values
	NsPerOp Stats `json:"ns_per_op"`

	// Values of the last measurement iteration
	AllocsPerOp int64   `json:"allocs_per_op"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	MBPerSec    float64 `json:"mb_per_sec"`
}

// ID returns the unique identifier suite/name
func (r Result) ID() string {
	return r.Suite + "/" + r.Name
}

// OpsPerSec derives the throughput from the mean ns/op
func (r Result) OpsPerSec() float64 {
	if r.NsPerOp.Mean <= 0 {
		return 0
	}
	return 1e9 / r.NsPerOp.Mean
}

// nsPerOp returns the exact (fractional) ns/op of a benchmark result
func nsPerOp(r testing.BenchmarkResult) float64 {
	if r.N <= 0 {
		return 0
	}
	return float64(r.T.Nanoseconds()) / float64(r.N)
}

// mbPerSec returns the throughput of a benchmark result that reported bytes
func mbPerSec(r testing.BenchmarkResult) float64 {
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}
