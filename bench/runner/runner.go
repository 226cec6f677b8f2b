package runner

import (
	"context"
	"flag"
	"fmt"
	"github.com/ValentinKolb/dBench/bench/common"
	"github.com/ValentinKolb/dBench/bench/suite"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	gometrics "github.com/rcrowley/go-metrics"
	"io"
	"sort"
	"strings"
	"testing"
	"time"
)

var Logger = logger.GetLogger("runner")

// NewRunner creates a runner for the given configuration. Results are printed to out.
//
// Usage:
//
//	r, err := runner.NewRunner(common.DefaultRunConfig(), os.Stdout)
//	cases, err := suite.Load(conf.Suites, conf.ArraySize)
//	err = r.Run(ctx, cases)
//	err = r.WriteCSV("results.csv")
func NewRunner(config common.RunConfig, out io.Writer) (*Runner, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		config:   config,
		out:      out,
		registry: gometrics.NewRegistry(),
		results:  xsync.NewMapOf[string, Result](),
	}, nil
}

// Runner executes benchmark cases with separate warmup and measurement
// iterations and keeps the results of all measured cases
type Runner struct {
	config   common.RunConfig
	out      io.Writer
	registry gometrics.Registry
	results  *xsync.MapOf[string, Result]
}

// --------------------------------------------------------------------------
// Public Methods
// --------------------------------------------------------------------------

// Run executes all cases that match the configured filter, one after another.
// Cancelling ctx stops the run after the current iteration.
func (r *Runner) Run(ctx context.Context, cases []suite.Case) error {
	if err := applyBenchTime(r.config.BenchTime); err != nil {
		return err
	}

	r.printHeader()

	for i, c := range cases {
		if r.config.Filter != "" && !strings.Contains(c.ID(), r.config.Filter) {
			Logger.Debugf("skipping %s (filter %q)", c.ID(), r.config.Filter)
			continue
		}

		result, err := r.runCase(ctx, i, c)
		if err != nil {
			return err
		}

		r.results.Store(c.ID(), result)
		r.printResult(result)
	}
	return nil
}

// Results returns the results of all measured cases in run order
func (r *Runner) Results() []Result {
	results := make([]Result, 0, r.results.Size())
	r.results.Range(func(_ string, result Result) bool {
		results = append(results, result)
		return true
	})
	sort.Slice(results, func(i, j int) bool { return results[i].order < results[j].order })
	return results
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// runCase runs the warmup and measurement iterations of a single case
func (r *Runner) runCase(ctx context.Context, order int, c suite.Case) (Result, error) {
	bench := func(b *testing.B) {
		if c.Bytes > 0 {
			b.SetBytes(c.Bytes)
		}
		b.ReportAllocs()
		c.Fn(b)
	}

	for i := 0; i < r.config.WarmupIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res := testing.Benchmark(bench)
		Logger.Debugf("%s warmup %d/%d: %.2f ns/op", c.ID(), i+1, r.config.WarmupIterations, nsPerOp(res))
	}

	histogram := gometrics.GetOrRegisterHistogram(c.ID(), r.registry, gometrics.NewUniformSample(sampleSize))
	histogram.Clear()

	result := Result{Suite: c.Suite, Name: c.Name, order: order}
	for i := 0; i < r.config.MeasurementIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		res := testing.Benchmark(bench)
		if res.N == 0 {
			// the case failed (b.Fatal) or was skipped
			return Result{}, fmt.Errorf("benchmark %s did not run", c.ID())
		}

		ns := nsPerOp(res)
		histogram.Update(int64(ns * picosPerNano))
		Logger.Debugf("%s iteration %d/%d: %.2f ns/op", c.ID(), i+1, r.config.MeasurementIterations, ns)

		result.Iterations++
		result.Ops += res.N
		result.Duration += res.T
		result.AllocsPerOp = res.AllocsPerOp()
		result.BytesPerOp = res.AllocedBytesPerOp()
		result.MBPerSec = mbPerSec(res)
	}

	result.NsPerOp = NewStats(histogram)
	return result, nil
}

// applyBenchTime sets the target duration used by testing.Benchmark
func applyBenchTime(d time.Duration) error {
	// registers the test.* flags outside of test binaries, no-op otherwise
	testing.Init()
	if err := flag.Set("test.benchtime", d.String()); err != nil {
		return fmt.Errorf("failed to set bench time: %w", err)
	}
	return nil
}

// printHeader prints the column titles of the result table
func (r *Runner) printHeader() {
	fmt.Fprintf(r.out, "%-32s%14s%10s%14s%12s%12s\n", "Benchmark", "ns/op", "± %", "ops/sec", "allocs/op", "B/op")
}

// printResult prints the result of a benchmark case in a formatted way
func (r *Runner) printResult(result Result) {
	var errPercent float64
	if result.NsPerOp.Mean > 0 {
		errPercent = result.NsPerOp.StdDeviation / result.NsPerOp.Mean * 100
	}

	fmt.Fprintf(r.out, "%-32s%14.2f%10.2f%14.0f%12d%12d\n",
		result.ID(),
		result.NsPerOp.Mean,
		errPercent,
		result.OpsPerSec(),
		result.AllocsPerOp,
		result.BytesPerOp,
	)
}
