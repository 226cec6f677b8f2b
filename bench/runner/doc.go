// Package runner executes benchmark cases outside of "go test" and reports
// the results.
//
// Every case runs a number of warmup iterations whose results are discarded,
// followed by the measurement iterations. One iteration is one call of
// testing.Benchmark, its target duration is RunConfig.BenchTime. The ns/op of
// each measurement iteration is recorded in a go-metrics histogram from which
// mean, standard deviation, min, max and percentiles are derived.
//
// Results can be exported as CSV (WriteCSV) or in the Prometheus text format
// (WritePrometheus).
//
// Cases run strictly one after another, a runner must not be used by several
// goroutines at once.
package runner
