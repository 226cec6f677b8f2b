package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidConfig is returned for configuration values that can't be used
var ErrInvalidConfig = errors.New("invalid configuration")

// Suite names
const (
	SuiteArray = "array"
	SuiteProto = "proto"
)

// KnownSuites lists all suites in their default run order
var KnownSuites = []string{SuiteArray, SuiteProto}

// Default run parameters
const (
	DefaultWarmupIterations      = 10
	DefaultMeasurementIterations = 10
	DefaultBenchTime             = time.Second
	DefaultArraySize             = 32
	DefaultLogLevel              = "info"
)

// --------------------------------------------------------------------------
// Benchmark run configuration
// --------------------------------------------------------------------------

// RunConfig holds all parameters of a benchmark run
type RunConfig struct {
	// Iterations per case, each iteration is one testing.Benchmark call
	WarmupIterations      int
	MeasurementIterations int

	// BenchTime is the target duration of a single iteration
	BenchTime time.Duration

	// Which cases to run
	Suites []string
	Filter string

	// Length of the int32 array of the array suite
	ArraySize int

	// Optional export paths (empty = disabled)
	CSVPath     string
	MetricsPath string

	// Logging configuration
	LogLevel string
}

// DefaultRunConfig returns a RunConfig with the default values
func DefaultRunConfig() RunConfig {
	return RunConfig{
		WarmupIterations:      DefaultWarmupIterations,
		MeasurementIterations: DefaultMeasurementIterations,
		BenchTime:             DefaultBenchTime,
		Suites:                append([]string(nil), KnownSuites...),
		ArraySize:             DefaultArraySize,
		LogLevel:              DefaultLogLevel,
	}
}

// Validate checks that the configuration can be used for a run
func (c *RunConfig) Validate() error {
	if c.WarmupIterations < 0 {
		return fmt.Errorf("%w: warmup iterations must not be negative (got %d)", ErrInvalidConfig, c.WarmupIterations)
	}
	if c.MeasurementIterations < 1 {
		return fmt.Errorf("%w: at least one measurement iteration is required (got %d)", ErrInvalidConfig, c.MeasurementIterations)
	}
	if c.BenchTime <= 0 {
		return fmt.Errorf("%w: bench time must be positive (got %s)", ErrInvalidConfig, c.BenchTime)
	}
	if c.ArraySize < 0 {
		return fmt.Errorf("%w: array size must not be negative (got %d)", ErrInvalidConfig, c.ArraySize)
	}
	if len(c.Suites) == 0 {
		return fmt.Errorf("%w: no suite selected", ErrInvalidConfig)
	}
	for _, s := range c.Suites {
		if !IsKnownSuite(s) {
			return fmt.Errorf("%w: unknown suite %q (expected one of: %s)", ErrInvalidConfig, s, strings.Join(KnownSuites, ", "))
		}
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *RunConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	or := func(value, fallback string) string {
		if value == "" {
			return fallback
		}
		return value
	}

	addSection("Iterations")
	addField("Warmup", strconv.Itoa(c.WarmupIterations))
	addField("Measurement", strconv.Itoa(c.MeasurementIterations))
	addField("Time per Iteration", c.BenchTime.String())

	addSection("Cases")
	addField("Suites", strings.Join(c.Suites, ", "))
	addField("Filter", or(c.Filter, "-"))
	addField("Array Size", strconv.Itoa(c.ArraySize))

	addSection("Output")
	addField("CSV", or(c.CSVPath, "disabled"))
	addField("Metrics", or(c.MetricsPath, "disabled"))
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// IsKnownSuite checks if name is one of KnownSuites
func IsKnownSuite(name string) bool {
	for _, s := range KnownSuites {
		if s == name {
			return true
		}
	}
	return false
}

// --------------------------------------------------------------------------
// Verification configuration
// --------------------------------------------------------------------------

// VerifyConfig holds all parameters of an equivalence check run
type VerifyConfig struct {
	// Number of goroutines drawing samples
	Workers int
	// Total number of random arrays to check
	Samples int
	// Maximum length of a random array
	MaxLength int
	// Seed of the random generators, worker i uses Seed+i
	Seed int64
}

// Validate checks that the configuration can be used for a verification run
func (c *VerifyConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: at least one worker is required (got %d)", ErrInvalidConfig, c.Workers)
	}
	if c.Samples < 0 {
		return fmt.Errorf("%w: samples must not be negative (got %d)", ErrInvalidConfig, c.Samples)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("%w: max length must not be negative (got %d)", ErrInvalidConfig, c.MaxLength)
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *VerifyConfig) String() string {
	var sb strings.Builder
	sb.WriteString("\nVERIFICATION\n")
	sb.WriteString(fmt.Sprintf("  %-22s: %d\n", "Workers", c.Workers))
	sb.WriteString(fmt.Sprintf("  %-22s: %d\n", "Samples", c.Samples))
	sb.WriteString(fmt.Sprintf("  %-22s: %d\n", "Max Length", c.MaxLength))
	sb.WriteString(fmt.Sprintf("  %-22s: %d\n", "Seed", c.Seed))
	return sb.String()
}
