package util

import (
	"fmt"
	"github.com/ValentinKolb/dBench/bench/common"
	"github.com/ValentinKolb/dBench/lib/encoder"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig loads .env files and makes viper read DBENCH_* environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("dbench")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// SetupRunFlags adds the benchmark run flags to a command
func SetupRunFlags(cmd *cobra.Command) {
	key := "suites"
	cmd.Flags().String(key, strings.Join(common.KnownSuites, ","), WrapString("Comma-separated list of suites to run (array, proto)"))

	key = "filter"
	cmd.Flags().String(key, "", WrapString("Only run cases whose suite/name contains this string"))

	key = "warmup"
	cmd.Flags().Int(key, common.DefaultWarmupIterations, WrapString("Number of warmup iterations per case, their results are discarded"))

	key = "iterations"
	cmd.Flags().Int(key, common.DefaultMeasurementIterations, WrapString("Number of measurement iterations per case"))

	key = "bench-time"
	cmd.Flags().Duration(key, common.DefaultBenchTime, WrapString("Target duration of a single iteration (e.g. 500ms, 2s)"))

	key = "array-size"
	cmd.Flags().Int(key, common.DefaultArraySize, WrapString("Number of int32 values encoded by the array suite"))

	key = "csv"
	cmd.Flags().String(key, "", WrapString("Optional path to save benchmark results as CSV"))

	key = "metrics"
	cmd.Flags().String(key, "", WrapString("Optional path to save benchmark results in the Prometheus text format"))
}

// GetRunConfig reads the benchmark run configuration from viper
func GetRunConfig() common.RunConfig {
	var suites []string
	for _, s := range strings.Split(viper.GetString("suites"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			suites = append(suites, s)
		}
	}

	return common.RunConfig{
		WarmupIterations:      viper.GetInt("warmup"),
		MeasurementIterations: viper.GetInt("iterations"),
		BenchTime:             viper.GetDuration("bench-time"),
		Suites:                suites,
		Filter:                viper.GetString("filter"),
		ArraySize:             viper.GetInt("array-size"),
		CSVPath:               viper.GetString("csv"),
		MetricsPath:           viper.GetString("metrics"),
		LogLevel:              viper.GetString("log-level"),
	}
}

// GetVerifyConfig reads the verification configuration from viper
func GetVerifyConfig() common.VerifyConfig {
	return common.VerifyConfig{
		Workers:   viper.GetInt("workers"),
		Samples:   viper.GetInt("samples"),
		MaxLength: viper.GetInt("max-length"),
		Seed:      viper.GetInt64("seed"),
	}
}

// GetEncoder creates an array encoder by name
func GetEncoder(name string) (encoder.IArrayEncoder, error) {
	switch name {
	case "naive":
		return encoder.NewNaiveEncoder(), nil
	case "fast":
		return encoder.NewFastEncoder(), nil
	default:
		return nil, fmt.Errorf("invalid encoder %s", name)
	}
}
