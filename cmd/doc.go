// Package cmd implements the command-line interface of dBench.
//
// The package is organized into several subpackages:
//
//   - run: Runs the benchmark suites with warmup and measurement iterations
//   - verify: Checks that the compared implementations produce identical bytes
//   - encode: Prints the encoding of an int32 array (debugging aid)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// All flags can also be set as environment variables DBENCH_<FLAG> (e.g.
// DBENCH_BENCH_TIME=500ms), also read from .env and .env.local.
//
// See dbench -help for a list of all commands.
package cmd
