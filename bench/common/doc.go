// Package common provides the configuration structures and the logging setup
// shared by the benchmark runner, the verifier and the command line interface.
//
// Key Components:
//
//   - RunConfig: Parameters of a benchmark run (warmup and measurement
//     iterations, time per iteration, selected suites, exports).
//
//   - VerifyConfig: Parameters of a randomized equivalence check.
//
//   - Logger: Custom implementation of dragonboats logger.ILogger with a
//     consistent "LEVEL | name | message" format on stderr. Packages obtain
//     their logger with logger.GetLogger(name), InitLoggers sets the levels.
package common
