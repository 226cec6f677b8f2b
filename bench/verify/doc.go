// Package verify checks at runtime that the implementations compared by the
// benchmarks are interchangeable: the fast array encoder must produce the
// bytes of the naive encoder for every input, and both message strategies
// must serialize the same message to the same bytes.
//
// The array check draws reproducible random samples (seeded per sample, so
// the set of inputs does not depend on the number of workers) and spreads
// them over several goroutines. It is a tool for the command line, the
// encoders themselves never check their output.
package verify
