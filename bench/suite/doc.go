// Package suite defines the benchmark cases of dBench.
//
// Suites:
//
//   - array: serializeNormal (naive encoder) vs. serializeOptimized (fast
//     encoder) on the int32 array [0, 1, ..., size-1].
//
//   - proto: buildX, buildAndSerializeX, serializeX and deserializeX for the
//     size (X=Size) and the speed (X=Speed) message strategy.
//
// Every suite checks during setup that the implementations it compares produce
// identical bytes and refuses to load otherwise (ErrEquivalence). The cases
// themselves are plain testing.B bodies and carry no timing logic.
package suite
