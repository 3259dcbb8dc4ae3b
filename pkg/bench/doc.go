// Package bench provides a micro-benchmark harness: warm a function up,
// run it for a fixed number of iterations per sample, repeat over several
// samples, and derive per-operation statistics from whole-sample wall time.
//
// The harness deliberately times whole samples rather than individual calls.
// Per-call timers cost more than most of the operations measured here, so a
// Result's per-op figures are always sample totals divided by the iteration
// count, with the spread reported across samples.
package bench
