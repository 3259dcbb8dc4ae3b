// Package experiments holds the probe corpus: each file registers one
// experiment group measuring a specific runtime micro-behavior.
//
// Sink variables are package-level so the compiler cannot prove a measured
// body dead and remove it.
package experiments

import "github.com/fijjas/go-experiments/internal/suite"

// All returns every experiment in the order it should appear in reports.
func All() []suite.Experiment {
	return []suite.Experiment{
		Closures(),
		Recursion(),
		Dispatch(),
		Shapes(),
		AsyncAwait(),
		Proxy(),
		Interp(),
		Allocs(),
		Collections(),
		JSONCodec(),
		Contention(),
	}
}

var (
	sinkInt   int
	sinkInt64 int64
	sinkBytes []byte
)
