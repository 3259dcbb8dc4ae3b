package report

import "github.com/fijjas/go-experiments/pkg/bench"

// Reporter is an interface that defines the methods for rendering benchmark
// results.
type Reporter interface {
	// Add records the results of one experiment group.
	Add(group string, results []bench.Result) error
	// Finish renders everything recorded so far.
	Finish() error
}
