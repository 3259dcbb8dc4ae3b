package experiments

import (
	"context"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

type payload struct {
	buf  [64]byte
	used int
}

//go:noinline
func newEscapingPayload(used int) *payload {
	return &payload{used: used}
}

//go:noinline
func consumePayload(p *payload) int {
	return p.used
}

// Allocs probes escape analysis and allocation volume. MemStats mode is
// forced on so results carry allocs/op, at the price of a GC per sample.
func Allocs() suite.Experiment {
	return suite.Experiment{
		Name: "allocs",
		Doc:  "escape analysis outcomes and slice growth, with allocs/op",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			opts := runner.Options()
			opts.MemStats = true
			if opts.Iterations <= 0 {
				// Deterministic count keeps alloc figures exact per op.
				opts.Iterations = 100_000
			}

			const itemCount = 64
			var n int

			return runner.RunGroupWith(ctx, "allocs", []bench.Case{
				{Name: "stack-value", Baseline: true, Fn: func() {
					p := payload{used: n}
					sinkInt = consumePayload(&p)
					n++
				}},
				{Name: "escaping-pointer", Fn: func() {
					sinkInt = consumePayload(newEscapingPayload(n))
					n++
				}},
				{Name: "slice-prealloc", Fn: func() {
					items := make([]int, 0, itemCount)
					for j := 0; j < itemCount; j++ {
						items = append(items, j)
					}
					sinkInt = len(items)
				}},
				{Name: "slice-append-grow", Fn: func() {
					var items []int
					for j := 0; j < itemCount; j++ {
						items = append(items, j)
					}
					sinkInt = len(items)
				}},
				{Name: "byte-slice-1k", Fn: func() {
					sinkBytes = make([]byte, 1024)
				}},
			}, opts)
		},
	}
}
