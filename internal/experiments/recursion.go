package experiments

import (
	"context"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

func fibRecursive(n int64) int64 {
	if n < 2 {
		return n
	}

	return fibRecursive(n-1) + fibRecursive(n-2)
}

func fibIterative(n int64) int64 {
	a, b := int64(0), int64(1)
	for i := int64(0); i < n; i++ {
		a, b = b, a+b
	}

	return a
}

// Recursion compares a naive recursive fibonacci with the iterative form;
// the gap is almost entirely call-frame overhead.
func Recursion() suite.Experiment {
	return suite.Experiment{
		Name: "recursion",
		Doc:  "call-frame overhead of deep recursion vs an iterative loop",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			const n = 20

			return runner.RunGroup(ctx, "recursion", []bench.Case{
				{Name: "fib-iterative", Baseline: true, Fn: func() {
					sinkInt64 = fibIterative(n)
				}},
				{Name: "fib-recursive", Fn: func() {
					sinkInt64 = fibRecursive(n)
				}},
			})
		},
	}
}
