package experiments

import (
	"context"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

func doubleInt(x int64) int64 {
	return x * 2
}

//go:noinline
func doubleIntNoinline(x int64) int64 {
	return x * 2
}

func applyInt(f func(int64) int64, x int64) int64 {
	return f(x)
}

// Closures measures the cost of calling through closures relative to plain
// functions: a bare lambda, a closure over an outer variable, and a
// function passed as an argument.
func Closures() suite.Experiment {
	return suite.Experiment{
		Name: "closures",
		Doc:  "closure invocation, captured-variable access and higher-order calls",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			double := func(x int64) int64 { return x * 2 }

			offset := int64(42)
			adder := func(x int64) int64 { return x + offset }

			var i int64

			return runner.RunGroup(ctx, "closures", []bench.Case{
				{Name: "static-call", Baseline: true, Fn: func() {
					sinkInt64 = doubleInt(i)
					i++
				}},
				{Name: "static-call-noinline", Fn: func() {
					sinkInt64 = doubleIntNoinline(i)
					i++
				}},
				{Name: "closure-invoke", Fn: func() {
					sinkInt64 = double(i)
					i++
				}},
				{Name: "closure-capture", Fn: func() {
					sinkInt64 = adder(i)
					i++
				}},
				{Name: "higher-order", Fn: func() {
					sinkInt64 = applyInt(double, i)
					i++
				}},
			})
		},
	}
}
