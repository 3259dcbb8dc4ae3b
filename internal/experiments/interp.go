package experiments

import (
	"context"

	"github.com/pkg/errors"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

const interpProgram = `package main

func SumLoop(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += i
	}
	return total
}

func MakeAdder(offset int) func(int) int {
	return func(x int) int { return x + offset }
}

func MapGet(m map[string]int, k string) int {
	return m[k]
}
`

func nativeSumLoop(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += i
	}

	return total
}

// Interp runs the same bodies natively and under the yaegi interpreter.
// This is the one axis where the repo still probes an actual engine rather
// than the compiled runtime: the interpreter pays its dispatch loop on
// every statement, so the ratio, not the absolute numbers, is the finding.
func Interp() suite.Experiment {
	return suite.Experiment{
		Name:     "interp",
		Doc:      "yaegi-interpreted loops, closures and map access vs native code",
		Requires: []string{"closures", "shapes"},
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			i := interp.New(interp.Options{})
			if err := i.Use(stdlib.Symbols); err != nil {
				return nil, errors.Wrap(err, "unable to load interpreter stdlib")
			}
			if _, err := i.Eval(interpProgram); err != nil {
				return nil, errors.Wrap(err, "unable to evaluate interpreted program")
			}

			sumVal, err := i.Eval("main.SumLoop")
			if err != nil {
				return nil, errors.Wrap(err, "unable to resolve SumLoop")
			}
			interpSum, ok := sumVal.Interface().(func(int) int)
			if !ok {
				return nil, errors.New("SumLoop has an unexpected signature")
			}

			makeAdderVal, err := i.Eval("main.MakeAdder")
			if err != nil {
				return nil, errors.Wrap(err, "unable to resolve MakeAdder")
			}
			makeAdder, ok := makeAdderVal.Interface().(func(int) func(int) int)
			if !ok {
				return nil, errors.New("MakeAdder has an unexpected signature")
			}
			interpAdder := makeAdder(42)
			nativeAdder := func(x int) int { return x + 42 }

			mapGetVal, err := i.Eval("main.MapGet")
			if err != nil {
				return nil, errors.Wrap(err, "unable to resolve MapGet")
			}
			interpMapGet, ok := mapGetVal.Interface().(func(map[string]int, string) int)
			if !ok {
				return nil, errors.New("MapGet has an unexpected signature")
			}

			const n = 100
			var x int
			bag := map[string]int{"x": 1, "y": 2, "z": 3}

			return runner.RunGroup(ctx, "interp", []bench.Case{
				{Name: "native-sum-loop-100", Baseline: true, Fn: func() {
					sinkInt = nativeSumLoop(n)
				}},
				{Name: "yaegi-sum-loop-100", Fn: func() {
					sinkInt = interpSum(n)
				}},
				{Name: "native-closure-call", Fn: func() {
					sinkInt = nativeAdder(x)
					x++
				}},
				{Name: "yaegi-closure-call", Fn: func() {
					sinkInt = interpAdder(x)
					x++
				}},
				{Name: "native-map-get", Fn: func() {
					sinkInt = bag["y"]
				}},
				{Name: "yaegi-map-get", Fn: func() {
					sinkInt = interpMapGet(bag, "y")
				}},
			})
		},
	}
}
