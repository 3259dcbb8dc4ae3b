package experiments

import (
	"context"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

// The closest Go analog of an inline cache is the itab used at an
// interface call site. A site that always sees one concrete type stays
// cheap; rotating many types through the same site defeats the CPU's
// indirect-branch prediction the way a megamorphic IC defeats an engine's
// shape cache.

type scaler interface {
	scale(x int64) int64
}

type byTwo struct{}
type byThree struct{}
type byFour struct{}
type byFive struct{}
type bySix struct{}
type bySeven struct{}
type byEight struct{}
type byNine struct{}

func (byTwo) scale(x int64) int64   { return x * 2 }
func (byThree) scale(x int64) int64 { return x * 3 }
func (byFour) scale(x int64) int64  { return x * 4 }
func (byFive) scale(x int64) int64  { return x * 5 }
func (bySix) scale(x int64) int64   { return x * 6 }
func (bySeven) scale(x int64) int64 { return x * 7 }
func (byEight) scale(x int64) int64 { return x * 8 }
func (byNine) scale(x int64) int64  { return x * 9 }

// Dispatch measures interface call sites by the number of concrete types
// they observe: one (monomorphic), four (polymorphic), eight
// (megamorphic), plus a type switch over the same set.
func Dispatch() suite.Experiment {
	return suite.Experiment{
		Name: "dispatch",
		Doc:  "interface dispatch cost as a call site sees more concrete types",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			concrete := byTwo{}

			mono := []scaler{byTwo{}}
			poly := []scaler{byTwo{}, byThree{}, byFour{}, byFive{}}
			mega := []scaler{
				byTwo{}, byThree{}, byFour{}, byFive{},
				bySix{}, bySeven{}, byEight{}, byNine{},
			}

			var i int

			return runner.RunGroup(ctx, "dispatch", []bench.Case{
				{Name: "concrete-call", Baseline: true, Fn: func() {
					sinkInt64 = concrete.scale(int64(i))
					i++
				}},
				{Name: "monomorphic", Fn: func() {
					sinkInt64 = mono[i%len(mono)].scale(int64(i))
					i++
				}},
				{Name: "polymorphic-4", Fn: func() {
					sinkInt64 = poly[i%len(poly)].scale(int64(i))
					i++
				}},
				{Name: "megamorphic-8", Fn: func() {
					sinkInt64 = mega[i%len(mega)].scale(int64(i))
					i++
				}},
				{Name: "type-switch-8", Fn: func() {
					sinkInt64 = scaleBySwitch(mega[i%len(mega)], int64(i))
					i++
				}},
			})
		},
	}
}

func scaleBySwitch(s scaler, x int64) int64 {
	switch v := s.(type) {
	case byTwo:
		return v.scale(x)
	case byThree:
		return v.scale(x)
	case byFour:
		return v.scale(x)
	case byFive:
		return v.scale(x)
	case bySix:
		return v.scale(x)
	case bySeven:
		return v.scale(x)
	case byEight:
		return v.scale(x)
	case byNine:
		return v.scale(x)
	default:
		return s.scale(x)
	}
}
