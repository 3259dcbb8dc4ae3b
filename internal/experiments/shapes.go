package experiments

import (
	"context"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

// A struct field access compiles to a fixed offset, the moral equivalent
// of a hidden-class hit. Property bags built on maps pay hashing on every
// access, which is the permanently-megamorphic case.

type point struct {
	x, y, z int64
}

// Shapes measures property access across layouts: struct fields, a
// string-keyed map, an any-keyed map, and struct values reached through a
// pointer slice vs a contiguous slice.
func Shapes() suite.Experiment {
	return suite.Experiment{
		Name: "shapes",
		Doc:  "fixed-offset field access vs map-backed property bags",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			p := point{x: 1, y: 2, z: 3}

			stringBag := map[string]int64{"x": 1, "y": 2, "z": 3}
			anyBag := map[any]any{"x": int64(1), "y": int64(2), "z": int64(3)}

			const n = 256
			contiguous := make([]point, n)
			pointers := make([]*point, n)
			for i := range contiguous {
				contiguous[i] = point{x: int64(i)}
				pointers[i] = &point{x: int64(i)}
			}

			var i int

			return runner.RunGroup(ctx, "shapes", []bench.Case{
				{Name: "struct-field", Baseline: true, Fn: func() {
					sinkInt64 = p.x + p.y + p.z
				}},
				{Name: "map-string-key", Fn: func() {
					sinkInt64 = stringBag["x"] + stringBag["y"] + stringBag["z"]
				}},
				{Name: "map-any-key", Fn: func() {
					x, _ := anyBag["x"].(int64)
					y, _ := anyBag["y"].(int64)
					z, _ := anyBag["z"].(int64)
					sinkInt64 = x + y + z
				}},
				{Name: "slice-of-structs", Fn: func() {
					sinkInt64 = contiguous[i%n].x
					i++
				}},
				{Name: "slice-of-pointers", Fn: func() {
					sinkInt64 = pointers[i%n].x
					i++
				}},
			})
		},
	}
}
