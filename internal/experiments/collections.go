package experiments

import (
	"context"
	"fmt"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

// Collections measures bulk slice and map work: iteration, insertion and
// lookup with keys built outside the timed region.
func Collections() suite.Experiment {
	return suite.Experiment{
		Name: "collections",
		Doc:  "slice vs map iteration, map insert and lookup",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			const n = 100

			keys := make([]string, n)
			for i := range keys {
				keys[i] = fmt.Sprintf("key%d", i)
			}

			slice := make([]int64, n)
			table := make(map[string]int64, n)
			for i := 0; i < n; i++ {
				slice[i] = int64(i)
				table[keys[i]] = int64(i)
			}

			return runner.RunGroup(ctx, "collections", []bench.Case{
				{Name: "slice-iterate-100", Baseline: true, Fn: func() {
					var sum int64
					for _, v := range slice {
						sum += v
					}
					sinkInt64 = sum
				}},
				{Name: "map-iterate-100", Fn: func() {
					var sum int64
					for _, v := range table {
						sum += v
					}
					sinkInt64 = sum
				}},
				{Name: "map-lookup-100", Fn: func() {
					var sum int64
					for i := 0; i < n; i++ {
						if v, ok := table[keys[i]]; ok {
							sum += v
						}
					}
					sinkInt64 = sum
				}},
				{Name: "map-build-100", Fn: func() {
					m := make(map[string]int64, n)
					for i := 0; i < n; i++ {
						m[keys[i]] = int64(i)
					}
					sinkInt = len(m)
				}},
				{Name: "map-build-100-nosize", Fn: func() {
					m := make(map[string]int64)
					for i := 0; i < n; i++ {
						m[keys[i]] = int64(i)
					}
					sinkInt = len(m)
				}},
			})
		},
	}
}
