package experiments

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

// Contention measures a counter increment as shared-state pressure grows:
// atomic add, an uncontended mutex, and the same mutex hammered by
// GOMAXPROCS background workers for the duration of the case.
func Contention() suite.Experiment {
	return suite.Experiment{
		Name: "contention",
		Doc:  "atomic vs mutex counter, with and without contending workers",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			var atomicCounter int64

			var mu sync.Mutex
			var counter int64

			results, err := runner.RunGroup(ctx, "contention", []bench.Case{
				{Name: "atomic-add", Baseline: true, Fn: func() {
					atomic.AddInt64(&atomicCounter, 1)
				}},
				{Name: "mutex-uncontended", Fn: func() {
					mu.Lock()
					counter++
					mu.Unlock()
				}},
			})
			if err != nil {
				return nil, err
			}

			// Background workers fight for the same mutex while the case
			// is measured.
			workers := runtime.GOMAXPROCS(0)
			grp, grpCtx := errgroup.WithContext(ctx)
			stop := make(chan struct{})
			for w := 0; w < workers; w++ {
				grp.Go(func() error {
					for {
						select {
						case <-stop:
							return nil
						case <-grpCtx.Done():
							return grpCtx.Err()
						default:
							mu.Lock()
							counter++
							mu.Unlock()
						}
					}
				})
			}

			contended, err := runner.RunGroup(ctx, "contention", []bench.Case{
				{Name: "mutex-contended", Fn: func() {
					mu.Lock()
					counter++
					mu.Unlock()
				}},
			})

			close(stop)
			if waitErr := grp.Wait(); waitErr != nil && err == nil {
				err = waitErr
			}
			if err != nil {
				return nil, err
			}

			return append(results, contended...), nil
		},
	}
}
