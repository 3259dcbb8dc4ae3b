package experiments

import (
	"context"
	"sync"
	"time"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

// AsyncAwait measures what "awaiting" costs in Go terms: spawning a
// goroutine and reading its answer back over a channel, versus calling
// the function directly and versus handing work to a pre-spawned worker.
func AsyncAwait() suite.Experiment {
	return suite.Experiment{
		Name: "asyncawait",
		Doc:  "goroutine spawn + channel roundtrip vs a plain call",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			var i int64

			// Pre-spawned worker: the closest shape to awaiting an
			// already-running task.
			requests := make(chan int64)
			replies := make(chan int64)
			workerCtx, stopWorker := context.WithCancel(ctx)
			defer stopWorker()
			go func() {
				for {
					select {
					case <-workerCtx.Done():
						return
					case x := <-requests:
						replies <- doubleInt(x)
					}
				}
			}()

			return runner.RunGroup(ctx, "asyncawait", []bench.Case{
				{Name: "direct-call", Baseline: true, Fn: func() {
					sinkInt64 = doubleIntNoinline(i)
					i++
				}},
				{Name: "spawn-unbuffered", Fn: func() {
					done := make(chan int64)
					go func() { done <- doubleInt(i) }()
					sinkInt64 = <-done
					i++
				}},
				{Name: "spawn-buffered", Fn: func() {
					done := make(chan int64, 1)
					go func() { done <- doubleInt(i) }()
					sinkInt64 = <-done
					i++
				}},
				{Name: "spawn-waitgroup", Fn: func() {
					var wg sync.WaitGroup
					wg.Add(1)
					go func() {
						defer wg.Done()
						sinkInt64 = doubleInt(i)
					}()
					wg.Wait()
					i++
				}},
				{Name: "worker-roundtrip", Fn: func() {
					requests <- i
					sinkInt64 = <-replies
					i++
				}},
				// Two ways to park for "roughly now": both cost far more
				// than any roundtrip above, and the timer keeps the thread.
				{Name: "sleep-1us", Fn: func() {
					time.Sleep(time.Microsecond)
				}},
				{Name: "timer-wait-1us", Fn: func() {
					timer := time.NewTimer(time.Microsecond)
					<-timer.C
				}},
			})
		},
	}
}
