package bench

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
)

// Case is a single measured operation.
type Case struct {
	Name string
	// Baseline marks the case other cases in the same group are compared
	// against.
	Baseline bool
	Fn       func()
}

// Options controls how a case is measured.
type Options struct {
	// Warmup iterations executed before any sample is timed.
	Warmup int
	// Iterations per timed sample. When 0 the runner calibrates the count
	// so a sample takes roughly TargetDuration.
	Iterations int
	// Samples is how many timed samples to collect.
	Samples int
	// TargetDuration is the calibration target for a single sample.
	TargetDuration time.Duration
	// MemStats enables allocation counters around the timed region. It
	// forces a GC per sample, so per-op times are reported without it by
	// default.
	MemStats bool
}

// DefaultOptions are suitable for sub-microsecond operations.
func DefaultOptions() Options {
	return Options{
		Warmup:         10_000,
		Samples:        7,
		TargetDuration: 100 * time.Millisecond,
	}
}

// Runner measures cases. The zero value is usable; a Runner carries no
// state between cases.
type Runner struct {
	opts Options
}

// NewRunner creates a runner with the given default options.
func NewRunner(opts Options) *Runner {
	return &Runner{opts: opts}
}

// Options returns the runner's default options.
func (r *Runner) Options() Options {
	return r.opts
}

// Run measures one case with the runner's default options.
func (r *Runner) Run(ctx context.Context, benchCase Case) (Result, error) {
	return r.RunWith(ctx, benchCase, r.opts)
}

// RunWith measures one case. Warmup runs first and is never timed; then
// opts.Samples wall-clock samples of opts.Iterations calls each are
// collected. Cancellation is honored between samples and surfaces as a
// wrapped context error, never as a partial result.
func (r *Runner) RunWith(ctx context.Context, benchCase Case, opts Options) (Result, error) {
	if benchCase.Fn == nil {
		return Result{}, errors.Wrapf(ErrNilFunc, "case %s", benchCase.Name)
	}
	if opts.Samples <= 0 {
		return Result{}, errors.Wrapf(ErrNoSamples, "case %s", benchCase.Name)
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = Calibrate(benchCase.Fn, opts.TargetDuration)
	}
	if iterations <= 0 {
		return Result{}, errors.Wrapf(ErrNoIterations, "case %s", benchCase.Name)
	}

	for i := 0; i < opts.Warmup; i++ {
		benchCase.Fn()
	}

	samples := make([]time.Duration, 0, opts.Samples)
	var total time.Duration
	var allocs, bytes uint64

	for s := 0; s < opts.Samples; s++ {
		if err := ctx.Err(); err != nil {
			return Result{}, errors.Wrapf(err, "case %s interrupted after %d samples", benchCase.Name, s)
		}

		var before runtime.MemStats
		if opts.MemStats {
			runtime.GC()
			runtime.ReadMemStats(&before)
		}

		start := time.Now()
		for i := 0; i < iterations; i++ {
			benchCase.Fn()
		}
		elapsed := time.Since(start)

		if opts.MemStats {
			var after runtime.MemStats
			runtime.ReadMemStats(&after)
			allocs += after.Mallocs - before.Mallocs
			bytes += after.TotalAlloc - before.TotalAlloc
		}

		samples = append(samples, elapsed)
		total += elapsed
	}

	stats := computeStats(samples)
	ops := float64(iterations)

	res := Result{
		Name:       benchCase.Name,
		Baseline:   benchCase.Baseline,
		Iterations: iterations,
		Samples:    opts.Samples,
		TotalNs:    total.Nanoseconds(),
		NsPerOp:    float64(stats.median) / ops,
		MinNsOp:    float64(stats.min) / ops,
		MaxNsOp:    float64(stats.max) / ops,
		StdDevNs:   float64(stats.stddev) / ops,
	}

	if opts.MemStats {
		totalOps := ops * float64(opts.Samples)
		res.AllocsPerOp = float64(allocs) / totalOps
		res.BytesPerOp = float64(bytes) / totalOps
	}

	return res, nil
}

// RunGroup measures a slice of cases in order and tags every result with
// the group name.
func (r *Runner) RunGroup(ctx context.Context, group string, cases []Case) ([]Result, error) {
	return r.RunGroupWith(ctx, group, cases, r.opts)
}

// RunGroupWith is RunGroup with explicit options, for groups that need a
// different measurement mode (allocation probes, long-running cases).
func (r *Runner) RunGroupWith(ctx context.Context, group string, cases []Case, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(cases))
	for _, benchCase := range cases {
		res, err := r.RunWith(ctx, benchCase, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "group %s", group)
		}
		res.Group = group
		results = append(results, res)
	}

	return results, nil
}
