package bench

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		Warmup:     10,
		Iterations: 100,
		Samples:    3,
	}
}

func TestRunWithNilFunc(t *testing.T) {
	runner := NewRunner(testOptions())
	_, err := runner.Run(context.Background(), Case{Name: "nil"})
	assert.ErrorIs(t, err, ErrNilFunc)
}

func TestRunWithNoSamples(t *testing.T) {
	runner := NewRunner(Options{Iterations: 10})
	_, err := runner.Run(context.Background(), Case{Name: "noop", Fn: func() {}})
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestRunCountsCalls(t *testing.T) {
	runner := NewRunner(testOptions())

	calls := 0
	res, err := runner.Run(context.Background(), Case{Name: "count", Fn: func() { calls++ }})
	require.NoError(t, err)

	// warmup + samples*iterations
	assert.Equal(t, 10+3*100, calls)
	assert.Equal(t, "count", res.Name)
	assert.Equal(t, 100, res.Iterations)
	assert.Equal(t, 3, res.Samples)
	assert.Greater(t, res.TotalNs, int64(0))
	assert.GreaterOrEqual(t, res.MaxNsOp, res.MinNsOp)
}

func TestRunCancelledContext(t *testing.T) {
	runner := NewRunner(testOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := runner.Run(ctx, Case{Name: "cancelled", Fn: func() {}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Result{}, res)
}

func TestRunMemStats(t *testing.T) {
	opts := testOptions()
	opts.MemStats = true
	runner := NewRunner(opts)

	var sink []byte
	res, err := runner.Run(context.Background(), Case{Name: "alloc", Fn: func() {
		sink = make([]byte, 1024)
	}})
	require.NoError(t, err)
	require.NotNil(t, sink)

	assert.GreaterOrEqual(t, res.AllocsPerOp, 1.0)
	assert.GreaterOrEqual(t, res.BytesPerOp, 1024.0)
}

func TestRunGroupTagsResults(t *testing.T) {
	runner := NewRunner(testOptions())

	results, err := runner.RunGroup(context.Background(), "noop", []Case{
		{Name: "a", Baseline: true, Fn: func() {}},
		{Name: "b", Fn: func() {}},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "noop", results[0].Group)
	assert.True(t, results[0].Baseline)
	assert.Equal(t, "noop", results[1].Group)
	assert.False(t, results[1].Baseline)
}

func TestRunGroupPropagatesError(t *testing.T) {
	runner := NewRunner(testOptions())

	_, err := runner.RunGroup(context.Background(), "broken", []Case{
		{Name: "a", Fn: func() {}},
		{Name: "b"},
	})
	assert.ErrorIs(t, err, ErrNilFunc)
}

func TestRunCalibratesWhenIterationsUnset(t *testing.T) {
	runner := NewRunner(Options{
		Samples:        2,
		TargetDuration: time.Millisecond,
	})

	res, err := runner.Run(context.Background(), Case{Name: "auto", Fn: func() {
		time.Sleep(10 * time.Microsecond)
	}})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Iterations, calibrateStart)
}
