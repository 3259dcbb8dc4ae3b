package suite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fijjas/go-experiments/pkg/bench"
	"github.com/fijjas/go-experiments/pkg/bench/report"
)

func testRunner() *bench.Runner {
	return bench.NewRunner(bench.Options{Warmup: 1, Iterations: 10, Samples: 2})
}

func noopExperiment(name string, requires ...string) Experiment {
	return Experiment{
		Name:     name,
		Requires: requires,
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			return runner.RunGroup(ctx, name, []bench.Case{
				{Name: name + "-case", Baseline: true, Fn: func() {}},
			})
		},
	}
}

func TestNewRegistryDuplicate(t *testing.T) {
	_, err := NewRegistry(noopExperiment("a"), noopExperiment("a"))
	assert.ErrorIs(t, err, ErrDuplicateExperiment)
}

func TestRegistryNamesOrder(t *testing.T) {
	reg, err := NewRegistry(noopExperiment("b"), noopExperiment("a"), noopExperiment("c"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, reg.Names())
}

func TestSuiteRunAll(t *testing.T) {
	reg, err := NewRegistry(noopExperiment("closures"), noopExperiment("dispatch"))
	require.NoError(t, err)

	s := New(reg, testRunner())
	results, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "closures", results[0].Group)
	assert.Equal(t, "dispatch", results[1].Group)
}

func TestSuiteRunUnknown(t *testing.T) {
	reg, err := NewRegistry(noopExperiment("a"))
	require.NoError(t, err)

	s := New(reg, testRunner())
	_, err = s.Run(context.Background(), []string{"nope"})
	assert.ErrorIs(t, err, ErrUnknownExperiment)
}

func TestSuiteRunPullsRequirementsFirst(t *testing.T) {
	reg, err := NewRegistry(
		noopExperiment("interp", "closures", "shapes"),
		noopExperiment("closures"),
		noopExperiment("shapes"),
	)
	require.NoError(t, err)

	s := New(reg, testRunner())
	results, err := s.Run(context.Background(), []string{"interp"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "closures", results[0].Group)
	assert.Equal(t, "shapes", results[1].Group)
	assert.Equal(t, "interp", results[2].Group)
}

func TestSuiteRunCycle(t *testing.T) {
	reg, err := NewRegistry(
		noopExperiment("a", "b"),
		noopExperiment("b", "a"),
	)
	require.NoError(t, err)

	s := New(reg, testRunner())
	_, err = s.Run(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, ErrDependencyCycle)
}

func TestSuiteFeedsReporters(t *testing.T) {
	reg, err := NewRegistry(noopExperiment("a"))
	require.NoError(t, err)

	rec := &recordingReporter{}
	s := New(reg, testRunner(), WithReporter(rec))

	_, err = s.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, rec.groups)
	assert.True(t, rec.finished)
}

type recordingReporter struct {
	groups   []string
	finished bool
}

func (r *recordingReporter) Add(group string, _ []bench.Result) error {
	r.groups = append(r.groups, group)

	return nil
}

func (r *recordingReporter) Finish() error {
	r.finished = true

	return nil
}

var _ report.Reporter = (*recordingReporter)(nil)
