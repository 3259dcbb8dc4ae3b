package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultOpsPerSec(t *testing.T) {
	res := Result{NsPerOp: 100}
	assert.InDelta(t, 10_000_000, res.OpsPerSec(), 0.001)

	zero := Result{}
	assert.Equal(t, 0.0, zero.OpsPerSec())
}

func TestComparisonSpeedup(t *testing.T) {
	cmp := Comparison{
		Base:  Result{NsPerOp: 10},
		Other: Result{NsPerOp: 25},
	}
	assert.InDelta(t, 2.5, cmp.Speedup(), 0.001)
}

func TestCompareToBaseline(t *testing.T) {
	results := []Result{
		{Name: "direct", Baseline: true, NsPerOp: 2},
		{Name: "closure", NsPerOp: 3},
		{Name: "reflect", NsPerOp: 40},
	}

	comparisons, err := CompareToBaseline(results)
	require.NoError(t, err)
	require.Len(t, comparisons, 2)

	assert.Equal(t, "closure", comparisons[0].Other.Name)
	assert.Equal(t, "direct", comparisons[0].Base.Name)
	assert.InDelta(t, 20.0, comparisons[1].Speedup(), 0.001)
}

func TestCompareToBaselineMissing(t *testing.T) {
	_, err := CompareToBaseline([]Result{{Name: "lonely"}})
	assert.ErrorIs(t, err, ErrNoBaseline)
}
