package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fijjas/go-experiments/pkg/bench"
)

func TestTextReporterEmptyGroup(t *testing.T) {
	buf := &bytes.Buffer{}
	rep := NewTextReporter(buf)

	require.NoError(t, rep.Add("empty", nil))
	require.NoError(t, rep.Finish())
	assert.Empty(t, buf.String())
}

func TestTextReporterRows(t *testing.T) {
	buf := &bytes.Buffer{}
	rep := NewTextReporter(buf)

	err := rep.Add("dispatch", []bench.Result{
		{Name: "concrete", Baseline: true, NsPerOp: 2},
		{Name: "megamorphic", NsPerOp: 8},
	})
	require.NoError(t, err)
	require.NoError(t, rep.Finish())

	out := buf.String()
	assert.Contains(t, out, "dispatch")
	assert.Contains(t, out, "concrete")
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "megamorphic")
	assert.Contains(t, out, "4.00x")
	assert.Contains(t, out, "ns/op")
	assert.Contains(t, out, "M ops/sec")
}

func TestTextReporterAllocColumns(t *testing.T) {
	buf := &bytes.Buffer{}
	rep := NewTextReporter(buf)

	err := rep.Add("allocs", []bench.Result{
		{Name: "escaping", NsPerOp: 30, AllocsPerOp: 1, BytesPerOp: 48},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "1.0 allocs/op (48 B/op)")
}
