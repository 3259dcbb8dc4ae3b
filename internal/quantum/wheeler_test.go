package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosedZeroPhaseInterferesFully(t *testing.T) {
	dc := DelayedChoice{Phase: 0}

	p1, p2, err := dc.Probabilities(true)
	require.NoError(t, err)

	// All amplitude recombines into one output port.
	assert.InDelta(t, 0.0, p1, 1e-9)
	assert.InDelta(t, 1.0, p2, 1e-9)
}

func TestClosedFollowsPhase(t *testing.T) {
	for _, phase := range []float64{0, math.Pi / 4, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		dc := DelayedChoice{Phase: phase}

		p1, p2, err := dc.Probabilities(true)
		require.NoError(t, err)

		half := phase / 2
		assert.InDelta(t, math.Sin(half)*math.Sin(half), p1, 1e-9, "phase %v", phase)
		assert.InDelta(t, math.Cos(half)*math.Cos(half), p2, 1e-9, "phase %v", phase)
		assert.InDelta(t, 1.0, p1+p2, 1e-9, "phase %v", phase)
	}
}

func TestOpenIsWhichPath(t *testing.T) {
	// Without the second splitter the phase is irrelevant: 50/50 always.
	for _, phase := range []float64{0, math.Pi / 3, math.Pi} {
		dc := DelayedChoice{Phase: phase}

		p1, p2, err := dc.Probabilities(false)
		require.NoError(t, err)

		assert.InDelta(t, 0.5, p1, 1e-9, "phase %v", phase)
		assert.InDelta(t, 0.5, p2, 1e-9, "phase %v", phase)
	}
}

func TestInterferometerRejectsUnknownPort(t *testing.T) {
	in := NewInterferometer()
	require.NoError(t, in.AddPort("a"))

	err := in.Connect("a", "ghost", complex(1, 0))
	assert.Error(t, err)
}

func TestInterferometerAmplitudeSumsPaths(t *testing.T) {
	in := NewInterferometer()
	for _, p := range []string{"in", "mid1", "mid2", "out"} {
		require.NoError(t, in.AddPort(p))
	}

	// Two arms with opposite signs cancel exactly.
	require.NoError(t, in.Connect("in", "mid1", complex(0.5, 0)))
	require.NoError(t, in.Connect("mid1", "out", complex(1, 0)))
	require.NoError(t, in.Connect("in", "mid2", complex(0.5, 0)))
	require.NoError(t, in.Connect("mid2", "out", complex(-1, 0)))

	amp, err := in.Amplitude("in", "out")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, real(amp), 1e-12)
	assert.InDelta(t, 0.0, imag(amp), 1e-12)
}
