package quantum

import (
	"math"
	"math/rand"
)

// Eraser samples a delayed-choice quantum eraser. Each signal photon is
// entangled with an idler carrying its which-path marker. Keeping the
// marker yields flat 50/50 signal statistics. Erasing it and sorting the
// signal counts by the idler outcome recovers two complementary fringe
// patterns, while the unsorted counts stay flat either way. Nothing
// travels backwards in time; the "retrocausal" reading only appears once
// the coincidence sorting is done.
type Eraser struct {
	// Phase is the interferometer phase in radians.
	Phase float64

	rng *rand.Rand
}

// NewEraser creates a sampler with a deterministic source of randomness.
func NewEraser(phase float64, seed int64) *Eraser {
	return &Eraser{
		Phase: phase,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// EraserStats are counted detector clicks from one run, sorted by the
// idler outcome (+ / -).
type EraserStats struct {
	N int

	D1, D2 int

	PlusD1, PlusD2   int
	MinusD1, MinusD2 int
}

// Visibility estimates fringe visibility from the idler-sorted counts:
// the spread between p(D1|+) and p(D1|-). Erased runs approach
// |cos(phase)|; kept runs approach zero.
func (s EraserStats) Visibility() float64 {
	plus := s.PlusD1 + s.PlusD2
	minus := s.MinusD1 + s.MinusD2
	if plus == 0 || minus == 0 {
		return 0
	}

	return math.Abs(float64(s.PlusD1)/float64(plus) - float64(s.MinusD1)/float64(minus))
}

// Marginal is the unsorted fraction of D1 clicks, which stays near one
// half whether or not the marker was erased.
func (s EraserStats) Marginal() float64 {
	if s.N == 0 {
		return 0
	}

	return float64(s.D1) / float64(s.N)
}

// Sample detects n photon pairs. erase controls the idler measurement
// basis choice, made per pair after the signal photon is gone.
func (e *Eraser) Sample(erase bool, n int) EraserStats {
	stats := EraserStats{N: n}

	// Conditional D1 probabilities given the idler outcome.
	pPlus := 0.5
	pMinus := 0.5
	if erase {
		half := e.Phase / 2
		cos, sin := math.Cos(half), math.Sin(half)
		pPlus = cos * cos
		pMinus = sin * sin
	}

	for i := 0; i < n; i++ {
		idlerPlus := e.rng.Float64() < 0.5

		p := pMinus
		if idlerPlus {
			p = pPlus
		}
		hitD1 := e.rng.Float64() < p

		switch {
		case hitD1 && idlerPlus:
			stats.D1++
			stats.PlusD1++
		case hitD1:
			stats.D1++
			stats.MinusD1++
		case idlerPlus:
			stats.D2++
			stats.PlusD2++
		default:
			stats.D2++
			stats.MinusD2++
		}
	}

	return stats
}
