package bench

import "time"

const (
	calibrateStart = 100
	calibrateCap   = 1_000_000_000
)

// Calibrate grows the iteration count geometrically until a single sample
// of fn meets the target duration. It mirrors the ramp a testing.B run
// performs, so very cheap operations still produce samples long enough to
// time reliably.
func Calibrate(fn func(), target time.Duration) int {
	if fn == nil {
		return 0
	}
	if target <= 0 {
		target = 100 * time.Millisecond
	}

	iterations := calibrateStart
	for {
		start := time.Now()
		for i := 0; i < iterations; i++ {
			fn()
		}
		elapsed := time.Since(start)

		if elapsed >= target || iterations >= calibrateCap {
			return iterations
		}

		// Predict the next count from the observed rate, bounded to keep
		// the ramp stable when early samples are noisy.
		next := iterations * 10
		if elapsed > 0 {
			predicted := int(float64(iterations) * float64(target) / float64(elapsed))
			// Aim 20% past the target so the final sample clears it.
			predicted += predicted / 5
			if predicted < next {
				next = predicted
			}
		}
		if next <= iterations {
			next = iterations * 2
		}
		if next > calibrateCap {
			next = calibrateCap
		}
		iterations = next
	}
}
