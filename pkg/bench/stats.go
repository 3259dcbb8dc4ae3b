package bench

import (
	"math"
	"sort"
	"time"
)

type sampleStats struct {
	mean   time.Duration
	median time.Duration
	min    time.Duration
	max    time.Duration
	stddev time.Duration
}

func computeStats(samples []time.Duration) sampleStats {
	stats := sampleStats{}
	if len(samples) == 0 {
		return stats
	}

	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	stats.min = sorted[0]
	stats.max = sorted[len(sorted)-1]

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		stats.median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		stats.median = sorted[mid]
	}

	var total time.Duration
	for _, s := range sorted {
		total += s
	}
	stats.mean = total / time.Duration(len(sorted))

	if len(sorted) > 1 {
		var sq float64
		for _, s := range sorted {
			d := float64(s - stats.mean)
			sq += d * d
		}
		stats.stddev = time.Duration(math.Sqrt(sq / float64(len(sorted)-1)))
	}

	return stats
}

// Round trims a duration to a human scale for display.
func Round(d time.Duration) time.Duration {
	switch {
	case d > time.Hour:
		d = d.Round(time.Minute)
	case d > time.Minute:
		d = d.Round(time.Second)
	case d > time.Second:
		d = d.Round(10 * time.Millisecond)
	case d > time.Millisecond:
		d = d.Round(10 * time.Microsecond)
	case d > time.Microsecond:
		d = d.Round(10 * time.Nanosecond)
	}

	return d
}
