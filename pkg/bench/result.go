package bench

import (
	"fmt"
	"time"
)

// Result holds the statistics derived from one measured case.
type Result struct {
	Name       string `json:"name"`
	Group      string `json:"group,omitempty"`
	Baseline   bool   `json:"baseline,omitempty"`
	Iterations int    `json:"iterations"`
	Samples    int    `json:"samples"`

	// Whole-run wall time across all samples.
	TotalNs int64 `json:"total_ns"`

	// Per-op figures derived from the median sample.
	NsPerOp  float64 `json:"ns_per_op"`
	MinNsOp  float64 `json:"min_ns_per_op"`
	MaxNsOp  float64 `json:"max_ns_per_op"`
	StdDevNs float64 `json:"stddev_ns_per_op"`

	// Allocation counters, populated only when Options.MemStats is set.
	AllocsPerOp float64 `json:"allocs_per_op,omitempty"`
	BytesPerOp  float64 `json:"bytes_per_op,omitempty"`
}

// OpsPerSec derives throughput from the per-op time.
func (r Result) OpsPerSec() float64 {
	if r.NsPerOp == 0 {
		return 0
	}

	return 1e9 / r.NsPerOp
}

// PerOp returns the per-op time as a duration, rounded for display.
func (r Result) PerOp() time.Duration {
	return Round(time.Duration(r.NsPerOp))
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %.2f ns/op (%.2f M ops/sec)", r.Name, r.NsPerOp, r.OpsPerSec()/1e6)
}

// Comparison relates a candidate result to the baseline it was measured
// against.
type Comparison struct {
	Base  Result
	Other Result
}

// Speedup reports how many times faster the baseline is than the candidate.
// Values below 1 mean the candidate is the faster of the two.
func (c Comparison) Speedup() float64 {
	if c.Base.NsPerOp == 0 {
		return 0
	}

	return c.Other.NsPerOp / c.Base.NsPerOp
}

// CompareToBaseline pairs every non-baseline result in a group with the
// group's baseline.
func CompareToBaseline(results []Result) ([]Comparison, error) {
	var base *Result
	for i := range results {
		if results[i].Baseline {
			base = &results[i]

			break
		}
	}
	if base == nil {
		return nil, ErrNoBaseline
	}

	comparisons := make([]Comparison, 0, len(results)-1)
	for _, res := range results {
		if res.Baseline {
			continue
		}
		comparisons = append(comparisons, Comparison{Base: *base, Other: res})
	}

	return comparisons, nil
}
