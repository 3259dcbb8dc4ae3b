package experiments

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/pkg/bench"
)

type event struct {
	ID      int64    `json:"id"`
	Kind    string   `json:"kind"`
	Payload string   `json:"payload"`
	Tags    []string `json:"tags"`
	Done    bool     `json:"done"`
}

// JSONCodec measures encoding/json against typed structs and untyped
// map[string]any bags for the same document.
func JSONCodec() suite.Experiment {
	return suite.Experiment{
		Name: "jsoncodec",
		Doc:  "struct vs map[string]any JSON marshalling and unmarshalling",
		Run: func(ctx context.Context, runner *bench.Runner) ([]bench.Result, error) {
			typed := event{
				ID:      42,
				Kind:    "bench",
				Payload: "warmup loop, timed loop, stats",
				Tags:    []string{"runtime", "codec"},
				Done:    true,
			}
			untyped := map[string]any{
				"id":      42,
				"kind":    "bench",
				"payload": "warmup loop, timed loop, stats",
				"tags":    []string{"runtime", "codec"},
				"done":    true,
			}

			raw, err := json.Marshal(typed)
			if err != nil {
				return nil, errors.Wrap(err, "unable to prepare document")
			}

			return runner.RunGroup(ctx, "jsoncodec", []bench.Case{
				{Name: "marshal-struct", Baseline: true, Fn: func() {
					sinkBytes, _ = json.Marshal(typed)
				}},
				{Name: "marshal-map", Fn: func() {
					sinkBytes, _ = json.Marshal(untyped)
				}},
				{Name: "unmarshal-struct", Fn: func() {
					var e event
					_ = json.Unmarshal(raw, &e)
					sinkInt64 = e.ID
				}},
				{Name: "unmarshal-map", Fn: func() {
					m := map[string]any{}
					_ = json.Unmarshal(raw, &m)
					sinkInt = len(m)
				}},
			})
		},
	}
}
