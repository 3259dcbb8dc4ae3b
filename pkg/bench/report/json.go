package report

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/fijjas/go-experiments/pkg/bench"
)

// JSONReporter persists all results to a single JSON file so reports can
// be re-rendered or diffed between runs.
type JSONReporter struct {
	jsonFileName string
	results      []bench.Result
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(jsonFileName string) *JSONReporter {
	return &JSONReporter{jsonFileName: jsonFileName}
}

// Add records one group of results.
func (r *JSONReporter) Add(_ string, results []bench.Result) error {
	r.results = append(r.results, results...)

	return nil
}

// Finish writes the JSON file.
func (r *JSONReporter) Finish() error {
	file, err := os.Create(r.jsonFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", r.jsonFileName)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(r.results), "unable to encode results")
}

// Load reads results back from a file written by a JSONReporter.
func Load(jsonFileName string) ([]bench.Result, error) {
	raw, err := os.ReadFile(jsonFileName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read file %s", jsonFileName)
	}

	var results []bench.Result
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, errors.Wrapf(err, "unable to decode results from %s", jsonFileName)
	}

	return results, nil
}

var _ Reporter = (*JSONReporter)(nil)
