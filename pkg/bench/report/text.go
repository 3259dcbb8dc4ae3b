package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/fijjas/go-experiments/pkg/bench"
)

// TextReporter writes aligned comparison rows to a writer as groups come
// in. Finish is a no-op because the output is streamed.
type TextReporter struct {
	out io.Writer
}

// NewTextReporter creates a text reporter writing to out.
func NewTextReporter(out io.Writer) *TextReporter {
	return &TextReporter{out: out}
}

// Add writes one table per group: ns/op, throughput and the slowdown
// relative to the group baseline when one is marked.
func (r *TextReporter) Add(group string, results []bench.Result) error {
	if len(results) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(r.out, "\n%s\n", group); err != nil {
		return errors.Wrapf(err, "unable to write group header %s", group)
	}

	baseline := 0.0
	for _, res := range results {
		if res.Baseline {
			baseline = res.NsPerOp

			break
		}
	}

	tab := tabwriter.NewWriter(r.out, 2, 4, 2, ' ', 0)
	for _, res := range results {
		row := fmt.Sprintf("  %s\t%.2f ns/op\t%.2f M ops/sec", res.Name, res.NsPerOp, res.OpsPerSec()/1e6)
		switch {
		case res.Baseline:
			row += "\tbaseline"
		case baseline > 0:
			row += fmt.Sprintf("\t%.2fx", res.NsPerOp/baseline)
		default:
			row += "\t"
		}
		if res.AllocsPerOp > 0 {
			row += fmt.Sprintf("\t%.1f allocs/op (%.0f B/op)", res.AllocsPerOp, res.BytesPerOp)
		}
		if _, err := fmt.Fprintln(tab, row); err != nil {
			return errors.Wrapf(err, "unable to write row for %s", res.Name)
		}
	}

	return errors.Wrap(tab.Flush(), "unable to flush table")
}

// Finish implements Reporter.
func (r *TextReporter) Finish() error {
	return nil
}

var _ Reporter = (*TextReporter)(nil)
