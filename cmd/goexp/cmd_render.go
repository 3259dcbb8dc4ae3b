package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fijjas/go-experiments/pkg/bench"
	"github.com/fijjas/go-experiments/pkg/bench/report"
)

var renderSVGOut string

var renderCmd = &cobra.Command{
	Use:   "render <results.json>",
	Short: "re-render a saved results file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := report.Load(args[0])
		if err != nil {
			return err
		}

		reporters := []report.Reporter{report.NewTextReporter(cmd.OutOrStdout())}
		if renderSVGOut != "" {
			reporters = append(reporters, report.NewSVGReporter(renderSVGOut))
		}

		for _, group := range groupOrder(results) {
			grouped := make([]bench.Result, 0, len(results))
			for _, res := range results {
				if res.Group == group {
					grouped = append(grouped, res)
				}
			}
			for _, rep := range reporters {
				if err := rep.Add(group, grouped); err != nil {
					return errors.Wrapf(err, "unable to render group %s", group)
				}
			}
		}

		for _, rep := range reporters {
			if err := rep.Finish(); err != nil {
				return err
			}
		}

		return nil
	},
}

// groupOrder preserves first-appearance order of groups in the file.
func groupOrder(results []bench.Result) []string {
	seen := map[string]struct{}{}
	order := []string{}
	for _, res := range results {
		if _, ok := seen[res.Group]; ok {
			continue
		}
		seen[res.Group] = struct{}{}
		order = append(order, res.Group)
	}

	return order
}

func init() {
	renderCmd.Flags().StringVar(&renderSVGOut, "svg", "", "also write an SVG bar chart to this file")
	rootCmd.AddCommand(renderCmd)
}
