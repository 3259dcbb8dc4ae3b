package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fijjas/go-experiments/internal/experiments"
	"github.com/fijjas/go-experiments/internal/suite"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list registered experiments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := suite.NewRegistry(experiments.All()...)
		if err != nil {
			return err
		}

		tab := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		for _, name := range registry.Names() {
			exp, _ := registry.Get(name)
			requires := ""
			if len(exp.Requires) > 0 {
				requires = "(requires " + strings.Join(exp.Requires, ", ") + ")"
			}
			fmt.Fprintf(tab, "%s\t%s\t%s\n", exp.Name, exp.Doc, requires)
		}

		return tab.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
