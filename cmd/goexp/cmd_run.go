package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fijjas/go-experiments/internal/experiments"
	"github.com/fijjas/go-experiments/internal/suite"
	"github.com/fijjas/go-experiments/internal/telegram"
	"github.com/fijjas/go-experiments/pkg/bench"
	"github.com/fijjas/go-experiments/pkg/bench/report"
)

var (
	runSVGOut   string
	runJSONOut  string
	runNotify   bool
	runIters    int
	runSamples  int
	runMemStats bool
	runNoText   bool
	runTargetMs int
)

var runCmd = &cobra.Command{
	Use:   "run [experiment...]",
	Short: "run experiments (all of them by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := suite.LoadConfig(configPath)
		if err != nil {
			return err
		}
		applyRunFlags(&cfg)

		registry, err := suite.NewRegistry(experiments.All()...)
		if err != nil {
			return err
		}

		opts := []suite.Option{suite.WithLogger(logger)}
		if cfg.Report.Text {
			opts = append(opts, suite.WithReporter(report.NewTextReporter(cmd.OutOrStdout())))
		}
		if cfg.Report.SVG != "" {
			opts = append(opts, suite.WithReporter(report.NewSVGReporter(cfg.Report.SVG)))
		}
		if cfg.Report.JSON != "" {
			opts = append(opts, suite.WithReporter(report.NewJSONReporter(cfg.Report.JSON)))
		}

		names := args
		if len(names) == 0 {
			names = cfg.Selection(registry)
		}

		runner := bench.NewRunner(cfg.Options())
		s := suite.New(registry, runner, opts...)

		start := time.Now()
		results, err := s.Run(cmd.Context(), names)
		if err != nil {
			return err
		}

		if cfg.Notify.Enabled {
			if err := notify(cmd, results, time.Since(start)); err != nil {
				return err
			}
		}

		return nil
	},
}

func applyRunFlags(cfg *suite.Config) {
	if runIters > 0 {
		cfg.Harness.Iterations = runIters
	}
	if runSamples > 0 {
		cfg.Harness.Samples = runSamples
	}
	if runTargetMs > 0 {
		cfg.Harness.TargetMs = runTargetMs
	}
	if runMemStats {
		cfg.Harness.MemStats = true
	}
	if runNoText {
		cfg.Report.Text = false
	}
	if runSVGOut != "" {
		cfg.Report.SVG = runSVGOut
	}
	if runJSONOut != "" {
		cfg.Report.JSON = runJSONOut
	}
	if runNotify {
		cfg.Notify.Enabled = true
	}
}

func notify(cmd *cobra.Command, results []bench.Result, took time.Duration) error {
	tgCfg, err := telegram.FromEnv()
	if err != nil {
		return err
	}

	client := telegram.New(tgCfg, nil)
	defer client.Close()

	groups := map[string]struct{}{}
	for _, res := range results {
		groups[res.Group] = struct{}{}
	}

	text := fmt.Sprintf("goexp: %d experiments, %d results in %s",
		len(groups), len(results), bench.Round(took))
	logger.Info("sending summary", zap.Int("results", len(results)))

	return client.SendMessage(cmd.Context(), text)
}

func init() {
	runCmd.Flags().StringVar(&runSVGOut, "svg", "", "write an SVG bar chart to this file")
	runCmd.Flags().StringVar(&runJSONOut, "json", "", "write raw results to this file")
	runCmd.Flags().BoolVar(&runNotify, "notify", false, "send a summary to the configured Telegram chat")
	runCmd.Flags().IntVar(&runIters, "iterations", 0, "iterations per sample (0 = calibrate)")
	runCmd.Flags().IntVar(&runSamples, "samples", 0, "timed samples per case")
	runCmd.Flags().IntVar(&runTargetMs, "target-ms", 0, "calibration target per sample, in ms")
	runCmd.Flags().BoolVar(&runMemStats, "mem-stats", false, "collect allocs/op for every case")
	runCmd.Flags().BoolVar(&runNoText, "no-text", false, "suppress the text report")

	rootCmd.AddCommand(runCmd)
}
