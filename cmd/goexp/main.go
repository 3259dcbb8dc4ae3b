// Command goexp runs the experiment corpus: registered runtime
// micro-benchmarks measured by the shared harness and rendered by the
// configured reporters.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "goexp",
	Short: "runtime micro-behavior experiments",
	Long: `goexp measures micro-behaviors of the Go runtime: closure calls,
interface dispatch as call sites see more types, struct vs map layouts,
goroutine roundtrips, reflection proxies, and the same bodies under the
yaegi interpreter.

Experiments run sequentially, never sharing the machine with a sibling, and
the numbers are wall-clock medians across samples. Treat them as relative
comparisons on one machine, not as portable truths.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log experiment progress")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML suite config")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "goexp:", err)
		os.Exit(1)
	}
}
