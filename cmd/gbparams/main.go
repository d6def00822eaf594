// SPDX-License-Identifier: MIT

// Command gbparams classifies grain boundaries from the command line.
//
//	gbparams characterize --left 0,0,0 --right 30,0,0 --normal 0,0,1
//	gbparams evaluate --config job.yaml
//	gbparams sweep --config job.yaml
//	gbparams csl --lattice cubic --max-sigma 29
//	gbparams stabilizer --axis 1,1,1 --angle 60
//	gbparams characteristic --axis 1,1,1 --angle 60
//
// Results are written to stdout as YAML; logs go to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	timeout time.Duration

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gbparams",
	Short: "gbparams - grain boundary character classification",
	Long: `gbparams measures how close grain boundaries are to the ideal twist,
tilt, symmetric and 180°-tilt geometries, splits them into twist and tilt
components, and matches their misorientations against coincidence site
lattice tables.

Angles on the command line are in degrees.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "Operation timeout")

	// Add commands to root
	rootCmd.AddCommand(characterizeCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(cslCmd)
	rootCmd.AddCommand(stabilizerCmd)
	rootCmd.AddCommand(characteristicCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runContext bounds a long run by --timeout and SIGINT/SIGTERM.
func runContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	if timeout <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)

	return ctx, func() {
		cancel()
		stop()
	}
}
