// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gbparams/evaluate"
	"github.com/katalvlaran/gbparams/gbcd"
	"github.com/katalvlaran/gbparams/rotation"
)

// sweepCmd evaluates the plane-normal distribution of one misorientation
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the boundary plane over the hemisphere at a fixed misorientation",
	Long: `Classify the boundaries of the misorientation given in the sweep section of
a job file for normals on a spiral grid over the upper hemisphere. Normals are
in the frame of the first grain.`,
	Example: `  gbparams sweep --config sweep.yaml > distribution.yaml`,
	Args:    cobra.NoArgs,
	RunE:    runSweep,
}

func init() {
	sweepCmd.Flags().StringVarP(&jobPath, "config", "c", "", "Job file with a sweep section (required)")
	_ = sweepCmd.MarkFlagRequired("config")
}

type sweepPoint struct {
	Polar   float64         `yaml:"polar"`
	Azimuth float64         `yaml:"azimuth"`
	X       float64         `yaml:"x"`
	Y       float64         `yaml:"y"`
	Values  evaluate.Record `yaml:"values"`
}

func runSweep(cmd *cobra.Command, args []string) error {
	job, ev, err := loadJob()
	if err != nil {
		return err
	}
	m, err := job.Misorientation()
	if err != nil {
		return err
	}
	grid, err := gbcd.Hemisphere(job.Sweep.Points)
	if err != nil {
		return err
	}
	logger.Info("Sweeping hemisphere",
		zap.Stringer("misorientation", rotation.AxisAngleOf(m)),
		zap.Int("normals", len(grid)))

	ctx, cancel := runContext()
	defer cancel()
	values, err := gbcd.Sweep(ctx, ev, m, job.Group(), grid)
	if err != nil {
		return err
	}

	out := make([]sweepPoint, len(values))
	for i, v := range values {
		out[i] = sweepPoint{
			Polar:   round4(v.Polar),
			Azimuth: round4(v.Azimuth),
			X:       round4(v.X),
			Y:       round4(v.Y),
			Values:  v.Record,
		}
	}

	return writeYAML(cmd.OutOrStdout(), out)
}
