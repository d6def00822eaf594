// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/gbparams/characterize"
	"github.com/katalvlaran/gbparams/csl"
	"github.com/katalvlaran/gbparams/evaluate"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/simplex"
)

// CharacterizeOptions builds the classifier template of the job. Kinds and
// operators are left to the evaluator. Generating the CSL table is the
// expensive part.
//
// Errors: those of csl.Cubic and csl.Hexagonal.
func (j *Job) CharacterizeOptions() ([]characterize.Option, error) {
	var opts []characterize.Option
	if j.GrainExchange != nil {
		opts = append(opts, characterize.WithGrainExchange(*j.GrainExchange))
	}
	if j.Inversion != nil {
		opts = append(opts, characterize.WithInversion(*j.Inversion))
	}

	var mo []simplex.Option
	if n := j.Minimizer.MaxIterations; n > 0 {
		mo = append(mo, simplex.WithMaxIterations(n))
	}
	if tol := j.Minimizer.RelTol; tol > 0 {
		mo = append(mo, simplex.WithRelTol(tol))
	}
	if tol := j.Minimizer.AbsTol; tol > 0 {
		mo = append(mo, simplex.WithAbsTol(tol))
	}
	if len(mo) > 0 {
		opts = append(opts, characterize.WithMinimizer(mo...))
	}

	if c := j.CSL; c != nil {
		table, err := c.Table()
		if err != nil {
			return nil, err
		}
		opts = append(opts, characterize.WithCSL(table, c.P, rotation.Rad(c.Omega0)))
	}

	return opts, nil
}

// Table generates the configured coincidence table.
func (c *CSL) Table() (*csl.Table, error) {
	if c.Lattice == "hexagonal" {
		return csl.Hexagonal(c.MaxSigma, c.Mu, c.Nu)
	}

	return csl.Cubic(c.MaxSigma)
}

// EvaluateOptions returns the worker settings with log attached.
func (j *Job) EvaluateOptions(log *zap.Logger) evaluate.Options {
	return evaluate.Options{Workers: j.Workers, BatchSize: j.BatchSize, Logger: log}
}

// Requests converts the boundary list, all in the job's point group.
func (j *Job) Requests() []evaluate.Request {
	out := make([]evaluate.Request, len(j.Boundaries))
	for i, b := range j.Boundaries {
		out[i] = evaluate.Request{
			ID:         b.ID,
			Left:       euler(b.Left),
			Right:      euler(b.Right),
			Normal:     rotation.Vector(b.Normal),
			PointGroup: j.Group(),
			PhaseID:    b.PhaseID,
			Area:       b.Area,
			Faces:      b.Faces,
		}
		if out[i].ID == "" {
			out[i].ID = strconv.Itoa(i + 1)
		}
	}

	return out
}

// Misorientation returns the fixed misorientation of the sweep.
//
// Errors: ErrNoSweep, rotation.ErrZeroVector.
func (j *Job) Misorientation() (rotation.Matrix, error) {
	if j.Sweep == nil {
		return rotation.Matrix{}, ErrNoSweep
	}
	axis, err := rotation.Vector(j.Sweep.Axis).Normalize()
	if err != nil {
		return rotation.Matrix{}, fmt.Errorf("config: sweep axis: %w", err)
	}

	return rotation.NewAxisAngle(axis, rotation.Rad(j.Sweep.Angle)).Matrix(), nil
}

func euler(deg [3]float64) rotation.Euler {
	return rotation.Euler{Phi1: rotation.Rad(deg[0]), Phi: rotation.Rad(deg[1]), Phi2: rotation.Rad(deg[2])}
}
