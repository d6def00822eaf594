// SPDX-License-Identifier: MIT

package gbcd

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gbparams/boundary"
	"github.com/katalvlaran/gbparams/evaluate"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

// PolarValue is the evaluation of one grid normal.
type PolarValue struct {
	Point
	Planar
	Record evaluate.Record
}

// Sweep classifies the boundaries (m, n) for every normal n of grid, given
// in the frame of the first crystal, and returns them in grid order. The
// recorded fields are those of ev.
//
// Errors: boundary.ErrInvalidMisorientation, and the context error when the
// run was cancelled (the completed prefix is still returned).
func Sweep(ctx context.Context, ev *evaluate.Evaluator, m rotation.Matrix, pg symmetry.PointGroup, grid []Point) ([]PolarValue, error) {
	reqs := make([]evaluate.Request, len(grid))
	for i, p := range grid {
		b, err := boundary.New(m, p.Vector())
		if err != nil {
			return nil, fmt.Errorf("Sweep: %w", err)
		}
		reqs[i] = evaluate.Request{Boundary: &b, PointGroup: pg}
	}

	recs, err := ev.Evaluate(ctx, reqs)
	out := make([]PolarValue, len(recs))
	for i, rec := range recs {
		out[i] = PolarValue{Point: grid[i], Planar: grid[i].Stereographic(), Record: rec}
	}

	return out, err
}
