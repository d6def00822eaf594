// SPDX-License-Identifier: MIT

package gbcd

import (
	"fmt"

	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

// Symmetries describes the symmetry of the normal distribution of a fixed
// misorientation: rotation axes of its stabilizer and the mirror lines
// (zones of the diads).
type Symmetries struct {
	Axes        []symmetry.Axis
	MirrorLines [][]Planar
}

// SymmetriesOf returns the symmetries of m in point group pg. Grain exchange
// is taken into account.
//
// Errors: symmetry.ErrUnknownPointGroup, symmetry.ErrClosureOverflow.
func SymmetriesOf(m rotation.Matrix, pg symmetry.PointGroup) (Symmetries, error) {
	ops, err := symmetry.Stabilizer(m, pg, true)
	if err != nil {
		return Symmetries{}, fmt.Errorf("SymmetriesOf: %w", err)
	}

	s := Symmetries{Axes: symmetry.Axes(ops)}
	for _, a := range s.Axes {
		if a.Multiplicity == 2 {
			s.MirrorLines = append(s.MirrorLines, Zone(a.Direction))
		}
	}

	return s, nil
}
