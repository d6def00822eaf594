// SPDX-License-Identifier: MIT

package symmetry

import (
	"math"

	"github.com/katalvlaran/gbparams/rotation"
)

// Disorientation returns the smallest rotation angle among the symmetric
// equivalents C1·m·C2ᵗ of m. Transposition leaves the angle unchanged, so
// grain exchange needs no separate pass.
//
// Errors: ErrUnknownPointGroup.
// Complexity: O(|G|²).
func Disorientation(m rotation.Matrix, pg PointGroup) (float64, error) {
	ops, err := table(pg)
	if err != nil {
		return 0, err
	}

	return DisorientationOver(m, ops), nil
}

// DisorientationOver is Disorientation for an explicit operator table.
func DisorientationOver(m rotation.Matrix, ops []rotation.Matrix) float64 {
	var (
		best = math.Pi
		w    float64
	)
	for _, c1 := range ops {
		cm := c1.Mul(m)
		for _, c2 := range ops {
			if w = cm.MulT(c2).Angle(); w < best {
				best = w
			}
		}
	}

	return best
}

// Equivalent returns the symmetric equivalent C1·m·C2ᵗ with the smallest
// rotation angle, i.e. the misorientation realizing Disorientation.
func Equivalent(m rotation.Matrix, ops []rotation.Matrix) rotation.Matrix {
	var (
		best  = m
		bestW = m.Angle()
	)
	for _, c1 := range ops {
		cm := c1.Mul(m)
		for _, c2 := range ops {
			e := cm.MulT(c2)
			if w := e.Angle(); w < bestW {
				best, bestW = e, w
			}
		}
	}

	return best
}
