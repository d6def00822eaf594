// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"
)

// halfTurnTol is how close to π an angle must be to count as a half turn.
const halfTurnTol = 1e-9

// Rodrigues holds the Rodrigues (Gibbs) vector n·tan(ω/2).
type Rodrigues struct {
	R1, R2, R3 float64
}

// RodriguesOf converts a to Rodrigues parameters.
//
// Domain: a.Angle must differ from π; half turns return ErrHalfTurn.
func RodriguesOf(a AxisAngle) (Rodrigues, error) {
	if math.Abs(a.Angle-math.Pi) < halfTurnTol {
		return Rodrigues{}, fmt.Errorf("RodriguesOf(%s): %w", a, ErrHalfTurn)
	}
	var t = math.Tan(0.5 * a.Angle)

	return Rodrigues{R1: t * a.Axis[0], R2: t * a.Axis[1], R3: t * a.Axis[2]}, nil
}

// AxisAngle converts r back to axis-angle form.
//
// Errors: ErrHalfTurn when a component is infinite, ErrNaNInf for NaN.
func (r Rodrigues) AxisAngle() (AxisAngle, error) {
	var v = Vector{r.R1, r.R2, r.R3}
	var i int
	for i = 0; i < 3; i++ {
		if math.IsInf(v[i], 0) {
			return AxisAngle{}, ErrHalfTurn
		}
		if math.IsNaN(v[i]) {
			return AxisAngle{}, ErrNaNInf
		}
	}
	var n = v.Norm()
	if n == 0 {
		return AxisAngle{Axis: identityAxis, Angle: 0}, nil
	}

	return NewAxisAngle(v.Scale(1/n), 2*Atan(n)), nil
}
