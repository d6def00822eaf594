// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"
)

// sinTol is the bound on ‖antisymmetric part‖ = 2·sin ω below which the axis
// of a near half turn is read from the symmetric part instead.
const sinTol = 1e-6

// noiseTol is the bound on ‖antisymmetric part‖ treated as rounding noise of
// an identity matrix.
const noiseTol = 1e-12

// identityAxis is the conventional axis reported for the identity rotation.
var identityAxis = Vector{0, 0, 1}

// AxisAngle is a rotation by Angle about the unit vector Axis.
// Values built through NewAxisAngle or AxisAngleOf keep Angle in [0, π].
type AxisAngle struct {
	Axis  Vector
	Angle float64
}

// NewAxisAngle canonicalizes (axis, angle): the angle is wrapped into
// [0, 2π) and, when it exceeds π, replaced by 2π − angle with the axis
// negated, so the stored angle is always the minimal one.
//
// The axis is expected to be a unit vector; it is not renormalized.
func NewAxisAngle(axis Vector, angle float64) AxisAngle {
	var w = angle
	if math.Abs(w) > TwoPi {
		w = math.Remainder(w, TwoPi)
	}
	if w < 0 {
		w += TwoPi
	}
	if w > math.Pi {
		w = TwoPi - w
		axis = axis.Neg()
	}

	return AxisAngle{Axis: axis, Angle: w}
}

// AxisAngleOf decomposes a rotation matrix.
//
// Implementation:
//   - Stage 1: angle = Acos((tr − 1)/2).
//   - Stage 2: if 2·sin ω is resolvable, the axis is the normalized
//     antisymmetric part (M₂₁−M₁₂, M₀₂−M₂₀, M₁₀−M₀₁).
//   - Stage 3: otherwise a small ω keeps the antisymmetric axis and takes
//     the angle from atan2(2·sin ω, 2·cos ω); below rounding noise it is the
//     identity, reported as 0 about [001]. ω ≈ π reads the axis from
//     (M + I)/2 = n·nᵗ, taking the column with the largest diagonal entry
//     for stability and orienting it along whatever antisymmetric residue
//     is left.
//
// Domain: m must be a rotation; improper matrices give meaningless output.
// Complexity: O(1).
func AxisAngleOf(m Matrix) AxisAngle {
	var (
		angle = m.Angle()
		anti  = Vector{m[2][1] - m[1][2], m[0][2] - m[2][0], m[1][0] - m[0][1]}
		s     = anti.Norm()
	)
	if s > sinTol {
		return AxisAngle{Axis: anti.Scale(1 / s), Angle: angle}
	}
	if angle < math.Pi/2 {
		if s <= noiseTol {
			return AxisAngle{Axis: identityAxis}
		}

		return AxisAngle{Axis: anti.Scale(1 / s), Angle: math.Atan2(s, m.Trace()-1)}
	}

	// Half turn: (M + I)/2 = n·nᵗ.
	var (
		k    int
		best = -1.0
		i    int
		col  Vector
	)
	for i = 0; i < 3; i++ {
		if m[i][i] > best {
			best = m[i][i]
			k = i
		}
	}
	for i = 0; i < 3; i++ {
		col[i] = 0.5 * m[i][k]
	}
	col[k] += 0.5
	axis, err := col.Normalize()
	if err != nil {
		return AxisAngle{Axis: identityAxis, Angle: angle}
	}
	if s > 0 && axis.Dot(anti) < 0 {
		axis = axis.Neg()
	}

	return AxisAngle{Axis: axis, Angle: angle}
}

// Matrix returns the rotation matrix of a.
func (a AxisAngle) Matrix() Matrix {
	var (
		n       = a.Axis
		c       = math.Cos(a.Angle)
		s       = math.Sin(a.Angle)
		t       = 1 - c
		x, y, z = n[0], n[1], n[2]
	)

	return Matrix{
		{c + t*x*x, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, c + t*y*y, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, c + t*z*z},
	}
}

// String renders the angle in degrees followed by the axis.
func (a AxisAngle) String() string {
	return fmt.Sprintf("%.4f°; [%.4f %.4f %.4f]", Deg(a.Angle), a.Axis[0], a.Axis[1], a.Axis[2])
}
