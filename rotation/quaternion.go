// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// QuaternionOf returns the unit quaternion (cos ω/2, n·sin ω/2) of m with a
// non-negative scalar part.
func QuaternionOf(m Matrix) quat.Number {
	return AxisAngleOf(m).Quaternion()
}

// Quaternion returns the unit quaternion of a.
func (a AxisAngle) Quaternion() quat.Number {
	var (
		h = 0.5 * a.Angle
		s = math.Sin(h)
	)

	return quat.Number{Real: math.Cos(h), Imag: s * a.Axis[0], Jmag: s * a.Axis[1], Kmag: s * a.Axis[2]}
}

// QuaternionMatrix returns the rotation matrix of q. The quaternion is
// normalized first; the zero quaternion maps to the identity.
func QuaternionMatrix(q quat.Number) Matrix {
	var n = quat.Abs(q)
	if n == 0 {
		return Identity()
	}
	q = quat.Scale(1/n, q)
	var (
		w, x, y, z = q.Real, q.Imag, q.Jmag, q.Kmag
	)

	return Matrix{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// AxisAngleOfQuaternion decomposes q. The angle is taken from
// atan2(‖q_v‖, q₀), which stays accurate for small rotations.
func AxisAngleOfQuaternion(q quat.Number) AxisAngle {
	var (
		v = Vector{q.Imag, q.Jmag, q.Kmag}
		s = v.Norm()
	)
	if s == 0 {
		return AxisAngle{Axis: identityAxis, Angle: 0}
	}

	return NewAxisAngle(v.Scale(1/s), 2*math.Atan2(s, q.Real))
}

// Compose returns the rotation a followed by b (matrix b·a) using quaternion
// multiplication.
func Compose(a, b AxisAngle) AxisAngle {
	return AxisAngleOfQuaternion(quat.Mul(b.Quaternion(), a.Quaternion()))
}
