// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"
)

// Vector is a Cartesian 3-vector. Unit directions (‖v‖ = 1) are produced by
// NewUnitVector, FromPolar and Normalize; the arithmetic helpers below work
// on any vector.
type Vector [3]float64

// NewUnitVector returns (x, y, z)/‖(x, y, z)‖.
//
// Errors: ErrZeroVector for the zero vector, ErrNaNInf for non-finite input.
func NewUnitVector(x, y, z float64) (Vector, error) {
	return Vector{x, y, z}.Normalize()
}

// FromPolar returns the unit vector with the given zenith (polar) angle
// measured from +z and azimuth measured from +x in the xy-plane.
func FromPolar(zenith, azimuth float64) Vector {
	var s = math.Sin(zenith)

	return Vector{s * math.Cos(azimuth), s * math.Sin(azimuth), math.Cos(zenith)}
}

// Normalize returns v scaled to unit length.
func (v Vector) Normalize() (Vector, error) {
	var i int
	for i = 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return Vector{}, fmt.Errorf("Normalize: component %d: %w", i, ErrNaNInf)
		}
	}
	var n = v.Norm()
	if n == 0 {
		return Vector{}, ErrZeroVector
	}

	return v.Scale(1 / n), nil
}

// Zenith returns the polar angle in [0, π] of a unit vector.
func (v Vector) Zenith() float64 { return Acos(v[2]) }

// Azimuth returns the azimuth in [0, 2π).
func (v Vector) Azimuth() float64 { return Atan2(v[1], v[0]) }

// Dot returns v·o.
func (v Vector) Dot(o Vector) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns v×o.
func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Neg returns −v.
func (v Vector) Neg() Vector { return Vector{-v[0], -v[1], -v[2]} }

// Scale returns k·v.
func (v Vector) Scale(k float64) Vector { return Vector{k * v[0], k * v[1], k * v[2]} }

// Add returns v+o.
func (v Vector) Add(o Vector) Vector { return Vector{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

// Transform returns m·v.
func (v Vector) Transform(m Matrix) Vector {
	return Vector{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// TransposedTransform returns mᵗ·v.
func (v Vector) TransposedTransform(m Matrix) Vector {
	return Vector{
		m[0][0]*v[0] + m[1][0]*v[1] + m[2][0]*v[2],
		m[0][1]*v[0] + m[1][1]*v[1] + m[2][1]*v[2],
		m[0][2]*v[0] + m[1][2]*v[1] + m[2][2]*v[2],
	}
}

// EqualWithin reports whether every component of v and o differs by less than tol.
func (v Vector) EqualWithin(o Vector, tol float64) bool {
	return math.Abs(v[0]-o[0]) < tol && math.Abs(v[1]-o[1]) < tol && math.Abs(v[2]-o[2]) < tol
}

// AngleTo returns the angle between two unit vectors in [0, π].
func (v Vector) AngleTo(o Vector) float64 { return Acos(v.Dot(o)) }
