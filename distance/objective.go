// SPDX-License-Identifier: MIT

package distance

import (
	"math"

	"github.com/katalvlaran/gbparams/boundary"
	"github.com/katalvlaran/gbparams/rotation"
)

// Objective is the squared distance from one boundary to an ideal family,
// as a function of the ideal's parameters. It is immutable and cheap to
// copy; the boundary normals are cached at construction.
type Objective struct {
	ideal  Ideal
	b      boundary.Boundary
	m1, m2 rotation.Vector
}

// NewObjective binds an ideal descriptor to a boundary.
func NewObjective(ideal Ideal, b boundary.Boundary) Objective {
	return Objective{ideal: ideal, b: b, m1: b.M1(), m2: b.M2()}
}

// Ideal returns the descriptor.
func (o Objective) Ideal() Ideal { return o.ideal }

// Boundary returns the boundary being measured.
func (o Objective) Boundary() boundary.Boundary { return o.b }

// Dim returns the parameter-vector length.
func (o Objective) Dim() int { return o.ideal.Dim() }

// Seed returns the starting parameters taken from the boundary itself: the
// polar angles of its rotation axis, its rotation angle when free and the
// azimuth of m1 when the normal is constrained.
func (o Objective) Seed(aa rotation.AxisAngle) []float64 {
	x := make([]float64, 0, 4)
	x = append(x, aa.Axis.Zenith(), aa.Axis.Azimuth())
	if !o.ideal.FixedHalfTurn {
		x = append(x, aa.Angle)
	}
	if o.ideal.TiltNormal {
		x = append(x, o.m1.Azimuth())
	}

	return x
}

// Value returns ω² + ½(θ1² + θ2²) at x. len(x) must equal Dim.
func (o Objective) Value(x []float64) float64 {
	mp, m1p := o.trial(x)
	var (
		m2p = m1p.TransposedTransform(mp).Neg()
		w   = mp.AngleTo(o.b.M())
		t1  = rotation.Acos(o.m1.Dot(m1p))
		t2  = rotation.Acos(o.m2.Dot(m2p))
	)

	return w*w + 0.5*(t1*t1+t2*t2)
}

// Nearest returns the ideal boundary (M′, m1′) realized by x.
func (o Objective) Nearest(x []float64) (boundary.Boundary, error) {
	mp, m1p := o.trial(x)

	return boundary.New(mp, m1p)
}

// trial builds M′ and m1′ from x.
func (o Objective) trial(x []float64) (rotation.Matrix, rotation.Vector) {
	var (
		axis  = rotation.FromPolar(x[0], x[1])
		angle = math.Pi
	)
	if !o.ideal.FixedHalfTurn {
		angle = x[2]
	}
	mp := rotation.AxisAngle{Axis: axis, Angle: angle}.Matrix()

	if !o.ideal.TiltNormal {
		return mp, axis.Scale(o.ideal.AxisSign)
	}

	// m1′ lies on the great circle perpendicular to the axis at the given
	// azimuth: tan ζ = −1 / (tan ζn · cos(φn − φ)).
	var (
		m1a    = x[len(x)-1]
		nz, na = axis.Zenith(), axis.Azimuth()
		zenith = math.Atan(-1 / (math.Tan(nz) * (math.Cos(na)*math.Cos(m1a) + math.Sin(na)*math.Sin(m1a))))
	)

	return mp, rotation.FromPolar(zenith, m1a)
}
