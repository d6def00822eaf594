// SPDX-License-Identifier: MIT

package gbcd

import (
	"math"

	"github.com/katalvlaran/gbparams/rotation"
)

const (
	// ZonePoints is the number of segments a zone circle is sampled with;
	// a zone has ZonePoints+1 samples before clipping.
	ZonePoints = 1024

	// zoneTol bounds the horizontal part of a polar axis and the overshoot
	// of the unit circle a zone point may have.
	zoneTol = 1e-4
)

// Zone samples the great circle perpendicular to axis (the planes of every
// tilt boundary about axis) and returns its stereographic image inside the
// unit circle.
func Zone(axis rotation.Vector) []Planar {
	var (
		t0  = math.Atan2(axis[1], axis[0])
		dt  = 2 * math.Pi / ZonePoints
		xx  = axis[0] * axis[0]
		yy  = axis[1] * axis[1]
		hor = xx + yy
		out = make([]Planar, 0, ZonePoints+1)
	)
	if hor <= zoneTol {
		for i := 0; i <= ZonePoints; i++ {
			t := t0 + float64(i)*dt
			out = append(out, Planar{X: math.Cos(t), Y: math.Sin(t)})
		}

		return out
	}

	// Columns of the rotation taking z onto axis, restricted to the xy-plane.
	var (
		z      = axis[2]
		ksi    = (1 - z) / hor
		lambda = rotation.Sqrt(1-z*z) / math.Sqrt(hor)
		xy     = axis[0] * axis[1]
		o11    = z + yy*ksi
		o12    = -xy * ksi
		o22    = z + xx*ksi
		o31    = -axis[0] * lambda
		o32    = -axis[1] * lambda
	)
	for i := 0; i <= ZonePoints; i++ {
		var (
			t          = t0 + float64(i)*dt
			cost, sint = math.Cos(t), math.Sin(t)
			p          = Point{
				Polar:   rotation.Acos(o31*cost + o32*sint),
				Azimuth: math.Atan2(o12*cost+o22*sint, o11*cost+o12*sint),
			}
		)
		if math.Tan(0.5*p.Polar) < 1+zoneTol {
			out = append(out, p.Stereographic())
		}
	}

	return out
}
