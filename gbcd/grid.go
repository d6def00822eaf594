// SPDX-License-Identifier: MIT

package gbcd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gbparams/rotation"
)

// Point is a direction given by polar angle (from +z) and azimuth, radians.
type Point struct {
	Polar   float64
	Azimuth float64
}

// Planar is a position in the stereographic projection.
type Planar struct {
	X, Y float64
}

// Vector returns the unit vector of p.
func (p Point) Vector() rotation.Vector { return rotation.FromPolar(p.Polar, p.Azimuth) }

// Stereographic projects p: r = tan(Polar/2).
func (p Point) Stereographic() Planar {
	r := math.Tan(0.5 * p.Polar)

	return Planar{X: r * math.Cos(p.Azimuth), Y: r * math.Sin(p.Azimuth)}
}

// Hemisphere returns a generalized spiral grid of about n points over the
// upper hemisphere. The spiral is laid over the full sphere with 2n points
// and cut at θ ≤ π/2 + 4/√(2n); the pole (0, 0) is always appended last.
//
// The grid depends on n only.
func Hemisphere(n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("Hemisphere(%d): %w", n, ErrGridSize)
	}
	var (
		total  = 2 * n
		nf     = float64(total)
		margin = 4 / math.Sqrt(nf)
		p      = 0.5
		a      = 1 - 2*p/(nf-3)
		b      = p * (nf + 1) / (nf - 3)
		c      = 3.6 / math.Sqrt(nf)
		d      = 1 / (nf - 1)

		rLast, phiLast float64
		out            = make([]Point, 0, n+n/4)
	)
	for k := 2; k < total; k++ {
		var (
			kk    = a*float64(k) + b
			h     = -1 + 2*(kk-1)*d
			r     = rotation.Sqrt(1 - h*h)
			theta = rotation.Acos(h)
			phi   = math.Remainder(phiLast+c*2/(rLast+r), 2*math.Pi)
		)
		if theta <= 0.5*math.Pi+margin {
			out = append(out, Point{Polar: theta, Azimuth: phi})
		}
		rLast, phiLast = r, phi
	}

	return append(out, Point{}), nil
}
