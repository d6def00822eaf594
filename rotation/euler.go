// SPDX-License-Identifier: MIT

package rotation

import "math"

// gimbalTol bounds sin Φ below which φ1 and φ2 are no longer separable.
const gimbalTol = 1e-10

// Euler is a Bunge (ZXZ) triple in radians.
type Euler struct {
	Phi1 float64 // φ1, first rotation about Z
	Phi  float64 // Φ, rotation about the new X
	Phi2 float64 // φ2, final rotation about Z
}

// Matrix returns the passive (sample → crystal) orientation matrix g of e.
func (e Euler) Matrix() Matrix {
	var (
		c1, s1 = math.Cos(e.Phi1), math.Sin(e.Phi1)
		c, s   = math.Cos(e.Phi), math.Sin(e.Phi)
		c2, s2 = math.Cos(e.Phi2), math.Sin(e.Phi2)
	)

	return Matrix{
		{c1*c2 - s1*s2*c, s1*c2 + c1*s2*c, s2 * s},
		{-c1*s2 - s1*c2*c, -s1*s2 + c1*c2*c, c2 * s},
		{s1 * s, -c1 * s, c},
	}
}

// EulerOf recovers Bunge angles from an orientation matrix. φ1 and φ2 are
// returned in [0, 2π), Φ in [0, π]. When Φ is 0 or π only the combination
// φ1 ± φ2 is defined; the whole of it is attributed to φ1 and φ2 = 0.
func EulerOf(g Matrix) Euler {
	var phi = Acos(g[2][2])
	if math.Hypot(g[2][0], g[2][1]) > gimbalTol {
		return Euler{
			Phi1: Atan2(g[2][0], -g[2][1]),
			Phi:  phi,
			Phi2: Atan2(g[0][2], g[1][2]),
		}
	}

	return Euler{Phi1: Atan2(g[0][1], g[0][0]), Phi: phi, Phi2: 0}
}
