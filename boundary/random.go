// SPDX-License-Identifier: MIT

package boundary

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/gbparams/rotation"
)

// RandomMisorientation draws a misorientation uniformly distributed over
// rotation space: φ1, φ2 uniform in [0, 2π) and cos Φ uniform in [-1, 1].
func RandomMisorientation(r *rand.Rand) rotation.Matrix {
	return rotation.Euler{
		Phi1: 2 * math.Pi * r.Float64(),
		Phi:  rotation.Acos(2*r.Float64() - 1),
		Phi2: 2 * math.Pi * r.Float64(),
	}.Matrix()
}

// Random draws a boundary with a uniform misorientation and a normal
// uniformly distributed over the sphere. Equal seeds give equal sequences;
// r is not safe for concurrent use, so give each goroutine its own stream.
func Random(r *rand.Rand) Boundary {
	var (
		m     = RandomMisorientation(r)
		theta = 2 * math.Pi * r.Float64()
		u     = 2*r.Float64() - 1
		s     = rotation.Sqrt(1 - u*u)
	)

	return Boundary{m: m, m1: rotation.Vector{s * math.Cos(theta), s * math.Sin(theta), u}}
}
