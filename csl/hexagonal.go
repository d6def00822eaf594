// SPDX-License-Identifier: MIT

package csl

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gbparams/rotation"
)

// boundaryEps resolves quadruples lying on a face of the fundamental region.
const boundaryEps = 1e-5

// Hexagonal enumerates the hexagonal CSL misorientations with Σ ≤ maxSigma
// for a lattice with c² = mu and a² = nu (so (c/a)² = mu/nu).
//
// Implementation:
//   - Stage 1: walk (m, U, V, W) inside the fundamental region of 6/mmm,
//     dropping quadruples on its faces that duplicate an interior one.
//   - Stage 2: reduce F = mu(3m²+W²) + nu(U²−UV+V²) by the common factors
//     F1…F5 to obtain Σ.
//   - Stage 3: rotate by θ = 2·atan(√((nu(U²−UV+V²)+muW²)/(3mu·m²))) about
//     the Cartesian image of the lattice direction [UVW].
//
// Errors: ErrInvalidSigma, ErrInvalidRatio.
// Complexity: O(maxSigma⁴·√(mu/nu)).
func Hexagonal(maxSigma, mu, nu int) (*Table, error) {
	if maxSigma < 1 {
		return nil, fmt.Errorf("Hexagonal(%d, %d, %d): %w", maxSigma, mu, nu, ErrInvalidSigma)
	}
	if mu < 1 || nu < 1 {
		return nil, fmt.Errorf("Hexagonal(%d, %d, %d): %w", maxSigma, mu, nu, ErrInvalidRatio)
	}

	var (
		entries = []Entry{{M: rotation.Identity(), Sigma: 1}}
		metric  = hexToCartesian(math.Sqrt(float64(nu)), math.Sqrt(float64(mu)))
		fm, fn  = float64(mu), float64(nu)
		k4      = math.Sqrt(fn / (4 * fm))
		k12     = math.Sqrt(fn / (12 * fm))
		k34     = math.Sqrt(3 * fn / (4 * fm))
		kw      = 2/math.Sqrt(3) + 1
		maxUk   = math.Sqrt(4 * fm / fn)
	)
	for m := 1; m <= maxSigma; m++ {
		var (
			fmv  = float64(m)
			maxU = int(math.Round(maxUk * fmv))
			maxW = int(math.Round(fmv / kw))
		)
		for u := 0; u <= maxU; u++ {
			for v := 0; v <= u/2; v++ {
				for w := 0; w <= maxW; w++ {
					if u == 0 && v == 0 && w == 0 {
						continue
					}
					if rotation.Gcd(m, rotation.Gcd(u, rotation.Gcd(v, w))) != 1 {
						continue
					}
					var (
						fu, fv, fw = float64(u), float64(v), float64(w)
						du         = 2*fu - fv
					)
					if fmv < k4*fu || fmv < k12*du || fmv < kw*fw {
						continue
					}
					if math.Abs(fmv-k4*fu) < boundaryEps && fw > k4*du {
						continue
					}
					if math.Abs(fmv-k12*du) < boundaryEps && fw > k34*fv {
						continue
					}
					if math.Abs(fmv-kw*fw) < boundaryEps && fu < 2+math.Sqrt(3)*fv {
						continue
					}

					sigma := hexagonalSigma(m, u, v, w, mu, nu)
					if sigma > maxSigma {
						continue
					}
					var (
						basal = nu * (u*u - u*v + v*v)
						theta = 2 * math.Atan(math.Sqrt(float64(basal+mu*w*w)/float64(3*mu*m*m)))
						axis  = rotation.Vector{fu, fv, fw}.Transform(metric)
					)
					axis, _ = axis.Normalize() // (U, V, W) ≠ 0 and the metric is regular
					entries = append(entries, Entry{M: rotation.NewAxisAngle(axis, theta).Matrix(), Sigma: sigma})
				}
			}
		}
	}

	return newTable(entries), nil
}

// hexagonalSigma divides F by the common factors shared by every coincidence
// site of the quadruple.
func hexagonalSigma(m, u, v, w, mu, nu int) int {
	gcd := rotation.Gcd
	var (
		f  = mu*(3*m*m+w*w) + nu*(u*u-u*v+v*v)
		f1 = gcd(2, gcd(u, gcd(v, m+w)))
		f2 = gcd(3, gcd(u+v, w))
		f3 = gcd(2/f1, gcd(nu, m+w))
		f4 = gcd(nu/f3, gcd(2*w/(f1*f2), m+w))
		f5 = gcd(mu, gcd(3*u/(f1*f2), (u+v)/f1))
	)

	return f / (f1 * f1 * f2 * f3 * f4 * f5)
}

// hexToCartesian maps hexagonal lattice coordinates (a1, a2, c) onto an
// orthonormal frame with x ∥ a1 and z ∥ c.
func hexToCartesian(a, c float64) rotation.Matrix {
	return rotation.Matrix{
		{a, -0.5 * a, 0},
		{0, 0.5 * math.Sqrt(3) * a, 0},
		{0, 0, c},
	}
}
