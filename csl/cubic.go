// SPDX-License-Identifier: MIT

package csl

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gbparams/rotation"
)

// Cubic enumerates the cubic CSL misorientations with Σ ≤ maxSigma.
//
// Implementation:
//   - Stage 1: walk m = 1…⌈√maxSigma⌉ and m ≥ U ≥ V ≥ W ≥ 0, skipping the
//     zero axis and non-primitive quadruples.
//   - Stage 2: keep quadruples with an odd count of odd members equal to 1
//     or 3; Σ = m² + U² + V² + W².
//   - Stage 3: emit the rotation matrix of the quaternion (m, U, V, W)/√Σ.
//
// Errors: ErrInvalidSigma.
// Complexity: O(maxSigma²).
func Cubic(maxSigma int) (*Table, error) {
	if maxSigma < 1 {
		return nil, fmt.Errorf("Cubic(%d): %w", maxSigma, ErrInvalidSigma)
	}

	var (
		entries = []Entry{{M: rotation.Identity(), Sigma: 1}}
		top     = int(math.Ceil(math.Sqrt(float64(maxSigma))))
	)
	for m := 1; m <= top; m++ {
		for u := 0; u <= m; u++ {
			for v := 0; v <= u; v++ {
				for w := 0; w <= v; w++ {
					if u == 0 && v == 0 && w == 0 {
						continue
					}
					if rotation.Gcd(m, rotation.Gcd(u, rotation.Gcd(v, w))) != 1 {
						continue
					}
					if odd := m%2 + u%2 + v%2 + w%2; odd != 1 && odd != 3 {
						continue
					}
					s := m*m + u*u + v*v + w*w
					if s > maxSigma {
						continue
					}
					entries = append(entries, Entry{M: quadrupleMatrix(m, u, v, w, s), Sigma: s})
				}
			}
		}
	}

	return newTable(entries), nil
}

// quadrupleMatrix is the rotation of the unnormalized quaternion (m, U, V, W)
// with squared norm s.
func quadrupleMatrix(m, u, v, w, s int) rotation.Matrix {
	var (
		msq, usq, vsq, wsq = m * m, u * u, v * v, w * w
		uv, uw, vw         = 2 * u * v, 2 * u * w, 2 * v * w
		mu, mv, mw         = 2 * m * u, 2 * m * v, 2 * m * w
		d                  = float64(s)
	)

	return rotation.Matrix{
		{float64(msq+usq-vsq-wsq) / d, float64(uv-mw) / d, float64(uw+mv) / d},
		{float64(uv+mw) / d, float64(msq-usq+vsq-wsq) / d, float64(vw-mu) / d},
		{float64(uw-mv) / d, float64(vw+mu) / d, float64(msq-usq-vsq+wsq) / d},
	}
}
