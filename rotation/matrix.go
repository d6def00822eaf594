// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"
)

// DefaultTolerance is the orthogonality tolerance used by Validate when the
// caller has no stricter policy.
const DefaultTolerance = 1e-6

// Matrix is a 3×3 matrix stored row-major. Rotation matrices are proper
// orthogonal (MᵗM = I, det M = +1); the type itself does not enforce it,
// use Validate at ingestion boundaries.
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mul returns m·b.
func (m Matrix) Mul(b Matrix) Matrix {
	var (
		r       Matrix
		i, j, k int
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				r[i][j] += m[i][k] * b[k][j]
			}
		}
	}

	return r
}

// MulT returns m·bᵗ without materializing the transpose.
func (m Matrix) MulT(b Matrix) Matrix {
	var (
		r       Matrix
		i, j, k int
	)
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			for k = 0; k < 3; k++ {
				r[i][j] += m[i][k] * b[j][k]
			}
		}
	}

	return r
}

// LeftMul returns c·m.
func (m Matrix) LeftMul(c Matrix) Matrix { return c.Mul(m) }

// T returns the transpose of m.
func (m Matrix) T() Matrix {
	return Matrix{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Trace returns the sum of the diagonal.
func (m Matrix) Trace() float64 { return m[0][0] + m[1][1] + m[2][2] }

// Det returns the determinant.
func (m Matrix) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Angle returns the rotation angle in [0, π] computed as Acos((tr − 1)/2).
func (m Matrix) Angle() float64 { return Acos(0.5 * (m.Trace() - 1)) }

// AngleTo returns the angle of the rotation m·bᵗ, i.e. the angular distance
// between the two rotations.
func (m Matrix) AngleTo(b Matrix) float64 { return m.MulT(b).Angle() }

// EqualWithin reports whether every component of m and b differs by less than tol.
func (m Matrix) EqualWithin(b Matrix, tol float64) bool {
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if math.Abs(m[i][j]-b[i][j]) >= tol {
				return false
			}
		}
	}

	return true
}

// IsSymmetric reports whether m equals its transpose within tol.
func (m Matrix) IsSymmetric(tol float64) bool {
	return math.Abs(m[0][1]-m[1][0]) < tol &&
		math.Abs(m[0][2]-m[2][0]) < tol &&
		math.Abs(m[1][2]-m[2][1]) < tol
}

// Validate checks that m is finite, orthogonal within tol and has det = +1.
//
// Errors: ErrNaNInf, ErrNotRotation (wrapped with the offending measure).
// Complexity: O(1).
func (m Matrix) Validate(tol float64) error {
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return fmt.Errorf("Validate: element (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}
	if !m.MulT(m).EqualWithin(Identity(), tol) {
		return fmt.Errorf("Validate: M·Mᵗ differs from I: %w", ErrNotRotation)
	}
	if d := m.Det(); math.Abs(d-1) >= tol {
		return fmt.Errorf("Validate: det=%.6g: %w", d, ErrNotRotation)
	}

	return nil
}
