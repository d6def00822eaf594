// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"

	"github.com/katalvlaran/gbparams/rotation"
)

// rotationTol is the orthogonality tolerance accepted by New. Input
// orientations typically carry four to six significant digits.
const rotationTol = 1e-4

// Boundary is a misorientation with a unit normal in the first grain's frame.
type Boundary struct {
	m  rotation.Matrix
	m1 rotation.Vector
}

// New validates m and normalizes m1.
//
// Errors: ErrInvalidMisorientation, ErrInvalidNormal.
func New(m rotation.Matrix, m1 rotation.Vector) (Boundary, error) {
	if err := m.Validate(rotationTol); err != nil {
		return Boundary{}, fmt.Errorf("%w: %w", ErrInvalidMisorientation, err)
	}
	n, err := m1.Normalize()
	if err != nil {
		return Boundary{}, fmt.Errorf("%w: %w", ErrInvalidNormal, err)
	}

	return Boundary{m: m, m1: n}, nil
}

// MustNew is New for literals known to be valid; it panics otherwise.
func MustNew(m rotation.Matrix, m1 rotation.Vector) Boundary {
	b, err := New(m, m1)
	if err != nil {
		panic(err)
	}

	return b
}

// FromEuler builds a boundary from the orientations of the two adjacent
// grains and the normal in the sample frame: M = g_L·g_Rᵗ and m1 = g_L·n.
func FromEuler(left, right rotation.Euler, normal rotation.Vector) (Boundary, error) {
	gl := left.Matrix()

	return New(gl.MulT(right.Matrix()), normal.Transform(gl))
}

// M returns the misorientation.
func (b Boundary) M() rotation.Matrix { return b.m }

// M1 returns the normal in the first grain's frame.
func (b Boundary) M1() rotation.Vector { return b.m1 }

// M2 returns the normal in the second grain's frame, −Mᵗ·m1.
func (b Boundary) M2() rotation.Vector { return b.m1.TransposedTransform(b.m).Neg() }

// Transpose exchanges the grains: (Mᵗ, m2).
func (b Boundary) Transpose() Boundary {
	return Boundary{m: b.m.T(), m1: b.M2()}
}

// Invert reverses the normal orientation. The inversion centre of the Laue
// group keeps M proper, so only the normal changes sign.
func (b Boundary) Invert() Boundary {
	return Boundary{m: b.m, m1: b.m1.Neg()}
}

// ApplySymmetry returns (C1·M·C2ᵗ, C1·m1); m2 becomes C2·m2 accordingly.
func (b Boundary) ApplySymmetry(c1, c2 rotation.Matrix) Boundary {
	return Boundary{m: c1.Mul(b.m).MulT(c2), m1: b.m1.Transform(c1)}
}

// EqualWithin compares M and m1 component-wise.
func (b Boundary) EqualWithin(o Boundary, tol float64) bool {
	return b.m.EqualWithin(o.m, tol) && b.m1.EqualWithin(o.m1, tol)
}

// String renders the misorientation as axis-angle plus the normal.
func (b Boundary) String() string {
	return fmt.Sprintf("%s | m1=[%.4f %.4f %.4f]", rotation.AxisAngleOf(b.m), b.m1[0], b.m1[1], b.m1[2])
}
