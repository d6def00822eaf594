// Package boundary_test covers construction and the equivalence transforms.
package boundary_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbparams/boundary"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

const eps = 1e-9

func sample(t *testing.T) boundary.Boundary {
	t.Helper()
	axis, err := rotation.NewUnitVector(1, 2, 3)
	require.NoError(t, err)
	b, err := boundary.New(rotation.NewAxisAngle(axis, 0.8).Matrix(), rotation.Vector{0, 3, 4})
	require.NoError(t, err)

	return b
}

// TestNew_Normalizes normalizes the plane normal.
func TestNew_Normalizes(t *testing.T) {
	b := sample(t)
	assert.InDelta(t, 1, b.M1().Norm(), eps)
	assert.InDelta(t, 0.6, b.M1()[1], eps)
	assert.InDelta(t, 1, b.M2().Norm(), eps)
}

// TestNew_RejectsInvalid rejects degenerate normals and improper matrices.
func TestNew_RejectsInvalid(t *testing.T) {
	_, err := boundary.New(rotation.Identity(), rotation.Vector{})
	assert.ErrorIs(t, err, boundary.ErrInvalidNormal)
	assert.ErrorIs(t, err, rotation.ErrZeroVector)

	_, err = boundary.New(rotation.Identity(), rotation.Vector{math.NaN(), 0, 1})
	assert.ErrorIs(t, err, boundary.ErrInvalidNormal)

	_, err = boundary.New(rotation.Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, rotation.Vector{0, 0, 1})
	assert.ErrorIs(t, err, boundary.ErrInvalidMisorientation)
	assert.ErrorIs(t, err, rotation.ErrNotRotation)

	assert.Panics(t, func() { boundary.MustNew(rotation.Matrix{}, rotation.Vector{0, 0, 1}) })
}

// TestBoundary_M2IsDerived checks m2 = −Mᵗ·m1.
func TestBoundary_M2IsDerived(t *testing.T) {
	b := sample(t)
	want := b.M1().TransposedTransform(b.M()).Neg()
	assert.True(t, b.M2().EqualWithin(want, eps))

	// For the identity the two grain frames coincide and the normals oppose.
	id := boundary.MustNew(rotation.Identity(), rotation.Vector{0, 0, 1})
	assert.True(t, id.M2().EqualWithin(rotation.Vector{0, 0, -1}, eps))
}

// TestBoundary_TransposeIsInvolution checks that transposing twice restores the boundary.
func TestBoundary_TransposeIsInvolution(t *testing.T) {
	b := sample(t)
	tr := b.Transpose()
	assert.True(t, tr.M().EqualWithin(b.M().T(), eps))
	assert.True(t, tr.M1().EqualWithin(b.M2(), eps))
	assert.True(t, tr.M2().EqualWithin(b.M1(), eps))
	assert.True(t, tr.Transpose().EqualWithin(b, eps))
}

// TestBoundary_Invert reverses the normal and keeps the misorientation.
func TestBoundary_Invert(t *testing.T) {
	b := sample(t)
	inv := b.Invert()
	assert.True(t, inv.M().EqualWithin(b.M(), eps))
	assert.True(t, inv.M1().EqualWithin(b.M1().Neg(), eps))
	assert.True(t, inv.M2().EqualWithin(b.M2().Neg(), eps))
	assert.True(t, inv.Invert().EqualWithin(b, eps))
}

// TestBoundary_ApplySymmetryKeepsNormalsConsistent keeps m2 consistent with the
// transformed M and m1.
func TestBoundary_ApplySymmetryKeepsNormalsConsistent(t *testing.T) {
	var (
		b   = sample(t)
		ops = symmetry.MustOperators(symmetry.Cubic)
	)
	for _, c1 := range ops[:6] {
		for _, c2 := range ops[6:12] {
			s := b.ApplySymmetry(c1, c2)
			assert.True(t, s.M1().EqualWithin(b.M1().Transform(c1), eps))
			assert.True(t, s.M2().EqualWithin(b.M2().Transform(c2), eps))
			assert.NoError(t, s.M().Validate(eps))
			assert.True(t, s.M().EqualWithin(c1.Mul(b.M()).MulT(c2), eps))
		}
	}
}

// TestFromEuler_SampleFrame builds the boundary from two grain orientations and
// a sample-frame normal.
func TestFromEuler_SampleFrame(t *testing.T) {
	left := rotation.Euler{Phi1: 0.3, Phi: 1.1, Phi2: 2.0}
	right := rotation.Euler{Phi1: 1.3, Phi: 0.4, Phi2: 5.0}
	n := rotation.Vector{0, 0, 1}

	b, err := boundary.FromEuler(left, right, n)
	require.NoError(t, err)

	gl, gr := left.Matrix(), right.Matrix()
	assert.True(t, b.M().EqualWithin(gl.Mul(gr.T()), eps))
	assert.True(t, b.M1().EqualWithin(n.Transform(gl), eps))
	// m2 is the same sample normal seen from the right grain, reversed.
	assert.True(t, b.M2().EqualWithin(n.Transform(gr).Neg(), eps))

	// Identical grains give the identity misorientation.
	same, err := boundary.FromEuler(left, left, n)
	require.NoError(t, err)
	assert.True(t, same.M().EqualWithin(rotation.Identity(), eps))
}

// TestBoundary_String prints the normal with four decimals.
func TestBoundary_String(t *testing.T) {
	b := boundary.MustNew(rotation.Identity(), rotation.Vector{1, 0, 0})
	assert.Contains(t, b.String(), "m1=[1.0000 0.0000 0.0000]")
}

// TestRandom_Reproducible draws reproducible, valid boundaries inside the cubic fundamental zone.
func TestRandom_Reproducible(t *testing.T) {
	a := rand.New(rand.NewPCG(7, 11))
	b := rand.New(rand.NewPCG(7, 11))
	maxDisorientation := rotation.Rad(62.8)
	for i := 0; i < 200; i++ {
		x, y := boundary.Random(a), boundary.Random(b)
		require.Equal(t, x, y)
		require.NoError(t, x.M().Validate(1e-9))
		assert.InDelta(t, 1, x.M1().Norm(), 1e-12)

		d, err := symmetry.Disorientation(x.M(), symmetry.Cubic)
		require.NoError(t, err)
		assert.LessOrEqual(t, d, maxDisorientation+1e-3)
	}
}
