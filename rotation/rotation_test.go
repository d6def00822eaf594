// Package rotation_test checks guarded trigonometry and the round trips
// between every rotation parameterization.
package rotation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/gbparams/rotation"
)

const (
	// epsRoundTrip is the tolerance promised for Matrix → AxisAngle → Matrix.
	epsRoundTrip = 1e-6

	// epsTight is used where the arithmetic is exact up to a few ulps.
	epsTight = 1e-12
)

// sampleRotations returns a deterministic spread of rotations covering the
// identity, tiny angles, generic angles and half turns.
func sampleRotations(t *testing.T) []rotation.Matrix {
	t.Helper()
	var (
		out    []rotation.Matrix
		angles = []float64{0, 1e-9, 1e-4, 0.3, 1, math.Pi / 2, 2.5, math.Pi - 1e-7, math.Pi}
		axes   = [][3]float64{{0, 0, 1}, {1, 0, 0}, {1, 1, 1}, {-1, 2, 0.5}, {0.3, -0.2, -0.9}}
	)
	for _, ax := range axes {
		n, err := rotation.NewUnitVector(ax[0], ax[1], ax[2])
		require.NoError(t, err)
		for _, w := range angles {
			out = append(out, rotation.NewAxisAngle(n, w).Matrix())
		}
	}
	for _, e := range []rotation.Euler{{0.1, 0.2, 0.3}, {5, 2, 1}, {1, 0, 2}, {2, math.Pi, 0.5}} {
		out = append(out, e.Matrix())
	}

	return out
}

// TestAcos_Guarded clamps out-of-range arguments.
func TestAcos_Guarded(t *testing.T) {
	assert.Equal(t, 0.0, rotation.Acos(1.0000001))
	assert.Equal(t, math.Pi, rotation.Acos(-1.0000001))
	assert.InDelta(t, math.Pi/3, rotation.Acos(0.5), epsTight)
	assert.False(t, math.IsNaN(rotation.Acos(3)))
}

// TestAtan_Ranges maps arctangents into [0, 2π).
func TestAtan_Ranges(t *testing.T) {
	var a = rotation.Atan2(-1, 0)
	assert.InDelta(t, 1.5*math.Pi, a, epsTight)
	assert.InDelta(t, 0.75*math.Pi, rotation.Atan(-1), epsTight)
	assert.InDelta(t, 1.25*math.Pi, rotation.Atan2(-1, -1), epsTight)
	assert.Equal(t, 0.0, rotation.Atan2(0, 1))
	assert.Equal(t, 0.0, rotation.Sqrt(-1e-18))
}

// TestGcd_Signs covers zero and negative arguments.
func TestGcd_Signs(t *testing.T) {
	assert.Equal(t, 6, rotation.Gcd(12, 18))
	assert.Equal(t, 5, rotation.Gcd(0, -5))
	assert.Equal(t, 0, rotation.Gcd(0, 0))
}

// TestAxisAngleOf_RoundTrip recovers every sample rotation from its axis-angle pair.
func TestAxisAngleOf_RoundTrip(t *testing.T) {
	for i, m := range sampleRotations(t) {
		require.NoError(t, m.Validate(rotation.DefaultTolerance), "sample %d", i)
		aa := rotation.AxisAngleOf(m)
		assert.GreaterOrEqual(t, aa.Angle, 0.0)
		assert.LessOrEqual(t, aa.Angle, math.Pi)
		assert.InDelta(t, 1.0, aa.Axis.Norm(), epsRoundTrip)
		back := aa.Matrix()
		assert.True(t, back.EqualWithin(m, epsRoundTrip), "sample %d: %v vs %v", i, back, m)
	}
}

// TestAxisAngleOf_Identity reports the identity as 0 about [001].
func TestAxisAngleOf_Identity(t *testing.T) {
	aa := rotation.AxisAngleOf(rotation.Identity())
	assert.Equal(t, 0.0, aa.Angle)
	assert.Equal(t, rotation.Vector{0, 0, 1}, aa.Axis)
}

// TestAxisAngleOf_SmallAngles reads the axis of a tiny rotation from the
// antisymmetric part, so the round trip stays at rounding level.
func TestAxisAngleOf_SmallAngles(t *testing.T) {
	axes := [][3]float64{{0, 0, 1}, {1, 0, 0}, {1, 1, 1}, {-1, 2, 0.5}, {0.3, -0.2, -0.9}}
	for _, ax := range axes {
		n, err := rotation.NewUnitVector(ax[0], ax[1], ax[2])
		require.NoError(t, err)
		for _, w := range []float64{1e-9, 1e-7, 5e-7, 9.9e-7} {
			m := rotation.NewAxisAngle(n, w).Matrix()
			aa := rotation.AxisAngleOf(m)
			assert.InDelta(t, w, aa.Angle, epsTight, "ω=%g axis %v", w, n)
			assert.InDelta(t, 1.0, aa.Axis.Dot(n), 1e-6, "ω=%g axis %v", w, n)
			assert.True(t, aa.Matrix().EqualWithin(m, epsTight), "ω=%g axis %v", w, n)
		}
	}

	aa := rotation.AxisAngleOf(rotation.NewAxisAngle(rotation.Vector{1, 0, 0}, 1e-13).Matrix())
	assert.Equal(t, 0.0, aa.Angle)
	assert.Equal(t, rotation.Vector{0, 0, 1}, aa.Axis)
}

// TestNewAxisAngle_Canonicalization keeps the angle in [0, π].
func TestNewAxisAngle_Canonicalization(t *testing.T) {
	n := rotation.Vector{0, 0, 1}

	aa := rotation.NewAxisAngle(n, 1.5*math.Pi)
	assert.InDelta(t, 0.5*math.Pi, aa.Angle, epsTight)
	assert.Equal(t, rotation.Vector{0, 0, -1}, aa.Axis)

	aa = rotation.NewAxisAngle(n, -0.5*math.Pi)
	assert.InDelta(t, 0.5*math.Pi, aa.Angle, epsTight)
	assert.Equal(t, rotation.Vector{0, 0, -1}, aa.Axis)

	aa = rotation.NewAxisAngle(n, 4*math.Pi+0.25)
	assert.InDelta(t, 0.25, aa.Angle, 1e-12)
	assert.Equal(t, n, aa.Axis)

	// Canonicalization never changes the rotation itself.
	raw := rotation.AxisAngle{Axis: n, Angle: 1.5 * math.Pi}
	assert.True(t, raw.Matrix().EqualWithin(rotation.NewAxisAngle(n, 1.5*math.Pi).Matrix(), epsTight))
}

// TestEulerOf_RoundTrip recovers every sample rotation from Bunge angles.
func TestEulerOf_RoundTrip(t *testing.T) {
	for i, m := range sampleRotations(t) {
		e := rotation.EulerOf(m)
		assert.GreaterOrEqual(t, e.Phi1, 0.0)
		assert.Less(t, e.Phi1, rotation.TwoPi)
		assert.True(t, e.Matrix().EqualWithin(m, epsRoundTrip), "sample %d", i)
	}
}

// TestEuler_MatrixIsRotation builds proper orthogonal matrices.
func TestEuler_MatrixIsRotation(t *testing.T) {
	g := rotation.Euler{Phi1: 0.7, Phi: 1.9, Phi2: 4.1}.Matrix()
	require.NoError(t, g.Validate(1e-12))
}

// TestQuaternion_RoundTrip recovers every sample rotation from its quaternion.
func TestQuaternion_RoundTrip(t *testing.T) {
	for i, m := range sampleRotations(t) {
		q := rotation.QuaternionOf(m)
		assert.InDelta(t, 1.0, quat.Abs(q), epsRoundTrip)
		assert.GreaterOrEqual(t, q.Real, -epsTight)
		assert.True(t, rotation.QuaternionMatrix(q).EqualWithin(m, epsRoundTrip), "sample %d", i)
		assert.True(t, rotation.AxisAngleOfQuaternion(q).Matrix().EqualWithin(m, epsRoundTrip), "sample %d", i)
	}
}

// TestCompose_MatchesMatrixProduct agrees with the matrix product.
func TestCompose_MatchesMatrixProduct(t *testing.T) {
	a := rotation.NewAxisAngle(rotation.Vector{1, 0, 0}, 0.4)
	b := rotation.NewAxisAngle(rotation.Vector{0, 0.6, 0.8}, 1.3)
	want := b.Matrix().Mul(a.Matrix())
	got := rotation.Compose(a, b).Matrix()
	assert.True(t, got.EqualWithin(want, epsRoundTrip))
}

// TestRodrigues_RoundTrip converts through Rodrigues vectors and rejects half turns.
func TestRodrigues_RoundTrip(t *testing.T) {
	n, err := rotation.NewUnitVector(1, 2, 3)
	require.NoError(t, err)

	_, err = rotation.RodriguesOf(rotation.NewAxisAngle(n, math.Pi))
	require.ErrorIs(t, err, rotation.ErrHalfTurn)

	aa := rotation.NewAxisAngle(n, 1.1)
	r, err := rotation.RodriguesOf(aa)
	require.NoError(t, err)
	back, err := r.AxisAngle()
	require.NoError(t, err)
	assert.InDelta(t, aa.Angle, back.Angle, epsTight)
	assert.True(t, back.Axis.EqualWithin(aa.Axis, epsTight))

	_, err = rotation.Rodrigues{R1: math.Inf(1)}.AxisAngle()
	require.ErrorIs(t, err, rotation.ErrHalfTurn)

	zero, err := rotation.Rodrigues{}.AxisAngle()
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero.Angle)
}

// TestMatrix_ValidateRejects rejects improper, skewed and non-finite matrices.
func TestMatrix_ValidateRejects(t *testing.T) {
	improper := rotation.Matrix{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	require.ErrorIs(t, improper.Validate(rotation.DefaultTolerance), rotation.ErrNotRotation)

	skew := rotation.Matrix{{1, 0.1, 0}, {0, 1, 0}, {0, 0, 1}}
	require.ErrorIs(t, skew.Validate(rotation.DefaultTolerance), rotation.ErrNotRotation)

	nan := rotation.Identity()
	nan[1][2] = math.NaN()
	require.ErrorIs(t, nan.Validate(rotation.DefaultTolerance), rotation.ErrNaNInf)
}

// TestMatrix_Products checks the product helpers against each other.
func TestMatrix_Products(t *testing.T) {
	a := rotation.Euler{Phi1: 0.2, Phi: 0.4, Phi2: 0.6}.Matrix()
	b := rotation.Euler{Phi1: 1.2, Phi: 2.4, Phi2: 3.6}.Matrix()
	assert.True(t, a.MulT(b).EqualWithin(a.Mul(b.T()), epsTight))
	assert.True(t, a.LeftMul(b).EqualWithin(b.Mul(a), epsTight))
	assert.InDelta(t, 0.0, a.AngleTo(a), 1e-7)
	assert.InDelta(t, 1.0, a.Det(), epsTight)
}

// TestVector_PolarRoundTrip recovers vectors from polar angles and rejects degenerate ones.
func TestVector_PolarRoundTrip(t *testing.T) {
	v := rotation.FromPolar(1.1, 4.0)
	assert.InDelta(t, 1.0, v.Norm(), epsTight)
	assert.InDelta(t, 1.1, v.Zenith(), epsTight)
	assert.InDelta(t, 4.0, v.Azimuth(), epsTight)

	_, err := rotation.NewUnitVector(0, 0, 0)
	require.ErrorIs(t, err, rotation.ErrZeroVector)
	_, err = rotation.NewUnitVector(math.NaN(), 0, 1)
	require.ErrorIs(t, err, rotation.ErrNaNInf)
}

// TestVector_Transforms checks rotation, cross product and angles of vectors.
func TestVector_Transforms(t *testing.T) {
	m := rotation.NewAxisAngle(rotation.Vector{0, 0, 1}, math.Pi/2).Matrix()
	x := rotation.Vector{1, 0, 0}
	assert.True(t, x.Transform(m).EqualWithin(rotation.Vector{0, 1, 0}, epsTight))
	assert.True(t, x.Transform(m).TransposedTransform(m).EqualWithin(x, epsTight))
	assert.True(t, x.Cross(rotation.Vector{0, 1, 0}).EqualWithin(rotation.Vector{0, 0, 1}, epsTight))
	assert.InDelta(t, math.Pi, x.AngleTo(x.Neg()), epsTight)
}
