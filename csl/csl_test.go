// Package csl_test checks the CSL generators against the conventional
// cubic list and the hexagonal basal-twist series.
package csl_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbparams/csl"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

// symmetricDistance is the smallest angle between m and any C1·n·C2ᵗ.
func symmetricDistance(m, n rotation.Matrix, ops []rotation.Matrix) float64 {
	best := math.Pi
	for _, c1 := range ops {
		cn := c1.Mul(n)
		for _, c2 := range ops {
			if w := cn.MulT(c2).AngleTo(m); w < best {
				best = w
			}
		}
	}

	return best
}

// TestCubic_ContainsIdentityAndSigma3 starts the cubic table with Σ1 and Σ3.
func TestCubic_ContainsIdentityAndSigma3(t *testing.T) {
	tab, err := csl.Cubic(29)
	require.NoError(t, err)
	require.Equal(t, 22, tab.Len())

	first := tab.At(0)
	assert.Equal(t, 1, first.Sigma)
	assert.True(t, first.M.EqualWithin(rotation.Identity(), 1e-12))

	var found bool
	for _, e := range tab.Entries() {
		if e.Sigma != 3 {
			continue
		}
		found = true
		w, err := symmetry.Disorientation(e.M, symmetry.Cubic)
		require.NoError(t, err)
		assert.InDelta(t, 60, rotation.Deg(w), 0.01)

		aa := rotation.AxisAngleOf(symmetry.Equivalent(e.M, symmetry.MustOperators(symmetry.Cubic)))
		for i := range aa.Axis {
			assert.InDelta(t, 1/math.Sqrt(3), math.Abs(aa.Axis[i]), 1e-4)
		}
	}
	assert.True(t, found, "Σ3 missing")
}

// TestCubic_SortedAndProper keeps entries sorted by Σ and proper.
func TestCubic_SortedAndProper(t *testing.T) {
	tab, err := csl.Cubic(49)
	require.NoError(t, err)

	sigmas := tab.Sigmas()
	assert.True(t, sort.IntsAreSorted(sigmas))
	for _, e := range tab.Entries() {
		assert.Equal(t, 1, e.Sigma%2, "cubic Σ is odd")
		assert.NoError(t, e.M.Validate(1e-9))
	}
	assert.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 13}, sigmas[:8])
}

// TestCubic_Deterministic builds identical tables on repeated calls.
func TestCubic_Deterministic(t *testing.T) {
	a, err := csl.Cubic(35)
	require.NoError(t, err)
	b, err := csl.Cubic(35)
	require.NoError(t, err)
	assert.Equal(t, a.Entries(), b.Entries())
}

// TestCubic_CoversReference finds every named reference up to Σ31 in the generated table.
func TestCubic_CoversReference(t *testing.T) {
	tab, err := csl.Cubic(31)
	require.NoError(t, err)
	ops := symmetry.MustOperators(symmetry.Cubic)

	for _, n := range csl.Reference() {
		if n.Sigma > 31 {
			continue
		}
		t.Run(n.Name, func(t *testing.T) {
			m := n.AxisAngle().Matrix()
			best, sigma := math.Pi, 0
			for _, e := range tab.Entries() {
				if d := symmetricDistance(m, e.M, ops); d < best {
					best, sigma = d, e.Sigma
				}
			}
			assert.Equal(t, n.Sigma, sigma)
			assert.Less(t, best, 1e-5)
		})
	}
}

// TestTables_InvalidArguments rejects bad Σ limits and axial ratios.
func TestTables_InvalidArguments(t *testing.T) {
	_, err := csl.Cubic(0)
	assert.ErrorIs(t, err, csl.ErrInvalidSigma)
	_, err = csl.Hexagonal(0, 8, 3)
	assert.ErrorIs(t, err, csl.ErrInvalidSigma)
	_, err = csl.Hexagonal(10, 0, 3)
	assert.ErrorIs(t, err, csl.ErrInvalidRatio)
	_, err = csl.Hexagonal(10, 8, -1)
	assert.ErrorIs(t, err, csl.ErrInvalidRatio)
}

// TestHexagonal_BasalSeries checks the Σ values of a hexagonal table.
func TestHexagonal_BasalSeries(t *testing.T) {
	// (c/a)² = 8/3: the ideal close-packed ratio.
	tab, err := csl.Hexagonal(25, 8, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 10, 11, 13, 14, 17, 18, 19, 22, 25}, tab.Sigmas())

	// Rotations about [0001] do not depend on the axial ratio.
	want := map[int]float64{7: 21.7868, 13: 27.7958, 19: 13.1736}
	for _, e := range tab.Entries() {
		deg, ok := want[e.Sigma]
		if !ok {
			continue
		}
		aa := rotation.AxisAngleOf(e.M)
		assert.InDelta(t, deg, rotation.Deg(aa.Angle), 1e-3, "Σ%d", e.Sigma)
		assert.InDelta(t, 1, math.Abs(aa.Axis[2]), 1e-9, "Σ%d", e.Sigma)
	}
	for _, e := range tab.Entries() {
		assert.NoError(t, e.M.Validate(1e-9))
	}
}

// TestTable_Match applies the Brandon-type tolerance.
func TestTable_Match(t *testing.T) {
	const omega0 = csl.DefaultOmega0 // compile-time constant
	assert.InDelta(t, rotation.Rad(15), omega0, 1e-15)

	tab, err := csl.Cubic(29)
	require.NoError(t, err)

	// A small rotation matches Σ1.
	z := rotation.Vector{0, 0, 1}
	e, ok := tab.Match(rotation.NewAxisAngle(z, rotation.Rad(5)).Matrix(), csl.DefaultP, csl.DefaultOmega0)
	require.True(t, ok)
	assert.Equal(t, 1, e.Sigma)

	// The generated Σ5 is 2·atan(1/2) ≈ 53.13° about [100]; 1° off stays
	// inside 15°/√5 ≈ 6.7°.
	x := rotation.Vector{1, 0, 0}
	m := rotation.NewAxisAngle(x, 2*math.Atan(0.5)+rotation.Rad(1)).Matrix()
	e, ok = tab.Match(m, csl.DefaultP, csl.DefaultOmega0)
	require.True(t, ok)
	assert.Equal(t, 5, e.Sigma)

	// A generic misorientation far from every entry.
	axis, err := rotation.NewUnitVector(0.2, 0.3, 0.93)
	require.NoError(t, err)
	_, ok = tab.Match(rotation.NewAxisAngle(axis, 0.9).Matrix(), csl.DefaultP, rotation.Rad(0.1))
	assert.False(t, ok)
}

// TestReference_Lookup finds named misorientations by either label form.
func TestReference_Lookup(t *testing.T) {
	n, ok := csl.Lookup("Σ13b")
	require.True(t, ok)
	assert.Equal(t, 13, n.Sigma)
	assert.Equal(t, "Σ13b: (27.80°; [111])", n.String())

	n, ok = csl.Lookup("S5")
	require.True(t, ok)
	assert.InDelta(t, 36.8699, rotation.Deg(n.AxisAngle().Angle), 1e-9)

	_, ok = csl.Lookup("Σ2")
	assert.False(t, ok)
	assert.Len(t, csl.Reference(), 24)
}
