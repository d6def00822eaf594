// Package gbcd_test checks the hemisphere grid, the characteristic axes of
// simple misorientations and the sweep through the evaluator.
package gbcd_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/gbparams/evaluate"
	"github.com/katalvlaran/gbparams/gbcd"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestHemisphere_Counts checks grid sizes and the upper-hemisphere bound.
func TestHemisphere_Counts(t *testing.T) {
	_, err := gbcd.Hemisphere(1)
	assert.ErrorIs(t, err, gbcd.ErrGridSize)

	for n, want := range map[int]int{2: 3, 3: 5, 10: 18, 100: 128, 1000: 1089} {
		grid, err := gbcd.Hemisphere(n)
		require.NoError(t, err)
		assert.Len(t, grid, want, "n=%d", n)
		assert.Equal(t, gbcd.Point{}, grid[len(grid)-1])

		limit := math.Pi/2 + 4/math.Sqrt(float64(2*n))
		for _, p := range grid {
			assert.GreaterOrEqual(t, p.Polar, 0.0)
			assert.LessOrEqual(t, p.Polar, limit)
			assert.LessOrEqual(t, math.Abs(p.Azimuth), math.Pi)
		}
	}

	a, _ := gbcd.Hemisphere(50)
	b, _ := gbcd.Hemisphere(50)
	assert.Equal(t, a, b)
}

// TestPoint_Stereographic projects the pole and equator.
func TestPoint_Stereographic(t *testing.T) {
	assert.Equal(t, gbcd.Planar{}, gbcd.Point{}.Stereographic())
	eq := gbcd.Point{Polar: math.Pi / 2, Azimuth: math.Pi / 2}.Stereographic()
	assert.InDelta(t, 0, eq.X, 1e-12)
	assert.InDelta(t, 1, eq.Y, 1e-12)
	assert.InDelta(t, 1, gbcd.Point{Polar: math.Pi / 2}.Vector()[0], 1e-12)
}

// TestZone_Circle samples the great circle normal to an axis.
func TestZone_Circle(t *testing.T) {
	polar := gbcd.Zone(rotation.Vector{0, 0, 1})
	require.Len(t, polar, gbcd.ZonePoints+1)
	for _, p := range polar {
		assert.InDelta(t, 1, math.Hypot(p.X, p.Y), 1e-12)
	}

	equatorial := gbcd.Zone(rotation.Vector{1, 0, 0})
	assert.Greater(t, len(equatorial), 500)
	assert.Less(t, len(equatorial), 520)
	for _, p := range equatorial {
		assert.InDelta(t, 0, p.X, 1e-9)
		assert.LessOrEqual(t, math.Hypot(p.X, p.Y), 1+1e-4)
	}
}

// TestCharacteristicAxes_Twist locates the twist pole of a rotation about [001].
func TestCharacteristicAxes_Twist(t *testing.T) {
	m := rotation.NewAxisAngle(rotation.Vector{0, 0, 1}, rotation.Rad(40)).Matrix()
	ch, err := gbcd.CharacteristicAxes(m, symmetry.Triclinic)
	require.NoError(t, err)

	require.Len(t, ch.Twist, 1)
	assert.InDelta(t, 0, ch.Twist[0].Position.X, 1e-12)
	assert.InDelta(t, 0, ch.Twist[0].Position.Y, 1e-12)
	assert.Empty(t, ch.Symmetric)
	assert.Empty(t, ch.Tilt180)
	require.Len(t, ch.Tilt, 1)
	assert.Len(t, ch.Tilt[0].Zone, gbcd.ZonePoints+1)
}

// TestCharacteristicAxes_HalfTurn locates the paired positions of a half turn.
func TestCharacteristicAxes_HalfTurn(t *testing.T) {
	m := rotation.NewAxisAngle(rotation.Vector{1, 0, 0}, math.Pi).Matrix()
	ch, err := gbcd.CharacteristicAxes(m, symmetry.Triclinic)
	require.NoError(t, err)

	require.Len(t, ch.Twist, 2)
	assert.Len(t, ch.Symmetric, 2)
	assert.Len(t, ch.Tilt180, 2)
	xs := []float64{ch.Twist[0].Position.X, ch.Twist[1].Position.X}
	assert.ElementsMatch(t, []float64{1, -1}, []float64{math.Round(xs[0]), math.Round(xs[1])})
}

// TestCharacteristicAxes_CoherentTwin locates the ideal boundaries of Σ3.
func TestCharacteristicAxes_CoherentTwin(t *testing.T) {
	r3 := 1 / math.Sqrt(3)
	m := rotation.NewAxisAngle(rotation.Vector{r3, r3, r3}, math.Pi/3).Matrix()
	ch, err := gbcd.CharacteristicAxes(m, symmetry.Cubic)
	require.NoError(t, err)

	var (
		r     = math.Tan(0.5 * math.Acos(r3))
		want  = gbcd.Planar{X: r * math.Cos(math.Pi/4), Y: r * math.Sin(math.Pi/4)}
		found bool
	)
	for _, l := range ch.Twist {
		if math.Abs(l.Position.X-want.X) < 1e-9 && math.Abs(l.Position.Y-want.Y) < 1e-9 {
			found = true
		}
		assert.Less(t, math.Hypot(l.Position.X, l.Position.Y), 1+1e-3)
	}
	assert.True(t, found, "[111] twist position missing")
	assert.NotEmpty(t, ch.Symmetric)
	assert.Len(t, ch.Tilt, len(ch.Twist))

	_, err = gbcd.CharacteristicAxes(m, "432")
	assert.ErrorIs(t, err, symmetry.ErrUnknownPointGroup)
}

// TestSymmetriesOf_HalfTurnAndTwist finds diads for a half turn and no
// symmetry for a generic twist.
func TestSymmetriesOf_HalfTurnAndTwist(t *testing.T) {
	half := rotation.NewAxisAngle(rotation.Vector{1, 0, 0}, math.Pi).Matrix()
	s, err := gbcd.SymmetriesOf(half, symmetry.Triclinic)
	require.NoError(t, err)
	require.Len(t, s.Axes, 2)
	for _, a := range s.Axes {
		assert.Equal(t, 2, a.Multiplicity)
	}
	assert.Len(t, s.MirrorLines, 2)

	twist := rotation.NewAxisAngle(rotation.Vector{0, 0, 1}, rotation.Rad(40)).Matrix()
	s, err = gbcd.SymmetriesOf(twist, symmetry.Triclinic)
	require.NoError(t, err)
	assert.Empty(t, s.Axes)
	assert.Empty(t, s.MirrorLines)
}

// TestSweep_Hemisphere evaluates a grid and honours cancellation.
func TestSweep_Hemisphere(t *testing.T) {
	grid, err := gbcd.Hemisphere(10)
	require.NoError(t, err)
	ev := evaluate.New([]evaluate.Field{evaluate.Polar, evaluate.TiltApprox}, nil, evaluate.Options{Workers: 3, BatchSize: 4})
	m := rotation.NewAxisAngle(rotation.Vector{0, 0, 1}, rotation.Rad(40)).Matrix()

	values, err := gbcd.Sweep(context.Background(), ev, m, symmetry.Triclinic, grid)
	require.NoError(t, err)
	require.Len(t, values, len(grid))
	for i, v := range values {
		require.NoError(t, v.Record.Err)
		assert.Equal(t, grid[i], v.Point)
		assert.Equal(t, i, v.Record.Index)
	}

	pole := values[len(values)-1]
	assert.Equal(t, gbcd.Planar{}, pole.Planar)
	tilt, ok := pole.Record.Get(evaluate.TiltApprox)
	require.True(t, ok)
	assert.Equal(t, 1.5708, tilt.Number)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	values, err = gbcd.Sweep(ctx, ev, m, symmetry.Triclinic, grid)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, values)
}
