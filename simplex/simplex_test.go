// Package simplex_test exercises the minimizer on smooth benchmarks.
package simplex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbparams/simplex"
)

func bowl(x []float64) float64 {
	return (x[0]-1)*(x[0]-1) + 2*(x[1]+2)*(x[1]+2)
}

func rosenbrock(x []float64) float64 {
	a, b := 1-x[0], x[1]-x[0]*x[0]

	return a*a + 100*b*b
}

// TestMinimize_QuadraticDefaults finds the minimum of a quadratic with default options.
func TestMinimize_QuadraticDefaults(t *testing.T) {
	x0 := []float64{0, 0}
	res := simplex.Minimize(bowl, x0)

	require.True(t, res.Converged)
	assert.InDelta(t, 1, res.X[0], 0.05)
	assert.InDelta(t, -2, res.X[1], 0.05)
	assert.Less(t, res.Value, 1e-3)
	assert.Equal(t, []float64{0, 0}, x0, "start point is not modified")
	assert.Greater(t, res.Evaluations, res.Iterations)
}

// TestMinimize_RosenbrockTight solves Rosenbrock with tight tolerances.
func TestMinimize_RosenbrockTight(t *testing.T) {
	res := simplex.Minimize(rosenbrock, []float64{-1.2, 1},
		simplex.WithRelTol(1e-12),
		simplex.WithAbsTol(1e-14),
	)
	require.True(t, res.Converged)
	assert.InDelta(t, 1, res.X[0], 1e-3)
	assert.InDelta(t, 1, res.X[1], 1e-3)
}

// TestMinimize_OneDimension works on a single parameter.
func TestMinimize_OneDimension(t *testing.T) {
	res := simplex.Minimize(func(x []float64) float64 { return math.Cos(x[0]) }, []float64{3},
		simplex.WithAbsTol(1e-12), simplex.WithRelTol(0))
	require.True(t, res.Converged)
	assert.InDelta(t, math.Pi, res.X[0], 1e-4)
}

// TestMinimize_MaxIterationsCap stops at the iteration cap and reports non-convergence.
func TestMinimize_MaxIterationsCap(t *testing.T) {
	res := simplex.Minimize(rosenbrock, []float64{-1.2, 1},
		simplex.WithMaxIterations(5),
		simplex.WithAbsTol(0),
		simplex.WithRelTol(0),
	)
	assert.False(t, res.Converged)
	assert.Equal(t, 5, res.Iterations)
}

// TestMinimize_Deterministic returns identical results on repeated runs.
func TestMinimize_Deterministic(t *testing.T) {
	a := simplex.Minimize(rosenbrock, []float64{0.5, -0.5}, simplex.WithStep(0.25))
	b := simplex.Minimize(rosenbrock, []float64{0.5, -0.5}, simplex.WithStep(0.25))
	assert.Equal(t, a, b)
}

// TestMinimize_AlreadyOptimalStart converges at once on a constant objective.
func TestMinimize_AlreadyOptimalStart(t *testing.T) {
	// A constant objective stalls after the first iteration.
	res := simplex.Minimize(func([]float64) float64 { return 7 }, []float64{1, 2, 3})
	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 7.0, res.Value)
}

// TestOptions_InvalidPanic panics on nonsensical options.
func TestOptions_InvalidPanic(t *testing.T) {
	assert.Panics(t, func() { simplex.WithRelTol(-1) })
	assert.Panics(t, func() { simplex.WithAbsTol(math.NaN()) })
	assert.Panics(t, func() { simplex.WithStep(0) })
	assert.Panics(t, func() { simplex.WithMaxIterations(0) })
	assert.Panics(t, func() { simplex.Minimize(nil, []float64{1}) })
	assert.Panics(t, func() { simplex.Minimize(bowl, nil) })
}
