package simplex_test

import (
	"testing"

	"github.com/katalvlaran/gbparams/simplex"
)

// BenchmarkRosenbrock minimizes the 2-D Rosenbrock function from (-1.2, 1).
func BenchmarkRosenbrock(b *testing.B) {
	f := func(x []float64) float64 {
		a, c := 1-x[0], x[1]-x[0]*x[0]

		return a*a + 100*c*c
	}
	for i := 0; i < b.N; i++ {
		simplex.Minimize(f, []float64{-1.2, 1})
	}
}
