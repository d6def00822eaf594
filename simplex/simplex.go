// SPDX-License-Identifier: MIT

package simplex

import (
	"math"
	"sort"
)

// Reflection, expansion, contraction and shrink coefficients.
const (
	rho   = 1.0
	khi   = 2.0
	gamma = 0.5
	sigma = 0.5
)

// Objective is a scalar function of n real parameters.
type Objective func(x []float64) float64

// Result is the best vertex found.
type Result struct {
	X           []float64
	Value       float64
	Iterations  int
	Evaluations int
	Converged   bool // false when MaxIterations stopped the run
}

// vertex is one point of the simplex with its objective value.
type vertex struct {
	x []float64
	f float64
}

// less orders vertices by value; NaN sorts last.
func less(a, b vertex) bool {
	if math.IsNaN(b.f) {
		return !math.IsNaN(a.f)
	}

	return a.f < b.f
}

// nelderMead holds the working state of one Minimize call.
type nelderMead struct {
	f     Objective
	pts   []vertex // n+1 vertices, best first
	evals int
}

// Minimize searches for a local minimum of f starting at x0.
//
// Implementation:
//   - Stage 1: build the staircase simplex around x0 and sort it.
//   - Stage 2: iterate reflect/expand/contract/shrink until the ranked vertex
//     values stop changing or MaxIterations is reached.
//
// Panics when f is nil or x0 is empty. x0 is not modified.
func Minimize(f Objective, x0 []float64, opts ...Option) Result {
	if f == nil {
		panic(panicNilObjective)
	}
	if len(x0) == 0 {
		panic(panicEmptyStart)
	}
	o := gatherOptions(opts...)

	nm := &nelderMead{f: f}
	nm.build(x0, o.step)

	var (
		previous  = make([]float64, len(nm.pts))
		iter      int
		converged bool
	)
	for {
		if iter > 0 && nm.stalled(previous, o.relTol, o.absTol) {
			converged = true
			break
		}
		if iter >= o.maxIter {
			break
		}
		for i, p := range nm.pts {
			previous[i] = p.f
		}
		nm.iterate()
		iter++
	}

	best := nm.pts[0]

	return Result{
		X:           append([]float64(nil), best.x...),
		Value:       best.f,
		Iterations:  iter,
		Evaluations: nm.evals,
		Converged:   converged,
	}
}

func (nm *nelderMead) eval(x []float64) vertex {
	nm.evals++

	return vertex{x: x, f: nm.f(x)}
}

// build places vertex i+1 at x0 plus step on coordinates 0…i.
func (nm *nelderMead) build(x0 []float64, step float64) {
	n := len(x0)
	nm.pts = make([]vertex, n+1)
	nm.pts[0] = nm.eval(append([]float64(nil), x0...))
	for i := 0; i < n; i++ {
		x := append([]float64(nil), x0...)
		for j := 0; j <= i; j++ {
			x[j] += step
		}
		nm.pts[i+1] = nm.eval(x)
	}
	nm.sort()
}

func (nm *nelderMead) sort() {
	sort.SliceStable(nm.pts, func(i, j int) bool { return less(nm.pts[i], nm.pts[j]) })
}

// stalled compares every ranked value with its predecessor.
func (nm *nelderMead) stalled(previous []float64, relTol, absTol float64) bool {
	for i, p := range nm.pts {
		var (
			prev = previous[i]
			diff = math.Abs(prev - p.f)
			size = math.Max(math.Abs(prev), math.Abs(p.f))
		)
		if !(diff <= size*relTol || diff <= absTol) {
			return false
		}
	}

	return true
}

// iterate performs one Nelder–Mead step.
func (nm *nelderMead) iterate() {
	var (
		n          = len(nm.pts) - 1
		best       = nm.pts[0]
		secondBest = nm.pts[n-1]
		worst      = nm.pts[n]
		centroid   = make([]float64, n)
	)
	for i := 0; i < n; i++ {
		for j, v := range nm.pts[i].x {
			centroid[j] += v
		}
	}
	for j := range centroid {
		centroid[j] /= float64(n)
	}

	reflected := nm.eval(affine(centroid, rho, centroid, worst.x))

	switch {
	case !less(reflected, best) && less(reflected, secondBest):
		nm.replaceWorst(reflected)
	case less(reflected, best):
		expanded := nm.eval(affine(centroid, khi, reflected.x, centroid))
		if less(expanded, reflected) {
			nm.replaceWorst(expanded)
		} else {
			nm.replaceWorst(reflected)
		}
	default:
		if less(reflected, worst) {
			outside := nm.eval(affine(centroid, gamma, reflected.x, centroid))
			if !less(reflected, outside) {
				nm.replaceWorst(outside)
				return
			}
		} else {
			inside := nm.eval(affine(centroid, -gamma, centroid, worst.x))
			if less(inside, worst) {
				nm.replaceWorst(inside)
				return
			}
		}
		nm.shrink()
	}
}

// shrink pulls every vertex halfway toward the best one and re-sorts.
func (nm *nelderMead) shrink() {
	lowest := nm.pts[0].x
	for i := 1; i < len(nm.pts); i++ {
		x := make([]float64, len(lowest))
		for j := range x {
			x[j] = lowest[j] + sigma*(nm.pts[i].x[j]-lowest[j])
		}
		nm.pts[i] = nm.eval(x)
	}
	nm.sort()
}

// replaceWorst inserts v after every vertex that is not worse than it and
// drops the previous worst.
func (nm *nelderMead) replaceWorst(v vertex) {
	n := len(nm.pts) - 1
	for i := 0; i < n; i++ {
		if less(v, nm.pts[i]) {
			nm.pts[i], v = v, nm.pts[i]
		}
	}
	nm.pts[n] = v
}

// affine returns base + k·(a − b).
func affine(base []float64, k float64, a, b []float64) []float64 {
	out := make([]float64, len(base))
	for j := range out {
		out[j] = base[j] + k*(a[j]-b[j])
	}

	return out
}
