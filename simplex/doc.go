// SPDX-License-Identifier: MIT

// Package simplex implements the Nelder–Mead downhill simplex minimizer.
//
// The algorithm keeps n+1 vertices ordered by objective value and replaces
// the worst one by reflecting, expanding or contracting it through the
// centroid of the others; when none of those improve it, the whole simplex
// shrinks toward the best vertex.
//
// Behavior:
//
//   - Initial simplex: vertex 0 is x0, vertex i+1 adds the step to the first
//     i+1 coordinates of x0 (a "staircase" rather than axis-aligned spikes).
//   - Coefficients: reflection ρ=1, expansion χ=2, contraction γ=0.5,
//     shrink σ=0.5.
//   - Convergence: after the first iteration, every vertex value is compared
//     with the value at the same rank one iteration earlier; the run stops
//     when each pair satisfies |p−c| ≤ max(|p|,|c|)·RelTol or |p−c| ≤ AbsTol.
//   - Safety cap: at most MaxIterations iterations; Result.Converged reports
//     which condition stopped the run.
//
// Options:
//
//	– WithRelTol / WithAbsTol  (default 1e-4 each)
//	– WithStep                 (default 1, per coordinate)
//	– WithMaxIterations        (default 20000)
//
// Invalid option values panic at construction; Minimize itself never fails.
//
// Example:
//
//	res := simplex.Minimize(func(x []float64) float64 {
//	    return (x[0]-1)*(x[0]-1) + (x[1]+2)*(x[1]+2)
//	}, []float64{0, 0})
//	fmt.Println(res.X, res.Converged)
//
// Complexity: O(n) evaluations per reflection step, O(n²) per shrink.
package simplex
