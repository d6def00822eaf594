// SPDX-License-Identifier: MIT

package simplex

import "math"

// Defaults.
const (
	// DefaultRelTol is the relative value-change tolerance.
	DefaultRelTol = 1e-4

	// DefaultAbsTol is the absolute value-change tolerance.
	DefaultAbsTol = 1e-4

	// DefaultStep is the initial simplex edge along each coordinate.
	DefaultStep = 1.0

	// DefaultMaxIterations caps the number of simplex iterations.
	DefaultMaxIterations = 20000
)

const (
	panicTolInvalid   = "simplex: tolerance must be finite and non-negative"
	panicStepInvalid  = "simplex: WithStep: step must be finite and non-zero"
	panicIterInvalid  = "simplex: WithMaxIterations: cap must be positive"
	panicEmptyStart   = "simplex: Minimize: start point is empty"
	panicNilObjective = "simplex: Minimize: objective is nil"
)

// Option mutates Options.
type Option func(*Options)

// Options is the effective minimizer configuration.
type Options struct {
	relTol  float64
	absTol  float64
	step    float64
	maxIter int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		relTol:  DefaultRelTol,
		absTol:  DefaultAbsTol,
		step:    DefaultStep,
		maxIter: DefaultMaxIterations,
	}
}

// WithRelTol sets the relative convergence tolerance.
func WithRelTol(tol float64) Option {
	if !validTol(tol) {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

// WithAbsTol sets the absolute convergence tolerance.
func WithAbsTol(tol float64) Option {
	if !validTol(tol) {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.absTol = tol }
}

// WithStep sets the initial simplex edge length.
func WithStep(step float64) Option {
	if math.IsNaN(step) || math.IsInf(step, 0) || step == 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = step }
}

// WithMaxIterations bounds the iteration count.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func validTol(tol float64) bool {
	return !math.IsNaN(tol) && !math.IsInf(tol, 0) && tol >= 0
}
