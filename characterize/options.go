// SPDX-License-Identifier: MIT

package characterize

import (
	"math"

	"github.com/katalvlaran/gbparams/csl"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/simplex"
	"github.com/katalvlaran/gbparams/symmetry"
)

// Defaults.
const (
	// DefaultKinds are the outputs that need no minimization or table.
	DefaultKinds = AllApprox | AllComponents | Disorientation

	// DefaultGrainExchange enumerates the transposed description.
	DefaultGrainExchange = true

	// DefaultInversion enumerates the reversed-normal description.
	DefaultInversion = true

	// DefaultPointGroup is the Laue class used when none is set.
	DefaultPointGroup = symmetry.Cubic
)

// Option mutates a Config under construction.
type Option func(*Config)

// Config is an immutable classifier configuration.
type Config struct {
	kinds         Kind
	grainExchange bool
	inversion     bool
	ops           []rotation.Matrix
	table         *csl.Table
	p, omega0     float64
	minimizer     []simplex.Option
	details       bool
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	c := Config{
		kinds:         DefaultKinds,
		grainExchange: DefaultGrainExchange,
		inversion:     DefaultInversion,
		ops:           symmetry.MustOperators(DefaultPointGroup),
		p:             csl.DefaultP,
		omega0:        csl.DefaultOmega0,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// Kinds returns the requested outputs.
func (c Config) Kinds() Kind { return c.kinds }

// CSL returns the coincidence table, or nil when the CSL check is off.
func (c Config) CSL() *csl.Table { return c.table }

// Operators returns the number of symmetry operators in use.
func (c Config) Operators() int { return len(c.ops) }

// WithKinds replaces the requested outputs.
func WithKinds(k Kind) Option {
	return func(c *Config) { c.kinds = k }
}

// WithGrainExchange toggles the transposed description.
func WithGrainExchange(on bool) Option {
	return func(c *Config) { c.grainExchange = on }
}

// WithInversion toggles the reversed-normal description.
func WithInversion(on bool) Option {
	return func(c *Config) { c.inversion = on }
}

// WithPointGroup selects the operator table of pg; it panics on an unknown
// label. Use symmetry.ParsePointGroup to validate untrusted input first.
func WithPointGroup(pg symmetry.PointGroup) Option {
	ops, err := symmetry.Operators(pg)
	if err != nil {
		panic(panicPointGroup)
	}

	return func(c *Config) { c.ops = ops }
}

// WithOperators installs an explicit operator table. It is not copied and
// must not be modified afterwards.
func WithOperators(ops []rotation.Matrix) Option {
	return func(c *Config) { c.ops = ops }
}

// WithCSL enables the CSL check against table with tolerance omega0/Σᵖ.
// CSLMatch is added to the requested kinds.
func WithCSL(table *csl.Table, p, omega0 float64) Option {
	if table == nil {
		panic(panicNilTable)
	}
	if math.IsNaN(p) || math.IsInf(p, 0) || !(omega0 > 0) {
		panic(panicBadBrandon)
	}

	return func(c *Config) {
		c.table = table
		c.p, c.omega0 = p, omega0
		c.kinds |= CSLMatch
	}
}

// WithMinimizer forwards options to every exact-distance minimization.
func WithMinimizer(opts ...simplex.Option) Option {
	return func(c *Config) { c.minimizer = append([]simplex.Option(nil), opts...) }
}

// WithDetails also records the nearest ideal boundary of each exact type.
func WithDetails(on bool) Option {
	return func(c *Config) { c.details = on }
}
