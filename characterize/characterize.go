// SPDX-License-Identifier: MIT

package characterize

import (
	"math"

	"github.com/katalvlaran/gbparams/boundary"
	"github.com/katalvlaran/gbparams/distance"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/simplex"
)

const (
	// perpendicularTol is |axis·m1| below which the rotation is a pure tilt.
	perpendicularTol = 1e-3

	// coincidenceTol is the component tolerance for multiplicity counting.
	coincidenceTol = 1e-3
)

// running holds the minima accumulated across equivalents.
type running struct {
	exact    map[distance.Type]Nearest // Distance holds the squared value
	approx   [4]float64                // twist and tilt plain, the others squared
	twist    float64
	tilt     float64
	sigma    int
	entryIdx int
	disor    float64
	mult     int
}

// Characterize classifies b under cfg.
//
// Implementation:
//   - Stage 1: enumerate transpose × invert × C1 × C2 and derive each
//     equivalent boundary B with its axis-angle pair.
//   - Stage 2: update the running minimum of every requested kind from B.
//   - Stage 3: take square roots of the squared minima.
//
// Complexity: O(4·|G|²) equivalents; each exact kind adds one or two
// Nelder–Mead runs per equivalent.
//
// Panics when the configured operator table is empty.
func Characterize(cfg Config, b boundary.Boundary) Result {
	if len(cfg.ops) == 0 {
		panic(panicNoOperators)
	}

	var (
		inf = math.Inf(1)
		acc = running{
			exact:    make(map[distance.Type]Nearest),
			approx:   [4]float64{inf, inf, inf, inf},
			twist:    inf,
			tilt:     inf,
			entryIdx: -1,
			disor:    inf,
		}
		transposes = []bool{false}
		inverts    = []bool{false}
	)
	if cfg.grainExchange {
		transposes = append(transposes, true)
	}
	if cfg.inversion {
		inverts = append(inverts, true)
	}

	// Stage 1: enumeration.
	for _, tr := range transposes {
		base := b
		if tr {
			base = base.Transpose()
		}
		for _, inv := range inverts {
			src := base
			if inv {
				src = src.Invert()
			}
			for _, c1 := range cfg.ops {
				for _, c2 := range cfg.ops {
					eq := src.ApplySymmetry(c1, c2)
					// Stage 2: accumulate.
					acc.visit(cfg, b, eq, equivalence{c1: c1, c2: c2, transposed: tr, inverted: inv})
				}
			}
		}
	}

	// Stage 3: report.
	return acc.result(cfg)
}

// equivalence records how an equivalent was derived.
type equivalence struct {
	c1, c2               rotation.Matrix
	transposed, inverted bool
}

func (acc *running) visit(cfg Config, b0, eq boundary.Boundary, how equivalence) {
	var (
		k  = cfg.kinds
		aa = rotation.AxisAngleOf(eq.M())
		m1 = eq.M1()
	)

	if k.Any(AllExact) {
		for _, t := range distance.Types() {
			if k.Has(ExactKind(t)) {
				acc.minimize(cfg, t, eq, aa, how)
			}
		}
	}

	if k.Any(AllApprox) {
		var (
			alpha  = rotation.Acos(math.Abs(aa.Axis.Dot(m1)))
			perp   = math.Pi/2 - alpha
			dw     = math.Pi - aa.Angle
			dwSq   = dw * dw
			values = [4]float64{alpha, perp, alpha*alpha + dwSq, perp*perp + dwSq}
		)
		for i, v := range values {
			if v < acc.approx[i] {
				acc.approx[i] = v
			}
		}
	}

	if k.Any(AllComponents) {
		twist, tilt := components(aa, m1)
		acc.twist = math.Min(acc.twist, twist)
		acc.tilt = math.Min(acc.tilt, tilt)
	}

	if k.Has(CSLMatch) && cfg.table != nil {
		if sigma, idx, ok := match(cfg, eq.M()); ok && (acc.entryIdx < 0 || idx < acc.entryIdx) {
			acc.entryIdx, acc.sigma = idx, sigma
		}
	}

	if k.Has(Disorientation) && aa.Angle < acc.disor {
		acc.disor = aa.Angle
	}

	if eq.EqualWithin(b0, coincidenceTol) {
		acc.mult++
	}
}

// minimize runs every variant of t on eq and keeps the smallest value.
func (acc *running) minimize(cfg Config, t distance.Type, eq boundary.Boundary, aa rotation.AxisAngle, how equivalence) {
	for _, ideal := range distance.Variants(t) {
		o := distance.NewObjective(ideal, eq)
		res := simplex.Minimize(o.Value, o.Seed(aa), cfg.minimizer...)
		cur, seen := acc.exact[t]
		if seen && !(res.Value < cur.Distance) {
			continue
		}
		n := Nearest{
			Distance:   res.Value,
			Params:     res.X,
			Ideal:      ideal,
			Equivalent: eq,
			C1:         how.c1,
			C2:         how.c2,
			Transposed: how.transposed,
			Inverted:   how.inverted,
		}
		if cfg.details {
			if ib, err := o.Nearest(res.X); err == nil {
				n.Boundary = &ib
			}
		}
		acc.exact[t] = n
	}
}

// components splits the rotation into its twist angle Φ and tilt angle.
func components(aa rotation.AxisAngle, m1 rotation.Vector) (twist, tilt float64) {
	dot := aa.Axis.Dot(m1)
	if math.Abs(dot) < perpendicularTol {
		return 0, aa.Angle
	}
	var (
		alpha = rotation.Acos(dot)
		tg    = math.Tan(alpha)
		half  = 0.5 * aa.Angle
		c     = math.Cos(half)
	)
	twist = 2 * math.Asin(math.Sin(half)/math.Sqrt(1+tg*tg*c*c))
	tilt = 2 * math.Asin(math.Sin(alpha)*math.Sin(half))

	return twist, tilt
}

// match returns Σ and the table index of the first entry containing m.
func match(cfg Config, m rotation.Matrix) (int, int, bool) {
	for i := 0; i < cfg.table.Len(); i++ {
		e := cfg.table.At(i)
		if m.AngleTo(e.M) < cfg.omega0/math.Pow(float64(e.Sigma), cfg.p) {
			return e.Sigma, i, true
		}
	}

	return 0, -1, false
}

func (acc *running) result(cfg Config) Result {
	k := cfg.kinds
	r := Result{Kinds: k, Multiplicity: acc.mult}

	if k.Any(AllExact) {
		r.Nearest = make(map[distance.Type]Nearest, len(acc.exact))
		for t, n := range acc.exact {
			n.Distance = math.Sqrt(n.Distance)
			r.Nearest[t] = n
		}
	}
	if k.Any(AllApprox) {
		r.Approx = make(map[distance.Type]float64, 4)
		for _, t := range distance.Types() {
			if !k.Has(ApproxKind(t)) {
				continue
			}
			v := acc.approx[t]
			if t == distance.Symmetric || t == distance.Tilt180 {
				v = math.Sqrt(v)
			}
			r.Approx[t] = v
		}
	}
	if k.Has(TwistComponent) {
		r.TwistAngle = acc.twist
	}
	if k.Has(TiltComponent) {
		r.TiltAngle = acc.tilt
	}
	if acc.entryIdx >= 0 {
		r.Sigma = acc.sigma
		r.CSL = cfg.table.At(acc.entryIdx)
	}
	if k.Has(Disorientation) {
		r.DisorientationAngle = acc.disor
	}

	return r
}
