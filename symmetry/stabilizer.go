// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gbparams/rotation"
)

const (
	// eqTol is the component tolerance for matrix identity inside group searches.
	eqTol = 1e-5

	// minAngle (≈0.01°) separates the identity from genuine symmetry operations.
	minAngle = 0.00017

	// maxGroupOrder bounds the closure. No finite subgroup generated by the
	// tables and one grain exchange exceeds twice the cubic order.
	maxGroupOrder = 2 * 24 * 2
)

// Group returns the closed set of rotations that map the misorientation m
// onto itself, identity included.
//
// Implementation:
//   - Stage 1: every pair (C1, C2) of operators of pg is tested; C1 is kept
//     when C1·m·C2ᵗ = m. With allowTranspose, a pair satisfying
//     C1·mᵗ·C2ᵗ = m contributes m·C2, the grain-exchange symmetry.
//   - Stage 2: the set is closed under left and right products of its own
//     elements, repeating until a pass adds nothing.
//
// Errors: ErrUnknownPointGroup, ErrClosureOverflow.
// Complexity: O(|G|²) for Stage 1, O(k³) per closure pass for k elements.
func Group(m rotation.Matrix, pg PointGroup, allowTranspose bool) ([]rotation.Matrix, error) {
	ops, err := table(pg)
	if err != nil {
		return nil, err
	}

	// Stage 1: pair search.
	var (
		found  []rotation.Matrix
		mt     = m.T()
		c1, c2 rotation.Matrix
	)
	for _, c1 = range ops {
		for _, c2 = range ops {
			if c1.Mul(m).MulT(c2).EqualWithin(m, eqTol) && !contains(found, c1) {
				found = append(found, c1)
			}
			if allowTranspose && c1.Mul(mt).MulT(c2).EqualWithin(m, eqTol) {
				if mc := m.Mul(c2); !contains(found, mc) {
					found = append(found, mc)
				}
			}
		}
	}

	// Stage 2: closure.
	var (
		added    = true
		snapshot []rotation.Matrix
		g1, g2   rotation.Matrix
	)
	for added {
		added = false
		snapshot = append(snapshot[:0], found...)
		for _, g1 = range snapshot {
			for _, g2 = range snapshot {
				for _, p := range [2]rotation.Matrix{g1.Mul(g2), g2.Mul(g1)} {
					if !contains(found, p) {
						found = append(found, p)
						added = true
					}
				}
			}
		}
		if len(found) > maxGroupOrder {
			return nil, fmt.Errorf("Group(%s): %d elements: %w", pg, len(found), ErrClosureOverflow)
		}
	}

	return found, nil
}

// Stabilizer returns the non-identity elements of Group(m, pg,
// allowTranspose) with their axis, angle and multiplicity
// round(2π/angle). The identity is left out, so the stabilizer of the
// identity in m3m has 23 operators; use Group for the full closed set.
//
// Errors: those of Group.
func Stabilizer(m rotation.Matrix, pg PointGroup, allowTranspose bool) ([]Operator, error) {
	group, err := Group(m, pg, allowTranspose)
	if err != nil {
		return nil, err
	}
	var out = make([]Operator, 0, len(group))
	for _, g := range group {
		aa := rotation.AxisAngleOf(g)
		if math.Abs(aa.Angle) <= minAngle {
			continue
		}
		out = append(out, Operator{
			Matrix:       g,
			Axis:         aa.Axis,
			Angle:        aa.Angle,
			Multiplicity: int(math.Round(rotation.TwoPi / aa.Angle)),
		})
	}

	return out, nil
}

// Axes lists the axes of ops in the upper hemisphere (z > −0.01°). Each
// operator contributes its axis and the opposite one when they qualify, so
// equatorial axes appear twice, as they do on a stereographic projection.
func Axes(ops []Operator) []Axis {
	var out []Axis
	for _, op := range ops {
		if op.Axis[2] > -minAngle {
			out = append(out, Axis{Direction: op.Axis, Multiplicity: op.Multiplicity})
		}
		if neg := op.Axis.Neg(); neg[2] > -minAngle {
			out = append(out, Axis{Direction: neg, Multiplicity: op.Multiplicity})
		}
	}

	return out
}

// contains reports whether l holds a matrix equal to m within eqTol.
func contains(l []rotation.Matrix, m rotation.Matrix) bool {
	for _, r := range l {
		if r.EqualWithin(m, eqTol) {
			return true
		}
	}

	return false
}
