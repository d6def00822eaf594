// SPDX-License-Identifier: MIT

package characterize

import (
	"strings"

	"github.com/katalvlaran/gbparams/distance"
)

// Kind is a set of requested outputs.
type Kind uint32

// Output kinds.
const (
	TwistExact Kind = 1 << iota
	TiltExact
	SymmetricExact
	Tilt180Exact
	TwistApprox
	TiltApprox
	SymmetricApprox
	Tilt180Approx
	TwistComponent
	TiltComponent
	CSLMatch
	Disorientation
)

// Common sets.
const (
	AllExact      = TwistExact | TiltExact | SymmetricExact | Tilt180Exact
	AllApprox     = TwistApprox | TiltApprox | SymmetricApprox | Tilt180Approx
	AllComponents = TwistComponent | TiltComponent
	AllKinds      = AllExact | AllApprox | AllComponents | CSLMatch | Disorientation
)

var kindNames = [...]string{
	"twist-exact", "tilt-exact", "symmetric-exact", "180-tilt-exact",
	"twist-approx", "tilt-approx", "symmetric-approx", "180-tilt-approx",
	"twist-component", "tilt-component", "csl", "disorientation",
}

// Has reports whether every bit of o is set in k.
func (k Kind) Has(o Kind) bool { return k&o == o }

// Any reports whether k and o share a bit.
func (k Kind) Any(o Kind) bool { return k&o != 0 }

// String lists the set bits joined by "|".
func (k Kind) String() string {
	var parts []string
	for i, name := range kindNames {
		if k&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// ParseKind maps a label produced by String back onto a single Kind.
func ParseKind(label string) (Kind, bool) {
	for i, name := range kindNames {
		if name == label {
			return 1 << i, true
		}
	}

	return 0, false
}

// ExactKind returns the exact-distance kind of t.
func ExactKind(t distance.Type) Kind { return TwistExact << t }

// ApproxKind returns the approximate-distance kind of t.
func ApproxKind(t distance.Type) Kind { return TwistApprox << t }
