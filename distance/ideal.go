// SPDX-License-Identifier: MIT

package distance

// Type is a family of ideal boundaries.
type Type int

// Boundary types in report order.
const (
	Twist Type = iota
	Tilt
	Symmetric
	Tilt180
)

var typeNames = [...]string{"twist", "tilt", "symmetric", "180-tilt"}

// Types returns every type in report order.
func Types() []Type { return []Type{Twist, Tilt, Symmetric, Tilt180} }

// String returns the lower-case type label.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}

	return typeNames[t]
}

// Ideal describes how an ideal boundary is built from a parameter vector.
type Ideal struct {
	Name          string
	Type          Type
	AxisSign      float64 // m1′ = AxisSign·axis unless TiltNormal
	FixedHalfTurn bool    // angle fixed at π instead of a free parameter
	TiltNormal    bool    // m1′ ⟂ axis with a free azimuth
}

// The six ideal descriptors.
var (
	TwistPositive     = Ideal{Name: "twist+", Type: Twist, AxisSign: 1}
	TwistNegative     = Ideal{Name: "twist-", Type: Twist, AxisSign: -1}
	TiltIdeal         = Ideal{Name: "tilt", Type: Tilt, AxisSign: 1, TiltNormal: true}
	SymmetricPositive = Ideal{Name: "symmetric+", Type: Symmetric, AxisSign: 1, FixedHalfTurn: true}
	SymmetricNegative = Ideal{Name: "symmetric-", Type: Symmetric, AxisSign: -1, FixedHalfTurn: true}
	Tilt180Ideal      = Ideal{Name: "180-tilt", Type: Tilt180, AxisSign: 1, FixedHalfTurn: true, TiltNormal: true}
)

// Variants returns the descriptors minimized for t. Axis-sign ambiguous
// types have two; the smaller minimum wins.
func Variants(t Type) []Ideal {
	switch t {
	case Twist:
		return []Ideal{TwistPositive, TwistNegative}
	case Tilt:
		return []Ideal{TiltIdeal}
	case Symmetric:
		return []Ideal{SymmetricPositive, SymmetricNegative}
	case Tilt180:
		return []Ideal{Tilt180Ideal}
	default:
		return nil
	}
}

// Dim returns the parameter-vector length.
func (d Ideal) Dim() int {
	n := 3
	if d.FixedHalfTurn {
		n--
	}
	if d.TiltNormal {
		n++
	}

	return n
}
