// SPDX-License-Identifier: MIT

package gbcd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

// locationTol is the stereographic distance under which two locations
// coincide and the deviation from π accepted as a half turn (0.01°).
const locationTol = 0.00017

// Location is a characteristic boundary position in the upper hemisphere.
// Position is set for twist and symmetric locations; Zone for tilt ones.
type Location struct {
	Axis     rotation.Vector
	Position Planar
	Zone     []Planar
}

// Characteristic lists where the ideal boundaries of a fixed misorientation
// lie on the stereographic projection of the plane normal.
//
// Twist boundaries have their normal on a misorientation axis. Symmetric
// boundaries have it on the axis of a half-turn equivalent. Tilt and
// 180°-tilt boundaries lie on the zones of those axes.
type Characteristic struct {
	Twist     []Location
	Symmetric []Location
	Tilt      []Location
	Tilt180   []Location
}

// CharacteristicAxes finds the unique twist and symmetric axes of m over
// every C1·m·C2ᵗ of point group pg, expressed in the frame of the first
// crystal, and derives the tilt zones from them.
//
// Errors: symmetry.ErrUnknownPointGroup.
func CharacteristicAxes(m rotation.Matrix, pg symmetry.PointGroup) (Characteristic, error) {
	ops, err := symmetry.Operators(pg)
	if err != nil {
		return Characteristic{}, fmt.Errorf("CharacteristicAxes: %w", err)
	}

	var ch Characteristic
	for _, c1 := range ops {
		for _, c2 := range ops {
			var (
				aa   = rotation.AxisAngleOf(m.LeftMul(c1).MulT(c2))
				axis = aa.Axis.TransposedTransform(c1)
				half = math.Abs(math.Pi-aa.Angle) < locationTol
			)
			for _, a := range [2]rotation.Vector{axis, axis.Neg()} {
				loc, ok := locate(a)
				if !ok {
					continue
				}
				ch.Twist = appendUnique(ch.Twist, loc)
				if half {
					ch.Symmetric = appendUnique(ch.Symmetric, loc)
				}
			}
		}
	}

	ch.Tilt = zones(ch.Twist)
	ch.Tilt180 = zones(ch.Symmetric)

	return ch, nil
}

// locate projects axis when it lies in the upper hemisphere.
func locate(axis rotation.Vector) (Location, bool) {
	p := Point{Polar: rotation.Acos(axis[2]), Azimuth: math.Atan2(axis[1], axis[0])}
	if math.Tan(0.5*p.Polar) >= 1+locationTol {
		return Location{}, false
	}

	return Location{Axis: axis, Position: p.Stereographic()}, true
}

func appendUnique(list []Location, loc Location) []Location {
	for _, l := range list {
		if math.Abs(l.Position.X-loc.Position.X) < locationTol &&
			math.Abs(l.Position.Y-loc.Position.Y) < locationTol {
			return list
		}
	}

	return append(list, loc)
}

func zones(axes []Location) []Location {
	out := make([]Location, len(axes))
	for i, l := range axes {
		out[i] = Location{Axis: l.Axis, Zone: Zone(l.Axis)}
	}

	return out
}
