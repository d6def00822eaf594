// SPDX-License-Identifier: MIT

package csl

import (
	"fmt"

	"github.com/katalvlaran/gbparams/rotation"
)

// Named is a conventional cubic CSL misorientation.
type Named struct {
	Name      string // e.g. "Σ13a"
	Sigma     int
	Direction [3]int // lattice direction of the axis
	Degrees   float64
}

// AxisAngle returns the misorientation as a unit axis and an angle in radians.
func (n Named) AxisAngle() rotation.AxisAngle {
	d := n.Direction
	axis, _ := rotation.NewUnitVector(float64(d[0]), float64(d[1]), float64(d[2]))

	return rotation.NewAxisAngle(axis, rotation.Rad(n.Degrees))
}

// String renders the label used in reports, e.g. "Σ3: (60.00°; [111])".
func (n Named) String() string {
	return fmt.Sprintf("%s: (%.2f°; [%d%d%d])", n.Name, n.Degrees, n.Direction[0], n.Direction[1], n.Direction[2])
}

var reference = []Named{
	{"Σ3", 3, [3]int{1, 1, 1}, 60},
	{"Σ5", 5, [3]int{1, 0, 0}, 36.8699},
	{"Σ7", 7, [3]int{1, 1, 1}, 38.2132},
	{"Σ9", 9, [3]int{1, 1, 0}, 38.9424},
	{"Σ11", 11, [3]int{1, 1, 0}, 50.4788},
	{"Σ13a", 13, [3]int{1, 0, 0}, 22.6199},
	{"Σ13b", 13, [3]int{1, 1, 1}, 27.7958},
	{"Σ15", 15, [3]int{2, 1, 0}, 48.1897},
	{"Σ17a", 17, [3]int{1, 0, 0}, 28.0725},
	{"Σ17b", 17, [3]int{2, 2, 1}, 61.9275},
	{"Σ19a", 19, [3]int{1, 1, 0}, 26.5254},
	{"Σ19b", 19, [3]int{1, 1, 1}, 46.8264},
	{"Σ21a", 21, [3]int{1, 1, 1}, 21.7868},
	{"Σ21b", 21, [3]int{2, 1, 1}, 44.4153},
	{"Σ23", 23, [3]int{3, 1, 1}, 40.4591},
	{"Σ25a", 25, [3]int{1, 0, 0}, 16.2602},
	{"Σ25b", 25, [3]int{3, 3, 1}, 51.6839},
	{"Σ27a", 27, [3]int{1, 1, 0}, 31.5863},
	{"Σ27b", 27, [3]int{2, 1, 0}, 35.4309},
	{"Σ29a", 29, [3]int{1, 0, 0}, 43.6028},
	{"Σ29b", 29, [3]int{2, 2, 1}, 46.3972},
	{"Σ31a", 31, [3]int{1, 1, 1}, 17.8966},
	{"Σ31b", 31, [3]int{2, 1, 1}, 52.2003},
	{"Σ39b", 39, [3]int{3, 2, 1}, 50.132},
}

// Reference returns the named cubic CSL misorientations in ascending Σ.
func Reference() []Named { return append([]Named(nil), reference...) }

// Lookup finds a named misorientation by its label ("Σ5" or "S5").
func Lookup(name string) (Named, bool) {
	for _, n := range reference {
		if n.Name == name || "S"+n.Name[len("Σ"):] == name {
			return n, true
		}
	}

	return Named{}, false
}
