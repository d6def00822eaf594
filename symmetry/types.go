// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"

	"github.com/katalvlaran/gbparams/rotation"
)

// PointGroup is a Laue class label as it appears in input records.
type PointGroup string

// Supported point groups.
const (
	Cubic        PointGroup = "m3m"
	Hexagonal    PointGroup = "6/mmm"
	Tetragonal   PointGroup = "4/mmm"
	Trigonal     PointGroup = "-3m"
	Orthorhombic PointGroup = "mmm"
	Monoclinic   PointGroup = "2/m"
	Triclinic    PointGroup = "1"
)

// pointGroups lists the groups in documented order.
var pointGroups = []PointGroup{Cubic, Hexagonal, Tetragonal, Trigonal, Orthorhombic, Monoclinic, Triclinic}

// PointGroups returns every supported group, highest symmetry first.
func PointGroups() []PointGroup {
	return append([]PointGroup(nil), pointGroups...)
}

// ParsePointGroup maps a label onto a PointGroup.
func ParsePointGroup(label string) (PointGroup, error) {
	var pg PointGroup
	for _, pg = range pointGroups {
		if string(pg) == label {
			return pg, nil
		}
	}

	return "", fmt.Errorf("ParsePointGroup(%q): %w", label, ErrUnknownPointGroup)
}

// String returns the label.
func (pg PointGroup) String() string { return string(pg) }

// Operator is one element of the symmetry group of a misorientation together
// with its rotation axis, angle and fold (2 for a diad, 3 for a triad, …).
type Operator struct {
	Matrix       rotation.Matrix
	Axis         rotation.Vector
	Angle        float64
	Multiplicity int
}

// Axis is a symmetry axis of a misorientation in the upper hemisphere.
type Axis struct {
	Direction    rotation.Vector
	Multiplicity int
}
