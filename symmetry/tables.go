// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gbparams/rotation"
)

// h is √3/2, the recurring entry of the hexagonal and trigonal tables.
var h = 0.5 * math.Sqrt(3)

// cubicOps holds the 24 proper rotations of O (Laue class m3m).
var cubicOps = []rotation.Matrix{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 1, 0}, {0, 0, -1}, {-1, 0, 0}},
	{{0, -1, 0}, {0, 0, -1}, {1, 0, 0}},
	{{0, -1, 0}, {0, 0, 1}, {-1, 0, 0}},
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}},
	{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
	{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{0, 0, -1}, {1, 0, 0}, {0, -1, 0}},
	{{0, 0, 1}, {-1, 0, 0}, {0, -1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, 0, 1}, {0, -1, 0}, {1, 0, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
	{{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}},
	{{-1, 0, 0}, {0, 0, -1}, {0, -1, 0}},
}

// hexagonalOps holds the 12 proper rotations of D6 (Laue class 6/mmm).
var hexagonalOps = []rotation.Matrix{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{0.5, h, 0}, {-h, 0.5, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	{{-0.5, h, 0}, {-h, -0.5, 0}, {0, 0, 1}},
	{{0.5, -h, 0}, {-h, -0.5, 0}, {0, 0, -1}},
	{{0.5, h, 0}, {h, -0.5, 0}, {0, 0, -1}},
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	{{-0.5, -h, 0}, {-h, 0.5, 0}, {0, 0, -1}},
	{{-0.5, h, 0}, {h, 0.5, 0}, {0, 0, -1}},
	{{0.5, -h, 0}, {h, 0.5, 0}, {0, 0, 1}},
	{{-0.5, -h, 0}, {h, -0.5, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
}

// tetragonalOps holds the 8 proper rotations of D4 (Laue class 4/mmm).
var tetragonalOps = []rotation.Matrix{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
}

// trigonalOps holds the 6 proper rotations of D3 (Laue class -3m).
var trigonalOps = []rotation.Matrix{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-0.5, h, 0}, {-h, -0.5, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	{{-0.5, -h, 0}, {h, -0.5, 0}, {0, 0, 1}},
	{{-0.5, -h, 0}, {-h, 0.5, 0}, {0, 0, -1}},
	{{-0.5, h, 0}, {h, 0.5, 0}, {0, 0, -1}},
}

// orthorhombicOps holds the 4 proper rotations of D2 (Laue class mmm).
var orthorhombicOps = []rotation.Matrix{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
}

// monoclinicOps holds the 2 proper rotations of C2 (Laue class 2/m), diad along y.
var monoclinicOps = []rotation.Matrix{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}},
}

// triclinicOps holds the identity only.
var triclinicOps = []rotation.Matrix{
	{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
}

// table returns the shared (read-only) table for pg.
func table(pg PointGroup) ([]rotation.Matrix, error) {
	switch pg {
	case Cubic:
		return cubicOps, nil
	case Hexagonal:
		return hexagonalOps, nil
	case Tetragonal:
		return tetragonalOps, nil
	case Trigonal:
		return trigonalOps, nil
	case Orthorhombic:
		return orthorhombicOps, nil
	case Monoclinic:
		return monoclinicOps, nil
	case Triclinic:
		return triclinicOps, nil
	default:
		return nil, fmt.Errorf("Operators(%q): %w", string(pg), ErrUnknownPointGroup)
	}
}

// Operators returns a copy of the proper rotations of pg in their fixed order.
//
// Errors: ErrUnknownPointGroup.
// Complexity: O(|G|).
func Operators(pg PointGroup) ([]rotation.Matrix, error) {
	ops, err := table(pg)
	if err != nil {
		return nil, err
	}

	return append([]rotation.Matrix(nil), ops...), nil
}

// MustOperators is Operators for compile-time-known groups; it panics on an
// unknown label.
func MustOperators(pg PointGroup) []rotation.Matrix {
	ops, err := Operators(pg)
	if err != nil {
		panic(err)
	}

	return ops
}
