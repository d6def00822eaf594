package symmetry_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

// ExampleStabilizer counts the symmetries of the Σ3 twin misorientation:
// two triads about [111] and three diads perpendicular to it.
func ExampleStabilizer() {
	axis, _ := rotation.NewUnitVector(1, 1, 1)
	m := rotation.NewAxisAngle(axis, math.Pi/3).Matrix()

	ops, err := symmetry.Stabilizer(m, symmetry.Cubic, false)
	if err != nil {
		panic(err)
	}
	folds := map[int]int{}
	for _, op := range ops {
		folds[op.Multiplicity]++
	}
	fmt.Println(len(ops), folds)
	// Output: 5 map[2:3 3:2]
}

// ExampleDisorientation reduces 109.47° about [110] to the 60° twin angle.
func ExampleDisorientation() {
	axis, _ := rotation.NewUnitVector(1, 1, 0)
	m := rotation.NewAxisAngle(axis, math.Acos(-1.0/3)).Matrix()

	d, _ := symmetry.Disorientation(m, symmetry.Cubic)
	fmt.Printf("%.2f°\n", rotation.Deg(d))
	// Output: 60.00°
}
