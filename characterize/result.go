// SPDX-License-Identifier: MIT

package characterize

import (
	"github.com/katalvlaran/gbparams/boundary"
	"github.com/katalvlaran/gbparams/csl"
	"github.com/katalvlaran/gbparams/distance"
	"github.com/katalvlaran/gbparams/rotation"
)

// Nearest describes the equivalent description and parameters at which an
// exact distance was attained.
type Nearest struct {
	Distance   float64   // radians
	Params     []float64 // minimizer output, see distance.Ideal
	Ideal      distance.Ideal
	Equivalent boundary.Boundary // the equivalent of the input that was measured
	C1, C2     rotation.Matrix
	Transposed bool
	Inverted   bool

	// Boundary is the ideal boundary at Params; set only with WithDetails.
	Boundary *boundary.Boundary
}

// Result holds every requested output. Only kinds present in Kinds are
// meaningful.
type Result struct {
	Kinds               Kind
	Nearest             map[distance.Type]Nearest
	Approx              map[distance.Type]float64
	TwistAngle          float64 // twist component Φ
	TiltAngle           float64 // tilt component
	Sigma               int     // 0 when no CSL entry matched
	CSL                 csl.Entry
	Multiplicity        int
	DisorientationAngle float64
}

// Exact returns the exact distance to t and whether it was computed.
func (r Result) Exact(t distance.Type) (float64, bool) {
	n, ok := r.Nearest[t]

	return n.Distance, ok
}
