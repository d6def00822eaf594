// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/gbparams/characterize"
)

// Field is one column of an output record.
type Field int

// Fields in record order. The first twelve describe the input; the rest are
// computed.
const (
	LeftPhi1 Field = iota
	LeftPhi
	LeftPhi2
	RightPhi1
	RightPhi
	RightPhi2
	Polar
	Azimuth
	PhaseID
	PointGroup
	Area
	Faces
	TiltApprox
	TwistApprox
	SymmetricApprox
	Tilt180Approx
	TiltExact
	TwistExact
	SymmetricExact
	Tilt180Exact
	TiltComponent
	TwistComponent
	DisorientationAngle
	Sigma
	fieldCount
)

type fieldInfo struct {
	header string
	kind   characterize.Kind
	digits int // -1 for integers and labels
}

var fieldTable = [fieldCount]fieldInfo{
	LeftPhi1:            {"Left_phi1", 0, 4},
	LeftPhi:             {"Left_Phi", 0, 4},
	LeftPhi2:            {"Left_phi2", 0, 4},
	RightPhi1:           {"Right_phi1", 0, 4},
	RightPhi:            {"Right_Phi", 0, 4},
	RightPhi2:           {"Right_phi2", 0, 4},
	Polar:               {"Polar", 0, 4},
	Azimuth:             {"Azimuth", 0, 4},
	PhaseID:             {"PhaseId", 0, -1},
	PointGroup:          {"PointGroup", 0, -1},
	Area:                {"Area", 0, 8},
	Faces:               {"Faces", 0, -1},
	TiltApprox:          {"Tilt(Aprx)", characterize.TiltApprox, 4},
	TwistApprox:         {"Twist(Aprx)", characterize.TwistApprox, 4},
	SymmetricApprox:     {"Symmetric(Aprx)", characterize.SymmetricApprox, 4},
	Tilt180Approx:       {"180-tilt(Aprx)", characterize.Tilt180Approx, 4},
	TiltExact:           {"Tilt(AM)", characterize.TiltExact, 4},
	TwistExact:          {"Twist(AM)", characterize.TwistExact, 4},
	SymmetricExact:      {"Symmetric(AM)", characterize.SymmetricExact, 4},
	Tilt180Exact:        {"180-tilt(AM)", characterize.Tilt180Exact, 4},
	TiltComponent:       {"TiltCompnt", characterize.TiltComponent, 4},
	TwistComponent:      {"TwistCompnt", characterize.TwistComponent, 4},
	DisorientationAngle: {"DisorAngl", characterize.Disorientation, 4},
	Sigma:               {"Sigma", characterize.CSLMatch, -1},
}

// Fields returns every field in record order.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}

	return out
}

// Without returns fields with every occurrence of drop removed.
func Without(fields []Field, drop ...Field) []Field {
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if !slices.Contains(drop, f) {
			out = append(out, f)
		}
	}

	return out
}

// InputFields returns the fields copied from the request.
func InputFields() []Field { return Fields()[:TiltApprox] }

// ParseField maps a header label onto its Field.
func ParseField(header string) (Field, error) {
	for i, info := range fieldTable {
		if info.header == header {
			return Field(i), nil
		}
	}

	return 0, fmt.Errorf("ParseField(%q): %w", header, ErrUnknownField)
}

// Valid reports whether f is a known field.
func (f Field) Valid() bool { return f >= 0 && f < fieldCount }

// String returns the header label.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}

	return fieldTable[f].header
}

// Kind returns the classifier output backing f, or 0 for input fields.
func (f Field) Kind() characterize.Kind {
	if !f.Valid() {
		return 0
	}

	return fieldTable[f].kind
}

// Computed reports whether f is produced by the classifier.
func (f Field) Computed() bool { return f.Kind() != 0 }

// KindsOf returns the union of the classifier outputs needed by fields.
func KindsOf(fields []Field) characterize.Kind {
	var k characterize.Kind
	for _, f := range fields {
		k |= f.Kind()
	}

	return k
}

// Headers returns the header labels of fields.
func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.String()
	}

	return out
}

// round rounds x to the precision of f, half away from zero.
func (f Field) round(x float64) float64 {
	d := fieldTable[f].digits
	if d < 0 {
		return x
	}
	p := math.Pow10(d)

	return math.Round(x*p) / p
}
