// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gbparams/rotation"
)

// writeYAML encodes v as one YAML document.
func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return enc.Close()
}

// vector converts a flag of three components.
func vector(flag string, v []float64) (rotation.Vector, error) {
	if len(v) != 3 {
		return rotation.Vector{}, fmt.Errorf("--%s: want 3 components, got %d", flag, len(v))
	}

	return rotation.Vector{v[0], v[1], v[2]}, nil
}

// eulerDeg converts a flag of three Bunge angles in degrees.
func eulerDeg(flag string, v []float64) (rotation.Euler, error) {
	if len(v) != 3 {
		return rotation.Euler{}, fmt.Errorf("--%s: want phi1,Phi,phi2, got %d values", flag, len(v))
	}

	return rotation.Euler{Phi1: rotation.Rad(v[0]), Phi: rotation.Rad(v[1]), Phi2: rotation.Rad(v[2])}, nil
}

// axisAngle builds a misorientation from an axis flag and an angle in degrees.
func axisAngle(axis []float64, deg float64) (rotation.Matrix, error) {
	v, err := vector("axis", axis)
	if err != nil {
		return rotation.Matrix{}, err
	}
	n, err := v.Normalize()
	if err != nil {
		return rotation.Matrix{}, fmt.Errorf("--axis: %w", err)
	}

	return rotation.NewAxisAngle(n, rotation.Rad(deg)).Matrix(), nil
}

// direction renders a unit vector rounded to 4 digits.
func direction(v rotation.Vector) string {
	parts := make([]string, 3)
	for i, x := range v {
		parts[i] = strconv.FormatFloat(round4(x), 'f', -1, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// round4 rounds to 4 digits; adding zero turns −0 into 0.
func round4(x float64) float64 { return math.Round(x*1e4)/1e4 + 0 }
