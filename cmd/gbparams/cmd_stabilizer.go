// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gbparams/gbcd"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

var (
	misAxis        []float64
	misAngle       float64
	misPointGroup  string
	stabTranspose  bool
	characterZones bool
)

// stabilizerCmd lists the symmetry operations that fix a misorientation
var stabilizerCmd = &cobra.Command{
	Use:   "stabilizer",
	Short: "List the symmetry operations that map a misorientation onto itself",
	Example: `  gbparams stabilizer --axis 1,1,1 --angle 60
  gbparams stabilizer --axis 1,1,1 --angle 60 --grain-exchange=false`,
	Args: cobra.NoArgs,
	RunE: runStabilizer,
}

// characteristicCmd locates the ideal boundaries of a misorientation
var characteristicCmd = &cobra.Command{
	Use:   "characteristic",
	Short: "Locate twist, symmetric and tilt boundaries of a misorientation",
	Long: `Report the stereographic positions of the pure twist and symmetric
boundaries of a fixed misorientation, the axes whose zones hold its tilt and
180°-tilt boundaries, and the symmetry axes of its normal distribution.`,
	Example: `  gbparams characteristic --axis 1,1,1 --angle 60 --zones`,
	Args:    cobra.NoArgs,
	RunE:    runCharacteristic,
}

func init() {
	for _, c := range []*cobra.Command{stabilizerCmd, characteristicCmd} {
		f := c.Flags()
		f.Float64SliceVar(&misAxis, "axis", []float64{0, 0, 1}, "Misorientation axis")
		f.Float64Var(&misAngle, "angle", 0, "Misorientation angle (degrees)")
		f.StringVarP(&misPointGroup, "point-group", "g", string(symmetry.Cubic), "Laue class")
	}
	stabilizerCmd.Flags().BoolVar(&stabTranspose, "grain-exchange", true, "Include grain-exchange symmetries")
	characteristicCmd.Flags().BoolVar(&characterZones, "zones", false, "Include sampled zone circles")
}

type operatorOut struct {
	Axis  string  `yaml:"axis"`
	Angle float64 `yaml:"angle_deg"`
	Fold  int     `yaml:"fold"`
}

func runStabilizer(cmd *cobra.Command, args []string) error {
	m, pg, err := misorientationFlags()
	if err != nil {
		return err
	}
	ops, err := symmetry.Stabilizer(m, pg, stabTranspose)
	if err != nil {
		return err
	}

	out := struct {
		Order     int           `yaml:"order"`
		Operators []operatorOut `yaml:"operators"`
	}{Order: len(ops) + 1, Operators: make([]operatorOut, len(ops))}
	for i, op := range ops {
		out.Operators[i] = operatorOut{
			Axis:  direction(op.Axis),
			Angle: round4(rotation.Deg(op.Angle)),
			Fold:  op.Multiplicity,
		}
	}

	return writeYAML(cmd.OutOrStdout(), out)
}

type locationOut struct {
	Axis string       `yaml:"axis"`
	X    float64      `yaml:"x,omitempty"`
	Y    float64      `yaml:"y,omitempty"`
	Zone [][2]float64 `yaml:"zone,omitempty,flow"`
}

type axisOut struct {
	Axis string `yaml:"axis"`
	Fold int    `yaml:"fold"`
}

func runCharacteristic(cmd *cobra.Command, args []string) error {
	m, pg, err := misorientationFlags()
	if err != nil {
		return err
	}
	ch, err := gbcd.CharacteristicAxes(m, pg)
	if err != nil {
		return err
	}
	sym, err := gbcd.SymmetriesOf(m, pg)
	if err != nil {
		return err
	}

	out := struct {
		Twist     []locationOut `yaml:"twist"`
		Symmetric []locationOut `yaml:"symmetric"`
		Tilt      []locationOut `yaml:"tilt"`
		Tilt180   []locationOut `yaml:"tilt180"`
		Axes      []axisOut     `yaml:"symmetry_axes"`
	}{
		Twist:     locations(ch.Twist),
		Symmetric: locations(ch.Symmetric),
		Tilt:      locations(ch.Tilt),
		Tilt180:   locations(ch.Tilt180),
	}
	for _, a := range sym.Axes {
		out.Axes = append(out.Axes, axisOut{Axis: direction(a.Direction), Fold: a.Multiplicity})
	}

	return writeYAML(cmd.OutOrStdout(), out)
}

func misorientationFlags() (rotation.Matrix, symmetry.PointGroup, error) {
	pg, err := symmetry.ParsePointGroup(misPointGroup)
	if err != nil {
		return rotation.Matrix{}, "", err
	}
	m, err := axisAngle(misAxis, misAngle)

	return m, pg, err
}

func locations(ls []gbcd.Location) []locationOut {
	out := make([]locationOut, len(ls))
	for i, l := range ls {
		out[i] = locationOut{Axis: direction(l.Axis), X: round4(l.Position.X), Y: round4(l.Position.Y)}
		if characterZones {
			for _, p := range l.Zone {
				out[i].Zone = append(out[i].Zone, [2]float64{round4(p.X), round4(p.Y)})
			}
		}
	}

	return out
}
