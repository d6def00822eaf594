// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gbparams/csl"
	"github.com/katalvlaran/gbparams/rotation"
)

var (
	cslLattice   string
	cslMaxSigma  int
	cslMu        int
	cslNu        int
	cslReference bool
)

// cslCmd lists a generated coincidence table
var cslCmd = &cobra.Command{
	Use:   "csl",
	Short: "List coincidence site lattice misorientations",
	Long: `List the CSL misorientations generated for a cubic lattice, or for a
hexagonal lattice with (c/a)² = mu/nu, up to a maximum Σ. With --reference the
named cubic misorientations (Σ3 … Σ39b) are listed instead.`,
	Example: `  gbparams csl --max-sigma 29
  gbparams csl --lattice hexagonal --mu 8 --nu 3 --max-sigma 25`,
	Args: cobra.NoArgs,
	RunE: runCSL,
}

func init() {
	f := cslCmd.Flags()
	f.StringVar(&cslLattice, "lattice", "cubic", "Lattice: cubic or hexagonal")
	f.IntVar(&cslMaxSigma, "max-sigma", 29, "Largest Σ to generate")
	f.IntVar(&cslMu, "mu", 8, "Hexagonal c² (integer ratio numerator)")
	f.IntVar(&cslNu, "nu", 3, "Hexagonal a² (integer ratio denominator)")
	f.BoolVar(&cslReference, "reference", false, "List the named reference misorientations")
}

type cslOut struct {
	Name  string  `yaml:"name,omitempty"`
	Sigma int     `yaml:"sigma"`
	Angle float64 `yaml:"angle_deg"`
	Axis  string  `yaml:"axis"`
}

func runCSL(cmd *cobra.Command, args []string) error {
	if cslReference {
		ref := csl.Reference()
		out := make([]cslOut, len(ref))
		for i, n := range ref {
			out[i] = cslOut{
				Name:  n.Name,
				Sigma: n.Sigma,
				Angle: n.Degrees,
				Axis:  fmt.Sprintf("[%d %d %d]", n.Direction[0], n.Direction[1], n.Direction[2]),
			}
		}

		return writeYAML(cmd.OutOrStdout(), out)
	}

	var (
		table *csl.Table
		err   error
	)
	switch cslLattice {
	case "cubic":
		table, err = csl.Cubic(cslMaxSigma)
	case "hexagonal":
		table, err = csl.Hexagonal(cslMaxSigma, cslMu, cslNu)
	default:
		return fmt.Errorf("--lattice: unknown lattice %q", cslLattice)
	}
	if err != nil {
		return err
	}

	out := make([]cslOut, table.Len())
	for i := range out {
		e := table.At(i)
		aa := rotation.AxisAngleOf(e.M)
		out[i] = cslOut{Sigma: e.Sigma, Angle: round4(rotation.Deg(aa.Angle)), Axis: direction(aa.Axis)}
	}

	return writeYAML(cmd.OutOrStdout(), out)
}
