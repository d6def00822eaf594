// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gbparams/boundary"
	"github.com/katalvlaran/gbparams/characterize"
	"github.com/katalvlaran/gbparams/csl"
	"github.com/katalvlaran/gbparams/distance"
	"github.com/katalvlaran/gbparams/evaluate"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

var (
	charLeft       []float64
	charRight      []float64
	charNormal     []float64
	charAxis       []float64
	charAngle      float64
	charPointGroup string
	charFields     []string
	charMaxSigma   int
	charDetails    bool
)

// characterizeCmd classifies one boundary
var characterizeCmd = &cobra.Command{
	Use:   "characterize",
	Short: "Classify a single boundary",
	Long: `Classify one boundary given either by the Euler angles of both grains and
the sample-frame normal (--left, --right, --normal) or by its misorientation
(--axis, --angle) and the normal in the frame of the first grain (--normal).`,
	Example: `  gbparams characterize --left 0,0,0 --right 30,0,0 --normal 0,0,1
  gbparams characterize --axis 1,1,1 --angle 60 --normal 1,1,1 --csl-max-sigma 29 --details`,
	Args: cobra.NoArgs,
	RunE: runCharacterize,
}

func init() {
	f := characterizeCmd.Flags()
	f.Float64SliceVar(&charLeft, "left", []float64{0, 0, 0}, "Bunge angles of the left grain (degrees)")
	f.Float64SliceVar(&charRight, "right", []float64{0, 0, 0}, "Bunge angles of the right grain (degrees)")
	f.Float64SliceVar(&charNormal, "normal", []float64{0, 0, 1}, "Boundary plane normal")
	f.Float64SliceVar(&charAxis, "axis", nil, "Misorientation axis (replaces --left/--right)")
	f.Float64Var(&charAngle, "angle", 0, "Misorientation angle (degrees)")
	f.StringVarP(&charPointGroup, "point-group", "g", string(symmetry.Cubic), "Laue class: m3m, 6/mmm, 4/mmm, -3m, mmm, 2/m, 1")
	f.StringSliceVar(&charFields, "fields", nil, "Output fields (default: all)")
	f.IntVar(&charMaxSigma, "csl-max-sigma", 0, "Match against the cubic CSL table up to this Σ (0 disables)")
	f.BoolVar(&charDetails, "details", false, "Also report the nearest ideal boundary of each type")
}

func runCharacterize(cmd *cobra.Command, args []string) error {
	pg, err := symmetry.ParsePointGroup(charPointGroup)
	if err != nil {
		return err
	}
	fields, err := parseFields(charFields)
	if err != nil {
		return err
	}
	req, err := characterizeRequest(pg)
	if err != nil {
		return err
	}

	var template []characterize.Option
	if charMaxSigma > 0 {
		table, err := csl.Cubic(charMaxSigma)
		if err != nil {
			return err
		}
		template = append(template, characterize.WithCSL(table, csl.DefaultP, csl.DefaultOmega0))
	}

	logger.Debug("Characterizing boundary",
		zap.String("point_group", pg.String()),
		zap.Int("fields", len(fields)))
	ev := evaluate.New(fields, template, evaluate.Options{Workers: 1, Logger: logger})
	rec := ev.EvaluateSequential([]evaluate.Request{req})[0]
	if rec.Err != nil {
		return rec.Err
	}
	if !charDetails {
		return writeYAML(cmd.OutOrStdout(), rec)
	}

	var b boundary.Boundary
	if req.Boundary != nil {
		b = *req.Boundary
	} else if b, err = boundary.FromEuler(req.Left, req.Right, req.Normal); err != nil {
		return err
	}
	cfg := characterize.NewConfig(append(template,
		characterize.WithPointGroup(pg),
		characterize.WithKinds(characterize.AllExact),
		characterize.WithDetails(true),
	)...)
	res := characterize.Characterize(cfg, b)

	return writeYAML(cmd.OutOrStdout(), struct {
		Record  evaluate.Record      `yaml:"record"`
		Nearest map[string]nearestOut `yaml:"nearest"`
	}{rec, nearestOf(res)})
}

// characterizeRequest builds the request from the flags.
func characterizeRequest(pg symmetry.PointGroup) (evaluate.Request, error) {
	normal, err := vector("normal", charNormal)
	if err != nil {
		return evaluate.Request{}, err
	}
	req := evaluate.Request{ID: "cli", Normal: normal, PointGroup: pg}
	if len(charAxis) > 0 {
		m, err := axisAngle(charAxis, charAngle)
		if err != nil {
			return evaluate.Request{}, err
		}
		b, err := boundary.New(m, normal)
		if err != nil {
			return evaluate.Request{}, err
		}
		req.Boundary = &b

		return req, nil
	}
	if req.Left, err = eulerDeg("left", charLeft); err != nil {
		return evaluate.Request{}, err
	}
	if req.Right, err = eulerDeg("right", charRight); err != nil {
		return evaluate.Request{}, err
	}

	return req, nil
}

// parseFields resolves --fields; Sigma is only available with --csl-max-sigma.
func parseFields(headers []string) ([]evaluate.Field, error) {
	if len(headers) == 0 {
		if charMaxSigma <= 0 {
			return evaluate.Without(evaluate.Fields(), evaluate.Sigma), nil
		}

		return evaluate.Fields(), nil
	}
	out := make([]evaluate.Field, len(headers))
	for i, h := range headers {
		f, err := evaluate.ParseField(h)
		if err != nil {
			return nil, fmt.Errorf("--fields: %w", err)
		}
		if f == evaluate.Sigma && charMaxSigma <= 0 {
			return nil, fmt.Errorf("--fields: Sigma requires --csl-max-sigma")
		}
		out[i] = f
	}

	return out, nil
}

type nearestOut struct {
	Distance   float64 `yaml:"distance_deg"`
	Ideal      string  `yaml:"ideal"`
	Transposed bool    `yaml:"transposed"`
	Inverted   bool    `yaml:"inverted"`
	Boundary   string  `yaml:"boundary,omitempty"`
}

func nearestOf(res characterize.Result) map[string]nearestOut {
	out := make(map[string]nearestOut, len(res.Nearest))
	for _, t := range distance.Types() {
		n, ok := res.Nearest[t]
		if !ok {
			continue
		}
		o := nearestOut{
			Distance:   round4(rotation.Deg(n.Distance)),
			Ideal:      n.Ideal.Name,
			Transposed: n.Transposed,
			Inverted:   n.Inverted,
		}
		if n.Boundary != nil {
			o.Boundary = n.Boundary.String()
		}
		out[t.String()] = o
	}

	return out
}
