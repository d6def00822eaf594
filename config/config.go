// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gbparams/csl"
	"github.com/katalvlaran/gbparams/evaluate"
	"github.com/katalvlaran/gbparams/symmetry"
)

// defaultOmega0 is csl.DefaultOmega0 in degrees.
const defaultOmega0 = 15

// validate is shared; validator caches struct metadata.
var validate = validator.New()

// Job is a decoded job file.
type Job struct {
	PointGroup    string     `yaml:"point_group" validate:"required,oneof=m3m 6/mmm 4/mmm -3m mmm 2/m 1"`
	Fields        []string   `yaml:"fields" validate:"dive,required"`
	GrainExchange *bool      `yaml:"grain_exchange"`
	Inversion     *bool      `yaml:"inversion"`
	CSL           *CSL       `yaml:"csl"`
	Minimizer     Minimizer  `yaml:"minimizer"`
	Workers       int        `yaml:"workers" validate:"gte=0"`
	BatchSize     int        `yaml:"batch_size" validate:"gte=0"`
	Boundaries    []Boundary `yaml:"boundaries" validate:"dive"`
	Sweep         *Sweep     `yaml:"sweep"`
}

// CSL selects a generated coincidence table and the Brandon-type tolerance
// ω0/Σᵖ. Zero P and Omega0 select the defaults 0.5 and 15°.
type CSL struct {
	Lattice  string  `yaml:"lattice" validate:"required,oneof=cubic hexagonal"`
	MaxSigma int     `yaml:"max_sigma" validate:"gte=1,lte=200"`
	P        float64 `yaml:"p" validate:"gte=0,lte=1"`
	Omega0   float64 `yaml:"omega0" validate:"gt=0,lte=90"` // degrees
	Mu       int     `yaml:"mu" validate:"required_if=Lattice hexagonal,gte=0"`
	Nu       int     `yaml:"nu" validate:"required_if=Lattice hexagonal,gte=0"`
}

// Minimizer overrides the exact-distance minimizer; zero keeps the default.
type Minimizer struct {
	MaxIterations int     `yaml:"max_iterations" validate:"gte=0"`
	RelTol        float64 `yaml:"rel_tol" validate:"gte=0"`
	AbsTol        float64 `yaml:"abs_tol" validate:"gte=0"`
}

// Boundary is one request: Bunge angles of both grains and the sample-frame
// normal.
type Boundary struct {
	ID      string     `yaml:"id"`
	Left    [3]float64 `yaml:"left"`  // degrees
	Right   [3]float64 `yaml:"right"` // degrees
	Normal  [3]float64 `yaml:"normal"`
	PhaseID int        `yaml:"phase_id" validate:"gte=0"`
	Area    float64    `yaml:"area" validate:"gte=0"`
	Faces   int        `yaml:"faces" validate:"gte=0"`
}

// Sweep fixes the misorientation as an axis-angle pair and sizes the
// hemisphere grid.
type Sweep struct {
	Axis   [3]float64 `yaml:"axis"`
	Angle  float64    `yaml:"angle" validate:"gte=0,lte=180"` // degrees
	Points int        `yaml:"points" validate:"gte=2"`
}

// Load reads and parses the job file at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a job, applies defaults and validates it.
//
// Errors: ErrInvalidJob wrapping the decoder, validator or field error.
func Parse(data []byte) (*Job, error) {
	var j Job
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	j.applyDefaults()
	if err := validate.Struct(&j); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if _, err := j.OutputFields(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}

	return &j, nil
}

func (j *Job) applyDefaults() {
	if j.PointGroup == "" {
		j.PointGroup = string(symmetry.Cubic)
	}
	if c := j.CSL; c != nil {
		if c.P == 0 {
			c.P = csl.DefaultP
		}
		if c.Omega0 == 0 {
			c.Omega0 = defaultOmega0
		}
	}
}

// Group returns the validated point group.
func (j *Job) Group() symmetry.PointGroup { return symmetry.PointGroup(j.PointGroup) }

// OutputFields resolves the field headers. An empty list selects every field,
// leaving out Sigma when the job has no csl section.
//
// Errors: evaluate.ErrUnknownField, ErrSigmaWithoutCSL.
func (j *Job) OutputFields() ([]evaluate.Field, error) {
	if len(j.Fields) == 0 {
		if j.CSL == nil {
			return evaluate.Without(evaluate.Fields(), evaluate.Sigma), nil
		}

		return evaluate.Fields(), nil
	}
	out := make([]evaluate.Field, len(j.Fields))
	for i, h := range j.Fields {
		f, err := evaluate.ParseField(h)
		if err != nil {
			return nil, err
		}
		if f == evaluate.Sigma && j.CSL == nil {
			return nil, ErrSigmaWithoutCSL
		}
		out[i] = f
	}

	return out, nil
}
