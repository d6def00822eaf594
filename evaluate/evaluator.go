// SPDX-License-Identifier: MIT

package evaluate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gbparams/boundary"
	"github.com/katalvlaran/gbparams/characterize"
	"github.com/katalvlaran/gbparams/distance"
	"github.com/katalvlaran/gbparams/rotation"
	"github.com/katalvlaran/gbparams/symmetry"
)

// Evaluator classifies requests and extracts a fixed set of fields. It holds
// no per-run state and may be shared.
type Evaluator struct {
	fields   []Field
	kinds    characterize.Kind
	template []characterize.Option
	tables   map[symmetry.PointGroup][]rotation.Matrix
	opts     Options
}

// New returns an Evaluator producing fields in the given order. template is
// applied to every per-request configuration after the kinds implied by the
// fields and before the request's point group; it must not set kinds.
//
// Panics when a field is invalid, or when Sigma is requested and template
// installs no CSL table (see characterize.WithCSL).
func New(fields []Field, template []characterize.Option, opts Options) *Evaluator {
	for _, f := range fields {
		if !f.Valid() {
			panic(fmt.Sprintf("evaluate: New: invalid field %d", int(f)))
		}
	}
	kinds := KindsOf(fields)
	if kinds.Has(characterize.CSLMatch) && characterize.NewConfig(template...).CSL() == nil {
		panic(panicSigmaWithoutCSL)
	}
	tables := make(map[symmetry.PointGroup][]rotation.Matrix)
	for _, pg := range symmetry.PointGroups() {
		tables[pg] = symmetry.MustOperators(pg)
	}

	return &Evaluator{
		fields:   append([]Field(nil), fields...),
		kinds:    kinds,
		template: append([]characterize.Option(nil), template...),
		tables:   tables,
		opts:     opts.withDefaults(),
	}
}

// Fields returns the output fields in record order.
func (e *Evaluator) Fields() []Field { return append([]Field(nil), e.fields...) }

// Evaluate classifies reqs concurrently and returns one record per request
// in request order. On cancellation it returns the records of the completed
// batches together with the context error.
func (e *Evaluator) Evaluate(ctx context.Context, reqs []Request) ([]Record, error) {
	out := make([]Record, 0, len(reqs))
	err := e.Each(ctx, reqs, func(batch []Record) error {
		out = append(out, batch...)

		return nil
	})

	return out, err
}

// Each classifies reqs concurrently and hands every completed batch, in
// request order, to sink. A sink error stops the run and is returned.
func (e *Evaluator) Each(ctx context.Context, reqs []Request, sink func([]Record) error) error {
	var (
		runID  = uuid.NewString()
		log    = e.opts.Logger.With(zap.String("run", runID))
		start  = time.Now()
		failed int
	)
	log.Info("Evaluation started",
		zap.Int("requests", len(reqs)),
		zap.Int("workers", e.opts.Workers),
		zap.Int("batch_size", e.opts.BatchSize),
		zap.Stringer("kinds", e.kinds))

	slots := make([]Record, len(reqs))
	for lo := 0; lo < len(reqs); lo += e.opts.BatchSize {
		if err := ctx.Err(); err != nil {
			log.Warn("Evaluation cancelled", zap.Int("completed", lo), zap.Error(err))

			return err
		}
		hi := min(lo+e.opts.BatchSize, len(reqs))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.opts.Workers)
		for i := lo; i < hi; i++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				slots[i] = e.evaluate(i, reqs[i])

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Warn("Evaluation cancelled", zap.Int("completed", lo), zap.Error(err))

			return err
		}

		for i := lo; i < hi; i++ {
			if slots[i].Err != nil {
				failed++
				log.Warn("Record failed",
					zap.Int("index", i),
					zap.String("id", slots[i].ID),
					zap.Error(slots[i].Err))
			}
		}
		log.Debug("Batch processed", zap.Int("from", lo), zap.Int("to", hi))

		if err := sink(slots[lo:hi]); err != nil {
			return err
		}
	}

	log.Info("Evaluation finished",
		zap.Int("records", len(reqs)),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

// EvaluateSequential is the single-goroutine reference path.
func (e *Evaluator) EvaluateSequential(reqs []Request) []Record {
	out := make([]Record, len(reqs))
	for i, req := range reqs {
		out[i] = e.evaluate(i, req)
	}

	return out
}

// evaluate classifies one request; failures are captured in Record.Err.
func (e *Evaluator) evaluate(index int, req Request) (rec Record) {
	rec = Record{ID: req.ID, Index: index}
	defer func() {
		if p := recover(); p != nil {
			rec.Values = nil
			rec.Err = fmt.Errorf("%w: %v", ErrPanic, p)
		}
	}()

	ops, ok := e.tables[req.PointGroup]
	if !ok {
		_, err := symmetry.ParsePointGroup(string(req.PointGroup))
		rec.Err = err

		return rec
	}
	b, normal, err := e.boundary(req)
	if err != nil {
		rec.Err = err

		return rec
	}

	var res characterize.Result
	if e.kinds != 0 {
		opts := make([]characterize.Option, 0, len(e.template)+2)
		opts = append(opts, characterize.WithKinds(e.kinds))
		opts = append(opts, e.template...)
		opts = append(opts, characterize.WithOperators(ops))
		res = characterize.Characterize(characterize.NewConfig(opts...), b)
	}

	rec.Values = make([]Value, len(e.fields))
	for i, f := range e.fields {
		rec.Values[i] = extract(f, req, normal, res)
	}

	return rec
}

// boundary resolves the request into a boundary and its sample normal.
func (e *Evaluator) boundary(req Request) (boundary.Boundary, rotation.Vector, error) {
	if req.Boundary != nil {
		return *req.Boundary, req.Boundary.M1(), nil
	}
	b, err := boundary.FromEuler(req.Left, req.Right, req.Normal)
	if err != nil {
		return boundary.Boundary{}, rotation.Vector{}, fmt.Errorf("request %q: %w", req.ID, err)
	}
	n, _ := req.Normal.Normalize() // FromEuler succeeded, so Normal is non-zero

	return b, n, nil
}

// extract reads one field from the request or the result.
func extract(f Field, req Request, normal rotation.Vector, res characterize.Result) Value {
	v := Value{Field: f}
	var x float64
	switch f {
	case LeftPhi1:
		x = req.Left.Phi1
	case LeftPhi:
		x = req.Left.Phi
	case LeftPhi2:
		x = req.Left.Phi2
	case RightPhi1:
		x = req.Right.Phi1
	case RightPhi:
		x = req.Right.Phi
	case RightPhi2:
		x = req.Right.Phi2
	case Polar:
		x = normal.Zenith()
	case Azimuth:
		x = normal.Azimuth()
	case PhaseID:
		x = float64(req.PhaseID)
	case PointGroup:
		v.Text = req.PointGroup.String()

		return v
	case Area:
		x = req.Area
	case Faces:
		x = float64(req.Faces)
	case TiltApprox:
		x = res.Approx[distance.Tilt]
	case TwistApprox:
		x = res.Approx[distance.Twist]
	case SymmetricApprox:
		x = res.Approx[distance.Symmetric]
	case Tilt180Approx:
		x = res.Approx[distance.Tilt180]
	case TiltExact:
		x, _ = res.Exact(distance.Tilt)
	case TwistExact:
		x, _ = res.Exact(distance.Twist)
	case SymmetricExact:
		x, _ = res.Exact(distance.Symmetric)
	case Tilt180Exact:
		x, _ = res.Exact(distance.Tilt180)
	case TiltComponent:
		x = res.TiltAngle
	case TwistComponent:
		x = res.TwistAngle
	case DisorientationAngle:
		x = res.DisorientationAngle
	case Sigma:
		x = float64(res.Sigma)
	}
	v.Number = f.round(x)

	return v
}
