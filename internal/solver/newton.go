package solver

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/finch-quant/finch/internal/curves"
	"github.com/finch-quant/finch/internal/dual"
)

// Instrument is anything whose mispricing against a curve can be measured.
// A calibrated curve drives every instrument's residual to zero.
type Instrument interface {
	Residual(c *curves.Curve) (dual.Number, error)
}

// Deposit is a simple deposit: it prices as the curve's period rate from
// Start to End and its residual is the distance to the target rate, as a
// fraction.
type Deposit struct {
	Start  time.Time
	End    time.Time
	Target float64
}

// Residual implements Instrument.
func (d Deposit) Residual(c *curves.Curve) (dual.Number, error) {
	r, err := c.Rate(d.Start, d.End)
	if err != nil {
		return dual.Number{}, err
	}
	return r.Sub(dual.Scalar(d.Target))
}

// Config carries the Newton iteration controls.
type Config struct {
	// Tolerance is the residual 2-norm below which iteration stops.
	Tolerance float64
	// MaxIter bounds the number of Newton steps.
	MaxIter int
}

// DefaultConfig returns the standard iteration controls.
func DefaultConfig() Config {
	return Config{Tolerance: 1e-12, MaxIter: 30}
}

// Calibrator fits a curve's node values to a set of instruments by Newton
// iteration, using the exact Jacobian from first-order AD. The first curve
// node is held fixed as the anchor, so the instrument count must equal the
// remaining node count.
type Calibrator struct {
	curve *curves.Curve
	insts []Instrument
	cfg   Config
}

// NewCalibrator pairs a curve with its calibration instruments.
func NewCalibrator(curve *curves.Curve, insts []Instrument, cfg Config) (*Calibrator, error) {
	free := len(curve.Nodes()) - 1
	if len(insts) != free {
		return nil, fmt.Errorf("solver.NewCalibrator: %w: %d instruments for %d free nodes",
			ErrDimension, len(insts), free)
	}
	def := DefaultConfig()
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = def.Tolerance
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = def.MaxIter
	}
	return &Calibrator{curve: curve, insts: insts, cfg: cfg}, nil
}

// Result reports how a calibration finished.
type Result struct {
	// Iterations is the number of Newton steps taken.
	Iterations int
	// Residual is the final residual 2-norm.
	Residual float64
}

// Solve iterates node updates until every instrument residual vanishes.
// The curve is left at first order, so its values carry per-node
// sensitivities for risk afterwards.
func (cl *Calibrator) Solve() (Result, error) {
	if err := cl.curve.SetADOrder(dual.OrderOne); err != nil {
		return Result{}, err
	}
	names := cl.curve.VarNames()[1:]
	n := len(names)
	jac := mat.NewDense(n, n, nil)
	f := make([]float64, n)
	rhs := mat.NewVecDense(n, nil)

	for iter := 0; ; iter++ {
		for i, inst := range cl.insts {
			res, err := inst.Residual(cl.curve)
			if err != nil {
				return Result{}, err
			}
			f[i] = res.Real()
			jac.SetRow(i, res.Grad(names))
		}
		norm := floats.Norm(f, 2)
		if norm < cl.cfg.Tolerance {
			return Result{Iterations: iter, Residual: norm}, nil
		}
		if iter == cl.cfg.MaxIter {
			return Result{}, fmt.Errorf("solver.Solve: %w: %d steps, residual %g",
				ErrNoConvergence, iter, norm)
		}

		for i, v := range f {
			rhs.SetVec(i, -v)
		}
		var dx mat.VecDense
		if err := dx.SolveVec(jac, rhs); err != nil {
			return Result{}, fmt.Errorf("solver.Solve: jacobian solve: %w", err)
		}
		nodes := cl.curve.Nodes()
		for j := 0; j < n; j++ {
			next := nodes[j+1].Value.Real() + dx.AtVec(j)
			if err := cl.curve.UpdateNode(j+1, next); err != nil {
				return Result{}, err
			}
		}
	}
}
