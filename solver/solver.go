// Copyright 2026 Finch Quant. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/finch-quant/finch/curves"
	"github.com/finch-quant/finch/internal/solver"
)

// Type aliases for public API

// Num is the arithmetic constraint for Solve; dual.Dual and dual.Dual2
// both satisfy it.
type Num[T any] interface {
	solver.Num[T]
}

// Instrument is anything whose mispricing against a curve can be
// measured.
type Instrument = solver.Instrument

// Deposit is the simplest calibration instrument: a period rate against a
// target.
type Deposit = solver.Deposit

// Calibrator fits a curve's node values to a set of instruments.
type Calibrator = solver.Calibrator

// Config carries the Newton iteration controls.
type Config = solver.Config

// Result reports how a calibration finished.
type Result = solver.Result

// Common errors.
var (
	ErrShape         = solver.ErrShape
	ErrSingular      = solver.ErrSingular
	ErrDimension     = solver.ErrDimension
	ErrNoConvergence = solver.ErrNoConvergence
)

// Solve solves the square system a·x = b by Gauss-Jordan elimination with
// partial pivoting, carrying any dual sensitivities through the solution.
func Solve[T Num[T]](a [][]T, b []T) ([]T, error) {
	return solver.Solve(a, b)
}

// NewCalibrator pairs a curve with its calibration instruments.
func NewCalibrator(curve *curves.Curve, insts []Instrument, cfg Config) (*Calibrator, error) {
	return solver.NewCalibrator(curve, insts, cfg)
}

// DefaultConfig returns the standard iteration controls.
func DefaultConfig() Config {
	return solver.DefaultConfig()
}
