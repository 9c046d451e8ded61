// Copyright 2026 Finch Quant. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/finch-quant/finch/internal/dual"
)

// Type aliases for public API

// Dual is a first-order dual number: a real value and its partial
// derivatives against an ordered set of named variables.
type Dual = dual.Dual

// Dual2 is a second-order dual number, extending Dual with a Hessian.
type Dual2 = dual.Dual2

// Number is a closed union over {float64, Dual, Dual2} for code that works
// at any AD order.
type Number = dual.Number

// Vars is an ordered, deduplicated variable registry shared between
// values.
type Vars = dual.Vars

// ADOrder selects how many derivative orders a value carries.
type ADOrder = dual.ADOrder

// AD order constants.
const (
	OrderZero ADOrder = dual.OrderZero
	OrderOne  ADOrder = dual.OrderOne
	OrderTwo  ADOrder = dual.OrderTwo
)

// Common errors.
var (
	ErrInvalidLength = dual.ErrInvalidLength
	ErrTypeMismatch  = dual.ErrTypeMismatch
)

// Construction

// New creates a Dual sensitive to the named variables with unit partials.
//
// Example:
//
//	x := dual.New(2.5, []string{"x"})
func New(real float64, names []string) Dual {
	return dual.New(real, names)
}

// NewWithGrad creates a Dual with explicit partials. The gradient length
// must match the deduplicated variable count.
func NewWithGrad(real float64, names []string, grad []float64) (Dual, error) {
	return dual.NewWithGrad(real, names, grad)
}

// FromFloat creates a constant Dual with no variables.
func FromFloat(f float64) Dual {
	return dual.FromFloat(f)
}

// New2 creates a Dual2 sensitive to the named variables with unit partials
// and a zero Hessian.
func New2(real float64, names []string) Dual2 {
	return dual.New2(real, names)
}

// New2WithGrad creates a Dual2 with explicit partials and Hessian. The
// Hessian is given row-major at half the true second derivative, the form
// Grad2 doubles on extraction.
func New2WithGrad(real float64, names []string, grad, hess []float64) (Dual2, error) {
	return dual.New2WithGrad(real, names, grad, hess)
}

// FromFloat2 creates a constant Dual2 with no variables.
func FromFloat2(f float64) Dual2 {
	return dual.FromFloat2(f)
}

// Scalar wraps a plain float64 as a Number.
func Scalar(f float64) Number {
	return dual.Scalar(f)
}

// NewVars builds a variable registry, deduplicating names and keeping the
// first occurrence order.
func NewVars(names ...string) *Vars {
	return dual.NewVars(names...)
}

// Aggregation

// Sum adds Duals, reconciling variable registries pairwise.
func Sum(xs []Dual) Dual {
	return dual.Sum(xs)
}

// Sum2 adds Dual2s, reconciling variable registries pairwise.
func Sum2(xs []Dual2) Dual2 {
	return dual.Sum2(xs)
}

// SumNumbers adds Numbers, failing on the first Dual/Dual2 pairing.
func SumNumbers(ns []Number) (Number, error) {
	return dual.SumNumbers(ns)
}
