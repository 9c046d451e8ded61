// Copyright 2026 Finch Quant. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package curves

import (
	"time"

	"github.com/finch-quant/finch/internal/curves"
)

// Type aliases for public API

// Curve interpolates discount factors between sorted dated nodes.
type Curve = curves.Curve

// Node is one dated curve value.
type Node = curves.Node

// Config carries the curve construction options.
type Config = curves.Config

// Interpolation selects how values between curve nodes are computed.
type Interpolation = curves.Interpolation

// Interpolation constants.
const (
	LogLinear      Interpolation = curves.LogLinear
	Linear         Interpolation = curves.Linear
	LinearZeroRate Interpolation = curves.LinearZeroRate
)

// Common errors.
var (
	ErrTooFewNodes      = curves.ErrTooFewNodes
	ErrDuplicateNode    = curves.ErrDuplicateNode
	ErrBeforeFirstNode  = curves.ErrBeforeFirstNode
	ErrBadInterpolation = curves.ErrBadInterpolation
	ErrBadRatePeriod    = curves.ErrBadRatePeriod
)

// New builds a curve from date keyed discount factors. At least two nodes
// are required.
//
// Example:
//
//	c, err := curves.New(map[time.Time]float64{
//	    calendars.Date(2026, 1, 1): 1.00,
//	    calendars.Date(2027, 1, 1): 0.97,
//	}, curves.DefaultConfig())
func New(nodes map[time.Time]float64, cfg Config) (*Curve, error) {
	return curves.New(nodes, cfg)
}

// DefaultConfig returns the conventional discount curve setup: log-linear
// interpolation, no holidays, Act365F.
func DefaultConfig() Config {
	return curves.DefaultConfig()
}

// ParseInterpolation reads the configuration names: log_linear, linear,
// linear_zero_rate.
func ParseInterpolation(s string) (Interpolation, error) {
	return curves.ParseInterpolation(s)
}
