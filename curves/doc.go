// Copyright 2026 Finch Quant. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package curves provides discount factor curves for the Finch
// quantitative library.
//
// # Overview
//
// A Curve holds dated nodes and interpolates between them in one of three
// spaces:
//   - log_linear: piecewise-constant forward rates (the default)
//   - linear: straight lines through node values
//   - linear_zero_rate: straight lines through implied zero rates
//
// Dates beyond the final node extrapolate the last segment; dates before
// the first node are an error.
//
// # Basic Usage
//
//	import (
//	    "github.com/finch-quant/finch/calendars"
//	    "github.com/finch-quant/finch/curves"
//	)
//
//	func main() {
//	    c, _ := curves.New(map[time.Time]float64{
//	        calendars.Date(2026, 1, 1): 1.00,
//	        calendars.Date(2027, 1, 1): 0.97,
//	        calendars.Date(2028, 1, 1): 0.94,
//	    }, curves.DefaultConfig())
//
//	    df, _ := c.Value(calendars.Date(2026, 7, 1))
//	    r, _ := c.Rate(calendars.Date(2026, 1, 1), calendars.Date(2027, 1, 1))
//	    _, _ = df, r
//	}
//
// # Sensitivities
//
// Node values are AD-aware Numbers. After SetADOrder(dual.OrderOne) every
// node becomes an independent variable named "<id><index>", and curve
// outputs carry exact per-node derivatives; dual.OrderTwo adds Hessians.
// This is what calibration and risk in the solver package build on.
package curves
