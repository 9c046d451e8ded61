// Copyright 2026 Finch Quant. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package solver provides linear solving over dual numbers and Newton
// calibration of curves for the Finch quantitative library.
//
// # Overview
//
//   - Solve: Gauss-Jordan elimination generic over dual.Dual and
//     dual.Dual2, so sensitivities propagate through linear systems
//   - Calibrator: Newton iteration fitting curve nodes to market
//     instruments, with the exact Jacobian taken from first-order AD
//   - Deposit: the simplest calibration instrument
//
// # Basic Usage
//
//	import (
//	    "github.com/finch-quant/finch/calendars"
//	    "github.com/finch-quant/finch/curves"
//	    "github.com/finch-quant/finch/solver"
//	)
//
//	func main() {
//	    c, _ := curves.New(map[time.Time]float64{
//	        calendars.Date(2026, 1, 1): 1.0,
//	        calendars.Date(2027, 1, 1): 1.0,
//	    }, curves.DefaultConfig())
//
//	    cal, _ := solver.NewCalibrator(c, []solver.Instrument{
//	        solver.Deposit{
//	            Start:  calendars.Date(2026, 1, 1),
//	            End:    calendars.Date(2027, 1, 1),
//	            Target: 0.05,
//	        },
//	    }, solver.DefaultConfig())
//
//	    res, err := cal.Solve()
//	    _, _ = res, err
//	}
//
// After calibration the curve is left at first order: instrument values
// read from it carry exact sensitivities to every curve node, which is the
// raw material for delta risk.
package solver
