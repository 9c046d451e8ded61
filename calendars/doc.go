// Copyright 2026 Finch Quant. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package calendars provides holiday calendars and financial date
// arithmetic for the Finch quantitative library.
//
// # Overview
//
// The package models business days through two calendar types and a set of
// rolling operations over them:
//   - Cal: a holiday list plus a week mask of non-working weekdays
//   - UnionCal: several calendars combined, optionally with separate
//     settlement calendars
//   - Adjust, AddBusDays, BusDateRange: rolling and arithmetic under the
//     usual market conventions
//   - DCF: day count fractions (ACT365F, ACT360, 30/360, 1)
//
// # Basic Usage
//
//	import "github.com/finch-quant/finch/calendars"
//
//	func main() {
//	    cal, _ := calendars.Get("ldn")
//
//	    d := calendars.Date(2024, 3, 30) // Saturday
//	    calendars.Adjust(cal, d, calendars.ModifiedFollowing)
//	    // 2024-03-29: following would cross into April
//
//	    settled, _ := calendars.AddBusDays(cal, calendars.Date(2024, 3, 28), 2, true)
//	    _ = settled
//	}
//
// # Named Calendars
//
// Get resolves built-in calendars by name: "all" (no holidays, every day a
// working day), "bus" (weekends only), "tgt" (TARGET euro), "ldn" (UK bank
// holidays) and "nyc" (Federal Reserve). Comma-separated names union the
// calendars, and a pipe adds settlement calendars: "ldn,tgt" or "tgt|nyc".
// Holiday lists are generated from the published rules for 1970 through
// 2100.
//
// # Settlement
//
// A UnionCal distinguishes days on which trading is possible from days on
// which an associated currency can settle. Business day arithmetic takes a
// settlement flag: when enforced, landing dates roll on until settlement
// is allowed.
package calendars
