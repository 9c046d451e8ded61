// Copyright 2026 Finch Quant. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation for the
// Finch quantitative library.
//
// # Overview
//
// A Dual carries a value together with its first derivatives against a set
// of named variables; a Dual2 additionally carries second derivatives.
// Arithmetic on these types propagates derivatives exactly, so any
// computation written against them yields gradients (and Hessians) with no
// bumping and no approximation error:
//   - Dual: value plus gradient
//   - Dual2: value plus gradient plus Hessian
//   - Number: a closed union over {float64, Dual, Dual2} for order-generic code
//
// # Basic Usage
//
//	import "github.com/finch-quant/finch/dual"
//
//	func main() {
//	    x := dual.New(2.0, []string{"x"})
//	    y := dual.New(3.0, []string{"y"})
//
//	    z := x.Mul(y).Add(x)                  // z = x*y + x
//	    fmt.Println(z.Real())                 // 8
//	    fmt.Println(z.Grad([]string{"x"}))    // [4]  (y + 1)
//	    fmt.Println(z.Grad([]string{"y"}))    // [2]  (x)
//	}
//
// # Variable Registries
//
// Each value points to an ordered, deduplicated variable registry.
// Operations combining two values reconcile their registries automatically:
// matching registries are kept (sharing the same allocation wherever
// possible), subsets are upgraded, and disjoint sets are unioned. Gradient
// entries always follow the registry order.
//
// # Second Order
//
// Dual2 stores half the true second derivative internally; extraction
// through Grad2 returns the full symmetric Hessian. GradManifold restricts
// the gradient of a gradient to a chosen variable subset for staged
// second-order work.
//
// # Mixing Orders
//
// Number lifts plain scalars to either dual variant on demand. Combining a
// Dual with a Dual2 through Number operations fails with ErrTypeMismatch
// rather than silently discarding second-order information.
package dual
