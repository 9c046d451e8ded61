// Package dual implements forward-mode automatic differentiation numbers
// for the finch analytics library.
//
// A Dual carries a scalar value and its first derivatives with respect to a
// named set of variables; a Dual2 additionally carries second derivatives.
// Values over different variable sets combine through ordinary arithmetic:
// every operation reconciles the two registries onto a common one first,
// zero-filling sensitivities a side never depended on.
package dual

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// gradTol is the absolute per-component tolerance used when comparing
// gradients and Hessians. Real parts compare exactly; accumulated
// sensitivities do not.
const gradTol = 1e-8

// Dual is a first-order dual number: a real value plus the gradient of that
// value with respect to the variables in its registry. Operations never
// mutate their operands; each returns a new value.
type Dual struct {
	real float64
	vars *Vars
	grad []float64
}

// New returns a Dual sensitive to names with every partial set to one.
// Duplicate names collapse to their first occurrence.
func New(real float64, names []string) Dual {
	v := NewVars(names...)
	return Dual{real: real, vars: v, grad: ones(v.Len())}
}

// NewWithGrad returns a Dual with an explicit gradient. An empty grad
// defaults to all ones; otherwise its length must equal the deduplicated
// variable count or the constructor fails with ErrInvalidLength.
func NewWithGrad(real float64, names []string, grad []float64) (Dual, error) {
	v := NewVars(names...)
	if len(grad) == 0 {
		return Dual{real: real, vars: v, grad: ones(v.Len())}, nil
	}
	if len(grad) != v.Len() {
		return Dual{}, fmt.Errorf("dual.NewWithGrad: %w: %d gradient entries for %d variables",
			ErrInvalidLength, len(grad), v.Len())
	}
	g := make([]float64, len(grad))
	copy(g, grad)
	return Dual{real: real, vars: v, grad: g}, nil
}

// FromFloat lifts a plain scalar to a Dual with an empty variable set.
func FromFloat(f float64) Dual {
	return Dual{real: f, vars: NewVars()}
}

func ones(n int) []float64 {
	if n == 0 {
		return nil
	}
	g := make([]float64, n)
	for i := range g {
		g[i] = 1
	}
	return g
}

// Real returns the scalar value.
func (d Dual) Real() float64 { return d.real }

// Vars returns the variable registry handle. Use Names on the result for
// the ordered name list.
func (d Dual) Vars() *Vars { return d.vars }

// SharesVars reports whether both values reference the same registry
// instance. Callers use this to skip reconciliation on hot paths.
func (d Dual) SharesVars(o Dual) bool { return d.vars == o.vars }

// Grad returns the partial derivatives for the requested names, in request
// order. Names the value never depended on read as zero; asking for them is
// valid, not an error.
func (d Dual) Grad(names []string) []float64 {
	out := make([]float64, len(names))
	for i, name := range names {
		if j, ok := d.vars.Index(name); ok {
			out[i] = d.grad[j]
		}
	}
	return out
}

// Reindex re-expresses d over target, permuting and zero-padding the
// gradient. It returns d untouched only when target is d's own registry
// instance; any real reindex adopts target's registry pointer so later
// operations against holders of target hit the identity fast path.
func (d Dual) Reindex(target *Vars) Dual {
	if d.vars == target {
		return d
	}
	if d.vars.EqualValue(target) {
		return Dual{real: d.real, vars: target, grad: d.grad}
	}
	m := target.mapFrom(d.vars)
	g := make([]float64, target.Len())
	for j, src := range m {
		if src >= 0 {
			g[j] = d.grad[src]
		}
	}
	return Dual{real: d.real, vars: target, grad: g}
}

// alignDuals returns both operands expressed over a common registry, using
// the cheapest path the relation classifier allows.
func alignDuals(a, b Dual) (Dual, Dual) {
	switch relation(a.vars, b.vars) {
	case varsIdentical:
		return a, b
	case varsEqualValue, varsSuperset:
		return a, b.Reindex(a.vars)
	case varsSubset:
		return a.Reindex(b.vars), b
	default:
		u := a.vars.Union(b.vars)
		return a.Reindex(u), b.Reindex(u)
	}
}

// Add returns d + o after reconciling variable sets.
func (d Dual) Add(o Dual) Dual {
	a, b := alignDuals(d, o)
	g := make([]float64, len(a.grad))
	floats.AddTo(g, a.grad, b.grad)
	return Dual{real: a.real + b.real, vars: a.vars, grad: g}
}

// Sub returns d - o after reconciling variable sets.
func (d Dual) Sub(o Dual) Dual {
	a, b := alignDuals(d, o)
	g := make([]float64, len(a.grad))
	floats.SubTo(g, a.grad, b.grad)
	return Dual{real: a.real - b.real, vars: a.vars, grad: g}
}

// Mul returns d * o. The gradient follows the product rule.
func (d Dual) Mul(o Dual) Dual {
	a, b := alignDuals(d, o)
	g := make([]float64, len(a.grad))
	floats.ScaleTo(g, b.real, a.grad)
	floats.AddScaled(g, a.real, b.grad)
	return Dual{real: a.real * b.real, vars: a.vars, grad: g}
}

// Div returns d / o, implemented as d * o^-1.
func (d Dual) Div(o Dual) Dual {
	return d.Mul(o.Pow(-1))
}

// AddFloat returns d + f. The gradient and registry are untouched.
func (d Dual) AddFloat(f float64) Dual {
	return Dual{real: d.real + f, vars: d.vars, grad: d.grad}
}

// SubFloat returns d - f.
func (d Dual) SubFloat(f float64) Dual {
	return Dual{real: d.real - f, vars: d.vars, grad: d.grad}
}

// MulFloat returns d * f, scaling the real part and every partial.
func (d Dual) MulFloat(f float64) Dual {
	g := make([]float64, len(d.grad))
	floats.ScaleTo(g, f, d.grad)
	return Dual{real: d.real * f, vars: d.vars, grad: g}
}

// DivFloat returns d / f. Division by zero is not trapped; IEEE specials
// propagate.
func (d Dual) DivFloat(f float64) Dual {
	return d.MulFloat(1 / f)
}

// Neg returns -d.
func (d Dual) Neg() Dual {
	return d.MulFloat(-1)
}

// Pow returns d raised to the scalar exponent p, with the chain-rule factor
// p*real^(p-1) applied to every partial. A negative base with a fractional
// exponent yields NaN, as for math.Pow.
func (d Dual) Pow(p float64) Dual {
	c := p * math.Pow(d.real, p-1)
	g := make([]float64, len(d.grad))
	floats.ScaleTo(g, c, d.grad)
	return Dual{real: math.Pow(d.real, p), vars: d.vars, grad: g}
}

// Exp returns e^d.
func (d Dual) Exp() Dual {
	e := math.Exp(d.real)
	g := make([]float64, len(d.grad))
	floats.ScaleTo(g, e, d.grad)
	return Dual{real: e, vars: d.vars, grad: g}
}

// Log returns the natural logarithm of d. A non-positive real propagates
// NaN or -Inf rather than failing.
func (d Dual) Log() Dual {
	g := make([]float64, len(d.grad))
	floats.ScaleTo(g, 1/d.real, d.grad)
	return Dual{real: math.Log(d.real), vars: d.vars, grad: g}
}

// Abs returns the absolute value. At exactly zero the positive branch is
// taken, so the derivative factor there is +1.
func (d Dual) Abs() Dual {
	if d.real < 0 {
		return d.Neg()
	}
	return d
}

// Equal reports tolerant equality: after reconciliation the real parts must
// match exactly while gradient components compare within an absolute 1e-8.
// Values over different variable sets are equal only when every variable
// absent from one side has zero sensitivity on the other.
func (d Dual) Equal(o Dual) bool {
	a, b := alignDuals(d, o)
	if a.real != b.real {
		return false
	}
	for i := range a.grad {
		if !scalar.EqualWithinAbs(a.grad[i], b.grad[i], gradTol) {
			return false
		}
	}
	return true
}

// EqualFloat reports equality against a plain scalar: the real parts must
// match and every sensitivity must be zero within tolerance.
func (d Dual) EqualFloat(f float64) bool {
	return d.Equal(FromFloat(f))
}

// Cmp orders by real part only, returning -1, 0 or +1. Gradients play no
// role; this is a scalar-comparison convenience, not a mathematical order
// on multivariate quantities.
func (d Dual) Cmp(o Dual) int {
	return cmpFloat(d.real, o.real)
}

// CmpFloat orders d against a plain scalar by real part.
func (d Dual) CmpFloat(f float64) int {
	return cmpFloat(d.real, f)
}

// Less reports d < o by real part.
func (d Dual) Less(o Dual) bool { return d.real < o.real }

// LessEq reports d <= o by real part.
func (d Dual) LessEq(o Dual) bool { return d.real <= o.real }

// Greater reports d > o by real part.
func (d Dual) Greater(o Dual) bool { return d.real > o.real }

// GreaterEq reports d >= o by real part.
func (d Dual) GreaterEq(o Dual) bool { return d.real >= o.real }

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sum folds xs from the additive identity (zero value, empty variable set).
// The accumulator's variable set grows by union as each term is absorbed.
func Sum(xs []Dual) Dual {
	acc := FromFloat(0)
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}
