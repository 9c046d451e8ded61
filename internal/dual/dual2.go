package dual

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Dual2 is a second-order dual number: a real value, its gradient, and a
// symmetric Hessian, all indexed against one variable registry. The Hessian
// is stored row-major at half the true second derivative, the convention
// every chain rule below maintains; Grad2 doubles it on extraction so the
// externally visible matrix is the literal d2f/dxi dxj.
type Dual2 struct {
	real float64
	vars *Vars
	grad []float64
	hess []float64 // row-major n*n
}

// New2 returns a Dual2 sensitive to names with every partial set to one and
// a zero Hessian. Duplicate names collapse to their first occurrence.
func New2(real float64, names []string) Dual2 {
	v := NewVars(names...)
	return Dual2{real: real, vars: v, grad: ones(v.Len()), hess: zeros(v.Len() * v.Len())}
}

// New2WithGrad returns a Dual2 with an explicit gradient and Hessian. Empty
// slices default to all ones and all zeros respectively; otherwise grad must
// have one entry per deduplicated variable and hess n*n entries in row-major
// order, or the constructor fails with ErrInvalidLength. The supplied
// Hessian is taken in the stored half-value convention and is expected to
// be symmetric.
func New2WithGrad(real float64, names []string, grad, hess []float64) (Dual2, error) {
	v := NewVars(names...)
	n := v.Len()
	d := Dual2{real: real, vars: v}
	switch {
	case len(grad) == 0:
		d.grad = ones(n)
	case len(grad) != n:
		return Dual2{}, fmt.Errorf("dual.New2WithGrad: %w: %d gradient entries for %d variables",
			ErrInvalidLength, len(grad), n)
	default:
		d.grad = make([]float64, n)
		copy(d.grad, grad)
	}
	switch {
	case len(hess) == 0:
		d.hess = zeros(n * n)
	case len(hess) != n*n:
		return Dual2{}, fmt.Errorf("dual.New2WithGrad: %w: %d Hessian entries for %d variables (want %d)",
			ErrInvalidLength, len(hess), n, n*n)
	default:
		d.hess = make([]float64, n*n)
		copy(d.hess, hess)
	}
	return d, nil
}

// FromFloat2 lifts a plain scalar to a Dual2 with an empty variable set.
func FromFloat2(f float64) Dual2 {
	return Dual2{real: f, vars: NewVars()}
}

// ToDual2 upgrades d to second order with a zero Hessian.
func (d Dual) ToDual2() Dual2 {
	n := d.vars.Len()
	return Dual2{real: d.real, vars: d.vars, grad: d.grad, hess: zeros(n * n)}
}

// ToDual drops the Hessian, keeping the gradient and registry. The loss is
// intentional, used when a computation no longer needs curvature.
func (d Dual2) ToDual() Dual {
	return Dual{real: d.real, vars: d.vars, grad: d.grad}
}

func zeros(n int) []float64 {
	if n == 0 {
		return nil
	}
	return make([]float64, n)
}

// Real returns the scalar value.
func (d Dual2) Real() float64 { return d.real }

// Vars returns the variable registry handle.
func (d Dual2) Vars() *Vars { return d.vars }

// SharesVars reports whether both values reference the same registry
// instance.
func (d Dual2) SharesVars(o Dual2) bool { return d.vars == o.vars }

// Grad returns the partial derivatives for the requested names, zero-filled
// where a name is absent from the registry.
func (d Dual2) Grad(names []string) []float64 {
	out := make([]float64, len(names))
	for i, name := range names {
		if j, ok := d.vars.Index(name); ok {
			out[i] = d.grad[j]
		}
	}
	return out
}

// Grad2 returns the Hessian over the requested names, doubled out of the
// stored convention so entries are true second derivatives. Absent names
// contribute zero rows and columns. With no names requested the empty
// matrix is returned.
func (d Dual2) Grad2(names []string) *mat.SymDense {
	k := len(names)
	if k == 0 {
		return &mat.SymDense{}
	}
	idx := make([]int, k)
	for i, name := range names {
		if j, ok := d.vars.Index(name); ok {
			idx[i] = j
		} else {
			idx[i] = -1
		}
	}
	n := d.vars.Len()
	out := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			if idx[i] >= 0 && idx[j] >= 0 {
				out.SetSym(i, j, 2*d.hess[idx[i]*n+idx[j]])
			}
		}
	}
	return out
}

// GradManifold re-expresses second derivatives as first derivatives of
// first derivatives: for each requested name it returns a value whose real
// part is that name's gradient component and whose gradient is the doubled
// Hessian row restricted to the requested names, with a zero second-order
// component. The returned values share one registry built from names.
func (d Dual2) GradManifold(names []string) []Dual2 {
	shared := NewVars(names...)
	k := shared.Len()
	n := d.vars.Len()
	out := make([]Dual2, len(names))
	for i, name := range names {
		row := Dual2{vars: shared, grad: zeros(k), hess: zeros(k * k)}
		if si, ok := d.vars.Index(name); ok {
			row.real = d.grad[si]
			for j, other := range shared.names {
				if sj, ok := d.vars.Index(other); ok {
					row.grad[j] = 2 * d.hess[si*n+sj]
				}
			}
		}
		out[i] = row
	}
	return out
}

// Reindex re-expresses d over target, applying the same index map to the
// gradient and to both Hessian axes. Sharing behaves as for Dual.Reindex.
func (d Dual2) Reindex(target *Vars) Dual2 {
	if d.vars == target {
		return d
	}
	if d.vars.EqualValue(target) {
		return Dual2{real: d.real, vars: target, grad: d.grad, hess: d.hess}
	}
	m := target.mapFrom(d.vars)
	n := target.Len()
	ns := d.vars.Len()
	g := make([]float64, n)
	h := make([]float64, n*n)
	for j, sj := range m {
		if sj < 0 {
			continue
		}
		g[j] = d.grad[sj]
		for k, sk := range m {
			if sk >= 0 {
				h[j*n+k] = d.hess[sj*ns+sk]
			}
		}
	}
	return Dual2{real: d.real, vars: target, grad: g, hess: h}
}

func alignDual2s(a, b Dual2) (Dual2, Dual2) {
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

// Add returns d + o after reconciling variable sets; gradients and Hessians
// add elementwise.
func (d Dual2) Add(o Dual2) Dual2 {
	a, b := alignDual2s(d, o)
	g := make([]float64, len(a.grad))
	floats.AddTo(g, a.grad, b.grad)
	h := make([]float64, len(a.hess))
	floats.AddTo(h, a.hess, b.hess)
	return Dual2{real: a.real + b.real, vars: a.vars, grad: g, hess: h}
}

// Sub returns d - o after reconciling variable sets.
func (d Dual2) Sub(o Dual2) Dual2 {
	a, b := alignDual2s(d, o)
	g := make([]float64, len(a.grad))
	floats.SubTo(g, a.grad, b.grad)
	h := make([]float64, len(a.hess))
	floats.SubTo(h, a.hess, b.hess)
	return Dual2{real: a.real - b.real, vars: a.vars, grad: g, hess: h}
}

// Mul returns d * o. The Hessian follows the second-order product rule:
// each operand's Hessian scaled by the other's real part, plus the
// symmetrized outer product of the gradients at half weight.
func (d Dual2) Mul(o Dual2) Dual2 {
	a, b := alignDual2s(d, o)
	n := a.vars.Len()
	g := make([]float64, n)
	floats.ScaleTo(g, b.real, a.grad)
	floats.AddScaled(g, a.real, b.grad)
	h := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h[i*n+j] = a.hess[i*n+j]*b.real + b.hess[i*n+j]*a.real +
				0.5*(a.grad[i]*b.grad[j]+b.grad[i]*a.grad[j])
		}
	}
	return Dual2{real: a.real * b.real, vars: a.vars, grad: g, hess: h}
}

// Div returns d / o, implemented as d * o^-1.
func (d Dual2) Div(o Dual2) Dual2 {
	return d.Mul(o.Pow(-1))
}

// AddFloat returns d + f with sensitivities untouched.
func (d Dual2) AddFloat(f float64) Dual2 {
	return Dual2{real: d.real + f, vars: d.vars, grad: d.grad, hess: d.hess}
}

// SubFloat returns d - f.
func (d Dual2) SubFloat(f float64) Dual2 {
	return Dual2{real: d.real - f, vars: d.vars, grad: d.grad, hess: d.hess}
}

// MulFloat returns d * f, scaling the real part, gradient and Hessian.
func (d Dual2) MulFloat(f float64) Dual2 {
	g := make([]float64, len(d.grad))
	floats.ScaleTo(g, f, d.grad)
	h := make([]float64, len(d.hess))
	floats.ScaleTo(h, f, d.hess)
	return Dual2{real: d.real * f, vars: d.vars, grad: g, hess: h}
}

// DivFloat returns d / f.
func (d Dual2) DivFloat(f float64) Dual2 {
	return d.MulFloat(1 / f)
}

// Neg returns -d.
func (d Dual2) Neg() Dual2 {
	return d.MulFloat(-1)
}

// Pow returns d raised to the scalar exponent p. The Hessian gains the
// explicit second-order Taylor term 0.5*p*(p-1)*real^(p-2) on the gradient
// outer product; it is not derived from repeated multiplication, so
// non-integer exponents are handled uniformly.
func (d Dual2) Pow(p float64) Dual2 {
	n := d.vars.Len()
	c1 := p * math.Pow(d.real, p-1)
	c2 := 0.5 * p * (p - 1) * math.Pow(d.real, p-2)
	g := make([]float64, n)
	floats.ScaleTo(g, c1, d.grad)
	h := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h[i*n+j] = d.hess[i*n+j]*c1 + c2*d.grad[i]*d.grad[j]
		}
	}
	return Dual2{real: math.Pow(d.real, p), vars: d.vars, grad: g, hess: h}
}

// Exp returns e^d.
func (d Dual2) Exp() Dual2 {
	n := d.vars.Len()
	e := math.Exp(d.real)
	g := make([]float64, n)
	floats.ScaleTo(g, e, d.grad)
	h := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h[i*n+j] = e * (d.hess[i*n+j] + 0.5*d.grad[i]*d.grad[j])
		}
	}
	return Dual2{real: e, vars: d.vars, grad: g, hess: h}
}

// Log returns the natural logarithm of d.
func (d Dual2) Log() Dual2 {
	n := d.vars.Len()
	r := d.real
	g := make([]float64, n)
	floats.ScaleTo(g, 1/r, d.grad)
	h := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h[i*n+j] = d.hess[i*n+j]/r - 0.5*d.grad[i]*d.grad[j]/(r*r)
		}
	}
	return Dual2{real: math.Log(r), vars: d.vars, grad: g, hess: h}
}

// Abs returns the absolute value, taking the positive branch at exactly
// zero.
func (d Dual2) Abs() Dual2 {
	if d.real < 0 {
		return d.Neg()
	}
	return d
}

// Equal reports tolerant equality: exact real parts, gradient and Hessian
// components within an absolute 1e-8, all after reconciliation.
func (d Dual2) Equal(o Dual2) bool {
	a, b := alignDual2s(d, o)
	if a.real != b.real {
		return false
	}
	for i := range a.grad {
		if !scalar.EqualWithinAbs(a.grad[i], b.grad[i], gradTol) {
			return false
		}
	}
	for i := range a.hess {
		if !scalar.EqualWithinAbs(a.hess[i], b.hess[i], gradTol) {
			return false
		}
	}
	return true
}

// EqualFloat reports equality against a plain scalar.
func (d Dual2) EqualFloat(f float64) bool {
	return d.Equal(FromFloat2(f))
}

// Cmp orders by real part only, as for Dual.
func (d Dual2) Cmp(o Dual2) int {
	return cmpFloat(d.real, o.real)
}

// CmpFloat orders d against a plain scalar by real part.
func (d Dual2) CmpFloat(f float64) int {
	return cmpFloat(d.real, f)
}

// Less reports d < o by real part.
func (d Dual2) Less(o Dual2) bool { return d.real < o.real }

// LessEq reports d <= o by real part.
func (d Dual2) LessEq(o Dual2) bool { return d.real <= o.real }

// Greater reports d > o by real part.
func (d Dual2) Greater(o Dual2) bool { return d.real > o.real }

// GreaterEq reports d >= o by real part.
func (d Dual2) GreaterEq(o Dual2) bool { return d.real >= o.real }

// Sum2 folds xs from the additive identity.
func Sum2(xs []Dual2) Dual2 {
	acc := FromFloat2(0)
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}
