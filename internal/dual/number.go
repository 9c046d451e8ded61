package dual

import (
	"fmt"
	"math"
)

// ADOrder selects how many derivative orders a value carries.
type ADOrder uint8

const (
	OrderZero ADOrder = iota // plain scalar
	OrderOne                 // first derivatives
	OrderTwo                 // first and second derivatives
)

// String returns the JSON variant name for the order.
func (o ADOrder) String() string {
	switch o {
	case OrderZero:
		return "f64"
	case OrderOne:
		return "dual"
	default:
		return "dual2"
	}
}

// Number is a closed union over {float64, Dual, Dual2}, for numeric code
// that must work at any AD order without choosing a concrete type up front
// (curve node values are the main consumer). A scalar combines with either
// dual variant unconditionally; combining the two dual variants with each
// other fails with ErrTypeMismatch rather than fabricating or dropping a
// Hessian behind the caller's back.
type Number struct {
	order ADOrder
	f     float64
	d     Dual
	d2    Dual2
}

// Scalar wraps a plain float64.
func Scalar(f float64) Number {
	return Number{order: OrderZero, f: f}
}

// Number wraps d as a first-order Number.
func (d Dual) Number() Number {
	return Number{order: OrderOne, d: d}
}

// Number wraps d as a second-order Number.
func (d Dual2) Number() Number {
	return Number{order: OrderTwo, d2: d}
}

// Order returns the variant tag.
func (n Number) Order() ADOrder { return n.order }

// Real returns the scalar value of whichever variant is held.
func (n Number) Real() float64 {
	switch n.order {
	case OrderZero:
		return n.f
	case OrderOne:
		return n.d.Real()
	default:
		return n.d2.Real()
	}
}

// Dual returns the held first-order value, or false for other variants.
func (n Number) Dual() (Dual, bool) {
	return n.d, n.order == OrderOne
}

// Dual2 returns the held second-order value, or false for other variants.
func (n Number) Dual2() (Dual2, bool) {
	return n.d2, n.order == OrderTwo
}

// Grad returns the partial derivatives for names; a scalar variant has none
// and reads as all zeros.
func (n Number) Grad(names []string) []float64 {
	switch n.order {
	case OrderOne:
		return n.d.Grad(names)
	case OrderTwo:
		return n.d2.Grad(names)
	default:
		return make([]float64, len(names))
	}
}

// WithOrder converts n to the requested order. Dropping an order discards
// derivatives; raising from a scalar tags the value with names (all-ones
// partials); raising a Dual zero-fills the Hessian. Names are ignored when
// the value already carries a registry.
func (n Number) WithOrder(order ADOrder, names []string) Number {
	if order == n.order {
		return n
	}
	switch order {
	case OrderZero:
		return Scalar(n.Real())
	case OrderOne:
		if n.order == OrderTwo {
			return n.d2.ToDual().Number()
		}
		return New(n.f, names).Number()
	default:
		if n.order == OrderOne {
			return n.d.ToDual2().Number()
		}
		return New2(n.f, names).Number()
	}
}

// promote reconciles the variants of a and b: scalars lift to the other
// side's order with an empty variable set, equal orders pass through, and
// the Dual/Dual2 pairing is refused.
func promote(a, b Number, op string) (Number, Number, error) {
	switch {
	case a.order == b.order:
		return a, b, nil
	case a.order == OrderZero:
		return a.WithOrder(b.order, nil), b, nil
	case b.order == OrderZero:
		return a, b.WithOrder(a.order, nil), nil
	default:
		return Number{}, Number{}, fmt.Errorf("dual.Number.%s: %w: %s with %s",
			op, ErrTypeMismatch, a.order, b.order)
	}
}

// Add returns a + b, failing for the Dual/Dual2 pairing.
func (n Number) Add(o Number) (Number, error) {
	a, b, err := promote(n, o, "Add")
	if err != nil {
		return Number{}, err
	}
	switch a.order {
	case OrderZero:
		return Scalar(a.f + b.f), nil
	case OrderOne:
		return a.d.Add(b.d).Number(), nil
	default:
		return a.d2.Add(b.d2).Number(), nil
	}
}

// Sub returns a - b.
func (n Number) Sub(o Number) (Number, error) {
	a, b, err := promote(n, o, "Sub")
	if err != nil {
		return Number{}, err
	}
	switch a.order {
	case OrderZero:
		return Scalar(a.f - b.f), nil
	case OrderOne:
		return a.d.Sub(b.d).Number(), nil
	default:
		return a.d2.Sub(b.d2).Number(), nil
	}
}

// Mul returns a * b.
func (n Number) Mul(o Number) (Number, error) {
	a, b, err := promote(n, o, "Mul")
	if err != nil {
		return Number{}, err
	}
	switch a.order {
	case OrderZero:
		return Scalar(a.f * b.f), nil
	case OrderOne:
		return a.d.Mul(b.d).Number(), nil
	default:
		return a.d2.Mul(b.d2).Number(), nil
	}
}

// Div returns a / b.
func (n Number) Div(o Number) (Number, error) {
	a, b, err := promote(n, o, "Div")
	if err != nil {
		return Number{}, err
	}
	switch a.order {
	case OrderZero:
		return Scalar(a.f / b.f), nil
	case OrderOne:
		return a.d.Div(b.d).Number(), nil
	default:
		return a.d2.Div(b.d2).Number(), nil
	}
}

// Neg returns -n.
func (n Number) Neg() Number {
	switch n.order {
	case OrderZero:
		return Scalar(-n.f)
	case OrderOne:
		return n.d.Neg().Number()
	default:
		return n.d2.Neg().Number()
	}
}

// Pow returns n raised to the scalar exponent p.
func (n Number) Pow(p float64) Number {
	switch n.order {
	case OrderZero:
		return Scalar(math.Pow(n.f, p))
	case OrderOne:
		return n.d.Pow(p).Number()
	default:
		return n.d2.Pow(p).Number()
	}
}

// Exp returns e^n.
func (n Number) Exp() Number {
	switch n.order {
	case OrderZero:
		return Scalar(math.Exp(n.f))
	case OrderOne:
		return n.d.Exp().Number()
	default:
		return n.d2.Exp().Number()
	}
}

// Log returns the natural logarithm of n.
func (n Number) Log() Number {
	switch n.order {
	case OrderZero:
		return Scalar(math.Log(n.f))
	case OrderOne:
		return n.d.Log().Number()
	default:
		return n.d2.Log().Number()
	}
}

// Abs returns the absolute value of n.
func (n Number) Abs() Number {
	switch n.order {
	case OrderZero:
		return Scalar(math.Abs(n.f))
	case OrderOne:
		return n.d.Abs().Number()
	default:
		return n.d2.Abs().Number()
	}
}

// Equal reports tolerant equality between compatible variants, failing for
// the Dual/Dual2 pairing like arithmetic does.
func (n Number) Equal(o Number) (bool, error) {
	a, b, err := promote(n, o, "Equal")
	if err != nil {
		return false, err
	}
	switch a.order {
	case OrderZero:
		return a.f == b.f, nil
	case OrderOne:
		return a.d.Equal(b.d), nil
	default:
		return a.d2.Equal(b.d2), nil
	}
}

// Cmp orders by real part, with the same variant compatibility rule as
// arithmetic.
func (n Number) Cmp(o Number) (int, error) {
	if _, _, err := promote(n, o, "Cmp"); err != nil {
		return 0, err
	}
	return cmpFloat(n.Real(), o.Real()), nil
}

// SumNumbers folds ns from a zero scalar, failing on the first mixed-order
// pair it absorbs.
func SumNumbers(ns []Number) (Number, error) {
	acc := Scalar(0)
	for _, x := range ns {
		var err error
		if acc, err = acc.Add(x); err != nil {
			return Number{}, err
		}
	}
	return acc, nil
}
