package dual

import (
	"fmt"
	"strings"
)

// String renders the value, its variable names and its gradient.
func (d Dual) String() string {
	return fmt.Sprintf("<Dual: %.6f, (%s), [%s]>", d.real, joinNames(d.vars), joinFloats(d.grad))
}

// String renders the value, names and gradient; the Hessian is elided.
func (d Dual2) String() string {
	return fmt.Sprintf("<Dual2: %.6f, (%s), [%s], [[...]]>", d.real, joinNames(d.vars), joinFloats(d.grad))
}

// String renders the held variant.
func (n Number) String() string {
	switch n.order {
	case OrderZero:
		return fmt.Sprintf("%g", n.f)
	case OrderOne:
		return n.d.String()
	default:
		return n.d2.String()
	}
}

func joinNames(v *Vars) string {
	return strings.Join(v.names, ", ")
}

func joinFloats(s []float64) string {
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = fmt.Sprintf("%g", f)
	}
	return strings.Join(parts, ", ")
}
