package dual

import (
	"encoding/json"
	"fmt"
)

// JSON forms round-trip the four defining fields as plain arrays. A decoded
// value compares Equal to the one encoded; registry sharing is not
// preserved across the boundary.

type dualJSON struct {
	Real float64   `json:"real"`
	Vars []string  `json:"vars"`
	Grad []float64 `json:"grad"`
}

type dual2JSON struct {
	Real float64   `json:"real"`
	Vars []string  `json:"vars"`
	Grad []float64 `json:"grad"`
	Hess []float64 `json:"hess"` // row-major, stored half-value convention
}

// MarshalJSON implements json.Marshaler.
func (d Dual) MarshalJSON() ([]byte, error) {
	return json.Marshal(dualJSON{
		Real: d.real,
		Vars: d.vars.Names(),
		Grad: copyFloats(d.grad),
	})
}

// UnmarshalJSON implements json.Unmarshaler, revalidating lengths as the
// constructor does.
func (d *Dual) UnmarshalJSON(b []byte) error {
	var raw dualJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("dual: decode Dual: %w", err)
	}
	nd, err := NewWithGrad(raw.Real, raw.Vars, raw.Grad)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Dual2) MarshalJSON() ([]byte, error) {
	return json.Marshal(dual2JSON{
		Real: d.real,
		Vars: d.vars.Names(),
		Grad: copyFloats(d.grad),
		Hess: copyFloats(d.hess),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dual2) UnmarshalJSON(b []byte) error {
	var raw dual2JSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("dual: decode Dual2: %w", err)
	}
	nd, err := New2WithGrad(raw.Real, raw.Vars, raw.Grad, raw.Hess)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// numberJSON is a one-key variant envelope: {"f64":x}, {"dual":{...}} or
// {"dual2":{...}}.
type numberJSON struct {
	F64   *float64 `json:"f64,omitempty"`
	Dual  *Dual    `json:"dual,omitempty"`
	Dual2 *Dual2   `json:"dual2,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	var raw numberJSON
	switch n.order {
	case OrderZero:
		f := n.f
		raw.F64 = &f
	case OrderOne:
		d := n.d
		raw.Dual = &d
	default:
		d := n.d2
		raw.Dual2 = &d
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements json.Unmarshaler. Exactly one variant key must
// be present.
func (n *Number) UnmarshalJSON(b []byte) error {
	var raw numberJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("dual: decode Number: %w", err)
	}
	set := 0
	if raw.F64 != nil {
		set++
	}
	if raw.Dual != nil {
		set++
	}
	if raw.Dual2 != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("dual: decode Number: want exactly one of f64, dual, dual2; got %d", set)
	}
	switch {
	case raw.F64 != nil:
		*n = Scalar(*raw.F64)
	case raw.Dual != nil:
		*n = raw.Dual.Number()
	default:
		*n = raw.Dual2.Number()
	}
	return nil
}

func copyFloats(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
