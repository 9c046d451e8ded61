package curves

import (
	"fmt"
	"strings"

	"github.com/finch-quant/finch/internal/dual"
)

// Interpolation selects how values between curve nodes are computed.
type Interpolation int

const (
	// LogLinear interpolates the logarithm of node values, the natural
	// choice for discount factors under piecewise-constant forward rates.
	LogLinear Interpolation = iota
	// Linear interpolates node values directly.
	Linear
	// LinearZeroRate interpolates the continuously compounded zero rate
	// implied by each node.
	LinearZeroRate
)

// String returns the configuration name for the style.
func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "linear"
	case LinearZeroRate:
		return "linear_zero_rate"
	default:
		return "log_linear"
	}
}

// ParseInterpolation reads the names produced by String.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "log_linear":
		return LogLinear, nil
	case "linear":
		return Linear, nil
	case "linear_zero_rate":
		return LinearZeroRate, nil
	default:
		return LogLinear, fmt.Errorf("curves.ParseInterpolation: %w: %q", ErrBadInterpolation, s)
	}
}

// interpolator computes a value at timestamp x on the segment whose left
// node index is i. Node timestamps are ascending and i+1 is always valid.
type interpolator interface {
	value(ts []int64, vals []dual.Number, i int, x int64) (dual.Number, error)
}

func newInterpolator(style Interpolation) (interpolator, error) {
	switch style {
	case LogLinear:
		return logLinear{}, nil
	case Linear:
		return linear{}, nil
	case LinearZeroRate:
		return linearZeroRate{}, nil
	default:
		return nil, fmt.Errorf("curves: %w: %d", ErrBadInterpolation, int(style))
	}
}

type linear struct{}

func (linear) value(ts []int64, vals []dual.Number, i int, x int64) (dual.Number, error) {
	w := weight(ts[i], ts[i+1], x)
	return combine(vals[i], vals[i+1], w)
}

type logLinear struct{}

func (logLinear) value(ts []int64, vals []dual.Number, i int, x int64) (dual.Number, error) {
	w := weight(ts[i], ts[i+1], x)
	z, err := combine(vals[i].Log(), vals[i+1].Log(), w)
	if err != nil {
		return dual.Number{}, err
	}
	return z.Exp(), nil
}

type linearZeroRate struct{}

func (linearZeroRate) value(ts []int64, vals []dual.Number, i int, x int64) (dual.Number, error) {
	// The first node carries no elapsed time, so no zero rate exists on
	// the opening segment; fall back to log-linear there.
	if i == 0 {
		return logLinear{}.value(ts, vals, i, x)
	}
	t1 := float64(ts[i] - ts[0])
	t2 := float64(ts[i+1] - ts[0])
	tx := float64(x - ts[0])
	z1, err := vals[i].Log().Mul(dual.Scalar(-1 / t1))
	if err != nil {
		return dual.Number{}, err
	}
	z2, err := vals[i+1].Log().Mul(dual.Scalar(-1 / t2))
	if err != nil {
		return dual.Number{}, err
	}
	zx, err := combine(z1, z2, weight(ts[i], ts[i+1], x))
	if err != nil {
		return dual.Number{}, err
	}
	y, err := zx.Mul(dual.Scalar(-tx))
	if err != nil {
		return dual.Number{}, err
	}
	return y.Exp(), nil
}

// weight is the linear proportion of x across [x1, x2].
func weight(x1, x2, x int64) float64 {
	return float64(x-x1) / float64(x2-x1)
}

// combine returns y1 + w*(y2 - y1).
func combine(y1, y2 dual.Number, w float64) (dual.Number, error) {
	dy, err := y2.Sub(y1)
	if err != nil {
		return dual.Number{}, err
	}
	step, err := dy.Mul(dual.Scalar(w))
	if err != nil {
		return dual.Number{}, err
	}
	return y1.Add(step)
}
