// Package curves provides discount factor curves over dated nodes, with
// interpolation in value, log or zero-rate space. Node values are AD-aware
// Numbers, so curve outputs carry sensitivities to the node values once an
// AD order is set.
package curves

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/finch-quant/finch/internal/calendars"
	"github.com/finch-quant/finch/internal/dual"
)

// Node is one dated curve value.
type Node struct {
	Date  time.Time
	Value dual.Number
}

// Config carries the curve construction options.
type Config struct {
	// Interpolation selects the segment style. Defaults to LogLinear.
	Interpolation Interpolation
	// Calendar names the calendar used to adjust rate period dates, in the
	// form accepted by calendars.Get. Defaults to "all".
	Calendar string
	// Convention is the day count for rate periods.
	Convention calendars.Convention
	// Modifier adjusts rate period dates onto business days.
	Modifier calendars.Modifier
	// ID prefixes the node variable names once an AD order is set. A short
	// random identifier is generated when empty.
	ID string
}

// DefaultConfig returns the conventional discount curve setup: log-linear
// interpolation, no holidays, Act365F.
func DefaultConfig() Config {
	return Config{
		Interpolation: LogLinear,
		Calendar:      "all",
		Convention:    calendars.Act365F,
		Modifier:      calendars.ModifiedFollowing,
	}
}

// Curve interpolates discount factors between sorted dated nodes.
type Curve struct {
	ts     []int64
	vals   []dual.Number
	style  Interpolation
	interp interpolator
	cal    calendars.Calendar
	ncal   string
	conv   calendars.Convention
	mod    calendars.Modifier
	id     string
	order  dual.ADOrder
}

// New builds a curve from date keyed values. At least two nodes are
// required and node dates are normalized to UTC midnight.
func New(nodes map[time.Time]float64, cfg Config) (*Curve, error) {
	numbered := make(map[time.Time]dual.Number, len(nodes))
	for date, v := range nodes {
		numbered[date] = dual.Scalar(v)
	}
	return newFromNumbers(numbered, cfg, dual.OrderZero)
}

func newFromNumbers(nodes map[time.Time]dual.Number, cfg Config, order dual.ADOrder) (*Curve, error) {
	if len(nodes) < 2 {
		return nil, fmt.Errorf("curves.New: %w: got %d", ErrTooFewNodes, len(nodes))
	}
	interp, err := newInterpolator(cfg.Interpolation)
	if err != nil {
		return nil, err
	}
	calName := cfg.Calendar
	if calName == "" {
		calName = "all"
	}
	cal, err := calendars.Get(calName)
	if err != nil {
		return nil, fmt.Errorf("curves.New: %w", err)
	}
	id := cfg.ID
	if id == "" {
		id = newID()
	}

	c := &Curve{
		ts:     make([]int64, 0, len(nodes)),
		vals:   make([]dual.Number, 0, len(nodes)),
		style:  cfg.Interpolation,
		interp: interp,
		cal:    cal,
		ncal:   calName,
		conv:   cfg.Convention,
		mod:    cfg.Modifier,
		id:     id,
		order:  order,
	}

	type pair struct {
		t int64
		v dual.Number
	}
	pairs := make([]pair, 0, len(nodes))
	for date, v := range nodes {
		y, m, d := date.UTC().Date()
		pairs = append(pairs, pair{t: calendars.Date(y, int(m), d).Unix(), v: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].t < pairs[j].t })
	for i, p := range pairs {
		if i > 0 && p.t == pairs[i-1].t {
			return nil, fmt.Errorf("curves.New: %w: %s", ErrDuplicateNode,
				time.Unix(p.t, 0).UTC().Format("2006-01-02"))
		}
		c.ts = append(c.ts, p.t)
		c.vals = append(c.vals, p.v)
	}
	return c, nil
}

// ID returns the curve identifier used to tag node variables.
func (c *Curve) ID() string { return c.id }

// Order returns the AD order carried by the node values.
func (c *Curve) Order() dual.ADOrder { return c.order }

// Interpolation returns the configured segment style.
func (c *Curve) Interpolation() Interpolation { return c.style }

// Nodes returns the nodes in date order.
func (c *Curve) Nodes() []Node {
	out := make([]Node, len(c.ts))
	for i, t := range c.ts {
		out[i] = Node{Date: time.Unix(t, 0).UTC(), Value: c.vals[i]}
	}
	return out
}

// Value interpolates the curve at a date. Dates beyond the final node
// extrapolate the last segment; dates before the first node are an error.
func (c *Curve) Value(date time.Time) (dual.Number, error) {
	x := date.UTC().Unix()
	i, err := c.nodeIndex(x)
	if err != nil {
		return dual.Number{}, err
	}
	return c.interp.value(c.ts, c.vals, i, x)
}

// nodeIndex returns the left node index of the segment containing x,
// clamped to the final segment for values beyond the last node.
func (c *Curve) nodeIndex(x int64) (int, error) {
	if x < c.ts[0] {
		return 0, fmt.Errorf("curves: %w: %s before %s", ErrBeforeFirstNode,
			time.Unix(x, 0).UTC().Format("2006-01-02"),
			time.Unix(c.ts[0], 0).UTC().Format("2006-01-02"))
	}
	i := sort.Search(len(c.ts), func(j int) bool { return c.ts[j] > x }) - 1
	if i > len(c.ts)-2 {
		i = len(c.ts) - 2
	}
	return i, nil
}

// Rate returns the simple period rate implied by the discount factors at
// the two dates, as a fraction per the curve convention. Both dates are
// first rolled onto business days under the curve calendar and modifier.
func (c *Curve) Rate(start, end time.Time) (dual.Number, error) {
	s := calendars.Adjust(c.cal, start, c.mod)
	e := calendars.Adjust(c.cal, end, c.mod)
	if !e.After(s) {
		return dual.Number{}, fmt.Errorf("curves.Rate: %w: %s to %s", ErrBadRatePeriod,
			s.Format("2006-01-02"), e.Format("2006-01-02"))
	}
	df1, err := c.Value(s)
	if err != nil {
		return dual.Number{}, err
	}
	df2, err := c.Value(e)
	if err != nil {
		return dual.Number{}, err
	}
	frac, err := calendars.DCF(s, e, c.conv)
	if err != nil {
		return dual.Number{}, err
	}
	ratio, err := df1.Div(df2)
	if err != nil {
		return dual.Number{}, err
	}
	excess, err := ratio.Sub(dual.Scalar(1))
	if err != nil {
		return dual.Number{}, err
	}
	return excess.Mul(dual.Scalar(1 / frac))
}

// SetADOrder rebuilds every node value at the requested order. Each node i
// becomes an independent variable named "<id><i>", so curve outputs carry
// per-node sensitivities. Lowering the order discards derivatives.
func (c *Curve) SetADOrder(order dual.ADOrder) error {
	if order == c.order {
		return nil
	}
	if order > dual.OrderTwo {
		return fmt.Errorf("curves.SetADOrder: unsupported order %d", order)
	}
	for i := range c.vals {
		real := c.vals[i].Real()
		tag := c.id + strconv.Itoa(i)
		switch order {
		case dual.OrderZero:
			c.vals[i] = dual.Scalar(real)
		case dual.OrderOne:
			c.vals[i] = dual.New(real, []string{tag}).Number()
		default:
			c.vals[i] = dual.New2(real, []string{tag}).Number()
		}
	}
	c.order = order
	return nil
}

// UpdateNode replaces the value at node index i, preserving the curve's AD
// order and the node's variable tag.
func (c *Curve) UpdateNode(i int, value float64) error {
	if i < 0 || i >= len(c.vals) {
		return fmt.Errorf("curves.UpdateNode: index %d out of range [0, %d)", i, len(c.vals))
	}
	tag := c.id + strconv.Itoa(i)
	switch c.order {
	case dual.OrderZero:
		c.vals[i] = dual.Scalar(value)
	case dual.OrderOne:
		c.vals[i] = dual.New(value, []string{tag}).Number()
	default:
		c.vals[i] = dual.New2(value, []string{tag}).Number()
	}
	return nil
}

// VarNames returns the node variable names in node order, as produced by
// SetADOrder.
func (c *Curve) VarNames() []string {
	out := make([]string, len(c.ts))
	for i := range c.ts {
		out[i] = c.id + strconv.Itoa(i)
	}
	return out
}

// newID returns a short random identifier. Five hex chars keep node variable
// names readable while making a clash between two curves about one in a
// million.
func newID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:5]
}
