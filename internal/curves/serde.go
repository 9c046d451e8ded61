package curves

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/finch-quant/finch/internal/calendars"
	"github.com/finch-quant/finch/internal/dual"
)

type nodeJSON struct {
	Date  string      `json:"date"`
	Value dual.Number `json:"value"`
}

type curveJSON struct {
	ID            string     `json:"id"`
	Interpolation string     `json:"interpolation"`
	Calendar      string     `json:"calendar"`
	Convention    string     `json:"convention"`
	Modifier      string     `json:"modifier"`
	Nodes         []nodeJSON `json:"nodes"`
}

// MarshalJSON encodes the configuration by name and the nodes in date
// order, preserving any AD content of the node values.
func (c *Curve) MarshalJSON() ([]byte, error) {
	enc := curveJSON{
		ID:            c.id,
		Interpolation: c.style.String(),
		Calendar:      c.ncal,
		Convention:    c.conv.String(),
		Modifier:      c.mod.String(),
		Nodes:         make([]nodeJSON, len(c.ts)),
	}
	for i, t := range c.ts {
		enc.Nodes[i] = nodeJSON{
			Date:  time.Unix(t, 0).UTC().Format("2006-01-02"),
			Value: c.vals[i],
		}
	}
	return json.Marshal(enc)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (c *Curve) UnmarshalJSON(data []byte) error {
	var dec curveJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return fmt.Errorf("curves: decode Curve: %w", err)
	}
	style, err := ParseInterpolation(dec.Interpolation)
	if err != nil {
		return fmt.Errorf("curves: decode Curve: %w", err)
	}
	conv, err := calendars.ParseConvention(dec.Convention)
	if err != nil {
		return fmt.Errorf("curves: decode Curve: %w", err)
	}
	mod, err := calendars.ParseModifier(dec.Modifier)
	if err != nil {
		return fmt.Errorf("curves: decode Curve: %w", err)
	}

	nodes := make(map[time.Time]dual.Number, len(dec.Nodes))
	order := dual.OrderZero
	for i, n := range dec.Nodes {
		date, err := time.ParseInLocation("2006-01-02", n.Date, time.UTC)
		if err != nil {
			return fmt.Errorf("curves: decode Curve: %w", err)
		}
		if i == 0 {
			order = n.Value.Order()
		} else if n.Value.Order() != order {
			return fmt.Errorf("curves: decode Curve: mixed AD orders in nodes")
		}
		nodes[date] = n.Value
	}

	cfg := Config{
		Interpolation: style,
		Calendar:      dec.Calendar,
		Convention:    conv,
		Modifier:      mod,
		ID:            dec.ID,
	}
	built, err := newFromNumbers(nodes, cfg, order)
	if err != nil {
		return fmt.Errorf("curves: decode Curve: %w", err)
	}
	*c = *built
	return nil
}
