package calendars

import (
	"encoding/json"
	"fmt"
	"time"
)

type calJSON struct {
	Holidays []string `json:"holidays"`
	WeekMask []string `json:"week_mask"`
}

type unionCalJSON struct {
	Calendars  []*Cal `json:"calendars"`
	Settlement []*Cal `json:"settlement,omitempty"`
}

// MarshalJSON encodes holidays as ISO dates and the week mask as weekday
// names.
func (c *Cal) MarshalJSON() ([]byte, error) {
	enc := calJSON{
		Holidays: make([]string, 0, len(c.holidays)),
		WeekMask: make([]string, 0, len(c.weekMask)),
	}
	for _, h := range c.Holidays() {
		enc.Holidays = append(enc.Holidays, h.Format(dateLayout))
	}
	for _, wd := range c.WeekMask() {
		enc.WeekMask = append(enc.WeekMask, wd.String())
	}
	return json.Marshal(enc)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (c *Cal) UnmarshalJSON(data []byte) error {
	var dec calJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return fmt.Errorf("calendars: decode Cal: %w", err)
	}
	hols := make([]time.Time, 0, len(dec.Holidays))
	for _, s := range dec.Holidays {
		t, err := time.ParseInLocation(dateLayout, s, time.UTC)
		if err != nil {
			return fmt.Errorf("calendars: decode Cal: %w", err)
		}
		hols = append(hols, t)
	}
	mask := make([]time.Weekday, 0, len(dec.WeekMask))
	for _, s := range dec.WeekMask {
		wd, err := parseWeekday(s)
		if err != nil {
			return fmt.Errorf("calendars: decode Cal: %w", err)
		}
		mask = append(mask, wd)
	}
	*c = *NewCal(hols, mask)
	return nil
}

// MarshalJSON encodes the component calendars and any settlement
// calendars.
func (u *UnionCal) MarshalJSON() ([]byte, error) {
	return json.Marshal(unionCalJSON{Calendars: u.cals, Settlement: u.settle})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (u *UnionCal) UnmarshalJSON(data []byte) error {
	var dec unionCalJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return fmt.Errorf("calendars: decode UnionCal: %w", err)
	}
	*u = UnionCal{cals: dec.Calendars, settle: dec.Settlement}
	return nil
}

func parseWeekday(s string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String() == s {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
