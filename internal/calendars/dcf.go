package calendars

import (
	"fmt"
	"strings"
	"time"
)

// Convention selects a day count convention for accrual fractions.
type Convention int

const (
	// Act365F counts actual days over a fixed 365 denominator.
	Act365F Convention = iota
	// Act360 counts actual days over 360.
	Act360
	// Thirty360 applies the 30/360 bond-basis day adjustments.
	Thirty360
	// One treats any period as a whole unit.
	One
)

// String returns the conventional name: ACT365F, ACT360, 30360 or 1.
func (c Convention) String() string {
	switch c {
	case Act360:
		return "ACT360"
	case Thirty360:
		return "30360"
	case One:
		return "1"
	default:
		return "ACT365F"
	}
}

// ParseConvention reads the names produced by String, case-insensitively.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACT365F":
		return Act365F, nil
	case "ACT360":
		return Act360, nil
	case "30360", "30E360", "THIRTY360":
		return Thirty360, nil
	case "1", "ONE":
		return One, nil
	default:
		return Act365F, fmt.Errorf("calendars.ParseConvention: %w: %q", ErrBadConvention, s)
	}
}

// DCF computes the day count fraction from start to end under the
// convention. The result is signed when end precedes start.
func DCF(start, end time.Time, c Convention) (float64, error) {
	start, end = midnight(start), midnight(end)
	switch c {
	case Act365F:
		return float64(daysBetween(start, end)) / 365.0, nil
	case Act360:
		return float64(daysBetween(start, end)) / 360.0, nil
	case Thirty360:
		return thirty360(start, end), nil
	case One:
		return 1.0, nil
	default:
		return 0, fmt.Errorf("calendars.DCF: %w: %d", ErrBadConvention, int(c))
	}
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}

func thirty360(start, end time.Time) float64 {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 == 30 {
		d2 = 30
	}
	days := 360*(y2-y1) + 30*(int(m2)-int(m1)) + (d2 - d1)
	return float64(days) / 360.0
}
