// Package calendars provides holiday calendars and financial date
// manipulation: business-day predicates, date rolling under the usual
// adjustment rules, settlement-aware business-day arithmetic and day-count
// fractions.
package calendars

import (
	"fmt"
	"sort"
	"time"
)

// Calendar is the predicate surface a holiday calendar exposes. The rolling
// and arithmetic functions in this package operate on it.
type Calendar interface {
	// IsWeekday reports whether the date is part of the general working
	// week.
	IsWeekday(t time.Time) bool
	// IsHoliday reports whether the date is specifically excluded from the
	// working week.
	IsHoliday(t time.Time) bool
	// IsSettlement reports whether the date is valid against an associated
	// settlement calendar. Calendars without one report true for any date.
	IsSettlement(t time.Time) bool
}

// Cal is a single holiday calendar: a set of holiday dates plus a week mask
// naming the weekdays that are not part of the working week (typically
// Saturday and Sunday).
type Cal struct {
	holidays map[time.Time]struct{}
	weekMask map[time.Weekday]struct{}
}

// NewCal builds a calendar from holiday dates and non-working weekdays.
// Holiday timestamps are normalized to UTC midnight.
func NewCal(holidays []time.Time, weekMask []time.Weekday) *Cal {
	c := &Cal{
		holidays: make(map[time.Time]struct{}, len(holidays)),
		weekMask: make(map[time.Weekday]struct{}, len(weekMask)),
	}
	for _, h := range holidays {
		c.holidays[midnight(h)] = struct{}{}
	}
	for _, wd := range weekMask {
		c.weekMask[wd] = struct{}{}
	}
	return c
}

// IsWeekday implements Calendar.
func (c *Cal) IsWeekday(t time.Time) bool {
	_, masked := c.weekMask[t.Weekday()]
	return !masked
}

// IsHoliday implements Calendar.
func (c *Cal) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[midnight(t)]
	return ok
}

// IsSettlement implements Calendar; a plain calendar never restricts
// settlement.
func (c *Cal) IsSettlement(t time.Time) bool { return true }

// Holidays returns the holiday dates in ascending order.
func (c *Cal) Holidays() []time.Time {
	out := make([]time.Time, 0, len(c.holidays))
	for h := range c.holidays {
		out = append(out, h)
	}
	sortTimes(out)
	return out
}

// WeekMask returns the non-working weekdays in Sunday-first order.
func (c *Cal) WeekMask() []time.Weekday {
	out := make([]time.Weekday, 0, len(c.weekMask))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if _, ok := c.weekMask[wd]; ok {
			out = append(out, wd)
		}
	}
	return out
}

// UnionCal combines calendars: a weekday must be a weekday in every
// calendar, a holiday in any calendar holds for the union, and an optional
// second set of calendars constrains settlement without affecting
// business-day determination.
type UnionCal struct {
	cals   []*Cal
	settle []*Cal
}

// NewUnionCal builds a union of calendars with optional settlement
// calendars.
func NewUnionCal(cals []*Cal, settle []*Cal) *UnionCal {
	return &UnionCal{cals: cals, settle: settle}
}

// IsWeekday implements Calendar.
func (u *UnionCal) IsWeekday(t time.Time) bool {
	for _, c := range u.cals {
		if !c.IsWeekday(t) {
			return false
		}
	}
	return true
}

// IsHoliday implements Calendar.
func (u *UnionCal) IsHoliday(t time.Time) bool {
	for _, c := range u.cals {
		if c.IsHoliday(t) {
			return true
		}
	}
	return false
}

// IsSettlement implements Calendar.
func (u *UnionCal) IsSettlement(t time.Time) bool {
	for _, c := range u.settle {
		if c.IsHoliday(t) {
			return false
		}
	}
	return true
}

// IsBusDay reports whether the date is a working-week day and not a
// holiday.
func IsBusDay(c Calendar, t time.Time) bool {
	return c.IsWeekday(t) && !c.IsHoliday(t)
}

// NextBusDay returns the date itself when it is a business day, else the
// next business day after it.
func NextBusDay(c Calendar, t time.Time) time.Time {
	t = midnight(t)
	for !IsBusDay(c, t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// PrevBusDay returns the date itself when it is a business day, else the
// closest business day before it.
func PrevBusDay(c Calendar, t time.Time) time.Time {
	t = midnight(t)
	for !IsBusDay(c, t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// modNextBusDay rolls forward unless that crosses into the next month, in
// which case it rolls backward instead.
func modNextBusDay(c Calendar, t time.Time) time.Time {
	next := NextBusDay(c, t)
	if next.Month() != t.Month() {
		return PrevBusDay(c, t)
	}
	return next
}

func modPrevBusDay(c Calendar, t time.Time) time.Time {
	prev := PrevBusDay(c, t)
	if prev.Month() != t.Month() {
		return NextBusDay(c, t)
	}
	return prev
}

// Modifier selects the rule for adjusting a non-business day.
type Modifier int

const (
	// Actual leaves the date unchanged even when it is not a business day.
	Actual Modifier = iota
	// Following rolls to the next business day.
	Following
	// ModifiedFollowing rolls forward unless that changes month, then
	// backward.
	ModifiedFollowing
	// Preceding rolls to the previous business day.
	Preceding
	// ModifiedPreceding rolls backward unless that changes month, then
	// forward.
	ModifiedPreceding
)

// String returns the conventional short form: NONE, F, MF, P or MP.
func (m Modifier) String() string {
	switch m {
	case Following:
		return "F"
	case ModifiedFollowing:
		return "MF"
	case Preceding:
		return "P"
	case ModifiedPreceding:
		return "MP"
	default:
		return "NONE"
	}
}

// ParseModifier reads the conventional short forms accepted by String.
func ParseModifier(s string) (Modifier, error) {
	switch s {
	case "NONE", "ACT", "":
		return Actual, nil
	case "F":
		return Following, nil
	case "MF":
		return ModifiedFollowing, nil
	case "P":
		return Preceding, nil
	case "MP":
		return ModifiedPreceding, nil
	default:
		return Actual, fmt.Errorf("calendars.ParseModifier: %w: %q", ErrBadModifier, s)
	}
}

// Adjust rolls a date onto a business day under the given modifier.
func Adjust(c Calendar, t time.Time, m Modifier) time.Time {
	t = midnight(t)
	switch m {
	case Following:
		return NextBusDay(c, t)
	case ModifiedFollowing:
		return modNextBusDay(c, t)
	case Preceding:
		return PrevBusDay(c, t)
	case ModifiedPreceding:
		return modPrevBusDay(c, t)
	default:
		return t
	}
}

// AddBusDays steps n business days from a date that must itself be a
// business day. With settlement enforced, a landing date on which
// settlement is restricted rolls further in the step direction until it is
// allowed.
func AddBusDays(c Calendar, t time.Time, n int, settlement bool) (time.Time, error) {
	t = midnight(t)
	if !IsBusDay(c, t) {
		return time.Time{}, fmt.Errorf("calendars.AddBusDays: %w: %s", ErrNotBusDay, t.Format(dateLayout))
	}
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for i := 0; i < n; i++ {
		t = t.AddDate(0, 0, step)
		for !IsBusDay(c, t) {
			t = t.AddDate(0, 0, step)
		}
	}
	if settlement {
		for !c.IsSettlement(t) {
			t = t.AddDate(0, 0, step)
			for !IsBusDay(c, t) {
				t = t.AddDate(0, 0, step)
			}
		}
	}
	return t, nil
}

// BusDateRange returns every business day from start to end inclusive.
// Both endpoints must be business days.
func BusDateRange(c Calendar, start, end time.Time) ([]time.Time, error) {
	start, end = midnight(start), midnight(end)
	if !IsBusDay(c, start) {
		return nil, fmt.Errorf("calendars.BusDateRange: %w: start %s", ErrNotBusDay, start.Format(dateLayout))
	}
	if !IsBusDay(c, end) {
		return nil, fmt.Errorf("calendars.BusDateRange: %w: end %s", ErrNotBusDay, end.Format(dateLayout))
	}
	if end.Before(start) {
		return nil, fmt.Errorf("calendars.BusDateRange: end %s before start %s",
			end.Format(dateLayout), start.Format(dateLayout))
	}
	var out []time.Time
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		if IsBusDay(c, t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Date builds a UTC-midnight date, the form every calendar operation
// normalizes to.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

const dateLayout = "2006-01-02"

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sortTimes(ts []time.Time) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })
}
