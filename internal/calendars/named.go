package calendars

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Named calendars are generated from holiday rules over this span rather
// than stored as date lists.
const (
	firstHolidayYear = 1970
	lastHolidayYear  = 2100
)

var weekendMask = []time.Weekday{time.Saturday, time.Sunday}

var builtin = map[string]*Cal{
	"all": NewCal(nil, nil),
	"bus": NewCal(nil, weekendMask),
	"tgt": newTarget(),
	"ldn": newLondon(),
	"nyc": newNewYork(),
}

// Get resolves a calendar by name. A comma-separated list unions the named
// calendars, and a pipe separates an optional settlement list: "ldn,tgt"
// is a union of London and TARGET, while "tgt|nyc" determines business
// days from TARGET but blocks settlement on New York holidays.
func Get(name string) (Calendar, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	var settle []*Cal
	if base, rest, found := strings.Cut(name, "|"); found {
		var err error
		if settle, err = lookupAll(rest); err != nil {
			return nil, err
		}
		name = base
	}
	cals, err := lookupAll(name)
	if err != nil {
		return nil, err
	}
	if len(cals) == 1 && settle == nil {
		return cals[0], nil
	}
	return NewUnionCal(cals, settle), nil
}

// Names lists the available named calendars in sorted order.
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func lookupAll(csv string) ([]*Cal, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	cals := make([]*Cal, 0, len(parts))
	for _, p := range parts {
		c, ok := builtin[strings.TrimSpace(p)]
		if !ok {
			return nil, fmt.Errorf("calendars.Get: %w: %q", ErrUnknownCalendar, strings.TrimSpace(p))
		}
		cals = append(cals, c)
	}
	return cals, nil
}

// newTarget generates the TARGET (euro) closing days.
func newTarget() *Cal {
	var hols []time.Time
	for y := firstHolidayYear; y <= lastHolidayYear; y++ {
		es := easterSunday(y)
		hols = append(hols,
			Date(y, 1, 1),
			es.AddDate(0, 0, -2), // Good Friday
			es.AddDate(0, 0, 1),  // Easter Monday
			Date(y, 5, 1),
			Date(y, 12, 25),
			Date(y, 12, 26),
		)
	}
	return NewCal(hols, weekendMask)
}

// newLondon generates the UK bank holidays. One-off holidays such as royal
// occasions are not modelled.
func newLondon() *Cal {
	var hols []time.Time
	for y := firstHolidayYear; y <= lastHolidayYear; y++ {
		es := easterSunday(y)
		hols = append(hols,
			nextWeekdayOn(Date(y, 1, 1)),
			es.AddDate(0, 0, -2), // Good Friday
			es.AddDate(0, 0, 1),  // Easter Monday
			nthWeekday(y, 5, time.Monday, 1),
			lastWeekday(y, 5, time.Monday),
			lastWeekday(y, 8, time.Monday),
		)
		hols = append(hols, substitutePair(Date(y, 12, 25), Date(y, 12, 26))...)
	}
	return NewCal(hols, weekendMask)
}

// newNewYork generates the Federal Reserve banking holidays with the US
// observation shifts (Saturday to Friday, Sunday to Monday).
func newNewYork() *Cal {
	var hols []time.Time
	for y := firstHolidayYear; y <= lastHolidayYear; y++ {
		hols = append(hols,
			usObserved(Date(y, 1, 1)),
			nthWeekday(y, 2, time.Monday, 3),    // Washington's Birthday
			lastWeekday(y, 5, time.Monday),      // Memorial Day
			usObserved(Date(y, 7, 4)),           // Independence Day
			nthWeekday(y, 9, time.Monday, 1),    // Labor Day
			nthWeekday(y, 10, time.Monday, 2),   // Columbus Day
			usObserved(Date(y, 11, 11)),         // Veterans Day
			nthWeekday(y, 11, time.Thursday, 4), // Thanksgiving
			usObserved(Date(y, 12, 25)),
		)
		if y >= 1986 {
			hols = append(hols, nthWeekday(y, 1, time.Monday, 3)) // MLK Day
		}
		if y >= 2021 {
			hols = append(hols, usObserved(Date(y, 6, 19))) // Juneteenth
		}
	}
	return NewCal(hols, weekendMask)
}

// easterSunday computes Gregorian Easter by the anonymous algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return Date(year, month, day)
}

// usObserved shifts a weekend holiday onto the adjacent weekday.
func usObserved(t time.Time) time.Time {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, -1)
	case time.Sunday:
		return t.AddDate(0, 0, 1)
	default:
		return t
	}
}

// nextWeekdayOn shifts a weekend holiday onto the following Monday.
func nextWeekdayOn(t time.Time) time.Time {
	for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// substitutePair applies the UK substitute-day rule to consecutive
// holidays: each falls on the next weekday not already taken by the other.
func substitutePair(first, second time.Time) []time.Time {
	taken := make(map[time.Time]struct{}, 2)
	out := make([]time.Time, 0, 2)
	for _, t := range []time.Time{first, second} {
		for {
			_, used := taken[t]
			if !used && t.Weekday() != time.Saturday && t.Weekday() != time.Sunday {
				break
			}
			t = t.AddDate(0, 0, 1)
		}
		taken[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// nthWeekday returns the n-th given weekday of the month, n starting at 1.
func nthWeekday(year, month int, wd time.Weekday, n int) time.Time {
	t := Date(year, month, 1)
	offset := (int(wd) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset+7*(n-1))
}

// lastWeekday returns the final given weekday of the month.
func lastWeekday(year, month int, wd time.Weekday) time.Time {
	t := Date(year, month+1, 1).AddDate(0, 0, -1)
	offset := (int(t.Weekday()) - int(wd) + 7) % 7
	return t.AddDate(0, 0, -offset)
}
