// Copyright 2026 Finch Quant. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"time"

	"github.com/finch-quant/finch/internal/calendars"
)

// Type aliases for public API

// Calendar is the predicate surface shared by all calendar types.
type Calendar = calendars.Calendar

// Cal is a single holiday calendar.
type Cal = calendars.Cal

// UnionCal combines calendars, optionally with settlement calendars.
type UnionCal = calendars.UnionCal

// Modifier selects the rule for adjusting a non-business day.
type Modifier = calendars.Modifier

// Adjustment rule constants.
const (
	Actual            Modifier = calendars.Actual
	Following         Modifier = calendars.Following
	ModifiedFollowing Modifier = calendars.ModifiedFollowing
	Preceding         Modifier = calendars.Preceding
	ModifiedPreceding Modifier = calendars.ModifiedPreceding
)

// Convention selects a day count convention.
type Convention = calendars.Convention

// Day count constants.
const (
	Act365F   Convention = calendars.Act365F
	Act360    Convention = calendars.Act360
	Thirty360 Convention = calendars.Thirty360
	One       Convention = calendars.One
)

// Common errors.
var (
	ErrNotBusDay       = calendars.ErrNotBusDay
	ErrUnknownCalendar = calendars.ErrUnknownCalendar
	ErrBadModifier     = calendars.ErrBadModifier
	ErrBadConvention   = calendars.ErrBadConvention
)

// Construction

// NewCal builds a calendar from holiday dates and non-working weekdays.
func NewCal(holidays []time.Time, weekMask []time.Weekday) *Cal {
	return calendars.NewCal(holidays, weekMask)
}

// NewUnionCal builds a union of calendars with optional settlement
// calendars.
func NewUnionCal(cals []*Cal, settle []*Cal) *UnionCal {
	return calendars.NewUnionCal(cals, settle)
}

// Get resolves a calendar by name, with "a,b" unioning calendars and
// "a,b|c" adding settlement calendars.
//
// Example:
//
//	cal, err := calendars.Get("ldn,tgt")
func Get(name string) (Calendar, error) {
	return calendars.Get(name)
}

// Names lists the available named calendars.
func Names() []string {
	return calendars.Names()
}

// Date builds a UTC-midnight date.
func Date(year, month, day int) time.Time {
	return calendars.Date(year, month, day)
}

// Rolling

// IsBusDay reports whether the date is a working-week day and not a
// holiday.
func IsBusDay(c Calendar, t time.Time) bool {
	return calendars.IsBusDay(c, t)
}

// NextBusDay returns the date itself when it is a business day, else the
// next business day after it.
func NextBusDay(c Calendar, t time.Time) time.Time {
	return calendars.NextBusDay(c, t)
}

// PrevBusDay returns the date itself when it is a business day, else the
// closest business day before it.
func PrevBusDay(c Calendar, t time.Time) time.Time {
	return calendars.PrevBusDay(c, t)
}

// Adjust rolls a date onto a business day under the given modifier.
func Adjust(c Calendar, t time.Time, m Modifier) time.Time {
	return calendars.Adjust(c, t, m)
}

// AddBusDays steps n business days from a business day, optionally rolling
// further until settlement is allowed.
func AddBusDays(c Calendar, t time.Time, n int, settlement bool) (time.Time, error) {
	return calendars.AddBusDays(c, t, n, settlement)
}

// BusDateRange returns every business day from start to end inclusive.
func BusDateRange(c Calendar, start, end time.Time) ([]time.Time, error) {
	return calendars.BusDateRange(c, start, end)
}

// ParseModifier reads the conventional short forms: NONE, F, MF, P, MP.
func ParseModifier(s string) (Modifier, error) {
	return calendars.ParseModifier(s)
}

// Day counts

// DCF computes the day count fraction from start to end under the
// convention.
func DCF(start, end time.Time, c Convention) (float64, error) {
	return calendars.DCF(start, end, c)
}

// ParseConvention reads the conventional names: ACT365F, ACT360, 30360, 1.
func ParseConvention(s string) (Convention, error) {
	return calendars.ParseConvention(s)
}
