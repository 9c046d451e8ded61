package calendars

import "errors"

// Common errors.
var (
	ErrNotBusDay       = errors.New("date is not a business day")
	ErrUnknownCalendar = errors.New("unknown calendar name")
	ErrBadModifier     = errors.New("unknown adjustment modifier")
	ErrBadConvention   = errors.New("unknown day count convention")
)
