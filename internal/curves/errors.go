package curves

import "errors"

// Common errors.
var (
	ErrTooFewNodes      = errors.New("curve requires at least two nodes")
	ErrDuplicateNode    = errors.New("duplicate curve node date")
	ErrBeforeFirstNode  = errors.New("date precedes the first curve node")
	ErrBadInterpolation = errors.New("unknown interpolation style")
	ErrBadRatePeriod    = errors.New("rate period has no length")
)
