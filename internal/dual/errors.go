package dual

import "errors"

// Common errors.
var (
	// ErrInvalidLength reports a gradient or Hessian whose length does not
	// match the deduplicated variable count at construction.
	ErrInvalidLength = errors.New("length does not match variable count")

	// ErrTypeMismatch reports arithmetic or comparison between a first-order
	// and a second-order value. Orders never coerce silently; the caller
	// must convert with WithOrder first.
	ErrTypeMismatch = errors.New("mixed first- and second-order values")
)
