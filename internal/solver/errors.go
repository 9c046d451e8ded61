package solver

import "errors"

// Common errors.
var (
	ErrShape         = errors.New("matrix and vector shapes do not conform")
	ErrSingular      = errors.New("matrix is singular")
	ErrDimension     = errors.New("instrument count must match free curve nodes")
	ErrNoConvergence = errors.New("iteration limit reached before convergence")
)
