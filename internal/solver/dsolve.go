// Package solver provides linear solving over dual numbers and Newton
// calibration of curves to market instruments.
package solver

import (
	"fmt"
	"math"
)

// Num is the arithmetic a Gauss-Jordan elimination needs. Both dual.Dual
// and dual.Dual2 satisfy it, so systems can be solved while first or
// second order sensitivities propagate through the solution.
type Num[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Real() float64
}

// Solve solves the square system a·x = b by Gauss-Jordan elimination with
// partial pivoting on the real part. The inputs are not modified.
func Solve[T Num[T]](a [][]T, b []T) ([]T, error) {
	n := len(b)
	if len(a) != n {
		return nil, fmt.Errorf("solver.Solve: %w: %d rows against %d", ErrShape, len(a), n)
	}
	rows := make([][]T, n)
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("solver.Solve: %w: row %d has %d columns", ErrShape, i, len(row))
		}
		rows[i] = append([]T(nil), row...)
	}
	x := append([]T(nil), b...)

	for col := 0; col < n; col++ {
		p := col
		best := math.Abs(rows[col][col].Real())
		for r := col + 1; r < n; r++ {
			if v := math.Abs(rows[r][col].Real()); v > best {
				best, p = v, r
			}
		}
		if best == 0 {
			return nil, fmt.Errorf("solver.Solve: %w: column %d", ErrSingular, col)
		}
		rows[col], rows[p] = rows[p], rows[col]
		x[col], x[p] = x[p], x[col]

		piv := rows[col][col]
		for j := col; j < n; j++ {
			rows[col][j] = rows[col][j].Div(piv)
		}
		x[col] = x[col].Div(piv)

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := rows[r][col]
			for j := col; j < n; j++ {
				rows[r][j] = rows[r][j].Sub(f.Mul(rows[col][j]))
			}
			x[r] = x[r].Sub(f.Mul(x[col]))
		}
	}
	return x, nil
}
