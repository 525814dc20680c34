package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Determinant returns the determinant of the square matrix given by rows.
// rows must be non-empty and every row must have the same length as the
// number of rows (a square matrix).
func Determinant(rows [][]float64) (float64, error) {
	n := len(rows)
	if n == 0 {
		return 0, fmt.Errorf("linalg: Determinant: empty matrix")
	}
	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return 0, fmt.Errorf("linalg: Determinant: matrix is not square (%d rows, row of length %d)", n, len(row))
		}
		flat = append(flat, row...)
	}
	m := mat.NewDense(n, n, flat)
	return mat.Det(m), nil
}

// SolveSquare solves the linear system Wx = b for x, where W is given by
// rows (a square n x n matrix) and b has length n.
//
// Returns an error if the system is singular or otherwise unsolvable; the
// caller decides what that means for its own domain (facet treats it as
// "no Lower Distal Point").
func SolveSquare(rows [][]float64, b []float64) ([]float64, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("linalg: SolveSquare: empty matrix")
	}
	if len(b) != n {
		return nil, fmt.Errorf("linalg: SolveSquare: right-hand side has length %d, want %d", len(b), n)
	}
	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("linalg: SolveSquare: matrix is not square (%d rows, row of length %d)", n, len(row))
		}
		flat = append(flat, row...)
	}
	w := mat.NewDense(n, n, flat)
	rhs := mat.NewVecDense(n, append([]float64(nil), b...))

	var x mat.VecDense
	if err := x.SolveVec(w, rhs); err != nil {
		return nil, fmt.Errorf("linalg: SolveSquare: %w", err)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
