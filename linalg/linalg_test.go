package linalg_test

import (
	"testing"

	"github.com/lattice-labs/chordapprox/linalg"
	"github.com/stretchr/testify/require"
)

func TestDeterminant_Identity(t *testing.T) {
	det, err := linalg.Determinant([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)
	require.InDelta(t, 1.0, det, 1e-9)
}

func TestDeterminant_Singular(t *testing.T) {
	det, err := linalg.Determinant([][]float64{
		{1, 2},
		{2, 4},
	})
	require.NoError(t, err)
	require.InDelta(t, 0.0, det, 1e-9)
}

func TestDeterminant_NonSquareRejected(t *testing.T) {
	_, err := linalg.Determinant([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.Error(t, err)
}

func TestSolveSquare_UniqueSolution(t *testing.T) {
	// x + y = 3, x - y = 1 => x=2, y=1
	x, err := linalg.SolveSquare([][]float64{
		{1, 1},
		{1, -1},
	}, []float64{3, 1})
	require.NoError(t, err)
	require.InDelta(t, 2.0, x[0], 1e-9)
	require.InDelta(t, 1.0, x[1], 1e-9)
}

func TestSolveSquare_SingularSystemErrors(t *testing.T) {
	_, err := linalg.SolveSquare([][]float64{
		{1, 2},
		{2, 4},
	}, []float64{1, 2})
	require.Error(t, err)
}
