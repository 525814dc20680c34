package facet_test

import (
	"testing"

	"github.com/lattice-labs/chordapprox/chorderrors"
	"github.com/lattice-labs/chordapprox/facet"
	"github.com/lattice-labs/chordapprox/point"
	"github.com/stretchr/testify/require"
)

func vertex(coords []float64, weights []float64) facet.PointAndSolution[string] {
	return facet.PointAndSolution[string]{
		Point:       point.New(coords...),
		Solution:    "solution",
		WeightsUsed: weights,
	}
}

func TestFacet_NormalIsOrthogonalToVertexDifferences(t *testing.T) {
	vertices := []facet.PointAndSolution[string]{
		vertex([]float64{1, 0, 0}, []float64{1, 0, 0}),
		vertex([]float64{0, 1, 0}, []float64{0, 1, 0}),
		vertex([]float64{0, 0, 1}, []float64{0, 0, 1}),
	}
	f, err := facet.New(vertices, false)
	require.NoError(t, err)

	n := f.Normal()
	base := vertices[0].Point.ToSlice()
	for _, v := range vertices[1:] {
		diff := v.Point.ToSlice()
		dot := 0.0
		for i := range diff {
			dot += n[i] * (diff[i] - base[i])
		}
		require.InDelta(t, 0.0, dot, 1e-9)
	}
}

func TestFacet_PreferPositiveNormalFlipsSign(t *testing.T) {
	vertices := []facet.PointAndSolution[string]{
		vertex([]float64{1, 0, 0}, []float64{1, 0, 0}),
		vertex([]float64{0, 0, 1}, []float64{0, 0, 1}),
		vertex([]float64{0, 1, 0}, []float64{0, 1, 0}),
	}
	f, err := facet.New(vertices, true)
	require.NoError(t, err)
	for _, c := range f.Normal() {
		require.GreaterOrEqual(t, c, 0.0)
	}
}

func TestFacet_WrongVertexCountRejected(t *testing.T) {
	vertices := []facet.PointAndSolution[string]{
		vertex([]float64{1, 0}, []float64{1, 0}),
	}
	_, err := facet.New(vertices, false)
	require.ErrorIs(t, err, chorderrors.ErrWrongVertexCount)
}

func TestFacet_NullVertexRejected(t *testing.T) {
	vertices := []facet.PointAndSolution[string]{
		vertex([]float64{1, 0}, []float64{1, 0}),
		{Point: point.Null(), Solution: "x", WeightsUsed: nil},
	}
	_, err := facet.New(vertices, false)
	require.ErrorIs(t, err, chorderrors.ErrNullObject)
}

// TestFacet_LDPSingularityMarksBoundary: a 3-D facet whose vertex weight
// vectors are linearly dependent has no unique Lower Distal Point and is
// flagged as boundary.
func TestFacet_LDPSingularityMarksBoundary(t *testing.T) {
	vertices := []facet.PointAndSolution[string]{
		vertex([]float64{1, 0, 0}, []float64{1, 0, 0}),
		vertex([]float64{0, 1, 0}, []float64{0, 1, 0}),
		// linearly dependent on the sum of the first two weight vectors
		vertex([]float64{0, 0, 1}, []float64{1, 1, 0}),
	}
	f, err := facet.New(vertices, false)
	require.NoError(t, err)
	require.True(t, f.IsBoundaryFacet())
	require.True(t, f.LowerDistalPoint().IsNull())

	_, err = f.LocalApproximationErrorUpperBound()
	require.ErrorIs(t, err, chorderrors.ErrBoundaryFacet)
}

func TestFacet_LDPExistsAndErrorBoundComputed(t *testing.T) {
	// The simplex e1, e2, e3 with matching weights has LDP (1,1,1) and a
	// well-defined, non-negative local error bound.
	vertices := []facet.PointAndSolution[string]{
		vertex([]float64{1, 0, 0}, []float64{1, 0, 0}),
		vertex([]float64{0, 1, 0}, []float64{0, 1, 0}),
		vertex([]float64{0, 0, 1}, []float64{0, 0, 1}),
	}
	f, err := facet.New(vertices, false)
	require.NoError(t, err)
	require.False(t, f.IsBoundaryFacet())

	ldp := f.LowerDistalPoint()
	require.False(t, ldp.IsNull())
	require.InDelta(t, 1.0, ldp.At(0), 1e-9)
	require.InDelta(t, 1.0, ldp.At(1), 1e-9)
	require.InDelta(t, 1.0, ldp.At(2), 1e-9)

	bound, err := f.LocalApproximationErrorUpperBound()
	require.NoError(t, err)
	require.GreaterOrEqual(t, bound, 0.0)
}
