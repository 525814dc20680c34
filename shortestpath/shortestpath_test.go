package shortestpath_test

import (
	"testing"

	"github.com/lattice-labs/chordapprox/shortestpath"
	"github.com/stretchr/testify/require"
)

func triangleGraph(t *testing.T) *shortestpath.Graph {
	t.Helper()
	g := shortestpath.NewGraph(shortestpath.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", []float64{1, 10}))
	require.NoError(t, g.AddEdge("B", "C", []float64{1, 10}))
	require.NoError(t, g.AddEdge("A", "C", []float64{5, 1}))
	return g
}

func TestGraph_AddEdgeRegistersVertices(t *testing.T) {
	g := triangleGraph(t)
	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.True(t, g.HasVertex("C"))
	require.ElementsMatch(t, []string{"A", "B", "C"}, g.Vertices())
	require.Equal(t, 2, g.CostDimension())
}

func TestGraph_AddEdgeRejectsDimensionMismatch(t *testing.T) {
	g := triangleGraph(t)
	err := g.AddEdge("C", "A", []float64{1, 2, 3})
	require.ErrorIs(t, err, shortestpath.ErrCostDimensionMismatch)
}

func TestGraph_AddEdgeRejectsNonPositiveCost(t *testing.T) {
	g := shortestpath.NewGraph()
	err := g.AddEdge("A", "B", []float64{-1, 2})
	require.ErrorIs(t, err, shortestpath.ErrNonPositiveCost)

	err = g.AddEdge("A", "B", []float64{0, 2})
	require.ErrorIs(t, err, shortestpath.ErrNonPositiveCost)
}

func TestGraph_AddEdgeRejectsEmptyCost(t *testing.T) {
	g := shortestpath.NewGraph()
	err := g.AddEdge("A", "B", nil)
	require.ErrorIs(t, err, shortestpath.ErrEmptyCost)
}

func TestGraph_UndirectedEdgeAppearsInBothAdjacencyLists(t *testing.T) {
	g := shortestpath.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", []float64{3}))

	fromA, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, fromA, 1)

	fromB, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, fromB, 1)
	require.Equal(t, "B", fromA[0].To)
	require.Equal(t, "A", fromB[0].To)
}

func TestGraph_NeighborsRejectsUnknownVertex(t *testing.T) {
	g := shortestpath.NewGraph()
	_, err := g.Neighbors("nope")
	require.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
}

// TestCombineOracle_PrefersCheaperTravelTimeWhenWeightedThere exercises
// the two-route triangle: A->B->C costs (2,20), A->C costs (5,1). A
// weight vector favoring the first cost component should pick the
// direct A->C edge only when its first-component cost is lower; here
// the two-hop route is cheaper on that axis, so it should win when w
// only weights the first component.
func TestCombineOracle_PrefersCheaperTravelTimeWhenWeightedThere(t *testing.T) {
	g := triangleGraph(t)
	oracle := g.CombineOracle("A", "C")

	result, err := oracle([]float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, result.Solution.VertexIDs)
	require.InDelta(t, 2.0, result.Point.At(0), 1e-9)
}

func TestCombineOracle_PrefersDirectRouteWhenSecondComponentDominates(t *testing.T) {
	g := triangleGraph(t)
	oracle := g.CombineOracle("A", "C")

	result, err := oracle([]float64{0.01, 1})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, result.Solution.VertexIDs)
}

func TestCombineOracle_WeightsUsedEchoedOnResult(t *testing.T) {
	g := triangleGraph(t)
	oracle := g.CombineOracle("A", "C")

	w := []float64{1, 1}
	result, err := oracle(w)
	require.NoError(t, err)
	require.Equal(t, w, result.WeightsUsed)
	require.Equal(t, g.CostDimension(), result.Point.Dimension())
}

func TestCombineOracle_RejectsWeightDimensionMismatch(t *testing.T) {
	g := triangleGraph(t)
	oracle := g.CombineOracle("A", "C")
	_, err := oracle([]float64{1, 1, 1})
	require.ErrorIs(t, err, shortestpath.ErrWeightDimensionMismatch)
}

func TestCombineOracle_RejectsUnknownVertices(t *testing.T) {
	g := triangleGraph(t)
	oracle := g.CombineOracle("A", "Z")
	_, err := oracle([]float64{1, 1})
	require.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
}

func TestCombineOracle_ReportsUnreachableTarget(t *testing.T) {
	g := shortestpath.NewGraph(shortestpath.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", []float64{1}))
	require.NoError(t, g.AddVertex("isolated"))

	oracle := g.CombineOracle("A", "isolated")
	_, err := oracle([]float64{1})
	require.ErrorIs(t, err, shortestpath.ErrTargetUnreachable)
}
