package shortestpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/lattice-labs/chordapprox/chord"
	"github.com/lattice-labs/chordapprox/chorderrors"
	"github.com/lattice-labs/chordapprox/facet"
	"github.com/lattice-labs/chordapprox/point"
)

// CombineOracle returns a weighted-sum oracle over paths from source to
// target: given a non-negative weight vector w (with at least one
// positive entry), it runs a scalarized Dijkstra search minimizing
// w . cost(path) and returns the winning Path together with its
// objective-space image.
//
// The returned oracle satisfies the chord package's Oracle contract: the
// PointAndSolution it returns carries WeightsUsed equal to w and a Point
// of dimension g.CostDimension().
//
// Returns ErrVertexNotFound if source or target is not in the graph,
// ErrWeightDimensionMismatch if len(w) != g.CostDimension(), or
// ErrTargetUnreachable if no path connects them.
func (g *Graph) CombineOracle(source, target string) chord.Oracle[Path] {
	return func(w []float64) (facet.PointAndSolution[Path], error) {
		if !g.HasVertex(source) || !g.HasVertex(target) {
			return facet.PointAndSolution[Path]{}, fmt.Errorf("shortestpath: CombineOracle: %w", ErrVertexNotFound)
		}
		if len(w) != g.costDim {
			return facet.PointAndSolution[Path]{}, fmt.Errorf("shortestpath: CombineOracle: %w", ErrWeightDimensionMismatch)
		}

		r := &runner{g: g, w: w, source: source}
		r.init()
		r.process()

		if !r.visited[target] {
			return facet.PointAndSolution[Path]{}, fmt.Errorf("shortestpath: CombineOracle: %w", ErrTargetUnreachable)
		}

		path := r.reconstruct(target)
		p := point.New(path.Cost...)
		if err := requireStrictlyPositive(p); err != nil {
			return facet.PointAndSolution[Path]{}, fmt.Errorf("shortestpath: CombineOracle: %w", err)
		}

		return facet.PointAndSolution[Path]{
			Point:       p,
			Solution:    path,
			WeightsUsed: append([]float64(nil), w...),
		}, nil
	}
}

func requireStrictlyPositive(p point.Point) error {
	if !p.IsStrictlyPositive() {
		return chorderrors.ErrNotStrictlyPositive
	}
	return nil
}

// runner holds the mutable state for a single scalarized Dijkstra run.
// Costs are combined into a scalar via the dot product with w; this is
// the only generalization from the teacher's int64-weighted Dijkstra.
type runner struct {
	g        *Graph
	w        []float64
	source   string
	dist     map[string]float64
	prev     map[string]string
	prevEdge map[string]string
	visited  map[string]bool
	pq       nodePQ
}

func (r *runner) init() {
	vertices := r.g.Vertices()
	r.dist = make(map[string]float64, len(vertices))
	r.prev = make(map[string]string, len(vertices))
	r.prevEdge = make(map[string]string, len(vertices))
	r.visited = make(map[string]bool, len(vertices))

	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.visited[v] = false
	}
	r.dist[r.source] = 0

	r.pq = make(nodePQ, 0, len(vertices))
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		for _, e := range r.g.adj[u] {
			if e.Directed && e.From != u {
				continue
			}
			scalar := dot(r.w, e.Cost)
			newDist := d + scalar
			if newDist >= r.dist[e.To] {
				continue
			}
			r.dist[e.To] = newDist
			r.prev[e.To] = u
			r.prevEdge[e.To] = e.ID
			heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
		}
	}
}

func (r *runner) reconstruct(target string) Path {
	total := make([]float64, r.g.costDim)

	var vertexIDs, edgeIDs []string
	vertexIDs = append(vertexIDs, target)
	for cur := target; cur != r.source; {
		parent, ok := r.prev[cur]
		if !ok {
			break
		}
		edgeID := r.prevEdge[cur]
		for _, e := range r.g.adj[parent] {
			if e.ID == edgeID {
				for i, c := range e.Cost {
					total[i] += c
				}
				break
			}
		}
		edgeIDs = append([]string{edgeID}, edgeIDs...)
		vertexIDs = append([]string{parent}, vertexIDs...)
		cur = parent
	}

	return Path{
		Source:    r.source,
		Target:    target,
		VertexIDs: vertexIDs,
		EdgeIDs:   edgeIDs,
		Cost:      total,
	}
}

func dot(w, cost []float64) float64 {
	sum := 0.0
	for i := range w {
		sum += w[i] * cost[i]
	}
	return sum
}

// nodeItem represents a vertex and its current scalarized distance from
// the source, ordered by distance ascending. Mirrors the teacher's
// dijkstra.nodeItem, generalized from int64 to float64.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem using the same lazy-decrease-key
// pattern as the teacher's dijkstra.nodePQ: stale entries are pushed
// rather than updated in place, and skipped on pop via runner.visited.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
