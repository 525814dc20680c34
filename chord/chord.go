package chord

import (
	"fmt"
	"math"

	"github.com/lattice-labs/chordapprox/chorderrors"
	"github.com/lattice-labs/chordapprox/facet"
	"github.com/lattice-labs/chordapprox/paretoset"
	"github.com/lattice-labs/chordapprox/point"
)

// Oracle is the caller-supplied weighted-sum solver. For any non-negative
// weight vector w of length d with at least one positive entry, it must
// return an extreme supported Pareto point minimizing w . x over the
// feasible set, along with the solution that achieves it. It must not
// return a null Point for a feasible problem.
type Oracle[S any] func(weights []float64) (facet.PointAndSolution[S], error)

// Options configures a call to Approximate.
type Options struct {
	// IncludeAllOnesAnchor also queries the oracle with the all-ones
	// weight vector during the anchor phase, in addition to the d
	// standard basis vectors.
	IncludeAllOnesAnchor bool

	// MaxRefinements bounds the number of refinement-loop iterations, as
	// a backstop against a misbehaving oracle that never lets any
	// facet's error bound settle below ε. Zero means unbounded.
	MaxRefinements int

	// PreferPositiveNormal controls whether facet construction prefers
	// the all-positive normal candidate when one exists.
	PreferPositiveNormal bool
}

// Option is a functional option for Approximate.
type Option func(*Options)

// WithAllOnesAnchor also anchors on the all-ones weight vector.
func WithAllOnesAnchor() Option {
	return func(o *Options) { o.IncludeAllOnesAnchor = true }
}

// WithMaxRefinements bounds the number of refinement iterations.
func WithMaxRefinements(n int) Option {
	return func(o *Options) { o.MaxRefinements = n }
}

// WithoutPreferredPositiveNormal disables the default preference for an
// all-positive facet normal.
func WithoutPreferredPositiveNormal() Option {
	return func(o *Options) { o.PreferPositiveNormal = false }
}

// DefaultOptions returns the default configuration for Approximate.
func DefaultOptions() Options {
	return Options{
		IncludeAllOnesAnchor: false,
		MaxRefinements:       10000,
		PreferPositiveNormal: true,
	}
}

// Result is the outcome of a completed approximation run.
type Result[S any] struct {
	// Pareto is the set of non-dominated points (with their producing
	// solutions and weight vectors) discovered during the run.
	Pareto *paretoset.NonDominatedSet[facet.PointAndSolution[S]]

	// Facets is the final facet list: every facet built during the run
	// that was never replaced by a subsequent split, in the order it was
	// built. Boundary and tight facets are retained for reporting.
	Facets []*facet.Facet[S]
}

type facetEntry[S any] struct {
	f        *facet.Facet[S]
	excluded bool
}

// Approximate computes an ε-approximation of the Pareto frontier of a
// d-dimensional multi-objective problem, using oracle as the
// weighted-sum solver.
//
// Returns chorderrors.ErrDimensionTooSmall if d < 2, or
// chorderrors.ErrNegativeApproxRatio if eps <= 0. Any error returned by
// the oracle propagates unchanged.
func Approximate[S any](d int, oracle Oracle[S], eps float64, opts ...Option) (Result[S], error) {
	if d < 2 {
		return Result[S]{}, fmt.Errorf("chord: Approximate: %w", chorderrors.ErrDimensionTooSmall)
	}
	if eps <= 0 {
		return Result[S]{}, fmt.Errorf("chord: Approximate: %w", chorderrors.ErrNegativeApproxRatio)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	pareto := paretoset.New(func(ps facet.PointAndSolution[S]) point.Point { return ps.Point })

	anchors, err := anchorPhase(d, oracle, cfg)
	if err != nil {
		return Result[S]{}, err
	}
	for _, a := range anchors {
		if _, err := pareto.Insert(a); err != nil {
			return Result[S]{}, fmt.Errorf("chord: Approximate: %w", err)
		}
	}
	if len(anchors) < d {
		// Too few anchors to form a simplicial facet at all; report what
		// the anchor phase found.
		return Result[S]{Pareto: pareto}, nil
	}

	initial, err := facet.New(anchors[:d], cfg.PreferPositiveNormal)
	if err != nil {
		// The anchors are not affinely independent; no facet can be
		// built, but the anchor points themselves are still a valid
		// (if incomplete) approximation.
		return Result[S]{Pareto: pareto}, nil
	}

	entries := []*facetEntry[S]{{f: initial}}

	for iter := 0; cfg.MaxRefinements == 0 || iter < cfg.MaxRefinements; iter++ {
		worst, _, found := selectWorstFacet(entries, eps)
		if !found {
			break
		}

		newVertex, err := oracle(worst.f.Normal())
		if err != nil {
			return Result[S]{}, fmt.Errorf("chord: Approximate: oracle: %w", err)
		}
		if _, err := pareto.Insert(newVertex); err != nil {
			return Result[S]{}, fmt.Errorf("chord: Approximate: %w", err)
		}

		rd, err := worst.f.RatioDistance(newVertex.Point)
		if err == nil && rd == 0 {
			// Tight facet: the oracle could not find anything past the
			// facet's own supporting hyperplane. Finalize it rather than
			// looping on it forever.
			worst.excluded = true
			continue
		}

		children, err := splitFacet(worst.f, newVertex, cfg)
		if err != nil {
			// A degenerate split (e.g. duplicate vertex) leaves the
			// parent facet as the best available description of this
			// region; finalize it rather than retrying indefinitely.
			worst.excluded = true
			continue
		}
		// The children replace the parent in the facet list.
		for i, e := range entries {
			if e == worst {
				entries = append(entries[:i], entries[i+1:]...)
				break
			}
		}
		for _, child := range children {
			entries = append(entries, &facetEntry[S]{f: child})
		}
	}

	result := Result[S]{Pareto: pareto}
	for _, e := range entries {
		result.Facets = append(result.Facets, e.f)
	}
	return result, nil
}

func anchorPhase[S any](d int, oracle Oracle[S], cfg Options) ([]facet.PointAndSolution[S], error) {
	var anchors []facet.PointAndSolution[S]
	for i := 0; i < d; i++ {
		w := make([]float64, d)
		w[i] = 1
		vertex, err := oracle(w)
		if err != nil {
			return nil, fmt.Errorf("chord: anchorPhase: oracle: %w", err)
		}
		if vertex.IsNull() {
			continue
		}
		anchors = append(anchors, vertex)
	}
	if cfg.IncludeAllOnesAnchor {
		w := make([]float64, d)
		for i := range w {
			w[i] = 1
		}
		vertex, err := oracle(w)
		if err != nil {
			return nil, fmt.Errorf("chord: anchorPhase: oracle: %w", err)
		}
		if !vertex.IsNull() {
			anchors = append(anchors, vertex)
		}
	}
	return anchors, nil
}

// selectWorstFacet returns the non-excluded facet with the largest local
// approximation-error upper bound, provided that bound exceeds eps. Ties
// are broken by earliest insertion order.
//
// Boundary facets have no computable bound (their LDP does not exist or
// is not strictly positive), so as a fallback strategy for 4.4 they are
// given priority +Inf: the driver keeps probing them with the oracle
// until a split fails or the returned point is tight, at which point
// they are excluded like any other finalized facet.
func selectWorstFacet[S any](entries []*facetEntry[S], eps float64) (*facetEntry[S], float64, bool) {
	var best *facetEntry[S]
	var bestBound float64
	for _, e := range entries {
		if e.excluded {
			continue
		}
		bound := math.Inf(1)
		if !e.f.IsBoundaryFacet() {
			b, err := e.f.LocalApproximationErrorUpperBound()
			if err != nil {
				continue
			}
			bound = b
		}
		if best == nil || bound > bestBound {
			best, bestBound = e, bound
		}
	}
	if best == nil || bestBound <= eps {
		return nil, 0, false
	}
	return best, bestBound, true
}

// splitFacet replaces each vertex of f in turn with newVertex, building d
// new simplicial facets around it.
func splitFacet[S any](f *facet.Facet[S], newVertex facet.PointAndSolution[S], cfg Options) ([]*facet.Facet[S], error) {
	vertices := f.Vertices()
	children := make([]*facet.Facet[S], 0, len(vertices))
	for i := range vertices {
		next := make([]facet.PointAndSolution[S], len(vertices))
		copy(next, vertices)
		next[i] = newVertex
		child, err := facet.New(next, cfg.PreferPositiveNormal)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
