// Package chorderrors defines the sentinel errors shared by every core
// package of the chord approximator (point, hyperplane, facet, paretoset,
// chord).
//
// The original pareto_approximator C++ library groups all of these under a
// single exception namespace (DifferentDimensionsException,
// SamePointsException, ...); we keep that "one shared taxonomy" property
// but express it the Go way, as package-level sentinel values checked with
// errors.Is, following the convention lvlath uses per-package
// (builder/errors.go, dijkstra/types.go).
package chorderrors

import "errors"

var (
	// ErrDifferentDimensions indicates two operands (points, hyperplanes,
	// facet vertices) disagree on ambient dimension.
	ErrDifferentDimensions = errors.New("chordapprox: operands have different dimensions")

	// ErrNonExistentCoordinate indicates an out-of-range Point coordinate access.
	ErrNonExistentCoordinate = errors.New("chordapprox: coordinate index out of range")

	// ErrNonExistentCoefficient indicates an out-of-range Hyperplane coefficient access.
	ErrNonExistentCoefficient = errors.New("chordapprox: coefficient index out of range")

	// ErrNotStrictlyPositive indicates a ratio-distance or dominance
	// operation was attempted on a point that is not strictly positive.
	ErrNotStrictlyPositive = errors.New("chordapprox: point is not strictly positive")

	// ErrNegativeApproxRatio indicates an epsilon outside the accepted
	// range was supplied: a negative one to Point.Dominates, or a
	// non-positive one to chord.Approximate.
	ErrNegativeApproxRatio = errors.New("chordapprox: approximation ratio must be non-negative")

	// ErrNullObject indicates an operation on a null Point or an empty
	// PointAndSolution.
	ErrNullObject = errors.New("chordapprox: operand is a null object")

	// ErrSamePoints indicates duplicate points were supplied where
	// distinct points are required (hyperplane construction).
	ErrSamePoints = errors.New("chordapprox: duplicate points supplied")

	// ErrNot2DPoints indicates a 2D-only point operation received
	// higher- or lower-dimensional input.
	ErrNot2DPoints = errors.New("chordapprox: points are not 2-dimensional")

	// ErrNot2DHyperplanes indicates a 2D-only hyperplane operation
	// received a hyperplane of another dimension.
	ErrNot2DHyperplanes = errors.New("chordapprox: hyperplanes are not 2-dimensional")

	// ErrParallelHyperplanes indicates an intersection was requested
	// between two parallel (or identical) hyperplanes.
	ErrParallelHyperplanes = errors.New("chordapprox: hyperplanes are parallel")

	// ErrInfiniteRatioDistance indicates a·p == 0 while b != 0, so the
	// ratio distance from p to the hyperplane is unbounded.
	ErrInfiniteRatioDistance = errors.New("chordapprox: ratio distance is infinite")

	// ErrBoundaryFacet indicates the local approximation-error bound was
	// requested on a facet that has been flagged as a boundary facet.
	ErrBoundaryFacet = errors.New("chordapprox: facet is a boundary facet")

	// ErrDegenerateHyperplane indicates the given points are affinely
	// degenerate (e.g. collinear in 3D): no meaningful supporting
	// hyperplane normal exists. Reported explicitly rather than silently
	// returning an all-zero "0 = 0" hyperplane.
	ErrDegenerateHyperplane = errors.New("chordapprox: points do not determine a unique hyperplane")

	// ErrDimensionTooSmall indicates the approximator was asked to run
	// in fewer than 2 dimensions.
	ErrDimensionTooSmall = errors.New("chordapprox: ambient dimension must be at least 2")

	// ErrWrongVertexCount indicates a facet was constructed with a
	// vertex count different from the ambient dimension (facets are
	// simplicial: exactly d vertices in d dimensions).
	ErrWrongVertexCount = errors.New("chordapprox: facet requires exactly d vertices in d dimensions")
)
