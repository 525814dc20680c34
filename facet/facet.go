package facet

import (
	"fmt"

	"github.com/lattice-labs/chordapprox/chorderrors"
	"github.com/lattice-labs/chordapprox/hyperplane"
	"github.com/lattice-labs/chordapprox/linalg"
	"github.com/lattice-labs/chordapprox/point"
)

// PointAndSolution pairs a Point in objective space with the S-typed
// solution that produced it and the weight vector the oracle was called
// with to obtain it.
type PointAndSolution[S any] struct {
	Point       point.Point
	Solution    S
	WeightsUsed []float64
}

// IsNull reports whether p carries no point (its Point is null).
func (p PointAndSolution[S]) IsNull() bool {
	return p.Point.IsNull()
}

// Dimension returns the dimension of the carried point.
func (p PointAndSolution[S]) Dimension() int {
	return p.Point.Dimension()
}

// LexLess orders two PointAndSolution values lexicographically by their
// points.
func (p PointAndSolution[S]) LexLess(other PointAndSolution[S]) (bool, error) {
	return p.Point.LexLess(other.Point)
}

// Facet is a simplicial facet of the approximator's lower hull: exactly d
// vertices in d-dimensional space, an outward normal, and — unless the
// facet is a boundary facet — a local approximation-error upper bound
// derived from its Lower Distal Point.
type Facet[S any] struct {
	vertices             []PointAndSolution[S]
	normal               []float64
	isBoundary           bool
	localErrorUpperBound float64
	lowerDistalPoint     point.Point
}

// New builds a facet from exactly d vertices (d = the vertices' common
// dimension), computing the supporting hyperplane's normal via cofactor
// expansion. If preferPositiveNormal is set and the computed normal is
// all non-positive, its sign is flipped.
//
// Returns chorderrors.ErrWrongVertexCount if len(vertices) is not equal
// to the vertices' dimension, chorderrors.ErrNullObject if any vertex or
// its point is null, chorderrors.ErrDifferentDimensions if the vertices
// disagree on dimension, or chorderrors.ErrDegenerateHyperplane if the
// vertices do not determine a unique supporting hyperplane.
func New[S any](vertices []PointAndSolution[S], preferPositiveNormal bool) (*Facet[S], error) {
	if err := validateVertices(vertices); err != nil {
		return nil, err
	}
	d := vertices[0].Dimension()

	pts := make([]point.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = v.Point
	}
	h, err := hyperplane.FromPoints(pts...)
	if err != nil {
		return nil, fmt.Errorf("facet: New: %w", err)
	}
	normal := h.Coefficients()
	if preferPositiveNormal && allNonPositive(normal) {
		for i := range normal {
			normal[i] = -normal[i]
		}
	}

	f := &Facet[S]{vertices: append([]PointAndSolution[S](nil), vertices...), normal: normal}
	f.computeLDPAndErrorBound(d)
	return f, nil
}

// NewWithNormal builds a facet from exactly d vertices and an explicit
// normal supplied by the caller, who is responsible for the normal's
// consistency with the vertices' affine hull.
//
// Returns the same errors as New for malformed vertices.
func NewWithNormal[S any](vertices []PointAndSolution[S], normal []float64) (*Facet[S], error) {
	if err := validateVertices(vertices); err != nil {
		return nil, err
	}
	d := vertices[0].Dimension()
	if len(normal) != d {
		return nil, fmt.Errorf("facet: NewWithNormal: %w", chorderrors.ErrDifferentDimensions)
	}

	f := &Facet[S]{
		vertices: append([]PointAndSolution[S](nil), vertices...),
		normal:   append([]float64(nil), normal...),
	}
	f.computeLDPAndErrorBound(d)
	return f, nil
}

func validateVertices[S any](vertices []PointAndSolution[S]) error {
	if len(vertices) == 0 {
		return fmt.Errorf("facet: %w", chorderrors.ErrWrongVertexCount)
	}
	d := vertices[0].Dimension()
	if len(vertices) != d {
		return fmt.Errorf("facet: %w", chorderrors.ErrWrongVertexCount)
	}
	for _, v := range vertices {
		if v.IsNull() {
			return fmt.Errorf("facet: %w", chorderrors.ErrNullObject)
		}
		if v.Dimension() != d {
			return fmt.Errorf("facet: %w", chorderrors.ErrDifferentDimensions)
		}
	}
	return nil
}

func allNonPositive(v []float64) bool {
	for _, x := range v {
		if x > 0 {
			return false
		}
	}
	return true
}

// computeLowerDistalPoint solves the linear system whose i-th
// equation is weightsUsed_i . x = weightsUsed_i . vertex_i, one equation
// per vertex. A unique solution is the facet's Lower Distal Point; a
// singular or inconsistent system yields a null Point.
func (f *Facet[S]) computeLowerDistalPoint(d int) point.Point {
	rows := make([][]float64, d)
	b := make([]float64, d)
	for i, v := range f.vertices {
		if len(v.WeightsUsed) != d {
			return point.Null()
		}
		rows[i] = append([]float64(nil), v.WeightsUsed...)
		dot := 0.0
		coords := v.Point.ToSlice()
		for j := 0; j < d; j++ {
			dot += v.WeightsUsed[j] * coords[j]
		}
		b[i] = dot
	}

	x, err := linalg.SolveSquare(rows, b)
	if err != nil {
		return point.Null()
	}
	return point.New(x...)
}

func (f *Facet[S]) computeLDPAndErrorBound(d int) {
	ldp := f.computeLowerDistalPoint(d)
	f.lowerDistalPoint = ldp

	if ldp.IsNull() {
		f.isBoundary = true
		f.localErrorUpperBound = -2.0
		return
	}
	if !ldp.IsStrictlyPositive() {
		f.isBoundary = true
		f.localErrorUpperBound = -1.0
		return
	}
	f.isBoundary = false
	bound, err := f.RatioDistance(ldp)
	if err != nil {
		// RatioDistance can still fail for a strictly positive LDP
		// (ErrInfiniteRatioDistance when the LDP is orthogonal to the
		// normal and the facet's plane does not pass through the origin);
		// such a facet has no usable bound and is treated as boundary.
		f.isBoundary = true
		f.localErrorUpperBound = -1.0
		return
	}
	f.localErrorUpperBound = bound
}

// SpaceDimension returns the ambient dimension d.
func (f *Facet[S]) SpaceDimension() int {
	return len(f.normal)
}

// Vertices returns a copy of the facet's vertices.
func (f *Facet[S]) Vertices() []PointAndSolution[S] {
	out := make([]PointAndSolution[S], len(f.vertices))
	copy(out, f.vertices)
	return out
}

// Normal returns a copy of the facet's outward normal vector.
func (f *Facet[S]) Normal() []float64 {
	out := make([]float64, len(f.normal))
	copy(out, f.normal)
	return out
}

// IsBoundaryFacet reports whether the facet has no usable Lower Distal
// Point (the per-vertex weight hyperplanes fail to intersect in a
// strictly positive point).
func (f *Facet[S]) IsBoundaryFacet() bool {
	return f.isBoundary
}

// LowerDistalPoint returns the facet's LDP, or the null Point if the
// per-vertex weight hyperplanes have no unique intersection. A boundary
// facet whose LDP exists but is not strictly positive returns that LDP.
func (f *Facet[S]) LowerDistalPoint() point.Point {
	return f.lowerDistalPoint
}

// LocalApproximationErrorUpperBound returns the facet's local error
// bound: the ratio distance from the facet's supporting hyperplane to
// its Lower Distal Point.
//
// Returns chorderrors.ErrBoundaryFacet if the facet is a boundary facet.
func (f *Facet[S]) LocalApproximationErrorUpperBound() (float64, error) {
	if f.isBoundary {
		return 0, fmt.Errorf("facet: LocalApproximationErrorUpperBound: %w", chorderrors.ErrBoundaryFacet)
	}
	return f.localErrorUpperBound, nil
}

// RatioDistance computes p's ratio distance from the hyperplane the
// facet lies on, using the facet's normal and its first vertex as the
// plane's offset reference.
//
// Returns chorderrors.ErrNullObject if p is null,
// chorderrors.ErrDifferentDimensions if p's dimension does not match the
// facet's, chorderrors.ErrNotStrictlyPositive if p is not strictly
// positive, or chorderrors.ErrInfiniteRatioDistance if p's coordinate
// vector is orthogonal to the facet's normal while the facet's plane does
// not pass through the origin (if it does, the distance is 0).
func (f *Facet[S]) RatioDistance(p point.Point) (float64, error) {
	if p.IsNull() {
		return 0, fmt.Errorf("facet: RatioDistance: %w", chorderrors.ErrNullObject)
	}
	if f.SpaceDimension() != p.Dimension() {
		return 0, fmt.Errorf("facet: RatioDistance: %w", chorderrors.ErrDifferentDimensions)
	}
	if !p.IsStrictlyPositive() {
		return 0, fmt.Errorf("facet: RatioDistance: %w", chorderrors.ErrNotStrictlyPositive)
	}

	onFacet := f.vertices[0].Point
	dot, facetOffset := 0.0, 0.0
	for i := 0; i < f.SpaceDimension(); i++ {
		dot += f.normal[i] * p.At(i)
		facetOffset += f.normal[i] * onFacet.At(i)
	}

	if dot == facetOffset {
		return 0, nil
	}
	if dot == 0 {
		return 0, fmt.Errorf("facet: RatioDistance: %w", chorderrors.ErrInfiniteRatioDistance)
	}
	result := (facetOffset - dot) / dot
	if result < 0 {
		return 0, nil
	}
	return result, nil
}

// HasAllNormalVectorElementsNonPositive reports whether every element of
// the facet's normal is <= 0.
func (f *Facet[S]) HasAllNormalVectorElementsNonPositive() bool {
	return allNonPositive(f.normal)
}
