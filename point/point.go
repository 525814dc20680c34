package point

import (
	"fmt"
	"strings"

	"github.com/lattice-labs/chordapprox/chorderrors"
)

// Point is an immutable, finite-dimensional real vector.
//
// The zero value is the null Point (dimension 0), the sentinel for "no
// solution". Once constructed with coordinates, a Point's dimension and
// coordinates never change except via Truncate, which returns a new Point.
type Point struct {
	coords []float64
}

// New constructs a Point from the given coordinates. The coordinates are
// copied, so later mutation of coords by the caller does not affect the
// returned Point.
func New(coords ...float64) Point {
	if len(coords) == 0 {
		return Point{}
	}
	cp := make([]float64, len(coords))
	copy(cp, coords)
	return Point{coords: cp}
}

// Null returns the dimension-0 sentinel Point.
func Null() Point {
	return Point{}
}

// Dimension returns the number of coordinates. A dimension of 0 marks a
// null Point.
func (p Point) Dimension() int {
	return len(p.coords)
}

// IsNull reports whether p is the null Point (dimension 0).
func (p Point) IsNull() bool {
	return len(p.coords) == 0
}

// Coordinate returns the i-th coordinate (0-indexed).
//
// Returns chorderrors.ErrNonExistentCoordinate if i is out of range.
func (p Point) Coordinate(i int) (float64, error) {
	if i < 0 || i >= len(p.coords) {
		return 0, fmt.Errorf("point: coordinate %d: %w", i, chorderrors.ErrNonExistentCoordinate)
	}
	return p.coords[i], nil
}

// At is like Coordinate but panics on an out-of-range index, for callers
// that have already validated the dimension (e.g. hot loops inside this
// module's own packages).
func (p Point) At(i int) float64 {
	return p.coords[i]
}

// IsStrictlyPositive reports whether every coordinate is strictly greater
// than zero. A null Point is not strictly positive.
func (p Point) IsStrictlyPositive() bool {
	if p.IsNull() {
		return false
	}
	for _, c := range p.coords {
		if c <= 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether every coordinate is exactly zero. A null Point is
// not considered zero (it has no coordinates to compare).
func (p Point) IsZero() bool {
	if p.IsNull() {
		return false
	}
	for _, c := range p.coords {
		if c != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have the same dimension and identical
// coordinates.
func (p Point) Equal(q Point) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i := range p.coords {
		if p.coords[i] != q.coords[i] {
			return false
		}
	}
	return true
}

// LexLess reports whether p is lexicographically smaller than q: comparing
// coordinates left to right, p < q at the first index where they differ.
//
// Returns chorderrors.ErrDifferentDimensions if p and q have different
// dimensions.
func (p Point) LexLess(q Point) (bool, error) {
	if len(p.coords) != len(q.coords) {
		return false, fmt.Errorf("point: LexLess: %w", chorderrors.ErrDifferentDimensions)
	}
	for i := range p.coords {
		if p.coords[i] != q.coords[i] {
			return p.coords[i] < q.coords[i], nil
		}
	}
	return false, nil
}

// Dominates reports whether p eps-covers q: both must be strictly
// positive and of equal dimension, and p_i <= (1+eps)*q_i must hold for
// every coordinate i. With eps == 0 this is ordinary Pareto dominance.
//
// Returns chorderrors.ErrNotStrictlyPositive if either point is not
// strictly positive, chorderrors.ErrNegativeApproxRatio if eps < 0, or
// chorderrors.ErrDifferentDimensions if the dimensions differ.
func (p Point) Dominates(q Point, eps float64) (bool, error) {
	if eps < 0 {
		return false, fmt.Errorf("point: Dominates: %w", chorderrors.ErrNegativeApproxRatio)
	}
	if !p.IsStrictlyPositive() || !q.IsStrictlyPositive() {
		return false, fmt.Errorf("point: Dominates: %w", chorderrors.ErrNotStrictlyPositive)
	}
	if len(p.coords) != len(q.coords) {
		return false, fmt.Errorf("point: Dominates: %w", chorderrors.ErrDifferentDimensions)
	}
	for i := range p.coords {
		if p.coords[i] > (1+eps)*q.coords[i] {
			return false, nil
		}
	}
	return true, nil
}

// RatioDistance returns the ratio distance from p to q:
//
//	RD(p, q) = max( max_i( (q_i - p_i) / p_i ), 0 )
//
// the minimum epsilon >= 0 such that q epsilon-covers p. p must be
// strictly positive.
//
// Returns chorderrors.ErrNotStrictlyPositive if p is not strictly
// positive, or chorderrors.ErrDifferentDimensions if the dimensions differ.
func (p Point) RatioDistance(q Point) (float64, error) {
	if !p.IsStrictlyPositive() {
		return 0, fmt.Errorf("point: RatioDistance: %w", chorderrors.ErrNotStrictlyPositive)
	}
	if len(p.coords) != len(q.coords) {
		return 0, fmt.Errorf("point: RatioDistance: %w", chorderrors.ErrDifferentDimensions)
	}
	max := 0.0
	for i := range p.coords {
		r := (q.coords[i] - p.coords[i]) / p.coords[i]
		if r > max {
			max = r
		}
	}
	return max, nil
}

// Truncate returns a new Point keeping only the first n coordinates. If n
// is greater than or equal to p.Dimension(), p is returned unchanged. n
// must be non-negative.
func (p Point) Truncate(n int) Point {
	if n < 0 {
		n = 0
	}
	if n >= len(p.coords) {
		return p
	}
	return New(p.coords[:n]...)
}

// ToSlice returns a copy of the point's coordinates.
func (p Point) ToSlice() []float64 {
	cp := make([]float64, len(p.coords))
	copy(cp, p.coords)
	return cp
}

// ToRowVector is an alias for ToSlice, exporting coordinates to the
// linear-algebra layer.
func (p Point) ToRowVector() []float64 {
	return p.ToSlice()
}

// String renders the point's coordinates in parentheses, e.g. "(1, 4.27,
// 0.883)", or "()" for the null Point.
func (p Point) String() string {
	if p.IsNull() {
		return "()"
	}
	parts := make([]string, len(p.coords))
	for i, c := range p.coords {
		parts[i] = fmt.Sprintf("%v", c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
