package hyperplane

import (
	"fmt"
	"math"
	"strings"

	"github.com/lattice-labs/chordapprox/chorderrors"
	"github.com/lattice-labs/chordapprox/linalg"
	"github.com/lattice-labs/chordapprox/point"
)

// Hyperplane represents the affine set a_1*x_1 + ... + a_n*x_n = b in an
// n-dimensional space. The zero value is the null hyperplane (dimension 0).
type Hyperplane struct {
	coefficients []float64
	b            float64
}

// New constructs a hyperplane directly from its coefficients and offset.
// The caller is responsible for coefficients agreeing with b; New performs
// no geometric validation.
func New(coefficients []float64, b float64) Hyperplane {
	cp := make([]float64, len(coefficients))
	copy(cp, coefficients)
	return Hyperplane{coefficients: cp, b: b}
}

// FromTwoPoints builds the 2-hyperplane (line) through two distinct 2D
// points, mirroring the original library's dedicated two-point
// constructor.
//
// Returns chorderrors.ErrSamePoints if p1 equals p2, or
// chorderrors.ErrNot2DPoints if either point is not 2-dimensional.
func FromTwoPoints(p1, p2 point.Point) (Hyperplane, error) {
	if p1.Dimension() != 2 || p2.Dimension() != 2 {
		return Hyperplane{}, fmt.Errorf("hyperplane: FromTwoPoints: %w", chorderrors.ErrNot2DPoints)
	}
	if p1.Equal(p2) {
		return Hyperplane{}, fmt.Errorf("hyperplane: FromTwoPoints: %w", chorderrors.ErrSamePoints)
	}

	x1, x2 := p1.At(0), p1.At(1)
	y1, y2 := p2.At(0), p2.At(1)
	if x2 != y2 {
		a1 := 1.0
		a2 := (y1 - x1) / (x2 - y2)
		return Hyperplane{coefficients: []float64{a1, a2}, b: x1 + a2*x2}, nil
	}
	// the line through them is horizontal
	return Hyperplane{coefficients: []float64{0, 1}, b: x2}, nil
}

// FromPoints builds the n-hyperplane passing through n points in
// n-dimensional space, generalizing FromTwoPoints to arbitrary dimension.
//
// The normal vector's i-th coefficient is the determinant of the matrix
// formed by the points' coordinates with column i replaced by a column of
// ones (the same cofactor-expansion trick the original library used only
// for facet normals). If every coefficient comes out zero the points are
// affinely degenerate (e.g. collinear in 3D) and do not determine a
// unique hyperplane.
//
// Returns chorderrors.ErrWrongVertexCount if len(points) does not equal
// the points' common dimension, chorderrors.ErrDifferentDimensions if the
// points disagree on dimension, chorderrors.ErrSamePoints if any two
// points coincide, or chorderrors.ErrDegenerateHyperplane if no unique
// hyperplane exists.
func FromPoints(points ...point.Point) (Hyperplane, error) {
	n := len(points)
	if n == 0 {
		return Hyperplane{}, fmt.Errorf("hyperplane: FromPoints: %w", chorderrors.ErrWrongVertexCount)
	}
	d := points[0].Dimension()
	if n != d {
		return Hyperplane{}, fmt.Errorf("hyperplane: FromPoints: %w", chorderrors.ErrWrongVertexCount)
	}
	for i, p := range points {
		if p.Dimension() != d {
			return Hyperplane{}, fmt.Errorf("hyperplane: FromPoints: %w", chorderrors.ErrDifferentDimensions)
		}
		for j := i + 1; j < n; j++ {
			if p.Equal(points[j]) {
				return Hyperplane{}, fmt.Errorf("hyperplane: FromPoints: %w", chorderrors.ErrSamePoints)
			}
		}
	}

	rows := make([][]float64, n)
	for i, p := range points {
		rows[i] = p.ToSlice()
	}

	coefficients := make([]float64, d)
	allZero := true
	for col := 0; col < d; col++ {
		sub := make([][]float64, n)
		for r := 0; r < n; r++ {
			replaced := make([]float64, d)
			copy(replaced, rows[r])
			replaced[col] = 1
			sub[r] = replaced
		}
		det, err := linalg.Determinant(sub)
		if err != nil {
			return Hyperplane{}, fmt.Errorf("hyperplane: FromPoints: %w", err)
		}
		coefficients[col] = det
		if det != 0 {
			allZero = false
		}
	}
	if allZero {
		return Hyperplane{}, fmt.Errorf("hyperplane: FromPoints: %w", chorderrors.ErrDegenerateHyperplane)
	}

	b := 0.0
	for i, c := range coefficients {
		b += c * points[0].At(i)
	}
	return Hyperplane{coefficients: coefficients, b: b}, nil
}

// SpaceDimension returns the number of a_i coefficients. A dimension of 0
// marks the null hyperplane.
func (h Hyperplane) SpaceDimension() int {
	return len(h.coefficients)
}

// Coefficient returns the i-th coefficient a_{i+1}.
//
// Returns chorderrors.ErrNonExistentCoefficient if i is out of range.
func (h Hyperplane) Coefficient(i int) (float64, error) {
	if i < 0 || i >= len(h.coefficients) {
		return 0, fmt.Errorf("hyperplane: coefficient %d: %w", i, chorderrors.ErrNonExistentCoefficient)
	}
	return h.coefficients[i], nil
}

// B returns the hyperplane equation's right-hand side.
func (h Hyperplane) B() float64 {
	return h.b
}

// Coefficients returns a copy of the a_i coefficients.
func (h Hyperplane) Coefficients() []float64 {
	cp := make([]float64, len(h.coefficients))
	copy(cp, h.coefficients)
	return cp
}

// RatioDistance computes the ratio distance from p to the hyperplane:
// the minimum epsilon >= 0 such that some point on the hyperplane
// epsilon-covers p.
//
// Returns chorderrors.ErrDifferentDimensions if p's dimension differs
// from the hyperplane's, or chorderrors.ErrInfiniteRatioDistance if
// a.p == 0 while b != 0.
func (h Hyperplane) RatioDistance(p point.Point) (float64, error) {
	if h.SpaceDimension() != p.Dimension() {
		return 0, fmt.Errorf("hyperplane: RatioDistance: %w", chorderrors.ErrDifferentDimensions)
	}
	dot := 0.0
	for i, a := range h.coefficients {
		dot += a * p.At(i)
	}
	if dot == 0 {
		if h.b != 0 {
			return 0, fmt.Errorf("hyperplane: RatioDistance: %w", chorderrors.ErrInfiniteRatioDistance)
		}
		return 0, nil
	}
	return math.Max((h.b-dot)/dot, 0.0), nil
}

// ParallelThrough returns a new hyperplane parallel to h that passes
// through p: same coefficients, a recomputed offset.
func (h Hyperplane) ParallelThrough(p point.Point) Hyperplane {
	newB := 0.0
	for i, a := range h.coefficients {
		newB += a * p.At(i)
	}
	return New(h.coefficients, newB)
}

// IsParallel reports whether h and other are parallel (or the same),
// comparing coefficients scaled by each other's leading coefficient so
// that proportional coefficient vectors compare equal.
func (h Hyperplane) IsParallel(other Hyperplane) bool {
	if h.SpaceDimension() != other.SpaceDimension() || h.SpaceDimension() == 0 {
		return false
	}
	for i := range h.coefficients {
		if h.coefficients[i]*other.coefficients[0] != other.coefficients[i]*h.coefficients[0] {
			return false
		}
	}
	return true
}

// Intersection returns the point where two 2-hyperplanes (lines) meet.
//
// Returns chorderrors.ErrNot2DHyperplanes if either hyperplane is not
// 2-dimensional, or chorderrors.ErrParallelHyperplanes if the lines are
// parallel (or identical).
func (h Hyperplane) Intersection(other Hyperplane) (point.Point, error) {
	if h.SpaceDimension() != 2 || other.SpaceDimension() != 2 {
		return point.Null(), fmt.Errorf("hyperplane: Intersection: %w", chorderrors.ErrNot2DHyperplanes)
	}
	if h.IsParallel(other) {
		return point.Null(), fmt.Errorf("hyperplane: Intersection: %w", chorderrors.ErrParallelHyperplanes)
	}
	a0, a1 := h.coefficients[0], h.coefficients[1]
	c0, c1 := other.coefficients[0], other.coefficients[1]
	x0 := (a1*other.b - h.b*c1) / (a1*c0 - a0*c1)
	var y0 float64
	if a1 != 0 {
		y0 = (h.b - a0*x0) / a1
	} else {
		y0 = (other.b - c0*x0) / c1
	}
	return point.New(x0, y0), nil
}

// Equal reports whether h and other represent the same hyperplane,
// allowing for a proportional scaling of coefficients and offset.
func (h Hyperplane) Equal(other Hyperplane) bool {
	if h.SpaceDimension() != other.SpaceDimension() {
		return false
	}
	for i := range h.coefficients {
		if h.coefficients[i]*other.b != other.coefficients[i]*h.b {
			return false
		}
	}
	return true
}

// String renders the hyperplane's equation in parentheses, e.g.
// "( 2.2 * x1 + 5 * x2 - 1.7 * x3 = 9.2 )", or "()" for the null
// hyperplane.
func (h Hyperplane) String() string {
	if h.SpaceDimension() == 0 {
		return "()"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "( %v * x1", h.coefficients[0])
	for i := 1; i < len(h.coefficients); i++ {
		if h.coefficients[i] >= 0 {
			fmt.Fprintf(&sb, " + %v * x%d", h.coefficients[i], i+1)
		} else {
			fmt.Fprintf(&sb, " - %v * x%d", math.Abs(h.coefficients[i]), i+1)
		}
	}
	fmt.Fprintf(&sb, " = %v )", h.b)
	return sb.String()
}
