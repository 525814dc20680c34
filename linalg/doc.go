// Package linalg wraps the small set of gonum linear-algebra primitives the
// chord approximator needs: the determinant of a square matrix (used by
// hyperplane.FromPoints to build a supporting hyperplane's normal via
// cofactor expansion) and the solution of a square linear system (used by
// facet to locate a Lower Distal Point).
//
// Both operations report failure through a returned error rather than a
// global error stream, so callers never need to redirect or silence
// anything: a singular system is just another value to branch on.
package linalg
