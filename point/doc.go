// Package point implements Point, an immutable d-dimensional real vector
// used throughout the chord approximator as the objective-space image of a
// solution.
//
// A Point of dimension 0 is the null point, a sentinel meaning "no
// solution" (mirrors the original C++ Point's default-constructed state).
// Every other operation — dominance, ratio distance, lexicographic order —
// requires matching dimensions and, for dominance/ratio-distance, strict
// positivity.
//
// Ratio distance is the central geometric primitive:
//
//	RD(p, q) = max( max_i( (q_i - p_i) / p_i ), 0 )
//
// the minimum epsilon >= 0 such that q epsilon-covers p. See Point.RatioDistance.
package point
