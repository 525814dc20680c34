// Package chord implements the Chord / Convex-Hull Pareto Approximator:
// the driver that builds an ε-approximation of a multi-objective
// problem's Pareto frontier from a caller-supplied weighted-sum oracle.
//
// The driver anchors on the d standard basis weight vectors, builds an
// initial simplicial facet from the resulting points, then repeatedly
// queries the oracle with the normal of the facet whose local
// approximation-error upper bound is currently largest, splitting that
// facet into d new ones around the returned point. It terminates once
// every facet that has not been finalized has an error bound of at most
// ε, or after Options.MaxRefinements iterations. A facet is finalized when
// the oracle's answer at its normal comes back tight or its split
// degenerates; it keeps the error bound it was built with, which can
// exceed ε.
//
// A facet whose Lower Distal Point does not exist (a boundary facet) has
// no numeric error bound to compare against ε. As a fallback, such a
// facet is treated as having unbounded error and kept eligible for
// refinement — the oracle is queried at its normal until the query comes
// back tight or a split degenerates, at which point it is finalized.
//
// The driver is synchronous: the oracle is invoked inline, once per
// refinement step, and nothing here is safe for concurrent use across
// goroutines — each call to Approximate owns its own facet set and
// non-dominated set, so unlike a long-lived shared graph there is no
// state to guard with a mutex.
package chord
