// Package chordapprox computes an ε-approximation of the Pareto
// frontier of a multi-objective optimization problem whose weighted-sum
// scalarization can be solved by a caller-supplied oracle.
//
// The core lives in point, hyperplane, paretoset, facet and chord:
// together they implement the Chord / Convex-Hull Pareto Approximator,
// a recursive geometric engine that builds a polytope under-approximating
// the true frontier and refines the facet with the largest potential
// error until every facet not yet finalized has a local error bound of
// at most ε.
//
// shortestpath is a demonstration domain wiring a vector-cost shortest
// path search into chord.Oracle. It is not required to use the core
// packages directly.
package chordapprox
