// Package shortestpath is a demonstration domain for the chord
// approximator: a small directed/undirected graph whose edges carry a
// vector of strictly positive costs (travel time, distance, tolls, ...)
// instead of a single scalar weight.
//
// Graph.CombineOracle closes over such a graph and returns a
// chord.Oracle[Path]: given a non-negative weight vector w, it runs a
// scalarized Dijkstra search that minimizes w . cost(path) and returns
// the resulting Path as the oracle's PointAndSolution, satisfying the
// weighted-sum contract the core requires of every oracle: given a
// non-negative weight vector, return the point minimizing the weighted
// sum of objectives along with the solution that achieves it.
//
// This mirrors the multi-objective shortest-path examples bundled with
// the original pareto_approximator library (three named edge weights
// combined into one scalar search), but deliberately does not reproduce
// that library's label-propagation visitor, which enumerates the exact
// Pareto set directly and is the NAMOA*-style baseline the core is
// meant to approximate rather than duplicate.
package shortestpath
