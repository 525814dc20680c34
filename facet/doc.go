// Package facet implements PointAndSolution and Facet, the simplicial
// building blocks of the approximator's evolving lower bound on the
// Pareto frontier.
//
// A Facet is defined by exactly d vertices in d-dimensional space, each a
// PointAndSolution carrying the weight vector that produced it. From the
// vertices, a Facet derives a supporting hyperplane normal and, from each
// vertex together with its weight vector, its Lower Distal Point (LDP): the vertex of the "pyramid" whose base is the facet and
// whose sides lie along the per-vertex weighted-sum lower bounds. The
// ratio distance from the facet to its LDP is an upper bound on how far
// the true Pareto frontier can still be from the facet.
package facet
