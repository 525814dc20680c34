// Package hyperplane implements Hyperplane, an affine halfspace boundary
// a_1*x_1 + ... + a_n*x_n = b on an n-dimensional space.
//
// Hyperplanes are built from a set of n points they must pass through
// (hyperplane.FromPoints), generalizing the two-point line construction to
// any dimension via cofactor expansion of the point coordinate matrix. Two
// hyperplanes with proportional coefficients and offset represent the same
// geometric object, so equality and parallelism checks compare scaled
// coefficients rather than requiring identical ones.
package hyperplane
