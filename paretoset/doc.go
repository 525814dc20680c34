// Package paretoset implements NonDominatedSet, a generic container that
// keeps only the mutually non-dominated members of whatever collection of
// items it is given.
//
// The set is generic over the item type T so that callers can store rich
// objects (a solution alongside its objective-space image) rather than
// bare points; a caller-supplied extractor function tells the set how to
// find a Point inside a T.
package paretoset
