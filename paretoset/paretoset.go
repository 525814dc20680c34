package paretoset

import (
	"errors"
	"fmt"

	"github.com/lattice-labs/chordapprox/chorderrors"
	"github.com/lattice-labs/chordapprox/point"
)

// NonDominatedSet holds items of type T such that no kept item dominates
// another, per the extractor's Point image of each item.
type NonDominatedSet[T any] struct {
	items   []T
	extract func(T) point.Point
}

// New creates an empty NonDominatedSet. extract must return the Point
// used for dominance comparisons for a given item; it must never return a
// null Point for an item passed to Insert.
func New[T any](extract func(T) point.Point) *NonDominatedSet[T] {
	return &NonDominatedSet[T]{extract: extract}
}

// Len returns the number of items currently kept in the set.
func (s *NonDominatedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the set's current members.
func (s *NonDominatedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Insert adds item to the set if no existing member dominates it. Any
// existing members that item dominates are pruned. Dominance is checked
// at eps = 0 (ordinary Pareto dominance), independent of any
// approximation ratio the caller may be tracking elsewhere.
//
// Returns whether item was inserted, and any error the underlying
// dominance check produced (e.g. mismatched dimensions between item and
// an existing member).
func (s *NonDominatedSet[T]) Insert(item T) (bool, error) {
	p := s.extract(item)

	for _, existing := range s.items {
		q := s.extract(existing)
		dominated, err := dominates(q, p)
		if err != nil {
			return false, fmt.Errorf("paretoset: Insert: %w", err)
		}
		if dominated {
			return false, nil
		}
	}

	kept := s.items[:0:0]
	for _, existing := range s.items {
		q := s.extract(existing)
		pDominatesQ, err := dominates(p, q)
		if err != nil {
			return false, fmt.Errorf("paretoset: Insert: %w", err)
		}
		if !pDominatesQ {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, item)
	s.items = kept
	return true, nil
}

// dominates reports whether p dominates q, treating a non-strictly-
// positive operand as "does not dominate" rather than an error: frontier
// points lying on an axis (routine anchor-phase output, e.g. the basis
// weight eᵢ) are not exempt from set membership just because dominance
// is only defined on strictly positive points. Any other error (e.g.
// mismatched dimensions) still propagates.
func dominates(p, q point.Point) (bool, error) {
	ok, err := p.Dominates(q, 0)
	if err != nil {
		if errors.Is(err, chorderrors.ErrNotStrictlyPositive) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}
