package paretoset_test

import (
	"testing"

	"github.com/lattice-labs/chordapprox/paretoset"
	"github.com/lattice-labs/chordapprox/point"
	"github.com/stretchr/testify/require"
)

func identity(p point.Point) point.Point { return p }

func TestNonDominatedSet_RejectsDominatedCandidate(t *testing.T) {
	s := paretoset.New(identity)

	ok, err := s.Insert(point.New(2, 2))
	require.NoError(t, err)
	require.True(t, ok)

	// (2,2) dominates (4,4): candidate is rejected outright.
	ok, err = s.Insert(point.New(4, 4))
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, s.Len())
}

func TestNonDominatedSet_PrunesDominatedMembers(t *testing.T) {
	s := paretoset.New(identity)
	_, err := s.Insert(point.New(4, 4))
	require.NoError(t, err)

	// (1,1) dominates the existing (4,4): (4,4) is pruned, (1,1) kept.
	ok, err := s.Insert(point.New(1, 1))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, s.Len())
	require.True(t, s.Items()[0].Equal(point.New(1, 1)))
}

// TestNonDominatedSet_KeepsMutuallyNonDominatedPoints inserts four points
// none of which dominates another (an antichain under the p_i <= q_i
// ordering), verifying insertion never discards points it must not.
func TestNonDominatedSet_KeepsMutuallyNonDominatedPoints(t *testing.T) {
	s := paretoset.New(identity)
	pts := []point.Point{
		point.New(3, 3),
		point.New(1, 5),
		point.New(4, 2),
		point.New(2, 4),
	}
	for _, p := range pts {
		ok, err := s.Insert(p)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Equal(t, 4, s.Len())
}

// TestNonDominatedSet_KeepsAxisPoints mirrors the chord approximator's
// anchor phase, which routinely produces points lying on an axis (a
// standard basis weight vector's extreme point has a zero coordinate).
// Dominance is only defined on strictly positive points; such a point
// must still be insertable rather than aborting the whole set.
func TestNonDominatedSet_KeepsAxisPoints(t *testing.T) {
	s := paretoset.New(identity)

	ok, err := s.Insert(point.New(0, 1))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Insert(point.New(1, 0))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, s.Len())
}

func TestNonDominatedSet_InsertionOrderIndependentOfFinalSet(t *testing.T) {
	forward := paretoset.New(identity)
	backward := paretoset.New(identity)
	pts := []point.Point{point.New(2, 2), point.New(1, 5), point.New(5, 1)}

	for _, p := range pts {
		_, err := forward.Insert(p)
		require.NoError(t, err)
	}
	for i := len(pts) - 1; i >= 0; i-- {
		_, err := backward.Insert(pts[i])
		require.NoError(t, err)
	}
	require.Equal(t, forward.Len(), backward.Len())
}
