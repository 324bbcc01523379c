package selection

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/facecards/internal/recency"
	"github.com/abhisek/facecards/internal/scores"
)

// firstPick always chooses the first member of a group.
type firstPick struct{}

func (firstPick) IntN(int) int { return 0 }

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

func TestNext_LowestGroupDistribution(t *testing.T) {
	st := scores.FromMap(map[string]int{"A": 0, "B": 0, "C": 5})
	universe := []string{"A", "B", "C"}
	e := New(seeded())
	empty := recency.New(recency.DefaultSize)

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		id, err := e.Next(universe, st, empty)
		require.NoError(t, err)
		counts[id]++
	}

	assert.Zero(t, counts["C"], "C has a higher score and must never be picked")
	assert.InDelta(t, 500, counts["A"], 80)
	assert.InDelta(t, 500, counts["B"], 80)
}

func TestNext_RecentExcluded(t *testing.T) {
	universe := []string{"A", "B", "C"}
	recent := recency.New(recency.DefaultSize)
	recent.Push("A")
	recent.Push("B")

	tests := []struct {
		name   string
		scores map[string]int
	}{
		{"C higher", map[string]int{"A": 0, "B": 0, "C": 5}},
		{"C lower", map[string]int{"A": 0, "B": 0, "C": -5}},
		{"C equal", map[string]int{"A": 0, "B": 0, "C": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(seeded())
			for i := 0; i < 50; i++ {
				id, err := e.Next(universe, scores.FromMap(tt.scores), recent)
				require.NoError(t, err)
				assert.Equal(t, "C", id)
			}
		})
	}
}

func TestNext_AllRecentFallsBackToUniverse(t *testing.T) {
	universe := []string{"alice", "bob"}
	recent := recency.New(recency.DefaultSize)
	recent.Push("alice")
	recent.Push("bob")
	st := scores.FromMap(map[string]int{"alice": 1, "bob": -1})

	id, err := New(seeded()).Next(universe, st, recent)

	require.NoError(t, err)
	assert.Equal(t, "bob", id)
}

func TestNext_EmptyUniverse(t *testing.T) {
	_, err := New(seeded()).Next(nil, scores.New(nil), nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestNext_UnknownIdentifierScoresZero(t *testing.T) {
	// "new" has no entry and counts as zero, below alice's 2.
	st := scores.FromMap(map[string]int{"alice": 2})

	id, err := New(firstPick{}).Next([]string{"alice", "new"}, st, nil)

	require.NoError(t, err)
	assert.Equal(t, "new", id)
}

func TestNext_OrderIndependent(t *testing.T) {
	st := scores.New([]string{"a", "b", "c"})

	id1, err := New(firstPick{}).Next([]string{"c", "a", "b"}, st, nil)
	require.NoError(t, err)
	id2, err := New(firstPick{}).Next([]string{"b", "c", "a", "a"}, st, nil)
	require.NoError(t, err)

	assert.Equal(t, "a", id1)
	assert.Equal(t, id1, id2)
}

func TestNext_DuplicatesCountOnce(t *testing.T) {
	st := scores.New([]string{"a", "b"})
	e := New(seeded())

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		id, err := e.Next([]string{"a", "a", "a", "b"}, st, nil)
		require.NoError(t, err)
		counts[id]++
	}
	assert.InDelta(t, 500, counts["a"], 80)
}

func TestNext_SeedReproducible(t *testing.T) {
	universe := []string{"a", "b", "c", "d"}
	st := scores.New(universe)

	draw := func() []string {
		e := New(seeded())
		var out []string
		for i := 0; i < 20; i++ {
			id, err := e.Next(universe, st, nil)
			require.NoError(t, err)
			out = append(out, id)
		}
		return out
	}

	assert.Equal(t, draw(), draw())
}

func TestLowestGroup(t *testing.T) {
	st := scores.FromMap(map[string]int{"a": 3, "b": -2, "c": -2, "d": 0})

	assert.Equal(t, []string{"b", "c"}, LowestGroup([]string{"a", "b", "c", "d"}, st))
	assert.Empty(t, LowestGroup(nil, st))
}

func TestEligible(t *testing.T) {
	recent := recency.New(2)
	recent.Push("b")

	assert.Equal(t, []string{"a", "c"}, Eligible([]string{"a", "b", "c"}, recent))
	assert.Equal(t, []string{"a", "b"}, Eligible([]string{"a", "b"}, nil))
}
