package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var sync string
	require.NoError(t, s.DB().QueryRow("PRAGMA synchronous").Scan(&sync))
	assert.Equal(t, "1", sync) // NORMAL
}

func TestSequence_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		require.NoError(t, err)
		if i > 0 && n != prev+1 {
			t.Errorf("sequence = %d, want %d", n, prev+1)
		}
		prev = n
	}
}

func TestPersonStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", PersonID: "alice_jones", Guess: "alice", Correct: true, ScoreAfter: 1},
		{SessionID: "s1", PersonID: "bob_lee", Guess: "wrong", Correct: false, ScoreAfter: -1},
		{SessionID: "s1", PersonID: "alice_jones", Guess: "ann", Correct: false, ScoreAfter: 0},
		{SessionID: "s1", PersonID: "alice_jones", Guess: "alice", Correct: true, ScoreAfter: 1},
	}
	for _, a := range answers {
		require.NoError(t, s.AppendAnswer(ctx, a))
	}

	stats, err := s.PersonStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "bob_lee", stats[0].PersonID)
	assert.Equal(t, 1, stats[0].Attempts)
	assert.Equal(t, 0, stats[0].Correct)
	assert.Equal(t, -1, stats[0].LastScore)

	assert.Equal(t, "alice_jones", stats[1].PersonID)
	assert.Equal(t, 3, stats[1].Attempts)
	assert.Equal(t, 2, stats[1].Correct)
	assert.Equal(t, 1, stats[1].LastScore)
	assert.InDelta(t, 2.0/3.0, stats[1].Accuracy(), 1e-9)
	assert.False(t, stats[1].LastSeen.IsZero())
}

func TestPersonStats_Empty(t *testing.T) {
	s := openTestStore(t)

	stats, err := s.PersonStats(context.Background())

	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestRecentSessions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: ActionStart}))
	require.NoError(t, s.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: ActionEnd, Asked: 4, Correct: 3}))
	require.NoError(t, s.AppendSession(ctx, SessionEventData{SessionID: "s2", Action: ActionStart}))
	require.NoError(t, s.AppendSession(ctx, SessionEventData{SessionID: "s2", Action: ActionEnd, Asked: 2, Correct: 0}))

	all, err := s.RecentSessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "s2", all[0].SessionID)
	assert.Equal(t, 4, all[1].Asked)
	assert.Equal(t, 3, all[1].Correct)

	one, err := s.RecentSessions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "s2", one[0].SessionID)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.AppendAnswer(ctx, AnswerEventData{SessionID: "s1", PersonID: "alice", Guess: "alice", Correct: true, ScoreAfter: 1}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.AppendAnswer(ctx, AnswerEventData{SessionID: "s2", PersonID: "alice", Guess: "x", Correct: false, ScoreAfter: 0}))

	stats, err := s.PersonStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].Attempts)
	assert.Equal(t, 0, stats[0].LastScore)
}
