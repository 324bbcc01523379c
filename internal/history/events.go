package history

import (
	"context"
	"fmt"
	"time"
)

// Session actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// AnswerEventData captures one graded guess.
type AnswerEventData struct {
	SessionID  string
	PersonID   string
	Guess      string
	Correct    bool
	ScoreAfter int
}

// SessionEventData marks the start or end of a drill session.
type SessionEventData struct {
	SessionID string
	Action    string // ActionStart or ActionEnd
	Asked     int
	Correct   int
}

// PersonStats aggregates every recorded answer for one person.
type PersonStats struct {
	PersonID  string
	Attempts  int
	Correct   int
	LastSeen  time.Time
	LastScore int
}

// Accuracy returns the fraction of correct answers, or 0 without attempts.
func (p PersonStats) Accuracy() float64 {
	if p.Attempts == 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Attempts)
}

// SessionSummary is a finished session.
type SessionSummary struct {
	SessionID string
	EndedAt   time.Time
	Asked     int
	Correct   int
}

// AppendAnswer records a graded guess.
func (s *Store) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO answer_events (sequence, timestamp, session_id, person_id, guess, correct, score_after)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC().UnixMilli(), data.SessionID, data.PersonID, data.Guess,
		boolToInt(data.Correct), data.ScoreAfter,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// AppendSession records a session start or end marker.
func (s *Store) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session_events (sequence, timestamp, session_id, action, asked, correct)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UTC().UnixMilli(), data.SessionID, data.Action, data.Asked, data.Correct,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// PersonStats returns per-person aggregates ordered by accuracy ascending,
// then by person ID, so the people most often missed come first.
func (s *Store) PersonStats(ctx context.Context) ([]PersonStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.person_id,
		       COUNT(*),
		       SUM(a.correct),
		       MAX(a.timestamp),
		       (SELECT l.score_after FROM answer_events l
		         WHERE l.person_id = a.person_id
		         ORDER BY l.sequence DESC LIMIT 1)
		  FROM answer_events a
		 GROUP BY a.person_id
		 ORDER BY CAST(SUM(a.correct) AS REAL) / COUNT(*) ASC, a.person_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query person stats: %w", err)
	}
	defer rows.Close()

	var out []PersonStats
	for rows.Next() {
		var (
			ps       PersonStats
			lastSeen int64
		)
		if err := rows.Scan(&ps.PersonID, &ps.Attempts, &ps.Correct, &lastSeen, &ps.LastScore); err != nil {
			return nil, fmt.Errorf("scan person stats: %w", err)
		}
		ps.LastSeen = time.UnixMilli(lastSeen).UTC()
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate person stats: %w", err)
	}
	return out, nil
}

// RecentSessions returns up to limit finished sessions, newest first.
// A limit of 0 returns all of them.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	query := `SELECT session_id, timestamp, asked, correct
	            FROM session_events
	           WHERE action = ?
	           ORDER BY sequence DESC`
	args := []any{ActionEnd}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var (
			ss    SessionSummary
			ended int64
		)
		if err := rows.Scan(&ss.SessionID, &ended, &ss.Asked, &ss.Correct); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		ss.EndedAt = time.UnixMilli(ended).UTC()
		out = append(out, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
