// Package scores holds the per-person proficiency scores and their
// on-disk JSON representation.
package scores

import (
	"cmp"
	"maps"
	"slices"
)

// Entry is a single identifier and its score.
type Entry struct {
	ID    string
	Score int
}

// Store maps person identifiers to integer proficiency scores.
// A Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	scores map[string]int
}

// New creates a store with every identifier in ids set to zero.
func New(ids []string) *Store {
	s := &Store{scores: make(map[string]int, len(ids))}
	for _, id := range ids {
		s.scores[id] = 0
	}
	return s
}

// FromMap creates a store holding a copy of m.
func FromMap(m map[string]int) *Store {
	if m == nil {
		m = map[string]int{}
	}
	return &Store{scores: maps.Clone(m)}
}

// Get returns the score for id, or zero if id has no entry.
func (s *Store) Get(id string) int {
	return s.scores[id]
}

// Has reports whether id has an entry.
func (s *Store) Has(id string) bool {
	_, ok := s.scores[id]
	return ok
}

// Adjust adds delta to the score for id and returns the new score.
// An identifier without an entry starts from zero.
func (s *Store) Adjust(id string, delta int) int {
	s.scores[id] += delta
	return s.scores[id]
}

// Ensure adds every identifier in ids that has no entry yet, at zero.
// It returns the identifiers that were added.
func (s *Store) Ensure(ids []string) []string {
	var added []string
	for _, id := range ids {
		if _, ok := s.scores[id]; !ok {
			s.scores[id] = 0
			added = append(added, id)
		}
	}
	return added
}

// Missing returns the identifiers in ids that have no entry, sorted.
func (s *Store) Missing(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := s.scores[id]; !ok {
			missing = append(missing, id)
		}
	}
	slices.Sort(missing)
	return slices.Compact(missing)
}

// Reset sets every identifier in ids to zero, creating entries as needed.
func (s *Store) Reset(ids []string) {
	for _, id := range ids {
		s.scores[id] = 0
	}
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.scores)
}

// Snapshot returns a copy of the current scores.
func (s *Store) Snapshot() map[string]int {
	return maps.Clone(s.scores)
}

// Ranked returns all entries ordered by score ascending, then by identifier.
func (s *Store) Ranked() []Entry {
	entries := make([]Entry, 0, len(s.scores))
	for id, score := range s.scores {
		entries = append(entries, Entry{ID: id, Score: score})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(a.Score, b.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return entries
}
