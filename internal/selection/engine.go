// Package selection picks the next person to quiz.
//
// The engine prefers the people the user knows least (lowest score) and
// skips anyone shown within the recency window. When every known person
// is inside the window, the window is ignored for that turn.
package selection

import (
	"errors"
	"slices"
)

// ErrNoCandidates is returned when the universe of identifiers is empty.
var ErrNoCandidates = errors.New("no identifiers to choose from")

// Rand is the source of randomness for the uniform pick within the
// lowest-score group. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Scores provides the current score of an identifier.
type Scores interface {
	Get(id string) int
}

// Recent reports whether an identifier was shown recently.
type Recent interface {
	Contains(id string) bool
}

// Engine selects identifiers. It is deterministic for a given Rand.
type Engine struct {
	rng Rand
}

// New creates an Engine drawing from rng.
func New(rng Rand) *Engine {
	return &Engine{rng: rng}
}

// Next returns the identifier to quiz next. It does not record the pick;
// the caller pushes it into its recency filter.
func (e *Engine) Next(universe []string, scores Scores, recent Recent) (string, error) {
	candidates := slices.Clone(universe)
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}

	eligible := Eligible(candidates, recent)
	if len(eligible) == 0 {
		eligible = candidates
	}

	group := LowestGroup(eligible, scores)
	return group[e.rng.IntN(len(group))], nil
}

// Eligible returns the identifiers in ids that are not held by recent,
// preserving order. A nil recent filter excludes nothing.
func Eligible(ids []string, recent Recent) []string {
	if recent == nil {
		return slices.Clone(ids)
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !recent.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// LowestGroup returns the identifiers in ids sharing the minimum score,
// preserving order.
func LowestGroup(ids []string, scores Scores) []string {
	var (
		group  []string
		lowest int
	)
	for _, id := range ids {
		s := scores.Get(id)
		switch {
		case len(group) == 0 || s < lowest:
			lowest = s
			group = append(group[:0], id)
		case s == lowest:
			group = append(group, id)
		}
	}
	return group
}
