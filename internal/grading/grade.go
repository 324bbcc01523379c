// Package grading decides whether a typed guess names the person shown and
// produces the feedback line for it.
package grading

import (
	"strings"
)

// Rand picks an index into a message pool.
type Rand interface {
	IntN(n int) int
}

// Result is the outcome of grading one guess.
type Result struct {
	Correct bool
	// Delta is the score change: +1 when correct, -1 otherwise.
	Delta   int
	Message string
}

// Normalize lowercases s and trims surrounding whitespace.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FirstName returns the first component of a full name split on spaces,
// underscores or hyphens.
func FirstName(full string) string {
	fields := strings.FieldsFunc(strings.TrimSpace(full), isNameSeparator)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func isNameSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-'
}

// Check reports whether guess names the person whose full name is full.
//
// A guess is correct when its normalized form equals the normalized first
// name, or when the guess exactly as typed equals the normalized full name.
// The second comparison does not normalize the guess, so "alice smith"
// matches "Alice Smith" but "Alice Smith" does not.
func Check(guess, full string) bool {
	first := Normalize(FirstName(full))
	if first != "" && Normalize(guess) == first {
		return true
	}
	return guess == Normalize(full)
}

// Grade checks guess against full and picks a feedback message. display is
// the human-readable name used in the messages.
func Grade(guess, full, display string, rng Rand) Result {
	if Check(guess, full) {
		return Result{
			Correct: true,
			Delta:   1,
			Message: Praise(display, rng),
		}
	}
	return Result{
		Correct: false,
		Delta:   -1,
		Message: Correction(FirstName(display), strings.TrimSpace(guess), rng),
	}
}
