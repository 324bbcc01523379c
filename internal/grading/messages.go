package grading

import "strings"

var praisePool = []string{
	"Bingo!",
	"Nice!",
	"Nailed it!",
	"Correct!",
	"You're really getting these!",
	"Spot on!",
	"{name} will be glad you remembered.",
	"You and {name} are well on your way to being friends.",
}

var correctionPool = []string{
	"Not quite, that was {actual}.",
	"Nope, that's {actual}.",
	"You guessed \"{guess}\", but it was {actual}.",
	"Picture {actual} next time. That was them.",
	"It's {actual}, actually.",
}

// Praise returns a positive feedback line, mentioning name in some of them.
func Praise(name string, rng Rand) string {
	msg := praisePool[rng.IntN(len(praisePool))]
	return strings.NewReplacer("{name}", name).Replace(msg)
}

// Correction returns a negative feedback line naming the right answer and,
// in some of them, the guess that was given.
func Correction(actual, guess string, rng Rand) string {
	msg := correctionPool[rng.IntN(len(correctionPool))]
	return strings.NewReplacer("{actual}", actual, "{guess}", guess).Replace(msg)
}
