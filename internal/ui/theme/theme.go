// Package theme holds the lipgloss styles for drill output.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Feedback
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Score listing
var (
	ScoreName = lipgloss.NewStyle().
			Foreground(Text).
			Width(28)

	ScoreLow = lipgloss.NewStyle().
			Foreground(Error).
			Width(6).
			Align(lipgloss.Right)

	ScoreHigh = lipgloss.NewStyle().
			Foreground(Success).
			Width(6).
			Align(lipgloss.Right)

	ScoreZero = lipgloss.NewStyle().
			Foreground(TextDim).
			Width(6).
			Align(lipgloss.Right)
)

// ScoreStyle picks the style for a score value.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score < 0:
		return ScoreLow
	case score > 0:
		return ScoreHigh
	default:
		return ScoreZero
	}
}
