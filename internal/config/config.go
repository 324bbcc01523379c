// Package config holds the drill settings and loads them from defaults,
// an optional YAML file and FACECARDS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/facecards/internal/recency"
	"github.com/abhisek/facecards/internal/scores"
)

// Renderer names.
const (
	RendererITerm = "iterm"
	RendererNone  = "none"
)

// Prompt names.
const (
	PromptAuto  = "auto"
	PromptTUI   = "tui"
	PromptPlain = "plain"
)

// Config holds all drill settings.
type Config struct {
	// Images is the glob that enumerates portrait files.
	Images string `koanf:"images"`
	// Scores is the JSON score file.
	Scores string `koanf:"scores"`
	// Recent is the recency window: how many of the most recently shown
	// people are skipped when choosing the next one.
	Recent int `koanf:"recent"`
	// Missing is the reconcile policy for people absent from the score file.
	Missing string `koanf:"missing"`
	// Seed seeds selection and feedback randomness; 0 picks a random seed.
	Seed int64 `koanf:"seed"`

	History HistoryConfig `koanf:"history"`
	Display DisplayConfig `koanf:"display"`

	// Prompt selects the input mode: auto, tui or plain.
	Prompt string `koanf:"prompt"`
	// Watch rescans the portrait directory when files are added or removed.
	Watch bool `koanf:"watch"`
	Debug bool `koanf:"debug"`
}

// HistoryConfig configures the SQLite answer log.
type HistoryConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// DisplayConfig configures portrait rendering.
type DisplayConfig struct {
	Renderer string `koanf:"renderer"`
	Width    string `koanf:"width"`  // Default: "300px"
	Height   string `koanf:"height"` // Default: "auto"
}

// Default returns a Config with the stock settings.
func Default() Config {
	return Config{
		Images:  filepath.Join(".", "data", "students", "*"),
		Scores:  filepath.Join(".", "data", "score"),
		Recent:  recency.DefaultSize,
		Missing: string(scores.ReconcileAdd),
		History: HistoryConfig{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
		Display: DisplayConfig{
			Renderer: RendererITerm,
			Width:    "300px",
			Height:   "auto",
		},
		Prompt: PromptAuto,
	}
}

// Validate checks the settings for values the drill cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Images == "" {
		errs = append(errs, errors.New("images pattern must not be empty"))
	} else if _, err := filepath.Match(c.Images, ""); err != nil {
		errs = append(errs, fmt.Errorf("images pattern %q: %w", c.Images, err))
	}
	if c.Scores == "" {
		errs = append(errs, errors.New("scores path must not be empty"))
	}
	if c.Recent < 0 {
		errs = append(errs, fmt.Errorf("recent must not be negative, got %d", c.Recent))
	}
	if !scores.ReconcilePolicy(c.Missing).Valid() {
		errs = append(errs, fmt.Errorf("unknown missing policy %q (want %q or %q)",
			c.Missing, scores.ReconcileAdd, scores.ReconcileReject))
	}
	switch c.Display.Renderer {
	case RendererITerm, RendererNone:
	default:
		errs = append(errs, fmt.Errorf("unknown renderer %q", c.Display.Renderer))
	}
	switch c.Prompt {
	case PromptAuto, PromptTUI, PromptPlain:
	default:
		errs = append(errs, fmt.Errorf("unknown prompt %q", c.Prompt))
	}
	if c.History.Enabled && c.History.Path == "" {
		errs = append(errs, errors.New("history path must not be empty when history is enabled"))
	}
	return errors.Join(errs...)
}

// defaultHistoryPath resolves the answer log location:
// $XDG_DATA_HOME/facecards/history.db, falling back to
// ~/.local/share/facecards/history.db. It returns "" if neither resolves.
func defaultHistoryPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "facecards", "history.db")
}
