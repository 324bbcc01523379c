package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/facecards/internal/config"
	"github.com/abhisek/facecards/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "facecards",
	Short: "Learn the names that go with the faces",
	Long: "facecards shows portraits one at a time and asks who they are. People you\n" +
		"get wrong come back sooner; people you know well come back less often.",
	SilenceUsage: true,
	RunE:         runDrill,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	addConfigFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(peopleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the persistent flags read by loadConfig.
func addConfigFlags(c *cobra.Command) {
	f := c.PersistentFlags()
	f.String("config", "", "Path to a YAML config file (overrides FACECARDS_CONFIG)")
	f.String("images", "", "Glob matching portrait files")
	f.String("scores", "", "Path to the JSON score file")
	f.Int("recent", 0, "Number of recently shown people to skip")
	f.String("missing", "", `What to do with people absent from the score file: "add" or "reject"`)
	f.Int64("seed", 0, "Random seed (0 picks one)")
	f.String("history", "", "Path to the SQLite answer history")
	f.Bool("no-history", false, "Do not record answers")
	f.String("renderer", "", `Portrait renderer: "iterm" or "none"`)
	f.String("width", "", "Portrait width passed to the terminal (e.g. 300px, 40, auto)")
	f.String("height", "", "Portrait height passed to the terminal")
	f.String("prompt", "", `Input mode: "auto", "tui" or "plain"`)
	f.Bool("watch", false, "Pick up portraits added or removed while running")
	f.Bool("debug", false, "Log debug output to stderr")
}

// loadConfig resolves settings with --flags taking precedence over
// FACECARDS_* env vars, then the config file, then defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("images") {
		cfg.Images, _ = flags.GetString("images")
	}
	if flags.Changed("scores") {
		cfg.Scores, _ = flags.GetString("scores")
	}
	if flags.Changed("recent") {
		cfg.Recent, _ = flags.GetInt("recent")
	}
	if flags.Changed("missing") {
		cfg.Missing, _ = flags.GetString("missing")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("history") {
		cfg.History.Path, _ = flags.GetString("history")
		cfg.History.Enabled = true
	}
	if noHistory, _ := flags.GetBool("no-history"); noHistory {
		cfg.History.Enabled = false
	}
	if flags.Changed("renderer") {
		cfg.Display.Renderer, _ = flags.GetString("renderer")
	}
	if flags.Changed("width") {
		cfg.Display.Width, _ = flags.GetString("width")
	}
	if flags.Changed("height") {
		cfg.Display.Height, _ = flags.GetString("height")
	}
	if flags.Changed("prompt") {
		cfg.Prompt, _ = flags.GetString("prompt")
	}
	if flags.Changed("watch") {
		cfg.Watch, _ = flags.GetBool("watch")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newLogger writes to stderr, colorized when stderr is a terminal.
func newLogger(cfg config.Config) *slog.Logger {
	return logger.New(
		logger.WithDebug(cfg.Debug),
		logger.WithPretty(term.IsTerminal(int(os.Stderr.Fd()))),
	)
}
