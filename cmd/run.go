package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/facecards/internal/config"
	"github.com/abhisek/facecards/internal/display"
	"github.com/abhisek/facecards/internal/history"
	"github.com/abhisek/facecards/internal/people"
	"github.com/abhisek/facecards/internal/prompt"
	"github.com/abhisek/facecards/internal/recency"
	"github.com/abhisek/facecards/internal/scores"
	"github.com/abhisek/facecards/internal/selection"
	"github.com/abhisek/facecards/internal/session"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// runDrill loads the roster and scores, wires the session and runs it until
// the user quits or interrupts.
func runDrill(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	roster, err := loadRoster(cfg)
	if err != nil {
		return err
	}
	store, err := scores.Load(cfg.Scores, roster.IDs(), scores.ReconcilePolicy(cfg.Missing))
	if err != nil {
		return err
	}
	log.Debug("loaded scores", "path", cfg.Scores, "people", roster.Len(), "scores", store.Len())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionID := uuid.NewString()
	opts := session.Options{
		Roster:    roster,
		Scores:    store,
		ScorePath: cfg.Scores,
		Recent:    recency.New(cfg.Recent),
		Display:   newRenderer(cfg),
		Prompt:    prompt.New(cfg.Prompt, os.Stdin, os.Stdout, prompt.DefaultLabel),
		Out:       os.Stdout,
		Log:       log,
		SessionID: sessionID,
	}
	rng := newRand(cfg.Seed, log)
	opts.Engine = selection.New(rng)
	opts.Rand = rng

	// History is optional; the drill runs without it.
	if hist := openHistory(cfg, log); hist != nil {
		defer hist.Close()
		opts.Recorder = hist
	}

	if cfg.Watch {
		updates := make(chan *people.Roster, 1)
		opts.RosterUpdates = updates
		go func() {
			if err := people.Watch(ctx, cfg.Images, updates, log); err != nil {
				log.Warn("portrait watching stopped", "err", err)
			}
		}()
	}

	c, err := session.New(opts)
	if err != nil {
		return err
	}
	return c.Run(ctx)
}

func loadRoster(cfg config.Config) (*people.Roster, error) {
	roster, err := people.Discover(cfg.Images)
	if err != nil {
		return nil, err
	}
	if roster.Len() == 0 {
		return nil, fmt.Errorf("%w matching %s", session.ErrNoPeople, cfg.Images)
	}
	return roster, nil
}

// newRand seeds a PCG source. A zero seed is replaced with a random one,
// which is logged so a session can be replayed with --seed.
func newRand(seed int64, log *slog.Logger) *rand.Rand {
	if seed == 0 {
		seed = rand.Int64()
	}
	log.Debug("random seed", "seed", seed)
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

func newRenderer(cfg config.Config) display.Renderer {
	if cfg.Display.Renderer == config.RendererNone {
		return &display.Placeholder{W: os.Stdout}
	}
	return display.NewITerm(os.Stdout, cfg.Display.Width, cfg.Display.Height)
}

// openHistory opens the answer log, or returns nil when it is disabled or
// cannot be opened.
func openHistory(cfg config.Config, log *slog.Logger) *history.Store {
	if !cfg.History.Enabled {
		return nil
	}
	hist, err := openHistoryStore(cfg)
	if err != nil {
		log.Warn("answer history unavailable", "path", cfg.History.Path, "err", err)
		return nil
	}
	return hist
}

func openHistoryStore(cfg config.Config) (*history.Store, error) {
	if !cfg.History.Enabled {
		return nil, errors.New("history is disabled")
	}
	if err := history.EnsureDir(cfg.History.Path); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return history.Open(cfg.History.Path)
}

