// Package session runs the drill loop: pick a person, show their portrait,
// read a guess or command, update the score, repeat until the user quits
// or the session is cancelled.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/facecards/internal/display"
	"github.com/abhisek/facecards/internal/grading"
	"github.com/abhisek/facecards/internal/history"
	"github.com/abhisek/facecards/internal/logger"
	"github.com/abhisek/facecards/internal/people"
	"github.com/abhisek/facecards/internal/prompt"
	"github.com/abhisek/facecards/internal/recency"
	"github.com/abhisek/facecards/internal/scores"
	"github.com/abhisek/facecards/internal/selection"
)

// ErrNoPeople is returned by Run when the roster is empty.
var ErrNoPeople = errors.New("no portraits found")

// Recorder receives answer and session events. Failures are logged and
// never interrupt the drill.
type Recorder interface {
	AppendAnswer(ctx context.Context, data history.AnswerEventData) error
	AppendSession(ctx context.Context, data history.SessionEventData) error
}

// Options holds the controller's collaborators.
type Options struct {
	Roster    *people.Roster
	Scores    *scores.Store
	ScorePath string
	Recent    *recency.Filter
	Engine    *selection.Engine
	// Rand picks feedback messages.
	Rand    grading.Rand
	Display display.Renderer
	Prompt  prompt.Prompt
	Out     io.Writer
	Log     *slog.Logger

	// Recorder is optional.
	Recorder Recorder
	// RosterUpdates is optional; rosters received on it replace the current
	// one between turns.
	RosterUpdates <-chan *people.Roster
	SessionID     string
}

// Controller drives one drill session. It is not safe for concurrent use.
type Controller struct {
	roster    *people.Roster
	scores    *scores.Store
	scorePath string
	recent    *recency.Filter
	engine    *selection.Engine
	rand      grading.Rand
	display   display.Renderer
	prompt    prompt.Prompt
	out       io.Writer
	log       *slog.Logger
	recorder  Recorder
	updates   <-chan *people.Roster

	state   State
	current people.Person
	summary Summary
}

// New creates a Controller. Roster, Scores, ScorePath, Recent, Engine,
// Rand, Display and Prompt are required.
func New(opts Options) (*Controller, error) {
	switch {
	case opts.Roster == nil:
		return nil, errors.New("session: roster is required")
	case opts.Scores == nil:
		return nil, errors.New("session: score store is required")
	case opts.ScorePath == "":
		return nil, errors.New("session: score path is required")
	case opts.Recent == nil:
		return nil, errors.New("session: recency filter is required")
	case opts.Engine == nil:
		return nil, errors.New("session: selection engine is required")
	case opts.Rand == nil:
		return nil, errors.New("session: random source is required")
	case opts.Display == nil:
		return nil, errors.New("session: display is required")
	case opts.Prompt == nil:
		return nil, errors.New("session: prompt is required")
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	return &Controller{
		roster:    opts.Roster,
		scores:    opts.Scores,
		scorePath: opts.ScorePath,
		recent:    opts.Recent,
		engine:    opts.Engine,
		rand:      opts.Rand,
		display:   opts.Display,
		prompt:    opts.Prompt,
		out:       out,
		log:       log.With("session", opts.SessionID),
		recorder:  opts.Recorder,
		updates:   opts.RosterUpdates,
		state:     StateAwaitingSelection,
		summary:   Summary{SessionID: opts.SessionID},
	}, nil
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Summary returns the session tally so far.
func (c *Controller) Summary() Summary {
	return c.summary
}

// Run drives the loop until quit, end of input, Ctrl+C at the prompt, or
// cancellation of ctx. Every one of those ends with the scores persisted.
// The returned error is the persist error, if any, joined with any
// unexpected input error.
func (c *Controller) Run(ctx context.Context) error {
	if c.roster.Len() == 0 {
		return ErrNoPeople
	}
	c.recordSession(ctx, history.ActionStart)

	for {
		if ctx.Err() != nil {
			return c.shutdown(ctx, ReasonInterrupt, nil)
		}
		c.applyRosterUpdates()

		if err := c.ask(); err != nil {
			return c.shutdown(ctx, ReasonError, err)
		}

		line, err := c.prompt.ReadLine(ctx)
		if err != nil {
			reason, inputErr := classifyInputError(ctx, err)
			return c.shutdown(ctx, reason, inputErr)
		}

		if quit := c.handle(ctx, line); quit {
			return c.shutdown(ctx, ReasonQuit, nil)
		}
	}
}

// ask selects the next person, records them as recent and shows the
// portrait.
func (c *Controller) ask() error {
	c.state = StateAwaitingSelection

	id, err := c.engine.Next(c.roster.IDs(), c.scores, c.recent)
	if err != nil {
		return fmt.Errorf("select next person: %w", err)
	}
	p, ok := c.roster.Get(id)
	if !ok {
		return fmt.Errorf("select next person: %q not in roster", id)
	}
	c.recent.Push(id)
	c.current = p
	c.log.Debug("selected person", "person", id, "score", c.scores.Get(id), "recent", c.recent.Items())

	if err := c.display.Show(p); err != nil {
		c.log.Warn("could not display portrait", "person", id, "path", p.Path, "err", err)
	}
	c.state = StateAwaitingAnswer
	return nil
}

// handle dispatches one line of input. It reports whether the session
// should end.
func (c *Controller) handle(ctx context.Context, line string) bool {
	switch line {
	case CommandShowScore:
		c.showScores()
		c.state = StateCommandHandled
	case CommandSave:
		_ = c.save()
		c.state = StateCommandHandled
	case CommandQuit:
		return true
	default:
		c.grade(ctx, line)
		c.state = StateScoreUpdated
	}
	return false
}

func (c *Controller) grade(ctx context.Context, guess string) {
	p := c.current
	res := grading.Grade(guess, p.ID, p.Name, c.rand)
	score := c.scores.Adjust(p.ID, res.Delta)

	c.summary.Asked++
	if res.Correct {
		c.summary.Correct++
	}
	c.printFeedback(res)
	c.log.Debug("graded guess", "person", p.ID, "correct", res.Correct, "score", score)

	if c.recorder == nil {
		return
	}
	err := c.recorder.AppendAnswer(ctx, history.AnswerEventData{
		SessionID:  c.summary.SessionID,
		PersonID:   p.ID,
		Guess:      guess,
		Correct:    res.Correct,
		ScoreAfter: score,
	})
	if err != nil {
		c.log.Warn("could not record answer", "err", err)
	}
}

// save persists the scores and tells the user how it went.
func (c *Controller) save() error {
	if err := c.scores.Persist(c.scorePath); err != nil {
		c.log.Error("save failed", "path", c.scorePath, "err", err)
		c.printSaveFailed(err)
		return fmt.Errorf("save scores: %w", err)
	}
	c.log.Debug("scores saved", "path", c.scorePath, "people", c.scores.Len())
	c.printSaved()
	return nil
}

func (c *Controller) shutdown(ctx context.Context, reason ShutdownReason, cause error) error {
	c.state = StateShuttingDown
	c.summary.Reason = reason
	c.log.Debug("shutting down", "reason", string(reason))

	saveErr := c.save()
	// The session context may already be cancelled; the end marker is
	// still worth writing.
	c.recordSession(context.WithoutCancel(ctx), history.ActionEnd)
	c.printSummary()

	return errors.Join(cause, saveErr)
}

func (c *Controller) applyRosterUpdates() {
	if c.updates == nil {
		return
	}
	for {
		select {
		case r, ok := <-c.updates:
			if !ok {
				c.updates = nil
				return
			}
			if r == nil || r.Len() == 0 {
				c.log.Warn("ignoring empty roster update")
				continue
			}
			added := c.scores.Ensure(r.IDs())
			c.roster = r
			c.log.Info("roster updated", "people", r.Len(), "added", added)
		default:
			return
		}
	}
}

func (c *Controller) recordSession(ctx context.Context, action string) {
	if c.recorder == nil {
		return
	}
	err := c.recorder.AppendSession(ctx, history.SessionEventData{
		SessionID: c.summary.SessionID,
		Action:    action,
		Asked:     c.summary.Asked,
		Correct:   c.summary.Correct,
	})
	if err != nil {
		c.log.Warn("could not record session event", "action", action, "err", err)
	}
}

// classifyInputError maps a prompt error to a shutdown reason. Only
// unexpected read failures are passed back as errors.
func classifyInputError(ctx context.Context, err error) (ShutdownReason, error) {
	switch {
	case ctx.Err() != nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, prompt.ErrInterrupted):
		return ReasonInterrupt, nil
	case errors.Is(err, io.EOF):
		return ReasonEOF, nil
	default:
		return ReasonError, fmt.Errorf("read input: %w", err)
	}
}
