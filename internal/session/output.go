package session

import (
	"fmt"
	"io"
	"strconv"

	"github.com/abhisek/facecards/internal/grading"
	"github.com/abhisek/facecards/internal/people"
	"github.com/abhisek/facecards/internal/scores"
	"github.com/abhisek/facecards/internal/ui/theme"
)

func (c *Controller) printFeedback(res grading.Result) {
	style := theme.Incorrect
	if res.Correct {
		style = theme.Correct
	}
	fmt.Fprintln(c.out, style.Render(res.Message))
}

func (c *Controller) showScores() {
	WriteScores(c.out, c.scores, c.roster)
}

// WriteScores lists every score in s, weakest first. Names come from r when
// the person is on the roster and are derived from the identifier otherwise.
func WriteScores(w io.Writer, s *scores.Store, r *people.Roster) {
	fmt.Fprintln(w, theme.Title.Render("Scores"))
	for _, e := range s.Ranked() {
		name := people.DisplayName(e.ID)
		if p, ok := r.Get(e.ID); ok {
			name = p.Name
		}
		fmt.Fprintln(w, theme.ScoreName.Render(name)+theme.ScoreStyle(e.Score).Render(strconv.Itoa(e.Score)))
	}
}

func (c *Controller) printSaved() {
	fmt.Fprintln(c.out, theme.Hint.Render("Scores saved."))
}

func (c *Controller) printSaveFailed(err error) {
	fmt.Fprintln(c.out, theme.Warning.Render("Could not save scores: "+err.Error()))
}

func (c *Controller) printSummary() {
	s := c.summary
	if s.Asked == 0 {
		fmt.Fprintln(c.out, theme.Hint.Render("Goodbye."))
		return
	}
	fmt.Fprintln(c.out, theme.Title.Render(fmt.Sprintf("%d of %d correct this session.", s.Correct, s.Asked)))
}
