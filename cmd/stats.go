package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/facecards/internal/people"
	"github.com/abhisek/facecards/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-person accuracy from the answer history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		hist, err := openHistoryStore(cfg)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer hist.Close()

		stats, err := hist.PersonStats(ctx)
		if err != nil {
			return fmt.Errorf("query person stats: %w", err)
		}
		limit, _ := cmd.Flags().GetInt("sessions")
		sessions, err := hist.RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, theme.Hint.Render("No answers recorded yet."))
			return nil
		}

		fmt.Fprintln(out, theme.Title.Render("Accuracy"))
		for _, s := range stats {
			line := fmt.Sprintf("%3.0f%%  %d/%d  last seen %s",
				s.Accuracy()*100, s.Correct, s.Attempts, s.LastSeen.Local().Format(time.DateTime))
			fmt.Fprintln(out, theme.ScoreName.Render(people.DisplayName(s.PersonID))+theme.ScoreStyle(s.LastScore).Render(fmt.Sprint(s.LastScore))+"  "+theme.Hint.Render(line))
		}

		if len(sessions) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, theme.Title.Render("Recent sessions"))
			for _, s := range sessions {
				fmt.Fprintf(out, "%s  %d of %d correct\n", s.EndedAt.Local().Format(time.DateTime), s.Correct, s.Asked)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("sessions", 5, "Number of recent sessions to list")
}
