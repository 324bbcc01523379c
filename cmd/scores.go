package cmd

import (
	"github.com/abhisek/facecards/internal/people"
	"github.com/abhisek/facecards/internal/scores"
	"github.com/abhisek/facecards/internal/session"
	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print scores, weakest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// The score file is listed even when no portraits are found.
		roster, err := people.Discover(cfg.Images)
		if err != nil {
			return err
		}
		store, err := scores.Load(cfg.Scores, roster.IDs(), scores.ReconcilePolicy(cfg.Missing))
		if err != nil {
			return err
		}
		session.WriteScores(cmd.OutOrStdout(), store, roster)
		return nil
	},
}
