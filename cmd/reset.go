package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/facecards/internal/scores"
	"github.com/abhisek/facecards/internal/ui/theme"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set every score back to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("reset discards all progress; pass --yes to confirm")
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		roster, err := loadRoster(cfg)
		if err != nil {
			return err
		}
		store, err := scores.Load(cfg.Scores, roster.IDs(), scores.ReconcileAdd)
		if err != nil {
			return err
		}

		store.Reset(roster.IDs())
		if err := store.Persist(cfg.Scores); err != nil {
			return fmt.Errorf("save scores: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Hint.Render(fmt.Sprintf("Reset %d scores in %s.", roster.Len(), cfg.Scores)))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
