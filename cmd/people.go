package cmd

import (
	"fmt"

	"github.com/abhisek/facecards/internal/ui/theme"
	"github.com/spf13/cobra"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List the people found in the portrait directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		roster, err := loadRoster(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%d people", roster.Len())))
		for _, p := range roster.People() {
			fmt.Fprintln(out, theme.ScoreName.Render(p.Name)+theme.Hint.Render(p.Path))
		}
		return nil
	},
}
