package cmd

import "github.com/spf13/cobra"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a drill session",
	Long: "Start a drill session. Type a first name to answer, or one of:\n" +
		"  show score   list every score, weakest first\n" +
		"  save         write scores to disk now\n" +
		"  quit         save and exit",
	RunE: runDrill,
}
