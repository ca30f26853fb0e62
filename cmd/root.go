package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pixverse",
	Short: "A retro birthday journey in your terminal",
	Long:  "Pixverse: count down to the big day, flip through the year's cards, solve the puzzle and open the letter.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides PIXVERSE_DB env var)")
	flags.String("content", "", "Path to a YAML content pack (overrides PIXVERSE_CONTENT)")
	flags.String("log-file", "", "Write diagnostics to this file (overrides PIXVERSE_LOG_FILE)")
	flags.String("log-level", "", "debug, info, warn or error (overrides PIXVERSE_LOG_LEVEL)")
	flags.String("target-date", "", "Birthday as YYYY-MM-DD (overrides PIXVERSE_TARGET_DATE)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
