package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grind",
	Short: "Terminal LeetCode practice tracker",
	Long: `grind tracks LeetCode-style practice from the terminal: a solve journal
with streaks and a weekly goal, spaced-repetition reviews, analytics, and
one markdown write-up per problem.

Running grind with no arguments opens the full-screen TUI. Subcommands
cover the same workflows non-interactively.

Setup:
  - Problem list: a CSV file, by default "NeetCode 150 Personal List.csv"
    in the working directory (--catalog or the config file point elsewhere).
  - Config file: $XDG_CONFIG_HOME/grind/config.yaml, overridden by
    --config or GRIND_CONFIG.
  - Data: SQLite at $XDG_DATA_HOME/grind/grind.db, overridden by --db or
    GRIND_DB. Solution write-ups land in ./solutions by default.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database (overrides GRIND_DB and the config file)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to the problem list CSV")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(problemsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
