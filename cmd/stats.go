package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, cleanup, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		o := tr.Overview()

		fmt.Println("LeetCode Tracker Analytics:")
		fmt.Printf("Total problems: %d\n", o.TotalProblems)
		fmt.Printf("Completed problems: %d\n", o.Completed)
		fmt.Printf("Completion rate: %.2f%%\n", o.Percent())
		fmt.Printf("Study streak: %d days\n", o.Streak)
		fmt.Printf("Total study time: %d minutes\n", o.TotalMinutes)

		fmt.Println("\nCategory Progress:")
		for _, g := range o.ByCategory {
			fmt.Printf("%s: %d/%d (%.2f%%)\n", g.Name, g.Completed, g.Total, g.Percent())
		}

		fmt.Println("\nDifficulty Progress:")
		for _, g := range o.ByDifficulty {
			fmt.Printf("%s: %d/%d (%.2f%%)\n", g.Name, g.Completed, g.Total, g.Percent())
		}
		return nil
	},
}
