package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/grind/internal/catalog"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next unsolved problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, cleanup, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		random, _ := cmd.Flags().GetBool("random")

		var p catalog.Problem
		var ok bool
		if random {
			p, ok = tr.RandomProblem(nil)
		} else {
			p, ok = tr.NextProblem()
		}
		if !ok {
			fmt.Println("All problems completed. Add rows to the CSV to keep going.")
			return nil
		}

		fmt.Printf("%s (%s, %s)\n", p.Name, p.Category, p.DifficultyLabel())
		if p.Link != "" {
			fmt.Println(p.Link)
		}
		return nil
	},
}

func init() {
	nextCmd.Flags().Bool("random", false, "Pick a random unsolved problem instead of the first")
}
