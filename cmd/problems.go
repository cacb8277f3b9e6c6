package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/grind/internal/catalog"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List the problem catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, cleanup, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		status, _ := cmd.Flags().GetString("status")
		search, _ := cmd.Flags().GetString("search")

		matches := tr.FilterProblems(catalog.FilterOpts{
			Category:   category,
			Difficulty: difficulty,
			Status:     status,
			Query:      search,
		})
		if len(matches) == 0 {
			fmt.Println("No problems matched.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tNAME\tDIFFICULTY\tSTATUS\tCATEGORY")
		for _, p := range matches {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				p.Slug, p.Name, p.DifficultyLabel(), p.Status, p.Category)
		}
		return w.Flush()
	},
}

func init() {
	problemsCmd.Flags().String("category", "", "Only problems in this category")
	problemsCmd.Flags().String("difficulty", "", "Only problems with this difficulty")
	problemsCmd.Flags().String("status", "", "Only problems with this status")
	problemsCmd.Flags().String("search", "", "Match on any part of the name")
}
