package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List problems due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, cleanup, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		upcoming, _ := cmd.Flags().GetBool("upcoming")

		items := tr.DueReviews()
		if upcoming {
			items = tr.UpcomingReviews()
		}
		if len(items) == 0 {
			if upcoming {
				fmt.Println("No reviews scheduled. Log some solves first.")
			} else {
				fmt.Println("Nothing due today.")
			}
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DUE\tPROBLEM\tCATEGORY\tURGENCY")
		for _, it := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				it.Due.Format("2006-01-02"), it.Problem.Name, it.Problem.Category, it.Urgency)
		}
		return w.Flush()
	},
}

func init() {
	reviewsCmd.Flags().Bool("upcoming", false, "List future review dates instead of what's due")
}
