package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [target]",
	Short: "Show or set the weekly goal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, cleanup, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if len(args) == 0 {
			o := tr.Overview()
			fmt.Printf("Weekly goal: %d problems (%d solved this week)\n",
				o.WeeklyGoal, o.SolvedThisWeek)
			return nil
		}

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("goal %q is not a number", args[0])
		}
		if err := tr.SetWeeklyGoal(cmd.Context(), n); err != nil {
			return err
		}
		fmt.Printf("Weekly goal set to %d problems.\n", n)
		return nil
	},
}
