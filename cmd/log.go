package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/grind/internal/tracker"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a solve without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, cleanup, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		problem, _ := cmd.Flags().GetString("problem")
		minutes, _ := cmd.Flags().GetInt("minutes")
		approach, _ := cmd.Flags().GetString("approach")
		challenges, _ := cmd.Flags().GetString("challenges")
		solutionFile, _ := cmd.Flags().GetString("solution-file")
		dateStr, _ := cmd.Flags().GetString("date")

		req := tracker.SolveRequest{
			Problem:    problem,
			Minutes:    minutes,
			Approach:   approach,
			Challenges: challenges,
		}
		if dateStr != "" {
			d, err := time.Parse(time.DateOnly, dateStr)
			if err != nil {
				return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
			}
			req.Date = d
		}
		if solutionFile != "" {
			data, err := os.ReadFile(solutionFile)
			if err != nil {
				return fmt.Errorf("read solution file: %w", err)
			}
			req.Code = strings.TrimSpace(string(data))
		}

		res, err := tr.LogSolve(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Logged %s (%d minutes).\n", res.Problem.Name, res.Entry.Minutes)
		fmt.Printf("Write-up: %s\n", res.SolutionPath)
		fmt.Printf("Streak: %d days. Reviews:", res.Streak)
		for _, d := range res.NextReviews {
			fmt.Printf(" %s", d.Format("2006-01-02"))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	logCmd.Flags().String("problem", "", "Problem name or slug")
	logCmd.Flags().Int("minutes", 0, "Minutes spent")
	logCmd.Flags().String("approach", "", "Approach notes")
	logCmd.Flags().String("challenges", "", "Challenges faced")
	logCmd.Flags().String("solution-file", "", "File holding the solution code")
	logCmd.Flags().String("date", "", "Solve date as YYYY-MM-DD (default today)")
	logCmd.MarkFlagRequired("problem")
	logCmd.MarkFlagRequired("minutes")
}
