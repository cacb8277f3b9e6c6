package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/grind/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write progress to a portable JSON file",
	Long: `Write the full tracker state (solve log, review schedule, problem
status and notes, streak, goal) as indented JSON. The default path is
"` + progress.DefaultFile + `"; pass "-" to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, _, cleanup, err := openTracker(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		f := progress.Build(tr.ExportData(), tr.Entries())

		path := progress.DefaultFile
		if len(args) == 1 {
			path = args[0]
		}
		if path == "-" {
			return progress.Encode(os.Stdout, f)
		}
		if err := progress.WriteFile(path, f); err != nil {
			return err
		}
		fmt.Printf("Progress written to %s.\n", path)
		return nil
	},
}
