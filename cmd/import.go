package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/grind/internal/progress"
	"github.com/abhisek/grind/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Replace all progress with a progress file",
	Long: `Validate a progress file and replace the local state with it. The
solve log is replayed into the event journal and the rest of the state
lands in a fresh snapshot. The problem list CSV is not touched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		closeLog := setupLogging(cfg)
		defer closeLog()

		// Validate before touching the database.
		f, err := progress.ReadFile(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.Reset(ctx); err != nil {
			return err
		}

		entries := f.Entries()
		for i, e := range entries {
			ev := &store.SolveEvent{
				Slug:         e.Slug,
				Problem:      e.Problem,
				LoggedOn:     e.Date,
				Minutes:      e.Minutes,
				Approach:     e.Approach,
				Challenges:   e.Challenges,
				Solution:     e.Solution,
				SolutionPath: e.SolutionPath,
			}
			if err := st.Solves().Append(ctx, ev); err != nil {
				return fmt.Errorf("import log %d: %w", i+1, err)
			}
		}

		// The snapshot is stamped after the replayed events, so the next
		// load restores it and reads the log as plain history.
		if err := st.Snapshots().Save(ctx, &store.Snapshot{Data: f.SnapshotData}); err != nil {
			return err
		}

		fmt.Printf("Imported %d log entries from %s.\n", len(entries), args[0])
		return nil
	},
}
