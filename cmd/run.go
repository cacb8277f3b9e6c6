package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/grind/internal/app"
	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/config"
	"github.com/abhisek/grind/internal/log"
	"github.com/abhisek/grind/internal/solutions"
	"github.com/abhisek/grind/internal/store"
	"github.com/abhisek/grind/internal/tracker"
)

// loadConfig resolves the layered config, then lets the root flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.Catalog = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB = p
	}
	return cfg, nil
}

// setupLogging points zerolog at the debug log file. Stdout stays clean;
// it belongs to the TUI or to command output.
func setupLogging(cfg config.Config) func() {
	if !cfg.Debug {
		log.Configure(log.Config{Level: cfg.LogLevel})
		return func() {}
	}
	path := cfg.LogFile
	if path == "" {
		path = config.DefaultLogPath()
	}
	f, err := log.OpenFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "debug log unavailable:", err)
		log.Configure(log.Config{Level: cfg.LogLevel})
		return func() {}
	}
	log.Configure(log.Config{Level: cfg.LogLevel, Output: f})
	return func() { f.Close() }
}

// resolveDBPath returns the database path: --db flag or config file
// first, then GRIND_DB, then the default data dir.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openTracker builds the stack behind every command: config, logging,
// catalog, store, tracker. The cleanup closes the store and log file.
func openTracker(cmd *cobra.Command) (*tracker.Tracker, config.Config, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	closeLog := setupLogging(cfg)

	cat, err := catalog.LoadFile(cfg.Catalog)
	if err != nil {
		closeLog()
		if errors.Is(err, catalog.ErrFileNotFound) {
			return nil, config.Config{}, nil, fmt.Errorf(
				"problem list %q not found\n\nPlease ensure the CSV is in the working directory, or point --catalog (or the config file) at it", cfg.Catalog)
		}
		return nil, config.Config{}, nil, err
	}
	if cat.Empty() {
		fmt.Fprintln(os.Stderr, "Warning: no problems loaded from the CSV file.")
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		closeLog()
		return nil, config.Config{}, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		closeLog()
		return nil, config.Config{}, nil, fmt.Errorf("open store: %w", err)
	}

	tr, err := tracker.Load(cmd.Context(), tracker.Options{
		Catalog:   cat,
		Store:     st,
		Solutions: solutions.NewDir(cfg.Solutions.Dir),
		Language:  cfg.Solutions.Language,
		Goal:      cfg.Goal.ProblemsPerWeek,
	})
	if err != nil {
		st.Close()
		closeLog()
		return nil, config.Config{}, nil, fmt.Errorf("load tracker: %w", err)
	}

	cleanup := func() {
		st.Close()
		closeLog()
	}
	return tr, cfg, cleanup, nil
}

// runApp opens the tracker and launches the TUI.
func runApp(cmd *cobra.Command, startInStudy bool) error {
	tr, cfg, cleanup, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(app.Options{
		Tracker:      tr,
		Config:       cfg,
		Version:      version,
		StartInStudy: startInStudy,
	})
}
