// Package config resolves runtime settings from three layers, lowest
// priority first: built-in defaults, the YAML config file, GRIND_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/journal"
	"github.com/abhisek/grind/internal/solutions"
)

// envPrefix namespaces the environment overrides, e.g. GRIND_CATALOG.
const envPrefix = "GRIND_"

// Config holds the runtime settings.
type Config struct {
	// Catalog is the problem list CSV. Default: the NeetCode 150 CSV
	// in the working directory.
	Catalog string `koanf:"catalog"`

	// DB is the SQLite file. Empty means the standard data dir
	// (GRIND_DB overrides either way).
	DB string `koanf:"db"`

	// Solutions controls the solution write-ups.
	Solutions Solutions `koanf:"solutions"`

	// Editor overrides $EDITOR for solution capture.
	Editor string `koanf:"editor"`

	// Goal seeds the weekly target for a fresh database. Once set in
	// the app the stored value wins.
	Goal Goal `koanf:"goal"`

	// LogFile receives debug logs. Empty means the standard state dir.
	LogFile string `koanf:"log_file"`

	// LogLevel is a zerolog level name. Default: "info".
	LogLevel string `koanf:"log_level"`

	// Debug turns on file logging.
	Debug bool `koanf:"debug"`
}

// Solutions configures the write-up documents.
type Solutions struct {
	// Dir is where solution write-ups land. Default: "solutions".
	Dir string `koanf:"dir"`

	// Language fences the code block in rendered documents.
	Language string `koanf:"language"`
}

// Goal configures the study targets.
type Goal struct {
	ProblemsPerWeek int `koanf:"problems_per_week"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Catalog: catalog.DefaultFile,
		Solutions: Solutions{
			Dir:      solutions.DefaultDir,
			Language: "python",
		},
		Goal:     Goal{ProblemsPerWeek: journal.DefaultWeeklyGoal},
		LogLevel: "info",
	}
}

// Load resolves the config. An empty path means $GRIND_CONFIG or the
// default location, where a missing file is fine; an explicit path must
// exist.
func Load(path string) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		if p := os.Getenv("GRIND_CONFIG"); p != "" {
			path, explicit = p, true
		} else {
			path = DefaultPath()
		}
	}
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		case explicit:
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load env config: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKey maps GRIND_LOG_FILE to log_file, skipping unset and empty
// variables so they don't blank out lower layers. Double underscores
// become dots for nested keys (GRIND_SOLUTIONS__DIR -> solutions.dir).
// GRIND_CONFIG names the file itself, not a key in it.
func envKey(s string) string {
	if s == "GRIND_CONFIG" || os.Getenv(s) == "" {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Validate rejects settings the app can't run with.
func (c Config) Validate() error {
	if c.Catalog == "" {
		return fmt.Errorf("catalog must not be empty")
	}
	if c.Solutions.Dir == "" {
		return fmt.Errorf("solutions.dir must not be empty")
	}
	if c.Solutions.Language == "" {
		return fmt.Errorf("solutions.language must not be empty")
	}
	if c.Goal.ProblemsPerWeek < 1 {
		return fmt.Errorf("goal.problems_per_week must be at least 1, got %d", c.Goal.ProblemsPerWeek)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// DefaultPath returns the standard config file location:
// $XDG_CONFIG_HOME/grind/config.yaml, falling back to ~/.config.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "grind", "config.yaml")
}

// DefaultLogPath returns the standard log file location:
// $XDG_STATE_HOME/grind/grind.log, falling back to ~/.local/state.
func DefaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "grind", "grind.log")
}
