package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/grind/internal/catalog"
)

// isolate keeps tests away from the developer's real config and env.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{
		"GRIND_CONFIG", "GRIND_CATALOG", "GRIND_DB", "GRIND_EDITOR",
		"GRIND_SOLUTIONS__DIR", "GRIND_SOLUTIONS__LANGUAGE",
		"GRIND_GOAL__PROBLEMS_PER_WEEK",
		"GRIND_LOG_FILE", "GRIND_LOG_LEVEL", "GRIND_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog != catalog.DefaultFile {
		t.Errorf("catalog = %q, want default", cfg.Catalog)
	}
	if cfg.Solutions.Dir != "solutions" || cfg.Solutions.Language != "python" {
		t.Errorf("solutions = %+v, want solutions/python", cfg.Solutions)
	}
	if cfg.Goal.ProblemsPerWeek != 5 {
		t.Errorf("goal = %d, want 5", cfg.Goal.ProblemsPerWeek)
	}
	if cfg.LogLevel != "info" || cfg.Debug {
		t.Errorf("log settings = %q/%v, want info/false", cfg.LogLevel, cfg.Debug)
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "catalog: my_problems.csv\nsolutions:\n  dir: writeups\n  language: go\ndebug: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog != "my_problems.csv" {
		t.Errorf("catalog = %q", cfg.Catalog)
	}
	if cfg.Solutions.Dir != "writeups" || cfg.Solutions.Language != "go" {
		t.Errorf("solutions = %+v", cfg.Solutions)
	}
	if !cfg.Debug {
		t.Error("debug not picked up from file")
	}
	// Unset keys keep their defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q, want default", cfg.LogLevel)
	}
	if cfg.Goal.ProblemsPerWeek != 5 {
		t.Errorf("goal = %d, want default", cfg.Goal.ProblemsPerWeek)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("catalog: from_file.csv\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GRIND_CATALOG", "from_env.csv")
	t.Setenv("GRIND_SOLUTIONS__LANGUAGE", "rust")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog != "from_env.csv" {
		t.Errorf("catalog = %q, want env value", cfg.Catalog)
	}
	if cfg.Solutions.Language != "rust" {
		t.Errorf("solutions.language = %q, want env value", cfg.Solutions.Language)
	}
}

func TestLoadDefaultPathPicksUpFile(t *testing.T) {
	isolate(t)

	configHome := os.Getenv("XDG_CONFIG_HOME")
	dir := filepath.Join(configHome, "grind")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadHonorsConfigEnvVar(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "alt.yaml")
	if err := os.WriteFile(path, []byte("editor: vim\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GRIND_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor != "vim" {
		t.Errorf("editor = %q, want vim", cfg.Editor)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing explicit config accepted")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"empty catalog", func(c *Config) { c.Catalog = "" }, false},
		{"empty solutions dir", func(c *Config) { c.Solutions.Dir = "" }, false},
		{"empty language", func(c *Config) { c.Solutions.Language = "" }, false},
		{"zero goal", func(c *Config) { c.Goal.ProblemsPerWeek = 0 }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"debug level", func(c *Config) { c.LogLevel = "debug" }, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			err := cfg.Validate()
			if c.wantOK && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !c.wantOK && err == nil {
				t.Fatal("Validate accepted bad config")
			}
		})
	}
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	want := filepath.Join("/tmp/xdg-test", "grind", "config.yaml")
	if got := DefaultPath(); got != want {
		t.Fatalf("DefaultPath = %q, want %q", got, want)
	}
}

func TestEnvKeyMapping(t *testing.T) {
	t.Setenv("GRIND_LOG_FILE", "x.log")
	if got := envKey("GRIND_LOG_FILE"); got != "log_file" {
		t.Errorf("envKey = %q, want log_file", got)
	}

	t.Setenv("GRIND_UNSET_KEY", "")
	if got := envKey("GRIND_UNSET_KEY"); got != "" {
		t.Errorf("empty env var mapped to %q, want skip", got)
	}

	t.Setenv("GRIND_SOLUTIONS__DIR", "v")
	if got := envKey("GRIND_SOLUTIONS__DIR"); !strings.Contains(got, ".") {
		t.Errorf("double underscore not mapped to dot: %q", got)
	}

	t.Setenv("GRIND_CONFIG", "somewhere.yaml")
	if got := envKey("GRIND_CONFIG"); got != "" {
		t.Errorf("GRIND_CONFIG mapped to key %q, want skip", got)
	}
}
