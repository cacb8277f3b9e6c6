package editor

import (
	"os"
	"strings"
	"testing"
)

func TestCommandDefaults(t *testing.T) {
	t.Setenv("EDITOR", "")
	if got := Command(""); got != DefaultEditor {
		t.Fatalf("Command = %q, want %q", got, DefaultEditor)
	}
}

func TestCommandHonorsEnv(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	if got := Command(""); got != "vim" {
		t.Fatalf("Command = %q, want vim", got)
	}
}

func TestCommandOverrideWins(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	if got := Command("hx"); got != "hx" {
		t.Fatalf("Command = %q, want hx", got)
	}
}

func TestSessionSeedsInitialContent(t *testing.T) {
	s, err := NewSession("", "# Two Sum\n")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	got, err := s.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if got != "# Two Sum\n" {
		t.Fatalf("Result = %q, want seeded content", got)
	}
	if !strings.HasSuffix(s.Path, ".md") {
		t.Fatalf("temp file %q should have a .md suffix", s.Path)
	}
}

func TestSessionReadsEdits(t *testing.T) {
	s, err := NewSession("", "before")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	if err := os.WriteFile(s.Path, []byte("after"), 0o644); err != nil {
		t.Fatalf("simulate edit: %v", err)
	}

	got, err := s.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if got != "after" {
		t.Fatalf("Result = %q, want %q", got, "after")
	}
}

func TestSessionCloseRemovesFile(t *testing.T) {
	s, err := NewSession("", "")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(s.Path); !os.IsNotExist(err) {
		t.Fatalf("temp file still present after Close: %v", err)
	}
}

func TestSessionCmdTargetsTempFile(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	s, err := NewSession("", "")
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	defer s.Close()

	cmd := s.Cmd()
	if len(cmd.Args) != 2 || cmd.Args[1] != s.Path {
		t.Fatalf("Cmd args = %v, want [vim %s]", cmd.Args, s.Path)
	}
}
