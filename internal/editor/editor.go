// Package editor opens the user's editor on a temp file and captures
// what they wrote. The TUI runs the command through tea.ExecProcess;
// the CLI runs it directly.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// DefaultEditor is used when nothing else names an editor.
const DefaultEditor = "nano"

// Command resolves the editor binary to launch: the override (from
// config) when set, then $EDITOR, then nano.
func Command(override string) string {
	if override != "" {
		return override
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	return DefaultEditor
}

// Session is one edit round-trip: a temp file seeded with initial
// content, the command that opens it, and the text read back after the
// editor exits.
type Session struct {
	Path   string
	Editor string
}

// NewSession creates the temp file, pre-filled with initial. The editor
// argument overrides $EDITOR; empty falls through to Command.
func NewSession(editor, initial string) (*Session, error) {
	f, err := os.CreateTemp("", "grind-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("seed temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, err
	}
	return &Session{Path: f.Name(), Editor: Command(editor)}, nil
}

// Cmd returns the editor command for this session. Stdio is left for the
// caller to wire: tea.ExecProcess attaches the terminal itself.
func (s *Session) Cmd() *exec.Cmd {
	return exec.Command(s.Editor, s.Path)
}

// Result reads the file content after the editor has exited.
func (s *Session) Result() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}
	return string(data), nil
}

// Close removes the temp file.
func (s *Session) Close() error {
	return os.Remove(s.Path)
}

// Capture runs the whole round-trip synchronously on the current
// terminal and returns the edited text.
func Capture(editor, initial string) (string, error) {
	s, err := NewSession(editor, initial)
	if err != nil {
		return "", err
	}
	defer s.Close()

	cmd := s.Cmd()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run %s: %w", s.Editor, err)
	}
	return s.Result()
}
