package goals

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/solutions"
	"github.com/abhisek/grind/internal/store"
	"github.com/abhisek/grind/internal/tracker"
)

const sampleCSV = `Category,Difficulty,Name,Status,Link,Notes ( Fill in with your method to solve )
Arrays & Hashing,Easy,Two Sum,Unsolved,https://leetcode.com/problems/two-sum/,
`

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTracker(t *testing.T) *tracker.Tracker {
	t.Helper()

	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cat, err := catalog.Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	tr, err := tracker.Load(context.Background(), tracker.Options{
		Catalog:   cat,
		Store:     st,
		Solutions: solutions.NewDir(t.TempDir()),
		Now:       func() time.Time { return time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	return tr
}

func TestGoalsScreen_ShowsCurrentGoal(t *testing.T) {
	g := New(newTracker(t))

	view := g.View(80, 24)
	if !strings.Contains(view, "5 problems") {
		t.Error("expected the default weekly goal")
	}
	if !strings.Contains(view, "0 solved so far this week") {
		t.Error("expected this week's progress")
	}
}

func TestGoalsScreen_SetGoal(t *testing.T) {
	tr := newTracker(t)
	g := New(tr)

	s, _ := g.Update(keyPress('7'))
	gg := s.(*GoalsScreen)
	s, cmd := gg.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	gg = s.(*GoalsScreen)

	if !gg.saving {
		t.Fatal("expected saving state after submit")
	}
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	s, _ = gg.Update(cmd())
	gg = s.(*GoalsScreen)

	if tr.WeeklyGoal() != 7 {
		t.Errorf("weekly goal = %d, want 7", tr.WeeklyGoal())
	}
	if !strings.Contains(gg.status, "Goal set to 7") {
		t.Errorf("status = %q, want confirmation", gg.status)
	}
	if !strings.Contains(gg.View(80, 24), "7 problems") {
		t.Error("expected view to show the new goal")
	}
}

func TestGoalsScreen_RejectsInvalid(t *testing.T) {
	g := New(newTracker(t))

	// The numeric input drops letters entirely.
	s, _ := g.Update(keyPress('x'))
	gg := s.(*GoalsScreen)
	if gg.input.Value() != "" {
		t.Fatalf("input = %q, want empty", gg.input.Value())
	}

	// Zero is typed but rejected on submit.
	s, _ = gg.Update(keyPress('0'))
	gg = s.(*GoalsScreen)
	s, cmd := gg.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	gg = s.(*GoalsScreen)

	if cmd != nil {
		t.Error("expected no save command for an invalid goal")
	}
	if gg.errMsg == "" {
		t.Error("expected a validation message")
	}
	if gg.saving {
		t.Error("expected no saving state for an invalid goal")
	}
}

func TestGoalsScreen_EmptyKeepsCurrent(t *testing.T) {
	tr := newTracker(t)
	g := New(tr)

	_, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for an empty submit")
	}
	if tr.WeeklyGoal() != 5 {
		t.Errorf("weekly goal = %d, want untouched 5", tr.WeeklyGoal())
	}
}
