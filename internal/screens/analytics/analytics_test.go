package analytics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/solutions"
	"github.com/abhisek/grind/internal/store"
	"github.com/abhisek/grind/internal/tracker"
)

const sampleCSV = `Category,Difficulty,Name,Status,Link,Notes ( Fill in with your method to solve )
Arrays & Hashing,Easy,Two Sum,Unsolved,https://leetcode.com/problems/two-sum/,
Arrays & Hashing,Medium,Group Anagrams,Unsolved,https://leetcode.com/problems/group-anagrams/,
Stack,Hard,Largest Rectangle,Unsolved,https://leetcode.com/problems/largest-rectangle-in-histogram/,
`

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

func TestAnalyticsScreen_Title(t *testing.T) {
	a := New(newTracker(t))
	if a.Title() != "Analytics" {
		t.Errorf("Title = %q, want %q", a.Title(), "Analytics")
	}
}

func TestAnalyticsScreen_EmptyProgress(t *testing.T) {
	a := New(newTracker(t))

	view := a.View(80, 24)
	if !strings.Contains(view, "0/3 completed") {
		t.Error("expected headline completion count")
	}
	if !strings.Contains(view, "Category Progress") || !strings.Contains(view, "Difficulty Progress") {
		t.Error("expected both bar groups")
	}
	if !strings.Contains(view, "Arrays & Hashing") || !strings.Contains(view, "Hard") {
		t.Error("expected group labels")
	}
}

func TestAnalyticsScreen_CountsSolves(t *testing.T) {
	tr := newTracker(t)
	if _, err := tr.LogSolve(context.Background(), tracker.SolveRequest{
		Problem: "two_sum",
		Minutes: 45,
		Code:    "pass",
	}); err != nil {
		t.Fatalf("log solve: %v", err)
	}

	a := New(tr)
	view := a.View(80, 24)

	if !strings.Contains(view, "1/3 completed") {
		t.Error("expected completion to count the solve")
	}
	if !strings.Contains(view, "(33.3%)") {
		t.Error("expected the completion rate")
	}
	if !strings.Contains(view, "1 day streak") {
		t.Error("expected the streak headline")
	}
	if !strings.Contains(view, "45 minutes studied") {
		t.Error("expected total study time")
	}
}
