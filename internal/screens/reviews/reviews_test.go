package reviews

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/config"
	"github.com/abhisek/grind/internal/editor"
	"github.com/abhisek/grind/internal/solutions"
	"github.com/abhisek/grind/internal/store"
	"github.com/abhisek/grind/internal/tracker"
)

const sampleCSV = `Category,Difficulty,Name,Status,Link,Notes ( Fill in with your method to solve )
Arrays & Hashing,Easy,Two Sum,Unsolved,https://leetcode.com/problems/two-sum/,
Arrays & Hashing,Easy,Valid Anagram,Unsolved,https://leetcode.com/problems/valid-anagram/,
`

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTracker(t *testing.T, today time.Time) *tracker.Tracker {
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
		Now:       func() time.Time { return today },
	})
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}
	return tr
}

func logSolve(t *testing.T, tr *tracker.Tracker, slug string, day time.Time) {
	t.Helper()
	_, err := tr.LogSolve(context.Background(), tracker.SolveRequest{
		Problem:  slug,
		Date:     day,
		Minutes:  20,
		Approach: "first pass",
		Code:     "pass",
	})
	if err != nil {
		t.Fatalf("log solve %s: %v", slug, err)
	}
}

// dueScreen builds a screen whose queue holds two problems solved
// yesterday, both due today.
func dueScreen(t *testing.T) *ReviewsScreen {
	t.Helper()
	today := date(2026, time.March, 3)
	tr := newTracker(t, today)
	logSolve(t, tr, "two_sum", date(2026, time.March, 2))
	logSolve(t, tr, "valid_anagram", date(2026, time.March, 2))

	r := New(tr, config.Config{})
	msg := r.loadList()()
	scr, _ := r.Update(msg)
	return scr.(*ReviewsScreen)
}

func TestReviewsScreen_Title(t *testing.T) {
	r := New(newTracker(t, date(2026, time.March, 3)), config.Config{})
	if r.Title() != "Reviews" {
		t.Errorf("Title = %q, want %q", r.Title(), "Reviews")
	}
}

func TestReviewsScreen_ListShowsDue(t *testing.T) {
	r := dueScreen(t)

	if r.phase != phaseList {
		t.Fatalf("phase = %d, want list", r.phase)
	}
	if len(r.due) != 2 {
		t.Fatalf("due = %d, want 2", len(r.due))
	}

	view := r.View(80, 24)
	if !strings.Contains(view, "Two Sum") || !strings.Contains(view, "Valid Anagram") {
		t.Error("expected both due problems in the list")
	}
	if !strings.Contains(view, "Today") {
		t.Error("expected urgency labels in the list")
	}
}

func TestReviewsScreen_EmptyState(t *testing.T) {
	today := date(2026, time.March, 3)
	tr := newTracker(t, today)

	r := New(tr, config.Config{})
	scr, _ := r.Update(r.loadList()())
	rr := scr.(*ReviewsScreen)

	view := rr.View(80, 24)
	if !strings.Contains(view, "Nothing due today") {
		t.Error("expected empty state headline")
	}
	if !strings.Contains(view, "No reviews scheduled yet") {
		t.Error("expected no-schedule hint when nothing is booked")
	}

	// A solve today books reviews starting tomorrow.
	logSolve(t, tr, "two_sum", today)
	scr, _ = rr.Update(rr.loadList()())
	rr = scr.(*ReviewsScreen)

	view = rr.View(80, 24)
	if !strings.Contains(view, "Coming up") || !strings.Contains(view, "Two Sum") {
		t.Error("expected upcoming schedule on the empty state")
	}
	if !strings.Contains(view, "Mar 4") {
		t.Error("expected the first ladder date in the upcoming list")
	}
}

func TestReviewsScreen_NavigateAndOpenDetail(t *testing.T) {
	r := dueScreen(t)

	scr, _ := r.Update(keyPress('j'))
	rr := scr.(*ReviewsScreen)
	if rr.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", rr.cursor)
	}

	scr, cmd := rr.Update(specialKey(tea.KeyEnter))
	rr = scr.(*ReviewsScreen)
	if rr.phase != phaseDetail {
		t.Fatalf("phase = %d, want detail", rr.phase)
	}
	if rr.current.Problem.Slug != "valid_anagram" {
		t.Errorf("current = %q, want valid_anagram", rr.current.Problem.Slug)
	}
	if cmd == nil {
		t.Fatal("expected a solution-load command")
	}

	scr, _ = rr.Update(cmd())
	rr = scr.(*ReviewsScreen)
	if rr.solution == "" {
		t.Error("expected the stored write-up to be loaded")
	}

	view := rr.View(80, 24)
	if !strings.Contains(view, "Valid Anagram") || !strings.Contains(view, "Write-up") {
		t.Error("expected detail view with write-up preview")
	}
}

func TestReviewsScreen_MarkReviewed(t *testing.T) {
	r := dueScreen(t)

	scr, cmd := r.Update(specialKey(tea.KeyEnter))
	rr := scr.(*ReviewsScreen)
	rr.Update(cmd())

	scr, cmd = rr.Update(keyPress('m'))
	rr = scr.(*ReviewsScreen)
	if rr.phase != phaseSaving {
		t.Fatalf("phase = %d, want saving", rr.phase)
	}

	scr, cmd = rr.Update(cmd())
	rr = scr.(*ReviewsScreen)
	if cmd == nil {
		t.Fatal("expected a list reload after review")
	}
	scr, _ = rr.Update(cmd())
	rr = scr.(*ReviewsScreen)

	if len(rr.due) != 1 {
		t.Fatalf("due after review = %d, want 1", len(rr.due))
	}
	if !strings.Contains(rr.status, "Two Sum reviewed, next on Mar 10") {
		t.Errorf("status = %q, want reschedule note", rr.status)
	}
	if !strings.Contains(rr.View(80, 24), "Mar 10") {
		t.Error("expected status line on the list view")
	}
}

func TestReviewsScreen_UpdateSolutionFlow(t *testing.T) {
	r := dueScreen(t)

	scr, cmd := r.Update(specialKey(tea.KeyEnter))
	rr := scr.(*ReviewsScreen)
	rr.Update(cmd())

	// U starts the update wizard.
	scr, _ = rr.Update(keyPress('u'))
	rr = scr.(*ReviewsScreen)
	if rr.phase != phaseApproach {
		t.Fatalf("phase = %d, want approach", rr.phase)
	}

	for _, c := range "two pointers" {
		scr, _ = rr.Update(keyPress(c))
		rr = scr.(*ReviewsScreen)
	}
	scr, _ = rr.Update(specialKey(tea.KeyEnter))
	rr = scr.(*ReviewsScreen)
	if rr.phase != phaseChallenges {
		t.Fatalf("phase = %d, want challenges", rr.phase)
	}

	scr, _ = rr.Update(specialKey(tea.KeyEnter))
	rr = scr.(*ReviewsScreen)
	if rr.phase != phaseEditor {
		t.Fatalf("phase = %d, want editor", rr.phase)
	}

	// Simulate the editor round-trip.
	sess, err := editor.NewSession("", "def two_sum():\n    return {}\n")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	rr.editSess = sess
	scr, cmd = rr.Update(editorDoneMsg{})
	rr = scr.(*ReviewsScreen)
	if rr.phase != phaseSaving {
		t.Fatalf("phase = %d, want saving", rr.phase)
	}

	scr, cmd = rr.Update(cmd())
	rr = scr.(*ReviewsScreen)
	if cmd == nil {
		t.Fatalf("expected a list reload after update (err=%q)", rr.errMsg)
	}
	scr, _ = rr.Update(cmd())
	rr = scr.(*ReviewsScreen)

	if !strings.Contains(rr.status, "Two Sum updated") {
		t.Errorf("status = %q, want update note", rr.status)
	}
	if len(rr.due) != 1 {
		t.Fatalf("due after update = %d, want 1", len(rr.due))
	}

	// The write-up now carries the new approach.
	text, err := rr.tracker.ReadSolution("two_sum")
	if err != nil {
		t.Fatalf("read solution: %v", err)
	}
	if !strings.Contains(text, "two pointers") {
		t.Error("expected rewritten document to carry the new approach")
	}

	// And the catalog notes follow it.
	p, ok := rr.tracker.FindProblem("two_sum")
	if !ok || p.Notes != "two pointers" {
		t.Errorf("notes = %q, want %q", p.Notes, "two pointers")
	}
}

func TestReviewsScreen_EscStepsBack(t *testing.T) {
	r := dueScreen(t)

	if r.BlocksEsc() {
		t.Error("list should let the app pop on esc")
	}

	scr, _ := r.Update(specialKey(tea.KeyEnter))
	rr := scr.(*ReviewsScreen)
	if !rr.BlocksEsc() {
		t.Error("detail should intercept esc")
	}

	scr, _ = rr.Update(specialKey(tea.KeyEscape))
	rr = scr.(*ReviewsScreen)
	if rr.phase != phaseList {
		t.Errorf("phase = %d, want list after esc from detail", rr.phase)
	}
}
