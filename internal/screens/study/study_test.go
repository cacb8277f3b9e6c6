package study

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/config"
	"github.com/abhisek/grind/internal/editor"
	"github.com/abhisek/grind/internal/router"
	"github.com/abhisek/grind/internal/solutions"
	"github.com/abhisek/grind/internal/store"
	"github.com/abhisek/grind/internal/tracker"
)

const sampleCSV = `Category,Difficulty,Name,Status,Link,Notes ( Fill in with your method to solve )
Arrays & Hashing,Easy,Two Sum,Unsolved,https://leetcode.com/problems/two-sum/,
Arrays & Hashing,Easy,Valid Anagram,Unsolved,https://leetcode.com/problems/valid-anagram/,
`

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testStudyScreen(t *testing.T) *StudyScreen {
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
	})
	if err != nil {
		t.Fatalf("load tracker: %v", err)
	}

	return New(tr, config.Config{})
}

// planScreen runs Init's command and feeds the result back, leaving the
// screen on the plan view.
func planScreen(t *testing.T) *StudyScreen {
	t.Helper()
	s := testStudyScreen(t)
	msg := s.loadPlan()()
	scr, _ := s.Update(msg)
	return scr.(*StudyScreen)
}

func TestStudyScreen_Title(t *testing.T) {
	s := testStudyScreen(t)
	if s.Title() != "Study" {
		t.Errorf("Title = %q, want %q", s.Title(), "Study")
	}
}

func TestStudyScreen_View_Loading(t *testing.T) {
	s := testStudyScreen(t)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestStudyScreen_PlanShowsNextProblem(t *testing.T) {
	s := planScreen(t)

	if s.phase != phasePlan {
		t.Fatalf("phase = %d, want plan", s.phase)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Two Sum") {
		t.Error("expected plan view to name the next problem")
	}
	if !strings.Contains(view, "No reviews due today") {
		t.Error("expected plan view to note the empty review queue")
	}
}

func TestStudyScreen_AllDone(t *testing.T) {
	s := testStudyScreen(t)

	scr, _ := s.Update(planReadyMsg{AllDone: true})
	ss := scr.(*StudyScreen)
	if ss.phase != phaseAllDone {
		t.Fatalf("phase = %d, want all-done", ss.phase)
	}

	_, cmd := ss.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after keypress on all-done view")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from all-done keypress")
	}
}

func TestStudyScreen_EnterStartsTimer(t *testing.T) {
	s := planScreen(t)

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	ss := scr.(*StudyScreen)

	if ss.phase != phaseTimer {
		t.Fatalf("phase = %d, want timer", ss.phase)
	}
	if ss.startTime.IsZero() {
		t.Error("expected start time to be set")
	}
	if cmd == nil {
		t.Error("expected session-start and tick commands")
	}
}

func TestStudyScreen_TimerTick(t *testing.T) {
	s := planScreen(t)
	s.phase = phaseTimer
	s.startTime = time.Now().Add(-90 * time.Second)

	scr, cmd := s.Update(timerTickMsg(time.Now()))
	ss := scr.(*StudyScreen)

	if ss.studied < 90*time.Second {
		t.Errorf("studied = %v, want at least 90s", ss.studied)
	}
	if cmd == nil {
		t.Error("expected another tick command")
	}
	if !strings.Contains(ss.View(80, 24), "1:30") {
		t.Error("expected timer view to show 1:30")
	}
}

func TestStudyScreen_InputFlow(t *testing.T) {
	s := planScreen(t)
	s.phase = phaseTimer
	s.startTime = time.Now()

	// Stop the timer.
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	ss := scr.(*StudyScreen)
	if ss.phase != phaseApproach {
		t.Fatalf("phase = %d, want approach", ss.phase)
	}

	// Type the approach and confirm.
	for _, r := range "hash map" {
		scr, _ = ss.Update(keyPress(r))
		ss = scr.(*StudyScreen)
	}
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*StudyScreen)

	if ss.approach != "hash map" {
		t.Errorf("approach = %q, want %q", ss.approach, "hash map")
	}
	if ss.phase != phaseChallenges {
		t.Fatalf("phase = %d, want challenges", ss.phase)
	}

	// Empty challenges are fine.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*StudyScreen)
	if ss.phase != phaseEditor {
		t.Fatalf("phase = %d, want editor", ss.phase)
	}
}

func TestStudyScreen_EditorResultMovesToPreview(t *testing.T) {
	s := planScreen(t)
	s.phase = phaseEditor

	sess, err := editor.NewSession("", "def two_sum(nums, target):\n    pass\n")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	s.editSess = sess

	scr, _ := s.Update(editorDoneMsg{})
	ss := scr.(*StudyScreen)

	if ss.phase != phasePreview {
		t.Fatalf("phase = %d, want preview", ss.phase)
	}
	if !strings.Contains(ss.code, "def two_sum") {
		t.Errorf("code = %q, want editor content", ss.code)
	}
	if ss.editSess != nil {
		t.Error("expected editor session to be released")
	}
	if !strings.Contains(ss.View(80, 24), "def two_sum") {
		t.Error("expected preview to show the captured code")
	}
}

func TestStudyScreen_SaveSolve(t *testing.T) {
	s := planScreen(t)
	s.phase = phasePreview
	s.studied = 25 * time.Minute
	s.approach = "brute force"
	s.code = "pass"

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	ss := scr.(*StudyScreen)
	if ss.phase != phaseSaving {
		t.Fatalf("phase = %d, want saving", ss.phase)
	}
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	scr, _ = ss.Update(cmd())
	ss = scr.(*StudyScreen)

	if ss.phase != phaseDone {
		t.Fatalf("phase = %d, want done (err=%q)", ss.phase, ss.errMsg)
	}
	if ss.result == nil || ss.result.Entry.Minutes != 25 {
		t.Fatalf("result = %+v, want 25 minute entry", ss.result)
	}

	view := ss.View(80, 24)
	if !strings.Contains(view, "25 minutes") {
		t.Error("expected done card to show minutes studied")
	}
	if !strings.Contains(view, ss.result.SolutionPath) {
		t.Error("expected done card to show the write-up path")
	}
}

func TestStudyScreen_QuitConfirm(t *testing.T) {
	s := planScreen(t)
	s.phase = phaseTimer
	s.startTime = time.Now()

	scr, _ := s.Update(specialKey(tea.KeyEscape))
	ss := scr.(*StudyScreen)
	if !ss.confirming {
		t.Fatal("expected quit confirmation dialog")
	}

	// N keeps the session going.
	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*StudyScreen)
	if ss.confirming {
		t.Fatal("expected confirmation to be dismissed")
	}
	if ss.phase != phaseTimer {
		t.Errorf("phase = %d, want timer after dismiss", ss.phase)
	}

	// Y ends the session.
	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*StudyScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirmed quit")
	}
}

func TestStudyScreen_BlocksEsc(t *testing.T) {
	s := planScreen(t)
	if s.BlocksEsc() {
		t.Error("plan view should let the app pop on esc")
	}

	s.phase = phaseTimer
	if !s.BlocksEsc() {
		t.Error("timer should intercept esc")
	}

	s.phase = phasePreview
	if !s.BlocksEsc() {
		t.Error("preview should intercept esc")
	}

	s.phase = phaseDone
	s.sessionID = "sitting"
	if !s.BlocksEsc() {
		t.Error("an open session should intercept esc")
	}
}

func TestStudyScreen_ErrorState(t *testing.T) {
	s := planScreen(t)
	s.errMsg = "disk full"

	view := s.View(80, 24)
	if !strings.Contains(view, "disk full") {
		t.Error("expected error view to show the message")
	}

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after keypress on error view")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from error keypress")
	}
}

func TestStudyScreen_KeyHints(t *testing.T) {
	s := planScreen(t)

	if hints := s.KeyHints(); len(hints) == 0 {
		t.Error("expected key hints on the plan view")
	}

	s.confirming = true
	hints := s.KeyHints()
	if len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("hints = %+v, want quit-confirm pair", hints)
	}
}
