package study

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/config"
	"github.com/abhisek/grind/internal/editor"
	"github.com/abhisek/grind/internal/router"
	"github.com/abhisek/grind/internal/screen"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/components"
	"github.com/abhisek/grind/internal/ui/layout"
)

// phase tracks where the study flow currently is.
type phase int

const (
	phaseLoading phase = iota
	phasePlan
	phaseAllDone
	phaseTimer
	phaseApproach
	phaseChallenges
	phaseEditor
	phasePreview
	phaseSaving
	phaseDone
)

// StudyScreen walks one solve end to end: plan, timer, write-up inputs,
// solution capture in the external editor, save.
type StudyScreen struct {
	tracker *tracker.Tracker
	cfg     config.Config

	phase      phase
	problem    catalog.Problem
	due        []tracker.ReviewItem
	sessionID  string
	startTime  time.Time
	studied    time.Duration
	approach   string
	challenges string
	code       string
	result     *tracker.SolveResult
	input      components.TextInput
	editSess   *editor.Session
	confirming bool
	errMsg     string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.EscGuard = (*StudyScreen)(nil)

// New creates a StudyScreen backed by the tracker.
func New(tr *tracker.Tracker, cfg config.Config) *StudyScreen {
	return &StudyScreen{
		tracker: tr,
		cfg:     cfg,
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.loadPlan()
}

func (s *StudyScreen) Title() string {
	return "Study"
}

// BlocksEsc reports whether the screen wants esc for itself. Once the
// timer is running a session event is open, so the screen must see esc
// to confirm the quit and close the session.
func (s *StudyScreen) BlocksEsc() bool {
	if s.sessionID != "" {
		return true
	}
	switch s.phase {
	case phaseTimer, phaseApproach, phaseChallenges, phaseEditor, phasePreview, phaseSaving:
		return true
	}
	return false
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phasePlan:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start timer"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseAllDone, phaseDone:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case phaseTimer:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done studying"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseApproach, phaseChallenges:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseEditor:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open editor"},
			{Key: "Esc", Description: "Quit"},
		}
	case phasePreview:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "E", Description: "Edit again"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return nil
}

func (s *StudyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.confirming {
		return renderQuitConfirm(width, height)
	}
	switch s.phase {
	case phaseLoading:
		return renderLoading(width, height)
	case phasePlan:
		return s.renderPlan(width, height)
	case phaseAllDone:
		return renderAllDone(width, height)
	case phaseTimer:
		return s.renderTimer(width, height)
	case phaseApproach:
		return s.renderInput(width, height, "Approach used", "a brief description of how you solved it")
	case phaseChallenges:
		return s.renderInput(width, height, "Challenges faced", "what slowed you down, if anything")
	case phaseEditor:
		return s.renderEditorPrompt(width, height)
	case phasePreview:
		return s.renderPreview(width, height)
	case phaseSaving:
		return renderSaving(width, height)
	case phaseDone:
		return s.renderDone(width, height)
	}
	return ""
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		return s.handlePlanReady(msg)

	case sessionStartedMsg:
		if msg.Err == nil {
			s.sessionID = msg.ID
		}
		return s, nil

	case timerTickMsg:
		return s.handleTimerTick()

	case editorDoneMsg:
		return s.handleEditorDone(msg)

	case solveSavedMsg:
		return s.handleSolveSaved(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward to input while a text prompt is active.
	if (s.phase == phaseApproach || s.phase == phaseChallenges) && !s.confirming {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state - any key goes back.
	if s.errMsg != "" {
		return s.finish()
	}

	// Quit confirmation dialog.
	if s.confirming {
		switch key {
		case "y", "Y":
			s.confirming = false
			return s.finish()
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch s.phase {
	case phasePlan:
		if key == "enter" {
			return s.begin()
		}

	case phaseAllDone, phaseDone:
		return s.finish()

	case phaseTimer:
		switch key {
		case "enter":
			return s.stopTimer()
		case "esc":
			s.confirming = true
		}

	case phaseApproach:
		switch key {
		case "enter":
			s.approach = s.input.Value()
			return s.promptChallenges()
		case "esc":
			s.confirming = true
		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

	case phaseChallenges:
		switch key {
		case "enter":
			s.challenges = s.input.Value()
			s.phase = phaseEditor
		case "esc":
			s.confirming = true
		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

	case phaseEditor:
		switch key {
		case "enter":
			return s, s.openEditor(s.code)
		case "esc":
			s.confirming = true
		}

	case phasePreview:
		switch key {
		case "enter":
			s.phase = phaseSaving
			return s, s.saveSolve()
		case "e", "E":
			return s, s.openEditor(s.code)
		case "esc":
			s.confirming = true
		}
	}

	return s, nil
}

// loadPlan fetches the next problem and today's reviews off the Update loop.
func (s *StudyScreen) loadPlan() tea.Cmd {
	return func() tea.Msg {
		p, ok := s.tracker.NextProblem()
		return planReadyMsg{
			Problem: p,
			AllDone: !ok,
			Due:     s.tracker.DueReviews(),
		}
	}
}

func (s *StudyScreen) handlePlanReady(msg planReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.AllDone {
		s.phase = phaseAllDone
		return s, nil
	}
	s.problem = msg.Problem
	s.due = msg.Due
	s.phase = phasePlan
	return s, nil
}

// begin starts the timer and journals the session start.
func (s *StudyScreen) begin() (screen.Screen, tea.Cmd) {
	s.phase = phaseTimer
	s.startTime = time.Now()
	return s, tea.Batch(s.startSession(), tickCmd())
}

func (s *StudyScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		id, err := s.tracker.StartSession(context.Background())
		return sessionStartedMsg{ID: id, Err: err}
	}
}

func (s *StudyScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.phase != phaseTimer {
		return s, nil
	}
	s.studied = time.Since(s.startTime)
	return s, tickCmd()
}

func (s *StudyScreen) stopTimer() (screen.Screen, tea.Cmd) {
	s.studied = time.Since(s.startTime)
	return s.promptApproach()
}

func (s *StudyScreen) promptApproach() (screen.Screen, tea.Cmd) {
	s.phase = phaseApproach
	s.input = components.NewTextInput("e.g. hash map for O(1) lookups", false, 48)
	return s, s.input.Init()
}

func (s *StudyScreen) promptChallenges() (screen.Screen, tea.Cmd) {
	s.phase = phaseChallenges
	s.input = components.NewTextInput("e.g. off-by-one on the window bounds", false, 48)
	return s, s.input.Init()
}

// openEditor hands the terminal to the external editor. seed pre-fills
// the temp file so a re-edit picks up where the last round left off.
func (s *StudyScreen) openEditor(seed string) tea.Cmd {
	sess, err := editor.NewSession(s.cfg.Editor, seed)
	if err != nil {
		return func() tea.Msg { return editorDoneMsg{Err: err} }
	}
	s.editSess = sess
	return tea.ExecProcess(sess.Cmd(), func(err error) tea.Msg {
		return editorDoneMsg{Err: err}
	})
}

func (s *StudyScreen) handleEditorDone(msg editorDoneMsg) (screen.Screen, tea.Cmd) {
	if s.editSess == nil {
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}
	defer func() {
		s.editSess.Close()
		s.editSess = nil
	}()

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	code, err := s.editSess.Result()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.code = strings.TrimSpace(code)
	s.phase = phasePreview
	return s, nil
}

func (s *StudyScreen) saveSolve() tea.Cmd {
	req := tracker.SolveRequest{
		Problem:    s.problem.Slug,
		Minutes:    tracker.MinutesSpent(s.studied),
		Approach:   s.approach,
		Challenges: s.challenges,
		Code:       s.code,
		SessionID:  s.sessionID,
	}
	return func() tea.Msg {
		res, err := s.tracker.LogSolve(context.Background(), req)
		return solveSavedMsg{Result: res, Err: err}
	}
}

func (s *StudyScreen) handleSolveSaved(msg solveSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.result = msg.Result
	s.phase = phaseDone
	return s, nil
}

// finish closes the open session event, if any, and pops the screen.
func (s *StudyScreen) finish() (screen.Screen, tea.Cmd) {
	if s.sessionID != "" {
		solves := 0
		if s.result != nil {
			solves = 1
		}
		_ = s.tracker.EndSession(context.Background(), s.sessionID, solves, 0, s.studied)
		s.sessionID = ""
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
