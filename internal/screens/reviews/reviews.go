package reviews

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grind/internal/config"
	"github.com/abhisek/grind/internal/editor"
	"github.com/abhisek/grind/internal/screen"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/components"
	"github.com/abhisek/grind/internal/ui/layout"
)

// phase tracks where the review flow currently is.
type phase int

const (
	phaseLoading phase = iota
	phaseList
	phaseDetail
	phaseSolution
	phaseApproach
	phaseChallenges
	phaseEditor
	phaseSaving
)

// ReviewsScreen works through today's review queue: pick a problem,
// re-read the old write-up, then mark it reviewed, rewrite the solution
// or skip it.
type ReviewsScreen struct {
	tracker *tracker.Tracker
	cfg     config.Config

	phase    phase
	due      []tracker.ReviewItem
	upcoming []tracker.ReviewItem
	cursor   int
	current  tracker.ReviewItem
	solution string

	approach   string
	challenges string
	input      components.TextInput
	editSess   *editor.Session

	status string
	errMsg string
}

var _ screen.Screen = (*ReviewsScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewsScreen)(nil)
var _ screen.EscGuard = (*ReviewsScreen)(nil)

// New creates a ReviewsScreen backed by the tracker.
func New(tr *tracker.Tracker, cfg config.Config) *ReviewsScreen {
	return &ReviewsScreen{
		tracker: tr,
		cfg:     cfg,
	}
}

func (r *ReviewsScreen) Init() tea.Cmd {
	return r.loadList()
}

func (r *ReviewsScreen) Title() string {
	return "Reviews"
}

// BlocksEsc keeps esc inside the screen everywhere but the top-level
// list: detail and the update flow use it to step back one level.
func (r *ReviewsScreen) BlocksEsc() bool {
	return r.phase != phaseLoading && r.phase != phaseList
}

func (r *ReviewsScreen) KeyHints() []layout.KeyHint {
	if r.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	switch r.phase {
	case phaseList:
		if len(r.due) == 0 {
			return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Review"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseDetail:
		hints := []layout.KeyHint{
			{Key: "M", Description: "Mark reviewed"},
			{Key: "U", Description: "Update solution"},
		}
		if r.solution != "" {
			hints = append(hints, layout.KeyHint{Key: "V", Description: "View write-up"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Skip"})
	case phaseSolution:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case phaseApproach, phaseChallenges:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseEditor:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open editor"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return nil
}

func (r *ReviewsScreen) View(width, height int) string {
	if r.errMsg != "" {
		return renderError(width, height, r.errMsg)
	}
	switch r.phase {
	case phaseLoading:
		return renderLoading(width, height)
	case phaseList:
		return r.renderList(width, height)
	case phaseDetail:
		return r.renderDetail(width, height)
	case phaseSolution:
		return r.renderSolution(width, height)
	case phaseApproach:
		return r.renderInput(width, height, "Approach used", "how you'd solve it today")
	case phaseChallenges:
		return r.renderInput(width, height, "Challenges faced", "what still trips you up")
	case phaseEditor:
		return r.renderEditorPrompt(width, height)
	case phaseSaving:
		return renderSaving(width, height)
	}
	return ""
}

func (r *ReviewsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case listReadyMsg:
		return r.handleListReady(msg)

	case solutionLoadedMsg:
		return r.handleSolutionLoaded(msg)

	case reviewedMsg:
		return r.handleReviewed(msg)

	case editorDoneMsg:
		return r.handleEditorDone(msg)

	case updateSavedMsg:
		return r.handleUpdateSaved(msg)

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	// Forward to input while a text prompt is active.
	if r.phase == phaseApproach || r.phase == phaseChallenges {
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		return r, cmd
	}

	return r, nil
}

func (r *ReviewsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state - any key returns to the list.
	if r.errMsg != "" {
		r.errMsg = ""
		r.phase = phaseLoading
		return r, r.loadList()
	}

	switch r.phase {
	case phaseList:
		switch key {
		case "up", "k":
			if r.cursor > 0 {
				r.cursor--
			}
		case "down", "j":
			if r.cursor < len(r.due)-1 {
				r.cursor++
			}
		case "enter":
			if len(r.due) > 0 {
				return r.openDetail(r.due[r.cursor])
			}
		}

	case phaseDetail:
		switch key {
		case "m", "M":
			r.phase = phaseSaving
			return r, r.markReviewed()
		case "u", "U":
			return r.promptApproach()
		case "v", "V":
			if r.solution != "" {
				r.phase = phaseSolution
			}
		case "s", "S", "esc":
			return r.backToList()
		}

	case phaseSolution:
		r.phase = phaseDetail

	case phaseApproach:
		switch key {
		case "enter":
			r.approach = r.input.Value()
			return r.promptChallenges()
		case "esc":
			r.phase = phaseDetail
		default:
			var cmd tea.Cmd
			r.input, cmd = r.input.Update(msg)
			return r, cmd
		}

	case phaseChallenges:
		switch key {
		case "enter":
			r.challenges = r.input.Value()
			r.phase = phaseEditor
		case "esc":
			r.phase = phaseDetail
		default:
			var cmd tea.Cmd
			r.input, cmd = r.input.Update(msg)
			return r, cmd
		}

	case phaseEditor:
		switch key {
		case "enter":
			return r, r.openEditor()
		case "esc":
			r.phase = phaseDetail
		}
	}

	return r, nil
}

// loadList fetches the due and upcoming queues off the Update loop.
func (r *ReviewsScreen) loadList() tea.Cmd {
	return func() tea.Msg {
		return listReadyMsg{
			Due:      r.tracker.DueReviews(),
			Upcoming: r.tracker.UpcomingReviews(),
		}
	}
}

func (r *ReviewsScreen) handleListReady(msg listReadyMsg) (screen.Screen, tea.Cmd) {
	r.due = msg.Due
	r.upcoming = msg.Upcoming
	if r.cursor >= len(r.due) {
		r.cursor = len(r.due) - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
	r.phase = phaseList
	return r, nil
}

// openDetail selects an item and reads its write-up in the background.
func (r *ReviewsScreen) openDetail(item tracker.ReviewItem) (screen.Screen, tea.Cmd) {
	r.current = item
	r.solution = ""
	r.phase = phaseDetail
	return r, func() tea.Msg {
		text, err := r.tracker.ReadSolution(item.Problem.Slug)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return solutionLoadedMsg{}
			}
			return solutionLoadedMsg{Err: err}
		}
		return solutionLoadedMsg{Text: text}
	}
}

func (r *ReviewsScreen) handleSolutionLoaded(msg solutionLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// A missing or unreadable write-up shouldn't block the review.
		r.solution = ""
		return r, nil
	}
	r.solution = strings.TrimSpace(msg.Text)
	return r, nil
}

func (r *ReviewsScreen) backToList() (screen.Screen, tea.Cmd) {
	r.phase = phaseList
	r.approach = ""
	r.challenges = ""
	return r, nil
}

func (r *ReviewsScreen) markReviewed() tea.Cmd {
	item := r.current
	return func() tea.Msg {
		next, err := r.tracker.MarkReviewed(context.Background(), item.Problem.Slug, item.Due)
		return reviewedMsg{Problem: item.Problem, Next: next, Err: err}
	}
}

func (r *ReviewsScreen) handleReviewed(msg reviewedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		r.errMsg = msg.Err.Error()
		return r, nil
	}
	r.status = fmt.Sprintf("%s reviewed, next on %s", msg.Problem.Name, msg.Next.Format("Jan 2"))
	r.phase = phaseLoading
	return r, r.loadList()
}

func (r *ReviewsScreen) promptApproach() (screen.Screen, tea.Cmd) {
	r.phase = phaseApproach
	r.input = components.NewTextInput("e.g. sorted both strings and compared", false, 48)
	return r, r.input.Init()
}

func (r *ReviewsScreen) promptChallenges() (screen.Screen, tea.Cmd) {
	r.phase = phaseChallenges
	r.input = components.NewTextInput("e.g. forgot the unicode case", false, 48)
	return r, r.input.Init()
}

// openEditor hands the terminal to the external editor on an empty
// scratch file.
func (r *ReviewsScreen) openEditor() tea.Cmd {
	sess, err := editor.NewSession(r.cfg.Editor, "")
	if err != nil {
		return func() tea.Msg { return editorDoneMsg{Err: err} }
	}
	r.editSess = sess
	return tea.ExecProcess(sess.Cmd(), func(err error) tea.Msg {
		return editorDoneMsg{Err: err}
	})
}

func (r *ReviewsScreen) handleEditorDone(msg editorDoneMsg) (screen.Screen, tea.Cmd) {
	if r.editSess == nil {
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
		}
		return r, nil
	}
	defer func() {
		r.editSess.Close()
		r.editSess = nil
	}()

	if msg.Err != nil {
		r.errMsg = msg.Err.Error()
		return r, nil
	}

	code, err := r.editSess.Result()
	if err != nil {
		r.errMsg = err.Error()
		return r, nil
	}

	r.phase = phaseSaving
	return r, r.saveUpdate(strings.TrimSpace(code))
}

func (r *ReviewsScreen) saveUpdate(code string) tea.Cmd {
	item := r.current
	approach, challenges := r.approach, r.challenges
	return func() tea.Msg {
		upd, err := r.tracker.UpdateSolution(context.Background(), item.Problem.Slug, item.Due, approach, challenges, code)
		return updateSavedMsg{Update: upd, Err: err}
	}
}

func (r *ReviewsScreen) handleUpdateSaved(msg updateSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		r.errMsg = msg.Err.Error()
		return r, nil
	}
	r.status = fmt.Sprintf("%s updated, next on %s", msg.Update.Problem.Name, msg.Update.NextReview.Format("Jan 2"))
	r.approach = ""
	r.challenges = ""
	r.phase = phaseLoading
	return r, r.loadList()
}
