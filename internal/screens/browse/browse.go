package browse

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/config"
	"github.com/abhisek/grind/internal/editor"
	"github.com/abhisek/grind/internal/screen"
	"github.com/abhisek/grind/internal/stats"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/components"
	"github.com/abhisek/grind/internal/ui/layout"
)

// phase tracks which level of the browser is showing.
type phase int

const (
	phaseCategories phase = iota
	phaseSearch
	phaseProblems
	phaseDetail
	phaseApproach
	phaseChallenges
	phaseEditor
	phaseSaving
)

// BrowseScreen walks the catalog: categories (or a name search), the
// problems inside, and a detail view with an edit flow.
type BrowseScreen struct {
	tracker *tracker.Tracker
	cfg     config.Config

	phase      phase
	categories []stats.GroupProgress
	catCursor  int
	listTitle  string
	problems   []catalog.Problem
	cursor     int
	current    catalog.Problem
	solution   string

	approach   string
	challenges string
	input      components.TextInput
	editSess   *editor.Session

	status string
	errMsg string
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)
var _ screen.EscGuard = (*BrowseScreen)(nil)

// New creates a BrowseScreen over the tracker's catalog.
func New(tr *tracker.Tracker, cfg config.Config) *BrowseScreen {
	return &BrowseScreen{
		tracker:    tr,
		cfg:        cfg,
		categories: tr.Overview().ByCategory,
	}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

// BlocksEsc keeps esc inside the screen below the category level, where
// it steps back up instead of popping the whole browser.
func (b *BrowseScreen) BlocksEsc() bool {
	return b.phase != phaseCategories
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	if b.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	switch b.phase {
	case phaseCategories:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseSearch:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Search"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseProblems:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Detail"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseDetail:
		return []layout.KeyHint{
			{Key: "E", Description: "Edit write-up"},
			{Key: "Esc", Description: "Back"},
		}
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

func (b *BrowseScreen) View(width, height int) string {
	if b.errMsg != "" {
		return renderError(width, height, b.errMsg)
	}
	switch b.phase {
	case phaseCategories:
		return b.renderCategories(width, height)
	case phaseSearch:
		return b.renderSearch(width, height)
	case phaseProblems:
		return b.renderProblems(width, height)
	case phaseDetail:
		return b.renderDetail(width, height)
	case phaseApproach:
		return b.renderInput(width, height, "New approach", "leave empty to keep the current notes")
	case phaseChallenges:
		return b.renderInput(width, height, "Challenges faced", "what was tricky this time")
	case phaseEditor:
		return b.renderEditorPrompt(width, height)
	case phaseSaving:
		return renderSaving(width, height)
	}
	return ""
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case solutionLoadedMsg:
		return b.handleSolutionLoaded(msg)

	case editorDoneMsg:
		return b.handleEditorDone(msg)

	case editSavedMsg:
		return b.handleEditSaved(msg)

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	// Forward to input while a text prompt is active.
	switch b.phase {
	case phaseSearch, phaseApproach, phaseChallenges:
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd
	}

	return b, nil
}

func (b *BrowseScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state - any key returns to the categories.
	if b.errMsg != "" {
		b.errMsg = ""
		b.phase = phaseCategories
		return b, nil
	}

	switch b.phase {
	case phaseCategories:
		switch key {
		case "up", "k":
			if b.catCursor > 0 {
				b.catCursor--
			}
		case "down", "j":
			if b.catCursor < len(b.categories) { // one past the end is the search row
				b.catCursor++
			}
		case "enter":
			if b.catCursor == len(b.categories) {
				return b.promptSearch()
			}
			return b.openCategory(b.categories[b.catCursor].Name)
		}

	case phaseSearch:
		switch key {
		case "enter":
			return b.runSearch(b.input.Value())
		case "esc":
			b.phase = phaseCategories
		default:
			var cmd tea.Cmd
			b.input, cmd = b.input.Update(msg)
			return b, cmd
		}

	case phaseProblems:
		switch key {
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.problems)-1 {
				b.cursor++
			}
		case "enter":
			if len(b.problems) > 0 {
				return b.openDetail(b.problems[b.cursor])
			}
		case "esc":
			b.phase = phaseCategories
		}

	case phaseDetail:
		switch key {
		case "e", "E":
			return b.promptApproach()
		case "esc":
			b.status = ""
			b.phase = phaseProblems
		}

	case phaseApproach:
		switch key {
		case "enter":
			b.approach = b.input.Value()
			return b.promptChallenges()
		case "esc":
			b.phase = phaseDetail
		default:
			var cmd tea.Cmd
			b.input, cmd = b.input.Update(msg)
			return b, cmd
		}

	case phaseChallenges:
		switch key {
		case "enter":
			b.challenges = b.input.Value()
			b.phase = phaseEditor
		case "esc":
			b.phase = phaseDetail
		default:
			var cmd tea.Cmd
			b.input, cmd = b.input.Update(msg)
			return b, cmd
		}

	case phaseEditor:
		switch key {
		case "enter":
			return b, b.openEditor()
		case "esc":
			b.phase = phaseDetail
		}
	}

	return b, nil
}

func (b *BrowseScreen) promptSearch() (screen.Screen, tea.Cmd) {
	b.phase = phaseSearch
	b.input = components.NewTextInput("problem name...", false, 40)
	return b, b.input.Init()
}

func (b *BrowseScreen) runSearch(query string) (screen.Screen, tea.Cmd) {
	query = strings.TrimSpace(query)
	b.listTitle = fmt.Sprintf("Search: %q", query)
	b.problems = b.tracker.FilterProblems(catalog.FilterOpts{Query: query})
	b.cursor = 0
	b.phase = phaseProblems
	return b, nil
}

func (b *BrowseScreen) openCategory(name string) (screen.Screen, tea.Cmd) {
	b.listTitle = name
	b.problems = b.tracker.FilterProblems(catalog.FilterOpts{Category: name})
	b.cursor = 0
	b.phase = phaseProblems
	return b, nil
}

// openDetail selects a problem and reads its write-up in the background.
func (b *BrowseScreen) openDetail(p catalog.Problem) (screen.Screen, tea.Cmd) {
	b.current = p
	b.solution = ""
	b.status = ""
	b.phase = phaseDetail
	return b, b.loadSolution(p.Slug)
}

func (b *BrowseScreen) loadSolution(slug string) tea.Cmd {
	return func() tea.Msg {
		text, err := b.tracker.ReadSolution(slug)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return solutionLoadedMsg{Slug: slug}
			}
			return solutionLoadedMsg{Slug: slug, Err: err}
		}
		return solutionLoadedMsg{Slug: slug, Text: text}
	}
}

func (b *BrowseScreen) handleSolutionLoaded(msg solutionLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Slug != b.current.Slug {
		return b, nil
	}
	if msg.Err != nil {
		b.solution = ""
		return b, nil
	}
	b.solution = strings.TrimSpace(msg.Text)
	return b, nil
}

func (b *BrowseScreen) promptApproach() (screen.Screen, tea.Cmd) {
	placeholder := b.current.Notes // hints at what an empty answer keeps
	if placeholder == "" {
		placeholder = "e.g. two pointers from both ends"
	}
	b.phase = phaseApproach
	b.input = components.NewTextInput(placeholder, false, 48)
	return b, b.input.Init()
}

func (b *BrowseScreen) promptChallenges() (screen.Screen, tea.Cmd) {
	b.phase = phaseChallenges
	b.input = components.NewTextInput("e.g. needed a hint for the invariant", false, 48)
	return b, b.input.Init()
}

// openEditor hands the terminal to the external editor, seeded with the
// existing write-up so the edit starts from the current document.
func (b *BrowseScreen) openEditor() tea.Cmd {
	sess, err := editor.NewSession(b.cfg.Editor, b.solution)
	if err != nil {
		return func() tea.Msg { return editorDoneMsg{Err: err} }
	}
	b.editSess = sess
	return tea.ExecProcess(sess.Cmd(), func(err error) tea.Msg {
		return editorDoneMsg{Err: err}
	})
}

func (b *BrowseScreen) handleEditorDone(msg editorDoneMsg) (screen.Screen, tea.Cmd) {
	if b.editSess == nil {
		if msg.Err != nil {
			b.errMsg = msg.Err.Error()
		}
		return b, nil
	}
	defer func() {
		b.editSess.Close()
		b.editSess = nil
	}()

	if msg.Err != nil {
		b.errMsg = msg.Err.Error()
		return b, nil
	}

	code, err := b.editSess.Result()
	if err != nil {
		b.errMsg = err.Error()
		return b, nil
	}

	b.phase = phaseSaving
	return b, b.saveEdit(strings.TrimSpace(code))
}

func (b *BrowseScreen) saveEdit(code string) tea.Cmd {
	slug := b.current.Slug
	approach := b.approach
	if approach == "" {
		approach = b.current.Notes // empty keeps the current notes
	}
	challenges := b.challenges
	return func() tea.Msg {
		upd, err := b.tracker.EditProblem(context.Background(), slug, approach, challenges, code)
		return editSavedMsg{Update: upd, Err: err}
	}
}

func (b *BrowseScreen) handleEditSaved(msg editSavedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		b.errMsg = msg.Err.Error()
		return b, nil
	}

	b.current = msg.Update.Problem
	for i := range b.problems {
		if b.problems[i].Slug == b.current.Slug {
			b.problems[i] = b.current
			break
		}
	}
	b.categories = b.tracker.Overview().ByCategory
	b.approach = ""
	b.challenges = ""
	b.status = fmt.Sprintf("%s updated", b.current.Name)
	b.phase = phaseDetail
	return b, b.loadSolution(b.current.Slug)
}
