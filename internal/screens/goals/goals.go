package goals

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/screen"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/components"
	"github.com/abhisek/grind/internal/ui/layout"
	"github.com/abhisek/grind/internal/ui/theme"
)

// goalSavedMsg is sent when the new target has been persisted.
type goalSavedMsg struct {
	Goal int
	Err  error
}

// GoalsScreen shows the weekly target and takes a new one.
type GoalsScreen struct {
	tracker *tracker.Tracker
	input   components.TextInput
	saving  bool
	status  string
	errMsg  string
}

var _ screen.Screen = (*GoalsScreen)(nil)
var _ screen.KeyHintProvider = (*GoalsScreen)(nil)

// New creates a GoalsScreen backed by the tracker.
func New(tr *tracker.Tracker) *GoalsScreen {
	return &GoalsScreen{
		tracker: tr,
		input:   components.NewTextInput("problems per week", true, 4),
	}
}

func (g *GoalsScreen) Init() tea.Cmd {
	return g.input.Init()
}

func (g *GoalsScreen) Title() string {
	return "Goals"
}

func (g *GoalsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Set goal"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GoalsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case goalSavedMsg:
		g.saving = false
		if msg.Err != nil {
			g.errMsg = msg.Err.Error()
			return g, nil
		}
		g.status = fmt.Sprintf("Goal set to %d problems a week.", msg.Goal)
		g.errMsg = ""
		g.input.Reset()
		return g, nil

	case tea.KeyMsg:
		if g.saving {
			return g, nil
		}
		if msg.String() == "enter" {
			return g.submit()
		}
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}

	if !g.saving {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

// submit validates the typed target and persists it. An empty input
// keeps the current goal.
func (g *GoalsScreen) submit() (screen.Screen, tea.Cmd) {
	if g.input.Value() == "" {
		g.status = ""
		g.errMsg = ""
		return g, nil
	}

	n, err := g.input.NumericValue()
	if err != nil || n < 1 {
		g.input.Submit(false)
		g.errMsg = "The goal must be a number of at least 1."
		return g, nil
	}

	g.input.Submit(true)
	g.saving = true
	return g, func() tea.Msg {
		err := g.tracker.SetWeeklyGoal(context.Background(), n)
		return goalSavedMsg{Goal: n, Err: err}
	}
}

func (g *GoalsScreen) View(width, height int) string {
	o := g.tracker.Overview()

	goalLine := fmt.Sprintf("%s %s",
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Weekly goal:"),
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("%d problems", o.WeeklyGoal)),
	)

	progress := fmt.Sprintf("%d solved so far this week", o.SolvedThisWeek)
	progressStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if o.GoalMet() {
		progress = fmt.Sprintf("✔ %d solved, goal met!", o.SolvedThisWeek)
		progressStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	lines := []string{
		goalLine,
		progressStyle.Render(progress),
		"",
		g.input.View(),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Type a new target and press Enter."),
	}

	if g.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render(g.errMsg))
	}
	if g.status != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).Render("✔ "+g.status))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}
