package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/journal"
	"github.com/abhisek/grind/internal/screen"
	"github.com/abhisek/grind/internal/stats"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/components"
	"github.com/abhisek/grind/internal/ui/theme"
)

// SummaryScreen shows the week at a glance: goal progress, the most
// recent solves and overall completion.
type SummaryScreen struct {
	overview stats.Overview
	recent   []journal.Entry
}

var _ screen.Screen = (*SummaryScreen)(nil)

// New creates a SummaryScreen from a snapshot of the tracker. The
// screen is static; reopening it refreshes the numbers.
func New(tr *tracker.Tracker) *SummaryScreen {
	return &SummaryScreen{
		overview: tr.Overview(),
		recent:   tr.Recent(journal.RecentActivityCount),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	o := s.overview

	var lines []string

	// Weekly goal.
	goalStyle := lipgloss.NewStyle().Foreground(theme.Text)
	goalLine := fmt.Sprintf("Weekly Goal: %d/%d problems solved", o.SolvedThisWeek, o.WeeklyGoal)
	if o.GoalMet() {
		goalStyle = goalStyle.Foreground(theme.Success).Bold(true)
		goalLine += " ✔"
	}
	lines = append(lines, goalStyle.Render(goalLine), "")

	percent := 0.0
	if o.WeeklyGoal > 0 {
		percent = float64(o.SolvedThisWeek) / float64(o.WeeklyGoal)
	}
	if percent > 1 {
		percent = 1
	}
	bar := components.NewProgressBar("", percent, true, min(width-16, 48))
	lines = append(lines, bar.View(), "")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Recent activity.
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent Activity"),
		divider,
		"")
	if len(s.recent) == 0 {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No solves logged yet."))
	}
	for _, e := range s.recent {
		line := fmt.Sprintf("%s: Solved %s (%d minutes)",
			e.Date.Format("2006-01-02"), e.Problem, e.Minutes)
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	}
	lines = append(lines, "", divider, "")

	// Overall completion.
	overall := fmt.Sprintf("Overall Progress: %d/%d (%.1f%%)",
		o.Completed, o.TotalProblems, o.Percent())
	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(overall))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}
