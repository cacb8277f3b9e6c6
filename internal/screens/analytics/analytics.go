package analytics

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grind/internal/screen"
	"github.com/abhisek/grind/internal/stats"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/components"
	"github.com/abhisek/grind/internal/ui/theme"

	"charm.land/lipgloss/v2"
)

// AnalyticsScreen shows the aggregate picture: headline numbers plus
// per-category and per-difficulty completion bars.
type AnalyticsScreen struct {
	overview stats.Overview
}

var _ screen.Screen = (*AnalyticsScreen)(nil)

// New computes the overview once; the screen is a static snapshot.
func New(tr *tracker.Tracker) *AnalyticsScreen {
	return &AnalyticsScreen{overview: tr.Overview()}
}

func (a *AnalyticsScreen) Init() tea.Cmd {
	return nil
}

func (a *AnalyticsScreen) Title() string {
	return "Analytics"
}

func (a *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AnalyticsScreen) View(width, height int) string {
	o := a.overview

	barWidth := width - 30
	if barWidth > 44 {
		barWidth = 44
	}
	if barWidth < 16 {
		barWidth = 16
	}

	lines := []string{
		fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(
				fmt.Sprintf("✔ %d/%d completed", o.Completed, o.TotalProblems)),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("(%.1f%%)", o.Percent())),
		),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("★ %d day streak", o.Streak)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("◷ %d minutes studied", o.TotalMinutes)),
		a.renderDueLine(),
		"",
	}

	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Category Progress"))
	lines = append(lines, renderGroupBars(o.ByCategory, barWidth)...)
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Difficulty Progress"))
	lines = append(lines, renderGroupBars(o.ByDifficulty, barWidth)...)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *AnalyticsScreen) renderDueLine() string {
	if a.overview.DueToday == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("⏰ nothing due today")
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Render(
		fmt.Sprintf("⏰ %d due today", a.overview.DueToday))
}

// renderGroupBars renders one aligned progress bar per group.
func renderGroupBars(groups []stats.GroupProgress, barWidth int) []string {
	longest := 0
	for _, g := range groups {
		if len(g.Name) > longest {
			longest = len(g.Name)
		}
	}

	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		label := fmt.Sprintf("%-*s %2d/%-2d", longest, g.Name, g.Completed, g.Total)
		bar := components.NewProgressBar(label, g.Percent()/100, true, barWidth+longest)
		lines = append(lines, bar.View())
	}
	return lines
}
