package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/stats"
	"github.com/abhisek/grind/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const homeTitleFull = ` ██████╗ ██████╗ ██╗███╗   ██╗██████╗
██╔════╝ ██╔══██╗██║████╗  ██║██╔══██╗
██║  ███╗██████╔╝██║██╔██╗ ██║██║  ██║
██║   ██║██╔══██╗██║██║╚██╗██║██║  ██║
╚██████╔╝██║  ██║██║██║ ╚████║██████╔╝
 ╚═════╝ ╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝╚═════╝`

const homeTitleCompact = "G · R · I · N · D"

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)
	o := h.tracker.Overview()

	sections := []string{
		renderTitle(cw, compact),
		renderStatCard(o, cw, compact),
		renderMenu(h.menu.View(), cw),
		renderDueLine(o.DueToday, cw),
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 56 {
		w = 56
	}
	if w < 24 {
		w = 24
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := homeTitleFull
	if compact || cw < 40 {
		title = homeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatCard renders the dashboard stats in a bordered box matching
// the content width.
func renderStatCard(o stats.Overview, cw int, compact bool) string {
	solvedStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dueStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	due := dimStyle.Render("⏰ none due")
	if o.DueToday > 0 {
		due = dueStyle.Render(fmt.Sprintf("⏰ %d due", o.DueToday))
	}

	sep := "  "
	if compact {
		sep = " "
	}
	line := strings.Join([]string{
		solvedStyle.Render(fmt.Sprintf("✔ %d/%d", o.Completed, o.TotalProblems)),
		streakStyle.Render(fmt.Sprintf("★ %d day", o.Streak)),
		due,
		dimStyle.Render("◷ " + formatStudyTime(o.TotalMinutes)),
	}, sep)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderMenu centers the menu block at the content width.
func renderMenu(menu string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.TrimRight(menu, "\n"))
}

// renderDueLine nudges toward the review queue when something is waiting.
func renderDueLine(due, cw int) string {
	var line string
	if due > 0 {
		line = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%d review(s) waiting in Spaced Repetition", due))
	} else {
		line = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No reviews due today")
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(line)
}

// formatStudyTime renders accumulated minutes as "3h 25m".
func formatStudyTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
