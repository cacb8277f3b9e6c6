package reviews

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/editor"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/components"
	"github.com/abhisek/grind/internal/ui/theme"
)

// maxUpcomingShown caps the schedule preview on the empty state.
const maxUpcomingShown = 5

// renderList renders the due queue, or the empty state with the
// upcoming schedule.
func (r *ReviewsScreen) renderList(width, height int) string {
	var lines []string

	if r.status != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Success).
			Render("✔ "+r.status))
		lines = append(lines, "")
	}

	if len(r.due) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("Nothing due today."))
		lines = append(lines, "")
		lines = append(lines, r.renderUpcoming()...)
	} else {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("Due for review (%d)", len(r.due))))
		lines = append(lines, "")
		for i, item := range r.due {
			lines = append(lines, r.renderItem(item, i == r.cursor))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (r *ReviewsScreen) renderItem(item tracker.ReviewItem, selected bool) string {
	urgency := item.Urgency.String()

	name := lipgloss.NewStyle().Foreground(theme.Text).Render(item.Problem.Name)
	marker := "  "
	if selected {
		name = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(item.Problem.Name)
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
	}

	return fmt.Sprintf("%s%s %s %s",
		marker,
		name,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("("+item.Problem.Category+")"),
		lipgloss.NewStyle().Foreground(theme.UrgencyColor(urgency)).Render(urgency),
	)
}

func (r *ReviewsScreen) renderUpcoming() []string {
	if len(r.upcoming) == 0 {
		return []string{lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No reviews scheduled yet. Log some solves first.")}
	}

	lines := []string{lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render("Coming up")}

	shown := r.upcoming
	if len(shown) > maxUpcomingShown {
		shown = shown[:maxUpcomingShown]
	}
	for _, item := range shown {
		lines = append(lines, fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Due.Format("Jan 2")+" ·"),
			lipgloss.NewStyle().Foreground(theme.Text).Render(item.Problem.Name),
		))
	}
	if hidden := len(r.upcoming) - len(shown); hidden > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("+ %d more", hidden)))
	}
	return lines
}

// renderDetail renders the selected problem with its stored notes and
// whether a write-up exists.
func (r *ReviewsScreen) renderDetail(width, height int) string {
	p := r.current.Problem
	urgency := r.current.Urgency.String()

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(p.Name),
		fmt.Sprintf("%s %s %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Category+" ·"),
			lipgloss.NewStyle().Foreground(theme.DifficultyColor(p.DifficultyLabel())).Render(p.DifficultyLabel()),
			lipgloss.NewStyle().Foreground(theme.UrgencyColor(urgency)).Render("· "+urgency),
		),
	}
	if p.Link != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Link))
	}
	lines = append(lines, "")

	notes := p.Notes
	if notes == "" {
		notes = "(none)"
	}
	lines = append(lines, fmt.Sprintf("%s %s",
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("Notes:"),
		lipgloss.NewStyle().Foreground(theme.Text).Render(notes),
	))
	lines = append(lines, "")

	if r.solution == "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No write-up on disk yet."))
	} else {
		boxWidth := width - 10
		if boxWidth > 64 {
			boxWidth = 64
		}
		box := components.NewPreviewBox("Write-up", r.solution, boxWidth, 6)
		lines = append(lines, box.View())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderSolution renders the stored write-up at full height.
func (r *ReviewsScreen) renderSolution(width, height int) string {
	boxWidth := width - 8
	if boxWidth > 76 {
		boxWidth = 76
	}
	maxLines := height - 4
	if maxLines < 4 {
		maxLines = 4
	}

	box := components.NewPreviewBox(r.current.Problem.Name, r.solution, boxWidth, maxLines)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.View())
}

// renderInput renders a single-line prompt phase.
func (r *ReviewsScreen) renderInput(width, height int, title, hint string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title),
		"",
		r.input.View(),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(hint),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderEditorPrompt tells the user the editor is about to take over.
func (r *ReviewsScreen) renderEditorPrompt(width, height int) string {
	ed := editor.Command(r.cfg.Editor)

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Rewrite solution"),
		"",
		fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press Enter to open"),
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(ed),
		),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("The saved file replaces the old write-up."),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading the review queue...")
}

// renderSaving renders the async-save state.
func renderSaving(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Saving...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
