package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/editor"
	"github.com/abhisek/grind/internal/ui/components"
	"github.com/abhisek/grind/internal/ui/theme"
)

// maxDueOnPlan caps the review list on the plan view.
const maxDueOnPlan = 5

// renderPlan renders today's plan: the next problem and the reviews due.
func (s *StudyScreen) renderPlan(width, height int) string {
	var lines []string

	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Today's plan"))
	lines = append(lines, "")

	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(s.problem.Name))
	lines = append(lines, renderProblemMeta(s.problem.Category, s.problem.DifficultyLabel()))
	if s.problem.Link != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(s.problem.Link))
	}
	lines = append(lines, "")

	if len(s.due) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No reviews due today."))
	} else {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("Due for review"))
		shown := s.due
		if len(shown) > maxDueOnPlan {
			shown = shown[:maxDueOnPlan]
		}
		for _, item := range shown {
			urgency := item.Urgency.String()
			lines = append(lines, fmt.Sprintf("%s %s %s",
				lipgloss.NewStyle().Foreground(theme.Text).Render("• "+item.Problem.Name),
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("("+item.Problem.Category+")"),
				lipgloss.NewStyle().Foreground(theme.UrgencyColor(urgency)).Render(urgency),
			))
		}
		if hidden := len(s.due) - len(shown); hidden > 0 {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("+ %d more in Spaced Repetition", hidden)))
		}
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Press Enter to start the study timer."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderTimer renders the running clock.
func (s *StudyScreen) renderTimer(width, height int) string {
	mins := int(s.studied.Minutes())
	secs := int(s.studied.Seconds()) % 60

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.problem.Name),
		renderProblemMeta(s.problem.Category, s.problem.DifficultyLabel()),
		"",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d:%02d", mins, secs)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("studying"),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press Enter when you're done."),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderInput renders a single-line prompt phase.
func (s *StudyScreen) renderInput(width, height int, title, hint string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title),
		"",
		s.input.View(),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(hint),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderEditorPrompt tells the user what is about to happen to their
// terminal before the editor takes over.
func (s *StudyScreen) renderEditorPrompt(width, height int) string {
	ed := editor.Command(s.cfg.Editor)

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Solution capture"),
		"",
		fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press Enter to open"),
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(ed),
		),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Paste your solution, save and exit."),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderPreview shows the captured code before it is saved.
func (s *StudyScreen) renderPreview(width, height int) string {
	body := s.code
	if body == "" {
		body = "(nothing captured)"
	}

	boxWidth := width - 8
	if boxWidth > 72 {
		boxWidth = 72
	}
	maxLines := height - 8
	if maxLines < 4 {
		maxLines = 4
	}

	box := components.NewPreviewBox("Solution", body, boxWidth, maxLines)

	content := lipgloss.JoinVertical(lipgloss.Center,
		box.View(),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Enter to save, E to edit again."),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderDone renders the post-save card.
func (s *StudyScreen) renderDone(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("✔ Solve logged"),
		"",
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(res.Problem.Name),
		lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("You studied for %d minutes.", res.Entry.Minutes)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d day streak", res.Streak)),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Write-up: " + res.SolutionPath),
	}

	if len(res.NextReviews) > 0 {
		dates := make([]string, len(res.NextReviews))
		for i, d := range res.NextReviews {
			dates[i] = d.Format("Jan 2")
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Reviews: "+strings.Join(dates, ", ")))
	}

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Press any key to continue."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderAllDone renders the everything-solved state.
func renderAllDone(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("All problems completed!"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render("Every problem in the catalog is solved."),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Add rows to the CSV to keep going."),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press any key to go back."),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End the study session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The solve in progress won't be logged."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your plan...")
}

// renderSaving renders the async-save state.
func renderSaving(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Saving your progress...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

// renderProblemMeta renders "category · difficulty" with the difficulty colored.
func renderProblemMeta(category, difficulty string) string {
	return fmt.Sprintf("%s %s",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(category+" ·"),
		lipgloss.NewStyle().Foreground(theme.DifficultyColor(difficulty)).Render(difficulty),
	)
}
