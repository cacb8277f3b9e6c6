package browse

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/editor"
	"github.com/abhisek/grind/internal/ui/components"
	"github.com/abhisek/grind/internal/ui/theme"
)

// renderCategories renders the category list with per-category progress,
// plus the search row at the bottom.
func (b *BrowseScreen) renderCategories(width, height int) string {
	lines := []string{
		lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("Browse by category"),
		"",
	}

	for i, g := range b.categories {
		marker := "  "
		name := lipgloss.NewStyle().Foreground(theme.Text).Render(g.Name)
		if i == b.catCursor {
			marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
			name = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(g.Name)
		}
		count := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d/%d", g.Completed, g.Total))
		lines = append(lines, fmt.Sprintf("%s%s %s", marker, name, count))
	}

	searchLabel := "Search by name"
	if b.catCursor == len(b.categories) {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")+
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(searchLabel))
	} else {
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.Secondary).Render(searchLabel))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderSearch renders the name query prompt.
func (b *BrowseScreen) renderSearch(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Search problems"),
		"",
		b.input.View(),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("matches on any part of the name"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderProblems renders the problem list for a category or search.
func (b *BrowseScreen) renderProblems(width, height int) string {
	lines := []string{
		lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("%s (%d)", b.listTitle, len(b.problems))),
		"",
	}

	if len(b.problems) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No problems matched."))
	} else {
		start, end := listWindow(len(b.problems), b.cursor, height-8)
		if start > 0 {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("  ↑ %d more", start)))
		}
		for i := start; i < end; i++ {
			lines = append(lines, b.renderProblemRow(b.problems[i], i == b.cursor))
		}
		if hidden := len(b.problems) - end; hidden > 0 {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("  ↓ %d more", hidden)))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (b *BrowseScreen) renderProblemRow(p catalog.Problem, selected bool) string {
	marker := "  "
	name := lipgloss.NewStyle().Foreground(theme.Text).Render(p.Name)
	if selected {
		marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
		name = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(p.Name)
	}

	return fmt.Sprintf("%s%s %s %s",
		marker,
		name,
		lipgloss.NewStyle().Foreground(theme.DifficultyColor(p.DifficultyLabel())).Render(p.DifficultyLabel()),
		lipgloss.NewStyle().Foreground(theme.StatusColor(p.Status)).Render(p.Status),
	)
}

// renderDetail renders every stored field plus the write-up preview.
func (b *BrowseScreen) renderDetail(width, height int) string {
	p := b.current

	var lines []string
	if b.status != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Success).
			Render("✔ "+b.status))
		lines = append(lines, "")
	}

	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(p.Name),
		fmt.Sprintf("%s %s %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Category+" ·"),
			lipgloss.NewStyle().Foreground(theme.DifficultyColor(p.DifficultyLabel())).Render(p.DifficultyLabel()),
			lipgloss.NewStyle().Foreground(theme.StatusColor(p.Status)).Render("· "+p.Status),
		),
	)
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

	if b.solution == "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No write-up on disk yet."))
	} else {
		boxWidth := width - 10
		if boxWidth > 64 {
			boxWidth = 64
		}
		maxLines := height - 12
		if maxLines < 4 {
			maxLines = 4
		}
		box := components.NewPreviewBox("Write-up", b.solution, boxWidth, maxLines)
		lines = append(lines, box.View())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderInput renders a single-line prompt phase.
func (b *BrowseScreen) renderInput(width, height int, title, hint string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title),
		"",
		b.input.View(),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(hint),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderEditorPrompt tells the user the editor is about to take over.
func (b *BrowseScreen) renderEditorPrompt(width, height int) string {
	ed := editor.Command(b.cfg.Editor)

	note := "Starts from an empty file."
	if b.solution != "" {
		note = "Starts from the current write-up."
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Edit write-up"),
		"",
		fmt.Sprintf("%s %s",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press Enter to open"),
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(ed),
		),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(note),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
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

// listWindow clamps a cursor-centered window of max rows onto a list.
func listWindow(length, cursor, max int) (start, end int) {
	if max < 3 {
		max = 3
	}
	if length <= max {
		return 0, length
	}
	start = cursor - max/2
	if start < 0 {
		start = 0
	}
	end = start + max
	if end > length {
		end = length
		start = end - max
	}
	return start, end
}
