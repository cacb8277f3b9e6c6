package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/ui/theme"
)

// PreviewBox displays a block of text inside a bordered box, truncated
// to a maximum number of lines. Used for solution previews.
type PreviewBox struct {
	Title    string
	Body     string
	Width    int
	MaxLines int
}

// NewPreviewBox creates a preview box. maxLines <= 0 disables truncation.
func NewPreviewBox(title, body string, width, maxLines int) PreviewBox {
	return PreviewBox{
		Title:    title,
		Body:     body,
		Width:    width,
		MaxLines: maxLines,
	}
}

// View renders the preview box.
func (p PreviewBox) View() string {
	body := strings.TrimRight(p.Body, "\n")
	lines := strings.Split(body, "\n")

	hidden := 0
	if p.MaxLines > 0 && len(lines) > p.MaxLines {
		hidden = len(lines) - p.MaxLines
		lines = lines[:p.MaxLines]
	}

	inner := p.Width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	if p.Title != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(p.Title))
		b.WriteString("\n")
	}

	for i, line := range lines {
		if lipgloss.Width(line) > inner {
			line = truncateLine(line, inner)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		if i < len(lines)-1 || hidden > 0 {
			b.WriteString("\n")
		}
	}

	if hidden > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("… %d more lines", hidden)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(p.Width - 2).
		Render(b.String())
}

func truncateLine(line string, width int) string {
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
