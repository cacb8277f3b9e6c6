package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/journal"
	"github.com/abhisek/grind/internal/screen"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/layout"
	"github.com/abhisek/grind/internal/ui/theme"
)

// limitStep is how much +/- grows or shrinks the visible history.
const limitStep = 5

// HistoryScreen lists logged solves, newest first.
type HistoryScreen struct {
	tracker  *tracker.Tracker
	entries  []journal.Entry
	limit    int
	selected int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen showing the default number of entries.
func New(tr *tracker.Tracker) *HistoryScreen {
	s := &HistoryScreen{tracker: tr, limit: journal.DefaultHistoryLimit}
	s.reload()
	return s
}

func (s *HistoryScreen) reload() {
	entries := s.tracker.History(s.limit)
	s.entries = entries
	if s.selected >= len(entries) {
		s.selected = len(entries) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "+/-", Description: "More/fewer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "+", "=":
			s.limit += limitStep
			s.reload()
		case "-":
			if s.limit > limitStep {
				s.limit -= limitStep
				s.reload()
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No solves logged yet. Start a study session!")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("Problem Solving History (last %d)", s.limit)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header)))
	b.WriteString("\n\n")

	start, end := listWindow(len(s.entries), s.selected, height-8)
	if start > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  ↑ %d more", start))))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		e := s.entries[i]
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s: %s - %d minutes",
			prefix, e.Date.Format("2006-01-02"), e.Problem, e.Minutes)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(s.entries) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  ↓ %d more", len(s.entries)-end))))
		b.WriteString("\n")
	}

	return b.String()
}

// listWindow clamps the visible slice around the cursor.
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
