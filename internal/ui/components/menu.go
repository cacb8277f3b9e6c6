package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu. Items are numbered; the digit keys
// jump straight to an entry, arrow keys walk it.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
		return m, nil
	case "enter":
		return m, m.activate(m.Selected)
	}

	// Digit shortcut: 1 activates the first item, 9 the ninth.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if i := int(key[0] - '1'); i < len(m.Items) {
			m.Selected = i
			return m, m.activate(i)
		}
	}

	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

// View renders the menu.
func (m Menu) View() string {
	selected := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	number := lipgloss.NewStyle().Foreground(theme.TextDim)
	label := lipgloss.NewStyle().Foreground(theme.Text)

	var s string
	for i, item := range m.Items {
		num := fmt.Sprintf("%d.", i+1)
		if i == m.Selected {
			s += selected.Render("  ▸ "+num+" "+item.Label) + "\n"
		} else {
			s += "    " + number.Render(num) + " " + label.Render(item.Label) + "\n"
		}
	}
	return s
}
