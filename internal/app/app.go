package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grind/internal/config"
	"github.com/abhisek/grind/internal/router"
	"github.com/abhisek/grind/internal/screen"
	"github.com/abhisek/grind/internal/screens/home"
	"github.com/abhisek/grind/internal/screens/study"
	"github.com/abhisek/grind/internal/screens/welcome"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/layout"
)

// Options carries the services the screens need.
type Options struct {
	Tracker *tracker.Tracker
	Config  config.Config
	Version string

	// StartInStudy opens the study session directly, skipping the
	// welcome splash (grind study).
	StartInStudy bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *tracker.Tracker
	width   int
	height  int
}

// newAppModel builds the screen stack: the welcome splash that hands
// over to home, or home with the study session already on top.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Tracker, opts.Config)
	}

	var r *router.Router
	if opts.StartInStudy {
		r = router.New(homeFactory())
		r.Push(study.New(opts.Tracker, opts.Config))
	} else {
		r = router.New(welcome.New(homeFactory, opts.Version))
	}

	return AppModel{
		router:  r,
		tracker: opts.Tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Screens mid-flow (an editor hop, an unsaved solve)
				// intercept esc themselves; anything else pops.
				if guard, ok := m.router.Active().(screen.EscGuard); ok && guard.BlocksEsc() {
					break
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders frameless.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) headerStats() layout.HeaderStats {
	if m.tracker == nil {
		return layout.HeaderStats{}
	}
	return layout.HeaderStats{
		Solved: m.tracker.CompletedCount(),
		Streak: m.tracker.Streak(),
		DueNow: len(m.tracker.DueReviews()),
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
