package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grind/internal/config"
	"github.com/abhisek/grind/internal/router"
	"github.com/abhisek/grind/internal/screen"
	"github.com/abhisek/grind/internal/screens/analytics"
	"github.com/abhisek/grind/internal/screens/browse"
	"github.com/abhisek/grind/internal/screens/goals"
	historyscreen "github.com/abhisek/grind/internal/screens/history"
	reviewscreen "github.com/abhisek/grind/internal/screens/reviews"
	"github.com/abhisek/grind/internal/screens/study"
	summaryscreen "github.com/abhisek/grind/internal/screens/summary"
	"github.com/abhisek/grind/internal/tracker"
	"github.com/abhisek/grind/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	tracker *tracker.Tracker
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tr *tracker.Tracker, cfg config.Config) *HomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factory()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "Study Session", Action: push(func() screen.Screen { return study.New(tr, cfg) })},
		{Label: "Spaced Repetition", Action: push(func() screen.Screen { return reviewscreen.New(tr, cfg) })},
		{Label: "Analytics", Action: push(func() screen.Screen { return analytics.New(tr) })},
		{Label: "Browse Problems", Action: push(func() screen.Screen { return browse.New(tr, cfg) })},
		{Label: "Goals", Action: push(func() screen.Screen { return goals.New(tr) })},
		{Label: "Summary", Action: push(func() screen.Screen { return summaryscreen.New(tr) })},
		{Label: "History", Action: push(func() screen.Screen { return historyscreen.New(tr) })},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		tracker: tr,
		menu:    components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}
