package reviews

import (
	"time"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/tracker"
)

// listReadyMsg is sent when the review queue has been loaded.
type listReadyMsg struct {
	Due      []tracker.ReviewItem
	Upcoming []tracker.ReviewItem
}

// solutionLoadedMsg is sent when the selected problem's write-up has
// been read from disk. Text is empty when no write-up exists yet.
type solutionLoadedMsg struct {
	Text string
	Err  error
}

// reviewedMsg is sent when a mark-reviewed round-trip finishes.
type reviewedMsg struct {
	Problem catalog.Problem
	Next    time.Time
	Err     error
}

// editorDoneMsg is sent when the external editor process exits.
type editorDoneMsg struct {
	Err error
}

// updateSavedMsg is sent when an update-solution round-trip finishes.
type updateSavedMsg struct {
	Update *tracker.SolutionUpdate
	Err    error
}
