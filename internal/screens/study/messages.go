package study

import (
	"time"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/tracker"
)

// planReadyMsg is sent when the study plan has been loaded.
type planReadyMsg struct {
	Problem catalog.Problem
	AllDone bool
	Due     []tracker.ReviewItem
}

// sessionStartedMsg is sent once the session start event is journaled.
type sessionStartedMsg struct {
	ID  string
	Err error
}

// timerTickMsg is sent every second while the study timer runs.
type timerTickMsg time.Time

// editorDoneMsg is sent when the external editor process exits.
type editorDoneMsg struct {
	Err error
}

// solveSavedMsg is sent when the solve has been written through the tracker.
type solveSavedMsg struct {
	Result *tracker.SolveResult
	Err    error
}
