package browse

import "github.com/abhisek/grind/internal/tracker"

// solutionLoadedMsg is sent when the selected problem's write-up has
// been read from disk. Text is empty when no write-up exists yet.
type solutionLoadedMsg struct {
	Slug string
	Text string
	Err  error
}

// editorDoneMsg is sent when the external editor process exits.
type editorDoneMsg struct {
	Err error
}

// editSavedMsg is sent when an edit round-trip finishes.
type editSavedMsg struct {
	Update *tracker.SolutionUpdate
	Err    error
}
