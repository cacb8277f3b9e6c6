package tracker

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/journal"
	"github.com/abhisek/grind/internal/review"
	"github.com/abhisek/grind/internal/solutions"
	"github.com/abhisek/grind/internal/store"
)

// SolveRequest carries everything captured for one solve.
type SolveRequest struct {
	Problem    string    // name or slug
	Date       time.Time // zero means today
	Minutes    int
	Approach   string
	Challenges string
	Code       string
	SessionID  string
}

// SolveResult reports the state changes a logged solve produced.
type SolveResult struct {
	Problem      catalog.Problem
	Entry        journal.Entry
	SolutionPath string
	Streak       int
	NextReviews  []time.Time
}

// MinutesSpent converts a timed study duration to logged minutes,
// truncating partial minutes.
func MinutesSpent(d time.Duration) int {
	return int(d.Seconds()) / 60
}

// LogSolve records a solve: the solution document is written, the event
// journaled, the review ladder rebuilt from the solve day, the problem
// marked completed and the streak advanced.
func (t *Tracker) LogSolve(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.cat.Find(req.Problem)
	if !ok {
		return nil, fmt.Errorf("%q: %w", req.Problem, ErrProblemNotFound)
	}
	if req.Minutes < 0 {
		return nil, fmt.Errorf("minutes must not be negative, got %d", req.Minutes)
	}
	date := t.today()
	if !req.Date.IsZero() {
		date = review.Day(req.Date)
	}

	doc := solutions.Document{
		Name:       p.Name,
		Category:   p.Category,
		Difficulty: p.DifficultyLabel(),
		Link:       p.Link,
		Date:       date,
		Minutes:    req.Minutes,
		Approach:   req.Approach,
		Challenges: req.Challenges,
		Code:       req.Code,
		Language:   t.language,
	}
	path, err := t.dir.Write(p.Slug, doc.Render())
	if err != nil {
		return nil, err
	}

	ev := &store.SolveEvent{
		SessionID:    req.SessionID,
		Slug:         p.Slug,
		Problem:      p.Name,
		LoggedOn:     date,
		Minutes:      req.Minutes,
		Approach:     req.Approach,
		Challenges:   req.Challenges,
		Solution:     req.Code,
		SolutionPath: path,
	}
	if err := t.st.Solves().Append(ctx, ev); err != nil {
		return nil, fmt.Errorf("record solve: %w", err)
	}

	entry := entryFromEvent(*ev)
	t.journal.Append(entry)
	t.schedule.Schedule(p.Slug, date)
	t.setStatus(p.Slug, catalog.StatusCompleted)
	t.paths[p.Slug] = path
	t.warnOnSnapshotErr(ctx)

	p.Status = catalog.StatusCompleted
	t.log.Info().
		Str("slug", p.Slug).
		Str("date", date.Format(time.DateOnly)).
		Int("minutes", req.Minutes).
		Int("streak", t.journal.Streak()).
		Msg("solve logged")

	return &SolveResult{
		Problem:      p,
		Entry:        entry,
		SolutionPath: path,
		Streak:       t.journal.Streak(),
		NextReviews:  slices.Clone(t.schedule.Dates(p.Slug)),
	}, nil
}

// SetWeeklyGoal updates the problems-per-week target and persists it.
func (t *Tracker) SetWeeklyGoal(ctx context.Context, n int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.journal.SetWeeklyGoal(n); err != nil {
		return err
	}
	if err := t.saveSnapshot(ctx); err != nil {
		return err
	}
	t.log.Info().Int("goal", n).Msg("weekly goal updated")
	return nil
}
