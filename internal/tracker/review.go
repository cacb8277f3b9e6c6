package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/review"
	"github.com/abhisek/grind/internal/solutions"
	"github.com/abhisek/grind/internal/store"
)

// ReviewItem pairs a due or upcoming review with its catalog entry.
type ReviewItem struct {
	Problem catalog.Problem
	Due     time.Time
	Urgency review.Urgency
}

// DueReviews returns today's reviews, at most one per problem, joined
// with the catalog. Scheduled slugs missing from the catalog are skipped.
func (t *Tracker) DueReviews() []ReviewItem {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.joinReviews(t.schedule.DueOn(t.today()))
}

// UpcomingReviews returns every review after today, soonest first.
func (t *Tracker) UpcomingReviews() []ReviewItem {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.joinReviews(t.schedule.Upcoming(t.today()))
}

func (t *Tracker) joinReviews(due []review.Due) []ReviewItem {
	var items []ReviewItem
	for _, d := range due {
		p, ok := t.cat.Find(d.Slug)
		if !ok {
			continue
		}
		items = append(items, ReviewItem{Problem: p, Due: d.Date, Urgency: d.Urgency})
	}
	return items
}

// MarkReviewed clears the due date from the problem's ladder and books
// the follow-up review. It returns the follow-up date.
func (t *Tracker) MarkReviewed(ctx context.Context, slug string, due time.Time) (time.Time, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, err := t.markReviewed(ctx, slug, due, store.ReviewActionReviewed)
	if err != nil {
		return time.Time{}, err
	}
	t.warnOnSnapshotErr(ctx)
	return next, nil
}

func (t *Tracker) markReviewed(ctx context.Context, slug string, due time.Time, action string) (time.Time, error) {
	p, ok := t.cat.Find(slug)
	if !ok {
		return time.Time{}, fmt.Errorf("%q: %w", slug, ErrProblemNotFound)
	}
	today := t.today()
	if due.IsZero() {
		due = today
	} else {
		due = review.Day(due)
	}

	t.schedule.MarkReviewed(p.Slug, due, today)
	next := today.AddDate(0, 0, review.RescheduleDays)

	ev := &store.ReviewEvent{Slug: p.Slug, Action: action, DueOn: due, NextOn: next}
	if err := t.st.Reviews().Append(ctx, ev); err != nil {
		return time.Time{}, fmt.Errorf("record review: %w", err)
	}

	t.log.Info().
		Str("slug", p.Slug).
		Str("action", action).
		Str("next", next.Format(time.DateOnly)).
		Msg("review handled")
	return next, nil
}

// SolutionUpdate reports the outcome of rewriting a solution document.
type SolutionUpdate struct {
	Problem    catalog.Problem
	Path       string
	NextReview time.Time // zero when the update did not touch the schedule
}

// UpdateSolution rewrites the problem's document during a review: notes
// take the new approach, the problem is marked completed and the review
// handled as an update.
func (t *Tracker) UpdateSolution(ctx context.Context, slug string, due time.Time, approach, challenges, code string) (*SolutionUpdate, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, path, err := t.rewriteDocument(slug, approach, challenges, code)
	if err != nil {
		return nil, err
	}
	next, err := t.markReviewed(ctx, p.Slug, due, store.ReviewActionUpdated)
	if err != nil {
		return nil, err
	}
	t.warnOnSnapshotErr(ctx)
	return &SolutionUpdate{Problem: p, Path: path, NextReview: next}, nil
}

// EditProblem rewrites the problem's document outside the review flow.
// Notes and status change; the schedule and the journal do not.
func (t *Tracker) EditProblem(ctx context.Context, slug, approach, challenges, code string) (*SolutionUpdate, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, path, err := t.rewriteDocument(slug, approach, challenges, code)
	if err != nil {
		return nil, err
	}
	// No event backs an edit, so the snapshot write must stick.
	if err := t.saveSnapshot(ctx); err != nil {
		return nil, err
	}
	t.log.Info().Str("slug", p.Slug).Msg("problem edited")
	return &SolutionUpdate{Problem: p, Path: path}, nil
}

func (t *Tracker) rewriteDocument(slug, approach, challenges, code string) (catalog.Problem, string, error) {
	p, ok := t.cat.Find(slug)
	if !ok {
		return catalog.Problem{}, "", fmt.Errorf("%q: %w", slug, ErrProblemNotFound)
	}
	doc := solutions.Document{
		Name:       p.Name,
		Category:   p.Category,
		Difficulty: p.DifficultyLabel(),
		Link:       p.Link,
		Date:       t.today(),
		Approach:   approach,
		Challenges: challenges,
		Code:       code,
		Language:   t.language,
	}
	path, err := t.dir.Write(p.Slug, doc.Render())
	if err != nil {
		return catalog.Problem{}, "", err
	}

	t.setNotes(p.Slug, approach)
	t.setStatus(p.Slug, catalog.StatusCompleted)
	t.paths[p.Slug] = path

	p.Notes = approach
	p.Status = catalog.StatusCompleted
	return p, path, nil
}
