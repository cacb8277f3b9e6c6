// Package tracker coordinates the catalog, journal, review schedule and
// solution documents behind a single service the CLI and TUI both drive.
// Every mutation lands in the event journal and a fresh snapshot, so
// startup is snapshot restore plus a replay of whatever followed it.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/journal"
	"github.com/abhisek/grind/internal/log"
	"github.com/abhisek/grind/internal/review"
	"github.com/abhisek/grind/internal/solutions"
	"github.com/abhisek/grind/internal/store"
)

// ErrProblemNotFound is returned when a name or slug matches nothing in
// the catalog.
var ErrProblemNotFound = errors.New("problem not found")

// keepSnapshots bounds how many old snapshots stay around after a save.
const keepSnapshots = 10

// Options configures Load.
type Options struct {
	Catalog   *catalog.Catalog
	Store     *store.Store
	Solutions solutions.Dir
	Language  string           // code fence for rendered documents
	Goal      int              // weekly target for a fresh database
	Now       func() time.Time // defaults to time.Now
}

// Tracker is the stateful core of the app. It is safe for concurrent use:
// the TUI runs mutations on command goroutines while the render loop keeps
// reading, so every exported method takes the state lock.
type Tracker struct {
	mu sync.RWMutex

	cat      *catalog.Catalog
	st       *store.Store
	dir      solutions.Dir
	journal  *journal.Journal
	schedule *review.Scheduler

	overrides map[string]catalog.Override
	paths     map[string]string // slug -> solution document path
	language  string

	log zerolog.Logger
	now func() time.Time
}

// Load restores tracker state: latest snapshot first, then a replay of
// every event recorded after it.
func Load(ctx context.Context, opts Options) (*Tracker, error) {
	if opts.Catalog == nil {
		return nil, errors.New("tracker: catalog is required")
	}
	if opts.Store == nil {
		return nil, errors.New("tracker: store is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	t := &Tracker{
		cat:       opts.Catalog,
		st:        opts.Store,
		dir:       opts.Solutions,
		journal:   journal.New(),
		overrides: make(map[string]catalog.Override),
		paths:     make(map[string]string),
		language:  opts.Language,
		log:       log.WithComponent("tracker"),
		now:       now,
	}
	if opts.Goal >= 1 {
		t.journal.SetWeeklyGoal(opts.Goal)
	}

	snap, err := t.st.Snapshots().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var since int64
	if snap != nil {
		since = snap.Sequence
		t.restoreSnapshot(ctx, &snap.Data, since)
	} else {
		t.schedule = review.NewScheduler(nil)
	}

	solves, err := t.st.Solves().Query(ctx, store.QueryOpts{After: since})
	if err != nil {
		return nil, fmt.Errorf("load solve events: %w", err)
	}
	reviews, err := t.st.Reviews().Query(ctx, store.QueryOpts{After: since})
	if err != nil {
		return nil, fmt.Errorf("load review events: %w", err)
	}
	t.replay(solves, reviews)

	t.log.Debug().
		Int64("snapshot_seq", since).
		Int("replayed_solves", len(solves)).
		Int("replayed_reviews", len(reviews)).
		Msg("state loaded")
	return t, nil
}

func (t *Tracker) restoreSnapshot(ctx context.Context, data *store.SnapshotData, seq int64) {
	t.schedule = review.NewScheduler(data)

	for slug, o := range data.Problems {
		t.overrides[slug] = catalog.Override{Status: o.Status, Notes: o.Notes}
		if o.SolutionPath != "" {
			t.paths[slug] = o.SolutionPath
		}
	}
	t.cat.ApplyOverrides(t.overrides)

	// History predating the snapshot loads raw; streak and totals come
	// from the snapshot itself so an imported state stays authoritative.
	past, err := t.st.Solves().Query(ctx, store.QueryOpts{Before: seq + 1})
	if err != nil {
		t.log.Warn().Err(err).Msg("history before snapshot unavailable")
	}
	entries := make([]journal.Entry, 0, len(past))
	for _, ev := range past {
		entries = append(entries, entryFromEvent(ev))
	}

	var last time.Time
	if data.LastStudyDate != "" {
		if d, err := time.Parse(time.DateOnly, data.LastStudyDate); err == nil {
			last = d
		}
	}
	goal := data.WeeklyGoal
	if goal < 1 {
		goal = t.journal.WeeklyGoal() // pre-goal snapshot, keep the seeded target
	}
	t.journal.Restore(entries, data.StudyStreak, last, data.TotalStudyTime, goal)
}

// replay applies events in global sequence order, interleaving the two
// streams the same way they were recorded.
func (t *Tracker) replay(solves []store.SolveEvent, reviews []store.ReviewEvent) {
	i, j := 0, 0
	for i < len(solves) || j < len(reviews) {
		if j >= len(reviews) || (i < len(solves) && solves[i].Sequence < reviews[j].Sequence) {
			t.applySolve(solves[i])
			i++
		} else {
			t.applyReview(reviews[j])
			j++
		}
	}
}

func (t *Tracker) applySolve(ev store.SolveEvent) {
	t.journal.Append(entryFromEvent(ev))
	t.schedule.Schedule(ev.Slug, ev.LoggedOn)
	t.setStatus(ev.Slug, catalog.StatusCompleted)
	if ev.SolutionPath != "" {
		t.paths[ev.Slug] = ev.SolutionPath
	}
}

func (t *Tracker) applyReview(ev store.ReviewEvent) {
	// NextOn was booked RescheduleDays out from the day the review was
	// handled, so that day anchors the replayed reschedule.
	handled := ev.NextOn.AddDate(0, 0, -review.RescheduleDays)
	t.schedule.MarkReviewed(ev.Slug, ev.DueOn, handled)
	if ev.Action == store.ReviewActionUpdated {
		t.setStatus(ev.Slug, catalog.StatusCompleted)
	}
}

func entryFromEvent(ev store.SolveEvent) journal.Entry {
	return journal.Entry{
		Date:         ev.LoggedOn,
		Slug:         ev.Slug,
		Problem:      ev.Problem,
		Minutes:      ev.Minutes,
		Approach:     ev.Approach,
		Challenges:   ev.Challenges,
		Solution:     ev.Solution,
		SolutionPath: ev.SolutionPath,
	}
}

func (t *Tracker) setStatus(slug, status string) {
	t.cat.SetStatus(slug, status)
	o := t.overrides[slug]
	o.Status = status
	t.overrides[slug] = o
}

func (t *Tracker) setNotes(slug, notes string) {
	t.cat.SetNotes(slug, notes)
	o := t.overrides[slug]
	o.Notes = notes
	t.overrides[slug] = o
}

func (t *Tracker) today() time.Time {
	return review.Day(t.now())
}

// saveSnapshot persists the current state and trims old snapshots. Ops
// that are also event-backed treat a failure here as a warning since
// replay will reconstruct the state.
func (t *Tracker) saveSnapshot(ctx context.Context) error {
	data := t.snapshotData()
	if err := t.st.Snapshots().Save(ctx, &store.Snapshot{Data: data}); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := t.st.Snapshots().Prune(ctx, keepSnapshots); err != nil {
		t.log.Warn().Err(err).Msg("snapshot prune failed")
	}
	return nil
}

func (t *Tracker) warnOnSnapshotErr(ctx context.Context) {
	if err := t.saveSnapshot(ctx); err != nil {
		t.log.Warn().Err(err).Msg("snapshot save failed; events remain authoritative")
	}
}

func (t *Tracker) snapshotData() store.SnapshotData {
	problems := make(map[string]store.ProblemOverrideData, len(t.overrides))
	for slug, o := range t.overrides {
		problems[slug] = store.ProblemOverrideData{
			Status:       o.Status,
			Notes:        o.Notes,
			SolutionPath: t.paths[slug],
		}
	}
	for slug, path := range t.paths {
		if _, ok := problems[slug]; !ok {
			problems[slug] = store.ProblemOverrideData{SolutionPath: path}
		}
	}

	var lastStudy string
	if last, ok := t.journal.LastStudyDate(); ok {
		lastStudy = last.Format(time.DateOnly)
	}

	return store.SnapshotData{
		Reviews:        t.schedule.Snapshot(),
		Problems:       problems,
		StudyStreak:    t.journal.Streak(),
		LastStudyDate:  lastStudy,
		TotalStudyTime: t.journal.TotalMinutes(),
		WeeklyGoal:     t.journal.WeeklyGoal(),
	}
}

// ExportData returns the current state in snapshot form.
func (t *Tracker) ExportData() store.SnapshotData {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshotData()
}

// FindProblem looks a problem up by name or slug.
func (t *Tracker) FindProblem(nameOrSlug string) (catalog.Problem, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cat.Find(nameOrSlug)
}

// FilterProblems returns the catalog problems matching the filter.
func (t *Tracker) FilterProblems(opts catalog.FilterOpts) []catalog.Problem {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cat.Filter(opts)
}

// CompletedCount returns how many catalog problems are completed.
func (t *Tracker) CompletedCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cat.CountCompleted()
}

// SolutionPath returns where the slug's write-up lives, if one was saved.
func (t *Tracker) SolutionPath(slug string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	path, ok := t.paths[slug]
	return path, ok
}

// ReadSolution returns the stored write-up for the slug.
func (t *Tracker) ReadSolution(slug string) (string, error) {
	return t.dir.Read(slug)
}
