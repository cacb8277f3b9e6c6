package tracker

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/journal"
	"github.com/abhisek/grind/internal/stats"
)

// NextProblem returns the first open problem in catalog order.
func (t *Tracker) NextProblem() (catalog.Problem, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cat.Next()
}

// RandomProblem returns a random open problem.
func (t *Tracker) RandomProblem(rng *rand.Rand) (catalog.Problem, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cat.Random(rng)
}

// Overview computes the aggregate picture for today.
func (t *Tracker) Overview() stats.Overview {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return stats.Compute(t.cat, t.journal, t.schedule, t.today())
}

// Recent returns the n most recent journal entries, newest first.
func (t *Tracker) Recent(n int) []journal.Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.journal.Recent(n)
}

// Entries returns every journal entry in logged order.
func (t *Tracker) Entries() []journal.Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.journal.Entries())
}

// History returns the n most recent entries, newest first. Entries logged
// on the same day keep their logged order. n <= 0 falls back to the
// default limit.
func (t *Tracker) History(n int) []journal.Entry {
	if n <= 0 {
		n = journal.DefaultHistoryLimit
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.journal.Recent(n)
}

// Streak returns the current study streak in days.
func (t *Tracker) Streak() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.journal.Streak()
}

// WeeklyGoal returns the problems-per-week target.
func (t *Tracker) WeeklyGoal() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.journal.WeeklyGoal()
}

// TotalMinutes returns all study time logged.
func (t *Tracker) TotalMinutes() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.journal.TotalMinutes()
}
