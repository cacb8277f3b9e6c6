package review

import (
	"sort"
	"time"

	"github.com/abhisek/grind/internal/store"
)

// Intervals is the review ladder in days after a solve. Solving a problem
// (or solving it again) replaces its whole ladder with these offsets.
var Intervals = []int{1, 3, 7, 14, 30}

// RescheduleDays is the gap to the next review after marking one done.
const RescheduleDays = 7

// Due is one problem owed a review.
type Due struct {
	Slug    string
	Date    time.Time
	Urgency Urgency
}

// Scheduler holds the pending review dates per problem. Problems keep their
// scheduling order and each problem's dates keep their stored order: due
// selection takes the first date at or before today, not the earliest.
type Scheduler struct {
	order []string
	dates map[string][]time.Time
}

// NewScheduler builds a scheduler, restoring state from a snapshot when one
// is given. Entries with unparseable dates are dropped.
func NewScheduler(snap *store.SnapshotData) *Scheduler {
	s := &Scheduler{dates: make(map[string][]time.Time)}
	if snap == nil {
		return s
	}
	for _, entry := range snap.Reviews {
		var dates []time.Time
		for _, raw := range entry.Dates {
			d, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				continue
			}
			dates = append(dates, Day(d))
		}
		if len(dates) == 0 {
			continue
		}
		s.order = append(s.order, entry.Problem)
		s.dates[entry.Problem] = dates
	}
	return s
}

// Schedule sets the review ladder for a problem solved on the given day,
// replacing any existing dates.
func (s *Scheduler) Schedule(slug string, solvedOn time.Time) {
	day := Day(solvedOn)
	dates := make([]time.Time, len(Intervals))
	for i, offset := range Intervals {
		dates[i] = day.AddDate(0, 0, offset)
	}
	if _, ok := s.dates[slug]; !ok {
		s.order = append(s.order, slug)
	}
	s.dates[slug] = dates
}

// MarkReviewed removes the handled date from the problem's ladder and books
// the next review RescheduleDays from today. A problem with no remaining
// dates still gets the follow-up.
func (s *Scheduler) MarkReviewed(slug string, due, today time.Time) {
	dueDay := Day(due)
	if dates, ok := s.dates[slug]; ok {
		var rest []time.Time
		for _, d := range dates {
			if !d.Equal(dueDay) {
				rest = append(rest, d)
			}
		}
		if len(rest) == 0 {
			s.remove(slug)
		} else {
			s.dates[slug] = rest
		}
	}

	next := Day(today).AddDate(0, 0, RescheduleDays)
	if _, ok := s.dates[slug]; !ok {
		s.order = append(s.order, slug)
	}
	s.dates[slug] = append(s.dates[slug], next)
}

// DueOn returns at most one due item per problem: the first stored date at
// or before today, in scheduling order.
func (s *Scheduler) DueOn(today time.Time) []Due {
	day := Day(today)
	var due []Due
	for _, slug := range s.order {
		for _, d := range s.dates[slug] {
			if !d.After(day) {
				due = append(due, Due{Slug: slug, Date: d, Urgency: CalculateUrgency(d, day)})
				break
			}
		}
	}
	return due
}

// Upcoming returns every scheduled date after today, soonest first (slug
// breaks ties).
func (s *Scheduler) Upcoming(today time.Time) []Due {
	day := Day(today)
	var up []Due
	for _, slug := range s.order {
		for _, d := range s.dates[slug] {
			if d.After(day) {
				up = append(up, Due{Slug: slug, Date: d, Urgency: CalculateUrgency(d, day)})
			}
		}
	}
	sort.Slice(up, func(i, j int) bool {
		if !up[i].Date.Equal(up[j].Date) {
			return up[i].Date.Before(up[j].Date)
		}
		return up[i].Slug < up[j].Slug
	})
	return up
}

// Dates returns the stored ladder for a problem.
func (s *Scheduler) Dates(slug string) []time.Time {
	return s.dates[slug]
}

// Scheduled reports whether the problem has any pending reviews.
func (s *Scheduler) Scheduled(slug string) bool {
	_, ok := s.dates[slug]
	return ok
}

// Len returns how many problems have pending reviews.
func (s *Scheduler) Len() int { return len(s.dates) }

// Snapshot exports the schedule for persistence, preserving order.
func (s *Scheduler) Snapshot() []store.ReviewScheduleEntry {
	entries := make([]store.ReviewScheduleEntry, 0, len(s.order))
	for _, slug := range s.order {
		dates := s.dates[slug]
		raw := make([]string, len(dates))
		for i, d := range dates {
			raw[i] = d.Format(time.DateOnly)
		}
		entries = append(entries, store.ReviewScheduleEntry{Problem: slug, Dates: raw})
	}
	return entries
}

func (s *Scheduler) remove(slug string) {
	delete(s.dates, slug)
	for i, sl := range s.order {
		if sl == slug {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
