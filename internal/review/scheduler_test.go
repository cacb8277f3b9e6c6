package review

import (
	"testing"
	"time"

	"github.com/abhisek/grind/internal/store"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSchedule_Ladder(t *testing.T) {
	s := NewScheduler(nil)
	solved := date(2026, 3, 10)

	s.Schedule("two_sum", solved)

	dates := s.Dates("two_sum")
	want := []time.Time{
		date(2026, 3, 11),
		date(2026, 3, 13),
		date(2026, 3, 17),
		date(2026, 3, 24),
		date(2026, 4, 9),
	}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d", len(dates), len(want))
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("dates[%d] = %s, want %s", i, dates[i].Format(time.DateOnly), want[i].Format(time.DateOnly))
		}
	}
}

func TestSchedule_ReplacesExistingLadder(t *testing.T) {
	s := NewScheduler(nil)
	s.Schedule("two_sum", date(2026, 3, 1))
	s.MarkReviewed("two_sum", date(2026, 3, 2), date(2026, 3, 2))

	s.Schedule("two_sum", date(2026, 3, 10))

	dates := s.Dates("two_sum")
	if len(dates) != len(Intervals) {
		t.Fatalf("got %d dates after re-solve, want %d (full fresh ladder)", len(dates), len(Intervals))
	}
	if !dates[0].Equal(date(2026, 3, 11)) {
		t.Errorf("first date = %s, want 2026-03-11", dates[0].Format(time.DateOnly))
	}
}

func TestDueOn_FirstStoredDateWins(t *testing.T) {
	s := NewScheduler(nil)
	s.Schedule("two_sum", date(2026, 3, 1))

	// On March 5th both +1 (Mar 2) and +3 (Mar 4) have passed; only the
	// first stored date should surface.
	due := s.DueOn(date(2026, 3, 5))
	if len(due) != 1 {
		t.Fatalf("got %d due items, want 1", len(due))
	}
	if !due[0].Date.Equal(date(2026, 3, 2)) {
		t.Errorf("due date = %s, want 2026-03-02", due[0].Date.Format(time.DateOnly))
	}
	if due[0].Urgency != UrgencyOverdue {
		t.Errorf("urgency = %s, want Overdue", due[0].Urgency)
	}
}

func TestDueOn_NothingDueBeforeFirstInterval(t *testing.T) {
	s := NewScheduler(nil)
	s.Schedule("two_sum", date(2026, 3, 10))

	if due := s.DueOn(date(2026, 3, 10)); len(due) != 0 {
		t.Errorf("got %d due items on solve day, want 0", len(due))
	}
}

func TestDueOn_SchedulingOrder(t *testing.T) {
	s := NewScheduler(nil)
	s.Schedule("b_problem", date(2026, 3, 1))
	s.Schedule("a_problem", date(2026, 3, 2))

	due := s.DueOn(date(2026, 3, 6))
	if len(due) != 2 {
		t.Fatalf("got %d due items, want 2", len(due))
	}
	if due[0].Slug != "b_problem" || due[1].Slug != "a_problem" {
		t.Errorf("due order = [%s, %s], want scheduling order [b_problem, a_problem]",
			due[0].Slug, due[1].Slug)
	}
}

func TestMarkReviewed_RemovesDateAndBooksFollowUp(t *testing.T) {
	s := NewScheduler(nil)
	s.Schedule("two_sum", date(2026, 3, 1))
	today := date(2026, 3, 2)

	s.MarkReviewed("two_sum", date(2026, 3, 2), today)

	dates := s.Dates("two_sum")
	for _, d := range dates {
		if d.Equal(date(2026, 3, 2)) {
			t.Error("reviewed date still present")
		}
	}
	followUp := date(2026, 3, 9)
	found := false
	for _, d := range dates {
		if d.Equal(followUp) {
			found = true
		}
	}
	if !found {
		t.Errorf("follow-up %s not booked; dates: %v", followUp.Format(time.DateOnly), dates)
	}
	if len(dates) != len(Intervals) {
		t.Errorf("got %d dates, want %d (one removed, one appended)", len(dates), len(Intervals))
	}
}

func TestMarkReviewed_LastDateStillBooksFollowUp(t *testing.T) {
	s := NewScheduler(nil)
	s.dates["two_sum"] = []time.Time{date(2026, 3, 2)}
	s.order = append(s.order, "two_sum")
	today := date(2026, 3, 5)

	s.MarkReviewed("two_sum", date(2026, 3, 2), today)

	dates := s.Dates("two_sum")
	if len(dates) != 1 || !dates[0].Equal(date(2026, 3, 12)) {
		t.Errorf("got %v, want exactly [2026-03-12]", dates)
	}
}

func TestMarkReviewed_UnscheduledProblem(t *testing.T) {
	s := NewScheduler(nil)
	today := date(2026, 3, 5)

	s.MarkReviewed("two_sum", date(2026, 3, 1), today)

	dates := s.Dates("two_sum")
	if len(dates) != 1 || !dates[0].Equal(date(2026, 3, 12)) {
		t.Errorf("got %v, want exactly the follow-up [2026-03-12]", dates)
	}
}

func TestUpcoming_SortedByDate(t *testing.T) {
	s := NewScheduler(nil)
	s.Schedule("late", date(2026, 3, 5))
	s.Schedule("early", date(2026, 3, 1))

	up := s.Upcoming(date(2026, 3, 1))
	if len(up) != 10 {
		t.Fatalf("got %d upcoming, want 10", len(up))
	}
	for i := 1; i < len(up); i++ {
		if up[i].Date.Before(up[i-1].Date) {
			t.Fatalf("upcoming not sorted: %s before %s",
				up[i].Date.Format(time.DateOnly), up[i-1].Date.Format(time.DateOnly))
		}
	}
	if up[0].Slug != "early" || !up[0].Date.Equal(date(2026, 3, 2)) {
		t.Errorf("first upcoming = %s %s, want early 2026-03-02",
			up[0].Slug, up[0].Date.Format(time.DateOnly))
	}
}

func TestCalculateUrgency(t *testing.T) {
	today := date(2026, 3, 10)
	tests := []struct {
		offset int
		want   Urgency
	}{
		{-5, UrgencyOverdue},
		{-1, UrgencyOverdue},
		{0, UrgencyToday},
		{1, UrgencySoon},
		{2, UrgencySoon},
		{3, UrgencyUpcoming},
		{30, UrgencyUpcoming},
	}
	for _, tt := range tests {
		got := CalculateUrgency(today.AddDate(0, 0, tt.offset), today)
		if got != tt.want {
			t.Errorf("offset %+d: got %s, want %s", tt.offset, got, tt.want)
		}
	}
}

func TestSnapshot_RoundTripPreservesOrder(t *testing.T) {
	s := NewScheduler(nil)
	s.Schedule("second", date(2026, 3, 2))
	s.Schedule("first", date(2026, 3, 1))
	// Leave an unsorted ladder behind: review the first date late.
	s.MarkReviewed("second", date(2026, 3, 3), date(2026, 4, 20))

	snap := &store.SnapshotData{Reviews: s.Snapshot()}
	restored := NewScheduler(snap)

	due := s.DueOn(date(2026, 5, 1))
	restoredDue := restored.DueOn(date(2026, 5, 1))
	if len(due) != len(restoredDue) {
		t.Fatalf("due count changed across round-trip: %d vs %d", len(due), len(restoredDue))
	}
	for i := range due {
		if due[i].Slug != restoredDue[i].Slug || !due[i].Date.Equal(restoredDue[i].Date) {
			t.Errorf("due[%d] = %v, restored %v", i, due[i], restoredDue[i])
		}
	}
}

func TestNewScheduler_SkipsBadDates(t *testing.T) {
	snap := &store.SnapshotData{
		Reviews: []store.ReviewScheduleEntry{
			{Problem: "ok", Dates: []string{"2026-03-02"}},
			{Problem: "bad", Dates: []string{"not-a-date"}},
		},
	}
	s := NewScheduler(snap)

	if s.Scheduled("bad") {
		t.Error("entry with only invalid dates should be dropped")
	}
	if !s.Scheduled("ok") {
		t.Error("valid entry missing after restore")
	}
}
