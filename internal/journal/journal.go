package journal

import (
	"errors"
	"sort"
	"time"
)

// DefaultWeeklyGoal is the problems-per-week target before the user sets one.
const DefaultWeeklyGoal = 5

// DefaultHistoryLimit is how many entries the history views show by default.
const DefaultHistoryLimit = 10

// RecentActivityCount is how many entries the summary view shows.
const RecentActivityCount = 5

// ErrInvalidGoal rejects weekly goals below one problem.
var ErrInvalidGoal = errors.New("weekly goal must be at least 1")

// Entry is one logged solve.
type Entry struct {
	Date         time.Time // calendar day
	Slug         string
	Problem      string
	Minutes      int
	Approach     string
	Challenges   string
	Solution     string
	SolutionPath string
}

// Journal accumulates solve entries along with the streak, study-time and
// weekly-goal state they drive.
type Journal struct {
	entries       []Entry
	streak        int
	lastStudyDate time.Time // zero when never studied
	totalMinutes  int
	weeklyGoal    int
}

// New returns an empty journal with the default weekly goal.
func New() *Journal {
	return &Journal{weeklyGoal: DefaultWeeklyGoal}
}

// Restore bulk-loads saved state. Entries are stored as-is; streak and
// totals come from the snapshot rather than being recomputed, so an
// imported history can't skew them. Newer entries still go through Append.
func (j *Journal) Restore(entries []Entry, streak int, lastStudy time.Time, totalMinutes, weeklyGoal int) {
	j.entries = entries
	j.streak = streak
	j.lastStudyDate = day(lastStudy)
	if lastStudy.IsZero() {
		j.lastStudyDate = time.Time{}
	}
	j.totalMinutes = totalMinutes
	if weeklyGoal >= 1 {
		j.weeklyGoal = weeklyGoal
	} else {
		j.weeklyGoal = DefaultWeeklyGoal
	}
}

// Append records an entry: the streak rule runs against its date and its
// minutes join the total.
func (j *Journal) Append(e Entry) {
	e.Date = day(e.Date)
	j.entries = append(j.entries, e)
	j.streak = nextStreak(j.streak, j.lastStudyDate, e.Date)
	j.lastStudyDate = e.Date
	j.totalMinutes += e.Minutes
}

// Entries returns all entries in append order. The slice is shared; callers
// must not modify it.
func (j *Journal) Entries() []Entry { return j.entries }

// Len returns the number of entries.
func (j *Journal) Len() int { return len(j.entries) }

// Streak returns the current study streak in days.
func (j *Journal) Streak() int { return j.streak }

// LastStudyDate returns the most recent study day, if any.
func (j *Journal) LastStudyDate() (time.Time, bool) {
	if j.lastStudyDate.IsZero() {
		return time.Time{}, false
	}
	return j.lastStudyDate, true
}

// TotalMinutes returns the accumulated study time.
func (j *Journal) TotalMinutes() int { return j.totalMinutes }

// WeeklyGoal returns the problems-per-week target.
func (j *Journal) WeeklyGoal() int { return j.weeklyGoal }

// SetWeeklyGoal updates the problems-per-week target.
func (j *Journal) SetWeeklyGoal(n int) error {
	if n < 1 {
		return ErrInvalidGoal
	}
	j.weeklyGoal = n
	return nil
}

// Recent returns the n most recent entries, newest first. Entries on the
// same day keep their append order.
func (j *Journal) Recent(n int) []Entry {
	sorted := make([]Entry, len(j.entries))
	copy(sorted, j.entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[b].Date.Before(sorted[a].Date)
	})
	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// SolvedThisWeek counts entries from Monday of today's week through today.
func (j *Journal) SolvedThisWeek(today time.Time) int {
	today = day(today)
	start := WeekStart(today)
	n := 0
	for _, e := range j.entries {
		if !e.Date.Before(start) && !e.Date.After(today) {
			n++
		}
	}
	return n
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = day(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// nextStreak applies one study day: an unset last date or an exact
// next-day entry extends the streak, the same day leaves it alone, and
// anything else (a gap, or a backdated entry) resets it to one.
func nextStreak(current int, last, studyDate time.Time) int {
	switch {
	case last.IsZero(), studyDate.Equal(last.AddDate(0, 0, 1)):
		return current + 1
	case !studyDate.Equal(last):
		return 1
	default:
		return current
	}
}

// day truncates a time to its calendar day in UTC.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
