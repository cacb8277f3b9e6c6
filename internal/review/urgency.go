package review

import "time"

// Urgency buckets a review date relative to today.
type Urgency int

const (
	UrgencyOverdue Urgency = iota
	UrgencyToday
	UrgencySoon
	UrgencyUpcoming
)

// CalculateUrgency classifies a review date: past dates are Overdue, today
// is Today, within two days is Soon, anything later is Upcoming.
func CalculateUrgency(date, today time.Time) Urgency {
	days := daysBetween(Day(today), Day(date))
	switch {
	case days < 0:
		return UrgencyOverdue
	case days == 0:
		return UrgencyToday
	case days <= 2:
		return UrgencySoon
	default:
		return UrgencyUpcoming
	}
}

// String returns the display label.
func (u Urgency) String() string {
	switch u {
	case UrgencyOverdue:
		return "Overdue"
	case UrgencyToday:
		return "Today"
	case UrgencySoon:
		return "Soon"
	case UrgencyUpcoming:
		return "Upcoming"
	default:
		return "Unknown"
	}
}

// Day truncates a time to its calendar day in UTC. All schedule math works
// on days; times of day never participate.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns b - a in whole days. Both arguments must already be
// day-truncated.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
