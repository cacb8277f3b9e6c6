package stats

import (
	"sort"
	"time"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/journal"
	"github.com/abhisek/grind/internal/review"
)

// GroupProgress tracks completion within one category or difficulty.
type GroupProgress struct {
	Name      string
	Completed int
	Total     int
}

// Percent returns completion as a percentage, 0 for an empty group.
func (g GroupProgress) Percent() float64 {
	return percent(g.Completed, g.Total)
}

// Overview is a point-in-time summary across the catalog, the journal and
// the review schedule.
type Overview struct {
	TotalProblems  int
	Completed      int
	Streak         int
	TotalMinutes   int
	SolvedThisWeek int
	WeeklyGoal     int
	DueToday       int
	ByCategory     []GroupProgress
	ByDifficulty   []GroupProgress
}

// Percent returns overall completion as a percentage.
func (o Overview) Percent() float64 {
	return percent(o.Completed, o.TotalProblems)
}

// GoalMet reports whether this week's solves reached the weekly goal.
func (o Overview) GoalMet() bool {
	return o.WeeklyGoal > 0 && o.SolvedThisWeek >= o.WeeklyGoal
}

// Compute builds an overview for today.
func Compute(cat *catalog.Catalog, j *journal.Journal, sch *review.Scheduler, today time.Time) Overview {
	o := Overview{
		TotalProblems:  cat.Len(),
		Completed:      cat.CountCompleted(),
		Streak:         j.Streak(),
		TotalMinutes:   j.TotalMinutes(),
		SolvedThisWeek: j.SolvedThisWeek(today),
		WeeklyGoal:     j.WeeklyGoal(),
		DueToday:       len(sch.DueOn(today)),
	}

	byCategory := map[string]*GroupProgress{}
	byDifficulty := map[string]*GroupProgress{}
	for _, p := range cat.Problems() {
		bump(byCategory, p.Category, p.Completed())
		bump(byDifficulty, p.DifficultyLabel(), p.Completed())
	}

	o.ByCategory = ordered(byCategory, nil)
	o.ByDifficulty = ordered(byDifficulty, difficultyRank)
	return o
}

func bump(groups map[string]*GroupProgress, name string, completed bool) {
	g, ok := groups[name]
	if !ok {
		g = &GroupProgress{Name: name}
		groups[name] = g
	}
	g.Total++
	if completed {
		g.Completed++
	}
}

// ordered flattens a group map into a slice sorted by rank (when given)
// and then name.
func ordered(groups map[string]*GroupProgress, rank func(string) int) []GroupProgress {
	out := make([]GroupProgress, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(a, b int) bool {
		if rank != nil {
			ra, rb := rank(out[a].Name), rank(out[b].Name)
			if ra != rb {
				return ra < rb
			}
		}
		return out[a].Name < out[b].Name
	})
	return out
}

func difficultyRank(name string) int {
	switch name {
	case "Easy":
		return 0
	case "Medium":
		return 1
	case "Hard":
		return 2
	default:
		return 3
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
