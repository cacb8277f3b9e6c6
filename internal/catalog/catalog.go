package catalog

import (
	"math/rand/v2"
	"sort"
	"strings"
)

// Catalog holds the problem list in file order. File order is authoritative:
// the "next" problem is always the first open one.
type Catalog struct {
	problems []Problem
	bySlug   map[string]int
}

// New builds a catalog from problems in their original order. When two rows
// share a slug the first occurrence wins for lookups.
func New(problems []Problem) *Catalog {
	c := &Catalog{
		problems: problems,
		bySlug:   make(map[string]int, len(problems)),
	}
	for i := range problems {
		if _, ok := c.bySlug[problems[i].Slug]; !ok {
			c.bySlug[problems[i].Slug] = i
		}
	}
	return c
}

// Len returns the number of problems.
func (c *Catalog) Len() int { return len(c.problems) }

// Empty reports whether the catalog holds no problems.
func (c *Catalog) Empty() bool { return len(c.problems) == 0 }

// Problems returns the problems in file order. The returned slice is shared;
// callers must not modify it.
func (c *Catalog) Problems() []Problem { return c.problems }

// Find looks a problem up by name or slug.
func (c *Catalog) Find(nameOrSlug string) (Problem, bool) {
	i, ok := c.bySlug[Slugify(nameOrSlug)]
	if !ok {
		return Problem{}, false
	}
	return c.problems[i], true
}

// Next returns the first problem in file order that is not completed.
func (c *Catalog) Next() (Problem, bool) {
	for _, p := range c.problems {
		if !p.Completed() {
			return p, true
		}
	}
	return Problem{}, false
}

// Random returns a uniformly random open problem. A nil rng uses the
// shared source.
func (c *Catalog) Random(rng *rand.Rand) (Problem, bool) {
	var open []Problem
	for _, p := range c.problems {
		if !p.Completed() {
			open = append(open, p)
		}
	}
	if len(open) == 0 {
		return Problem{}, false
	}
	if rng != nil {
		return open[rng.IntN(len(open))], true
	}
	return open[rand.IntN(len(open))], true
}

// Categories returns the sorted set of category names.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range c.problems {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// CountCompleted returns how many problems are done.
func (c *Catalog) CountCompleted() int {
	n := 0
	for _, p := range c.problems {
		if p.Completed() {
			n++
		}
	}
	return n
}

// FilterOpts narrows the problem list. Zero values match everything; Query
// is a case-insensitive substring match on the name.
type FilterOpts struct {
	Category   string
	Difficulty string
	Status     string
	Query      string
}

// Filter returns the problems matching opts, in file order.
func (c *Catalog) Filter(opts FilterOpts) []Problem {
	query := strings.ToLower(opts.Query)
	var out []Problem
	for _, p := range c.problems {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if opts.Difficulty != "" && !strings.EqualFold(p.Difficulty, opts.Difficulty) {
			continue
		}
		if opts.Status != "" && p.Status != opts.Status {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Override carries journal-derived state layered over the CSV baseline.
// Empty fields leave the baseline value in place.
type Override struct {
	Status string
	Notes  string
}

// ApplyOverrides overlays stored status and notes onto the catalog. Rows
// sharing a slug are all updated.
func (c *Catalog) ApplyOverrides(overrides map[string]Override) {
	if len(overrides) == 0 {
		return
	}
	for i := range c.problems {
		o, ok := overrides[c.problems[i].Slug]
		if !ok {
			continue
		}
		if o.Status != "" {
			c.problems[i].Status = o.Status
		}
		if o.Notes != "" {
			c.problems[i].Notes = o.Notes
		}
	}
}

// SetStatus updates the status of every row with the given slug.
func (c *Catalog) SetStatus(slug, status string) {
	for i := range c.problems {
		if c.problems[i].Slug == slug {
			c.problems[i].Status = status
		}
	}
}

// SetNotes updates the notes of every row with the given slug.
func (c *Catalog) SetNotes(slug, notes string) {
	for i := range c.problems {
		if c.problems[i].Slug == slug {
			c.problems[i].Notes = notes
		}
	}
}
