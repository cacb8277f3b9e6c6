package catalog

import "strings"

// Problem status values. Only the exact string "Completed" counts as done;
// any other value (including CSV imports like "In Progress") is treated as
// open work.
const (
	StatusUnsolved  = "Unsolved"
	StatusCompleted = "Completed"
)

// Problem is a single entry in the practice list.
type Problem struct {
	Slug       string
	Category   string
	Difficulty string
	Name       string
	Status     string
	Link       string
	Notes      string
}

// Completed reports whether the problem has been solved.
func (p Problem) Completed() bool {
	return p.Status == StatusCompleted
}

// DifficultyLabel returns the difficulty with normalized casing
// ("easy" -> "Easy").
func (p Problem) DifficultyLabel() string {
	d := strings.TrimSpace(p.Difficulty)
	if d == "" {
		return "Unknown"
	}
	return strings.ToUpper(d[:1]) + strings.ToLower(d[1:])
}

// Slugify derives the stable identity key for a problem name: lowercase
// with spaces replaced by underscores. The same derivation names the
// problem's solution document on disk.
func Slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}
