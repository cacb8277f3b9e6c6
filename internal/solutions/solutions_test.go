package solutions

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestRenderFullDocument(t *testing.T) {
	doc := Document{
		Name:       "Two Sum",
		Category:   "Arrays & Hashing",
		Difficulty: "Easy",
		Link:       "https://leetcode.com/problems/two-sum/",
		Date:       time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		Minutes:    25,
		Approach:   "Hash map of value to index.",
		Challenges: "Off-by-one on the complement lookup.",
		Code:       "def two_sum(nums, target):\n    seen = {}\n",
		Language:   "python",
	}

	want := `# Two Sum

- Category: Arrays & Hashing
- Difficulty: Easy
- Link: https://leetcode.com/problems/two-sum/
- Solved: 2026-03-04 (25 minutes)

## Approach

Hash map of value to index.

## Challenges

Off-by-one on the complement lookup.

## Solution

` + "```python" + `
def two_sum(nums, target):
    seen = {}
` + "```" + `
`

	if got := doc.Render(); got != want {
		t.Fatalf("Render mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMinimalDocument(t *testing.T) {
	doc := Document{Name: "Valid Anagram"}

	want := `# Valid Anagram

## Approach

## Challenges

## Solution

` + "```" + `
` + "```" + `
`

	if got := doc.Render(); got != want {
		t.Fatalf("Render mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderOmitsZeroMinutes(t *testing.T) {
	doc := Document{
		Name: "Two Sum",
		Date: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
	}
	got := doc.Render()
	want := "- Solved: 2026-03-04\n"
	if !strings.Contains(got, want) {
		t.Fatalf("Render missing %q in:\n%s", want, got)
	}
}

func TestDirWriteReadRoundTrip(t *testing.T) {
	d := NewDir(t.TempDir())

	path, err := d.Write("two_sum", "# Two Sum\n")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if path != d.Path("two_sum") {
		t.Fatalf("Write path = %q, want %q", path, d.Path("two_sum"))
	}

	got, err := d.Read("two_sum")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "# Two Sum\n" {
		t.Fatalf("Read = %q", got)
	}
}

func TestDirWriteReplaces(t *testing.T) {
	d := NewDir(t.TempDir())

	if _, err := d.Write("two_sum", "old"); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if _, err := d.Write("two_sum", "new"); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	got, err := d.Read("two_sum")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "new" {
		t.Fatalf("Read after rewrite = %q, want %q", got, "new")
	}
}

func TestDirExists(t *testing.T) {
	d := NewDir(t.TempDir())

	if d.Exists("two_sum") {
		t.Fatal("Exists reported a file before any write")
	}
	if _, err := d.Write("two_sum", "x"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !d.Exists("two_sum") {
		t.Fatal("Exists missed a written file")
	}
}

func TestDirReadMissing(t *testing.T) {
	d := NewDir(t.TempDir())
	if _, err := d.Read("nope"); !os.IsNotExist(err) {
		t.Fatalf("Read missing = %v, want not-exist", err)
	}
}

func TestNewDirDefault(t *testing.T) {
	if got := NewDir("").Root(); got != DefaultDir {
		t.Fatalf("default root = %q, want %q", got, DefaultDir)
	}
}
