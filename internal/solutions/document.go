package solutions

import (
	"fmt"
	"strings"
	"time"
)

// Document is the write-up captured for one solved problem. Zero-value
// metadata fields are left out of the rendered markdown.
type Document struct {
	Name       string
	Category   string
	Difficulty string
	Link       string
	Date       time.Time
	Minutes    int
	Approach   string
	Challenges string
	Code       string
	Language   string // fences the code block, e.g. "python"
}

// Render produces the markdown for the document.
func (d Document) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", d.Name)

	meta := d.metaLines()
	if len(meta) > 0 {
		b.WriteString("\n")
		for _, line := range meta {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	section(&b, "Approach", d.Approach)
	section(&b, "Challenges", d.Challenges)

	b.WriteString("\n## Solution\n\n```")
	b.WriteString(d.Language)
	b.WriteString("\n")
	if code := strings.TrimRight(d.Code, "\n"); code != "" {
		b.WriteString(code)
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	return b.String()
}

func (d Document) metaLines() []string {
	var lines []string
	if d.Category != "" {
		lines = append(lines, fmt.Sprintf("- Category: %s", d.Category))
	}
	if d.Difficulty != "" {
		lines = append(lines, fmt.Sprintf("- Difficulty: %s", d.Difficulty))
	}
	if d.Link != "" {
		lines = append(lines, fmt.Sprintf("- Link: %s", d.Link))
	}
	if !d.Date.IsZero() {
		solved := fmt.Sprintf("- Solved: %s", d.Date.Format(time.DateOnly))
		if d.Minutes > 0 {
			solved += fmt.Sprintf(" (%d minutes)", d.Minutes)
		}
		lines = append(lines, solved)
	}
	return lines
}

func section(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "\n## %s\n", title)
	if body = strings.TrimSpace(body); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}
}
