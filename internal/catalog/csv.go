package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultFile is the problem list consulted when no catalog path is
// configured.
const DefaultFile = "NeetCode 150 Personal List.csv"

// ErrFileNotFound marks a missing catalog file so callers can print setup
// guidance instead of a bare open error.
var ErrFileNotFound = errors.New("catalog file not found")

// Column defaults applied when the whole column is absent from the header.
// A present but empty cell is kept verbatim.
const (
	defaultCategory   = "Uncategorized"
	defaultDifficulty = "Unknown"
	defaultName       = "Unnamed Problem"
)

// LoadFile reads a problem list from a CSV file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return c, nil
}

// Load parses a problem list from CSV. The first row is a header; recognized
// columns are Category, Difficulty, Name, Status, Link and a notes column
// (any header starting with "Notes", matching the sheet export's verbose
// "Notes ( Fill in with your method to solve )"). Unknown columns are
// ignored and absent ones fall back to defaults; empty cells load as-is.
func Load(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := columnIndex(header)

	var problems []Problem
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		name := cols.get(row, colName, defaultName)
		problems = append(problems, Problem{
			Slug:       Slugify(name),
			Category:   cols.get(row, colCategory, defaultCategory),
			Difficulty: cols.get(row, colDifficulty, defaultDifficulty),
			Name:       name,
			Status:     cols.get(row, colStatus, StatusUnsolved),
			Link:       cols.get(row, colLink, ""),
			Notes:      cols.get(row, colNotes, ""),
		})
	}

	return New(problems), nil
}

type column int

const (
	colCategory column = iota
	colDifficulty
	colName
	colStatus
	colLink
	colNotes
	numColumns
)

type columns [numColumns]int

// columnIndex maps recognized header names to their positions. Absent
// columns stay at -1.
func columnIndex(header []string) columns {
	var cols columns
	for i := range cols {
		cols[i] = -1
	}
	for i, h := range header {
		switch name := strings.TrimSpace(h); {
		case name == "Category":
			cols[colCategory] = i
		case name == "Difficulty":
			cols[colDifficulty] = i
		case name == "Name":
			cols[colName] = i
		case name == "Status":
			cols[colStatus] = i
		case name == "Link":
			cols[colLink] = i
		case strings.HasPrefix(name, "Notes"):
			cols[colNotes] = i
		}
	}
	return cols
}

func (c columns) get(row []string, col column, fallback string) string {
	i := c[col]
	if i < 0 {
		return fallback
	}
	if i >= len(row) {
		return ""
	}
	return row[i]
}
