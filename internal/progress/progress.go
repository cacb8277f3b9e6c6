// Package progress reads and writes the portable progress file: the full
// tracker state as indented JSON, schema-checked on the way in so a
// hand-edited file can't corrupt the store.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/grind/internal/catalog"
	"github.com/abhisek/grind/internal/journal"
	"github.com/abhisek/grind/internal/store"
)

// DefaultFile is the default export path.
const DefaultFile = "grind_progress.json"

// ErrInvalid marks a progress file that failed schema validation.
var ErrInvalid = errors.New("invalid progress file")

// ErrUnsupportedVersion marks a file written by a newer build.
var ErrUnsupportedVersion = errors.New("progress file version not supported")

// Log is one journal entry in file form.
type Log struct {
	Date         string `json:"date"`
	Slug         string `json:"slug,omitempty"`
	Problem      string `json:"problem"`
	Minutes      int    `json:"minutes,omitempty"`
	Approach     string `json:"approach,omitempty"`
	Challenges   string `json:"challenges,omitempty"`
	Solution     string `json:"solution,omitempty"`
	SolutionPath string `json:"solution_path,omitempty"`
}

// File is the progress file layout: the snapshot state plus the solve log.
type File struct {
	store.SnapshotData
	Logs []Log `json:"logs,omitempty"`
}

// Build assembles a file from current state.
func Build(data store.SnapshotData, entries []journal.Entry) File {
	data.Version = store.SnapshotVersion
	logs := make([]Log, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, Log{
			Date:         e.Date.Format(time.DateOnly),
			Slug:         e.Slug,
			Problem:      e.Problem,
			Minutes:      e.Minutes,
			Approach:     e.Approach,
			Challenges:   e.Challenges,
			Solution:     e.Solution,
			SolutionPath: e.SolutionPath,
		})
	}
	return File{SnapshotData: data, Logs: logs}
}

// Entries converts the file's logs back to journal entries. Slugs missing
// from hand-written files derive from the problem name.
func (f File) Entries() []journal.Entry {
	entries := make([]journal.Entry, 0, len(f.Logs))
	for _, l := range f.Logs {
		d, err := time.Parse(time.DateOnly, l.Date)
		if err != nil {
			continue
		}
		slug := l.Slug
		if slug == "" {
			slug = catalog.Slugify(l.Problem)
		}
		entries = append(entries, journal.Entry{
			Date:         d,
			Slug:         slug,
			Problem:      l.Problem,
			Minutes:      l.Minutes,
			Approach:     l.Approach,
			Challenges:   l.Challenges,
			Solution:     l.Solution,
			SolutionPath: l.SolutionPath,
		})
	}
	return entries
}

// Encode writes the file as indented JSON.
func Encode(w io.Writer, f File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteFile writes the file atomically to path.
func WriteFile(path string, f File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	data = append(data, '\n')
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Decode parses and validates a progress file.
func Decode(r io.Reader) (File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("read progress file: %w", err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if f.Version > store.SnapshotVersion {
		return File{}, fmt.Errorf("%w: file version %d, this build reads up to %d",
			ErrUnsupportedVersion, f.Version, store.SnapshotVersion)
	}

	compiled, err := compiledSchema()
	if err != nil {
		return File{}, err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return f, nil
}

// ReadFile reads and validates the progress file at path.
func ReadFile(path string) (File, error) {
	r, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer r.Close()
	return Decode(r)
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(fileSchema), &doc); err != nil {
			schemaErr = fmt.Errorf("parse progress schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://progress.json", doc); err != nil {
			schemaErr = fmt.Errorf("add progress schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile("schema://progress.json")
	})
	return schema, schemaErr
}

const fileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "reviews": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["problem", "dates"],
        "additionalProperties": false,
        "properties": {
          "problem": {"type": "string", "minLength": 1},
          "dates": {
            "type": "array",
            "items": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
          }
        }
      }
    },
    "problems": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "status": {"type": "string"},
          "notes": {"type": "string"},
          "solution_path": {"type": "string"}
        }
      }
    },
    "study_streak": {"type": "integer", "minimum": 0},
    "last_study_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "total_study_time": {"type": "integer", "minimum": 0},
    "weekly_goal": {"type": "integer", "minimum": 1},
    "logs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["date", "problem"],
        "additionalProperties": false,
        "properties": {
          "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
          "slug": {"type": "string"},
          "problem": {"type": "string", "minLength": 1},
          "minutes": {"type": "integer", "minimum": 0},
          "approach": {"type": "string"},
          "challenges": {"type": "string"},
          "solution": {"type": "string"},
          "solution_path": {"type": "string"}
        }
      }
    }
  }
}`
