package progress

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/grind/internal/journal"
	"github.com/abhisek/grind/internal/store"
)

func sampleFile() File {
	data := store.SnapshotData{
		Reviews: []store.ReviewScheduleEntry{
			{Problem: "two_sum", Dates: []string{"2026-03-03", "2026-03-05"}},
		},
		Problems: map[string]store.ProblemOverrideData{
			"two_sum": {Status: "Completed", Notes: "hash map", SolutionPath: "solutions/two_sum.md"},
		},
		StudyStreak:    3,
		LastStudyDate:  "2026-03-02",
		TotalStudyTime: 95,
		WeeklyGoal:     5,
	}
	entries := []journal.Entry{
		{
			Date:    time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
			Slug:    "two_sum",
			Problem: "Two Sum",
			Minutes: 25,
		},
	}
	return Build(data, entries)
}

func TestRoundTrip(t *testing.T) {
	f := sampleFile()

	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Version != store.SnapshotVersion {
		t.Errorf("version = %d, want %d", got.Version, store.SnapshotVersion)
	}
	if got.StudyStreak != 3 || got.TotalStudyTime != 95 || got.WeeklyGoal != 5 {
		t.Errorf("state = %+v", got.SnapshotData)
	}
	if len(got.Reviews) != 1 || got.Reviews[0].Problem != "two_sum" {
		t.Errorf("reviews = %+v", got.Reviews)
	}
	if len(got.Logs) != 1 || got.Logs[0].Problem != "Two Sum" || got.Logs[0].Minutes != 25 {
		t.Errorf("logs = %+v", got.Logs)
	}
	if got.Problems["two_sum"].Notes != "hash map" {
		t.Errorf("problems = %+v", got.Problems)
	}
}

func TestWriteFileAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	if err := WriteFile(path, sampleFile()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got.StudyStreak != 3 {
		t.Fatalf("streak = %d, want 3", got.StudyStreak)
	}
}

func TestDecodeMinimalFile(t *testing.T) {
	f, err := Decode(strings.NewReader(`{"version": 1, "study_streak": 0, "total_study_time": 0, "weekly_goal": 5}`))
	if err != nil {
		t.Fatalf("Decode minimal: %v", err)
	}
	if f.Version != 1 {
		t.Fatalf("version = %d", f.Version)
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{not json`)); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestDecodeRejectsSchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing version", `{"study_streak": 1}`},
		{"bad review date", `{"version":1,"reviews":[{"problem":"two_sum","dates":["03/05/2026"]}]}`},
		{"negative minutes", `{"version":1,"logs":[{"date":"2026-03-02","problem":"Two Sum","minutes":-5}]}`},
		{"unknown field", `{"version":1,"bogus":true}`},
		{"zero weekly goal", `{"version":1,"weekly_goal":0}`},
		{"log missing problem", `{"version":1,"logs":[{"date":"2026-03-02"}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(c.body)); !errors.Is(err, ErrInvalid) {
				t.Fatalf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestDecodeRejectsNewerVersion(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"version": 999}`))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestEntriesParseLogs(t *testing.T) {
	f := File{Logs: []Log{
		{Date: "2026-03-02", Problem: "Two Sum", Minutes: 25},
		{Date: "not a date", Problem: "Broken"},
		{Date: "2026-03-03", Slug: "custom_slug", Problem: "Valid Anagram"},
	}}

	entries := f.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (bad date dropped)", len(entries))
	}
	if entries[0].Slug != "two_sum" {
		t.Errorf("missing slug should derive from name, got %q", entries[0].Slug)
	}
	if entries[1].Slug != "custom_slug" {
		t.Errorf("explicit slug overridden: %q", entries[1].Slug)
	}
}

func TestEncodeIsIndented(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleFile()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\n  \"version\": 1") {
		t.Fatalf("output not indented:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("output missing trailing newline")
	}
}
