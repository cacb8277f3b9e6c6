package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination. Results
// come back in ascending sequence order unless Limit is combined with
// Newest, which returns the most recent events first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // event day >= From
	To     time.Time // event day <= To
	Newest bool      // descending sequence order
}

// SolveEvent records one logged solve: the journal entry plus where its
// solution document landed.
type SolveEvent struct {
	Sequence     int64
	ID           string
	SessionID    string
	Slug         string
	Problem      string
	LoggedOn     time.Time
	Minutes      int
	Approach     string
	Challenges   string
	Solution     string
	SolutionPath string
	CreatedAt    time.Time
}

// Review event actions.
const (
	ReviewActionReviewed = "reviewed"
	ReviewActionUpdated  = "updated"
)

// ReviewEvent records a handled spaced-repetition review.
type ReviewEvent struct {
	Sequence  int64
	ID        string
	SessionID string
	Slug      string
	Action    string
	DueOn     time.Time
	NextOn    time.Time
	CreatedAt time.Time
}

// Session event actions.
const (
	SessionActionStarted = "started"
	SessionActionEnded   = "ended"
)

// SessionEvent records a study session boundary.
type SessionEvent struct {
	Sequence     int64
	ID           string
	SessionID    string
	Action       string
	Solves       int
	Reviews      int
	DurationSecs int
	CreatedAt    time.Time
}

// SolveRepo provides append and query access to solve events.
type SolveRepo interface {
	// Append stores the event, stamping Sequence, ID and CreatedAt.
	Append(ctx context.Context, ev *SolveEvent) error
	Query(ctx context.Context, opts QueryOpts) ([]SolveEvent, error)
}

// ReviewRepo provides append and query access to review events.
type ReviewRepo interface {
	Append(ctx context.Context, ev *ReviewEvent) error
	Query(ctx context.Context, opts QueryOpts) ([]ReviewEvent, error)
}

// SessionRepo provides append and query access to session events.
type SessionRepo interface {
	Append(ctx context.Context, ev *SessionEvent) error
	Query(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)
}

// ReviewScheduleEntry is one problem's pending review dates, in stored order.
type ReviewScheduleEntry struct {
	Problem string   `json:"problem"`
	Dates   []string `json:"dates"`
}

// ProblemOverrideData layers tracked status and notes over the catalog file.
type ProblemOverrideData struct {
	Status       string `json:"status,omitempty"`
	Notes        string `json:"notes,omitempty"`
	SolutionPath string `json:"solution_path,omitempty"`
}

// SnapshotData captures the full tracker state at a point in time.
type SnapshotData struct {
	Version        int                            `json:"version"`
	Reviews        []ReviewScheduleEntry          `json:"reviews,omitempty"`
	Problems       map[string]ProblemOverrideData `json:"problems,omitempty"`
	StudyStreak    int                            `json:"study_streak"`
	LastStudyDate  string                         `json:"last_study_date,omitempty"`
	TotalStudyTime int                            `json:"total_study_time"`
	WeeklyGoal     int                            `json:"weekly_goal"`
}

// SnapshotVersion is the current SnapshotData layout version.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of tracker state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages tracker state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. A zero Sequence is stamped with the
	// last issued event sequence so replay can resume after it.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
