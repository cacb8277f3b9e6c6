package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type sessionRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *sessionRepo) Append(ctx context.Context, ev *SessionEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	ev.Sequence = seqNum
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO session_events
			(seq, id, session_id, action, solves, reviews, duration_secs, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Sequence, ev.ID, ev.SessionID, ev.Action,
		ev.Solves, ev.Reviews, ev.DurationSecs,
		ev.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert session event: %w", err)
	}
	return nil
}

func (r *sessionRepo) Query(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	query := `
		SELECT seq, id, session_id, action, solves, reviews, duration_secs, created_at
		FROM session_events`
	where, args := buildWhere(opts, "substr(created_at, 1, 10)")
	query += where + orderAndLimit(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var events []SessionEvent
	for rows.Next() {
		var ev SessionEvent
		var createdAt string
		if err := rows.Scan(
			&ev.Sequence, &ev.ID, &ev.SessionID, &ev.Action,
			&ev.Solves, &ev.Reviews, &ev.DurationSecs, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		ev.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}
