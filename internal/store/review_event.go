package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type reviewRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *reviewRepo) Append(ctx context.Context, ev *ReviewEvent) error {
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
		INSERT INTO review_events
			(seq, id, session_id, slug, action, due_on, next_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Sequence, ev.ID, ev.SessionID, ev.Slug, ev.Action,
		ev.DueOn.Format(time.DateOnly), ev.NextOn.Format(time.DateOnly),
		ev.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert review event: %w", err)
	}
	return nil
}

func (r *reviewRepo) Query(ctx context.Context, opts QueryOpts) ([]ReviewEvent, error) {
	query := `
		SELECT seq, id, session_id, slug, action, due_on, next_on, created_at
		FROM review_events`
	where, args := buildWhere(opts, "due_on")
	query += where + orderAndLimit(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	defer rows.Close()

	var events []ReviewEvent
	for rows.Next() {
		var ev ReviewEvent
		var dueOn, nextOn, createdAt string
		if err := rows.Scan(
			&ev.Sequence, &ev.ID, &ev.SessionID, &ev.Slug, &ev.Action,
			&dueOn, &nextOn, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan review event: %w", err)
		}
		ev.DueOn, _ = time.Parse(time.DateOnly, dueOn)
		ev.NextOn, _ = time.Parse(time.DateOnly, nextOn)
		ev.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}
