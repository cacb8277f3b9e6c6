package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type solveRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *solveRepo) Append(ctx context.Context, ev *SolveEvent) error {
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
		INSERT INTO solve_events
			(seq, id, session_id, slug, problem, logged_on, minutes,
			 approach, challenges, solution, solution_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Sequence, ev.ID, ev.SessionID, ev.Slug, ev.Problem,
		ev.LoggedOn.Format(time.DateOnly), ev.Minutes,
		ev.Approach, ev.Challenges, ev.Solution, ev.SolutionPath,
		ev.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert solve event: %w", err)
	}
	return nil
}

func (r *solveRepo) Query(ctx context.Context, opts QueryOpts) ([]SolveEvent, error) {
	query := `
		SELECT seq, id, session_id, slug, problem, logged_on, minutes,
		       approach, challenges, solution, solution_path, created_at
		FROM solve_events`
	where, args := buildWhere(opts, "logged_on")
	query += where + orderAndLimit(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query solve events: %w", err)
	}
	defer rows.Close()

	var events []SolveEvent
	for rows.Next() {
		var ev SolveEvent
		var loggedOn, createdAt string
		if err := rows.Scan(
			&ev.Sequence, &ev.ID, &ev.SessionID, &ev.Slug, &ev.Problem,
			&loggedOn, &ev.Minutes, &ev.Approach, &ev.Challenges,
			&ev.Solution, &ev.SolutionPath, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan solve event: %w", err)
		}
		ev.LoggedOn, _ = time.Parse(time.DateOnly, loggedOn)
		ev.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// buildWhere renders QueryOpts into a WHERE clause. dateCol is the
// day-granularity column the From/To bounds apply to.
func buildWhere(opts QueryOpts, dateCol string) (string, []any) {
	var conds []string
	var args []any
	if opts.After > 0 {
		conds = append(conds, "seq > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		conds = append(conds, "seq < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		conds = append(conds, dateCol+" >= ?")
		args = append(args, opts.From.Format(time.DateOnly))
	}
	if !opts.To.IsZero() {
		conds = append(conds, dateCol+" <= ?")
		args = append(args, opts.To.Format(time.DateOnly))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderAndLimit(opts QueryOpts) string {
	order := " ORDER BY seq ASC"
	if opts.Newest {
		order = " ORDER BY seq DESC"
	}
	if opts.Limit > 0 {
		return fmt.Sprintf("%s LIMIT %d", order, opts.Limit)
	}
	return order
}
