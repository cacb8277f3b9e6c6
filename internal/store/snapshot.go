package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// snapshotRepo implements SnapshotRepo on the snapshots table.
type snapshotRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.Sequence == 0 {
		seqNum, err := r.seq.Current(ctx)
		if err != nil {
			return err
		}
		snap.Sequence = seqNum
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	if snap.Data.Version == 0 {
		snap.Data.Version = SnapshotVersion
	}

	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO snapshots (sequence, timestamp, data) VALUES (?, ?, ?)`,
		snap.Sequence, snap.Timestamp.Format(time.RFC3339), string(data),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, sequence, timestamp, data
		FROM snapshots
		ORDER BY id DESC
		LIMIT 1`)

	var snap Snapshot
	var timestamp, data string
	err := row.Scan(&snap.ID, &snap.Sequence, &timestamp, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	snap.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
	if err := json.Unmarshal([]byte(data), &snap.Data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM snapshots
		WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
