package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/grind/internal/store"
)

// StartSession opens a timed study session and returns its id for the
// solve events logged during it.
func (t *Tracker) StartSession(ctx context.Context) (string, error) {
	id := uuid.NewString()
	ev := &store.SessionEvent{SessionID: id, Action: store.SessionActionStarted}
	if err := t.st.Sessions().Append(ctx, ev); err != nil {
		return "", fmt.Errorf("record session start: %w", err)
	}
	t.log.Debug().Str("session_id", id).Msg("session started")
	return id, nil
}

// EndSession closes a study session with its outcome counts.
func (t *Tracker) EndSession(ctx context.Context, id string, solves, reviews int, elapsed time.Duration) error {
	ev := &store.SessionEvent{
		SessionID:    id,
		Action:       store.SessionActionEnded,
		Solves:       solves,
		Reviews:      reviews,
		DurationSecs: int(elapsed.Seconds()),
	}
	if err := t.st.Sessions().Append(ctx, ev); err != nil {
		return fmt.Errorf("record session end: %w", err)
	}
	t.log.Debug().
		Str("session_id", id).
		Int("solves", solves).
		Int("reviews", reviews).
		Dur("elapsed", elapsed).
		Msg("session ended")
	return nil
}
