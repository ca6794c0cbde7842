package campaign

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ActivityRecorder records campaign events to durable storage. The nop
// implementation backs runs without a database.
type ActivityRecorder interface {
	Record(ctx context.Context, runID, eventType string, payload any) error
}

// Activity is one recorded campaign event.
type Activity struct {
	ID         string          `json:"id"`
	RunID      string          `json:"run_id"`
	EventType  string          `json:"event_type"`
	Payload    json.RawMessage `json:"payload"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Querier is the subset of pgxpool.Pool used by the activity store.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ActivityStore persists campaign events to Postgres.
type ActivityStore struct {
	db Querier
}

// NewActivityStore creates a Postgres-backed activity log.
func NewActivityStore(db Querier) *ActivityStore {
	if db == nil {
		panic("campaign: querier cannot be nil")
	}
	return &ActivityStore{db: db}
}

// Record inserts one event for the run.
func (s *ActivityStore) Record(ctx context.Context, runID, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("campaign: marshal %s payload: %w", eventType, err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO campaign_activity (id, run_id, event_type, payload, recorded_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(), runID, eventType, body, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("campaign: record %s: %w", eventType, err)
	}
	return nil
}

// ListByRun returns every event recorded for a run, oldest first.
func (s *ActivityStore) ListByRun(ctx context.Context, runID string) ([]Activity, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, run_id, event_type, payload, recorded_at
		 FROM campaign_activity
		 WHERE run_id = $1
		 ORDER BY recorded_at ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("campaign: list activity: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.RunID, &a.EventType, &a.Payload, &a.RecordedAt); err != nil {
			return nil, fmt.Errorf("campaign: scan activity: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("campaign: iterate activity: %w", err)
	}
	return out, nil
}

// CountByType returns how many events of one type a run recorded.
func (s *ActivityStore) CountByType(ctx context.Context, runID, eventType string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM campaign_activity WHERE run_id = $1 AND event_type = $2`,
		runID, eventType,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("campaign: count activity: %w", err)
	}
	return count, nil
}

// NopRecorder discards events. Used when no database is configured.
type NopRecorder struct{}

// Record does nothing.
func (NopRecorder) Record(context.Context, string, string, any) error { return nil }

var (
	_ ActivityRecorder = (*ActivityStore)(nil)
	_ ActivityRecorder = NopRecorder{}
)
