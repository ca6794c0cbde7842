package campaign

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityStoreRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO campaign_activity").
		WithArgs(pgxmock.AnyArg(), "run-1", "message.sent.v1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	store := NewActivityStore(mock)
	err = store.Record(context.Background(), "run-1", "message.sent.v1", map[string]string{"email": "m.chen@example.com"})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityStoreListByRun(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	recordedAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "run_id", "event_type", "payload", "recorded_at"}).
		AddRow("a-1", "run-1", "contact.discovered.v1", json.RawMessage(`{"email":"john.doe@example.com"}`), recordedAt).
		AddRow("a-2", "run-1", "message.sent.v1", json.RawMessage(`{"stage":"initial"}`), recordedAt.Add(time.Minute))

	mock.ExpectQuery("SELECT id, run_id, event_type, payload, recorded_at").
		WithArgs("run-1").
		WillReturnRows(rows)

	store := NewActivityStore(mock)
	activities, err := store.ListByRun(context.Background(), "run-1")
	require.NoError(t, err)

	require.Len(t, activities, 2)
	assert.Equal(t, "contact.discovered.v1", activities[0].EventType)
	assert.JSONEq(t, `{"email":"john.doe@example.com"}`, string(activities[0].Payload))
	assert.Equal(t, recordedAt.Add(time.Minute), activities[1].RecordedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityStoreCountByType(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("run-1", "meeting.booked.v1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	store := NewActivityStore(mock)
	count, err := store.CountByType(context.Background(), "run-1", "meeting.booked.v1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
