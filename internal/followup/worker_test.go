package followup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathersonandsons/outreach-agent/internal/outreach"
	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/internal/suppression"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

type recordingSender struct {
	sent []outreach.Stage
}

func (s *recordingSender) SendStage(_ context.Context, stage outreach.Stage, contact *prospecting.Contact, _ prospecting.Enrichment, now time.Time) (*outreach.Message, error) {
	s.sent = append(s.sent, stage)
	return &outreach.Message{
		ID:        uuid.NewString(),
		ContactID: contact.ID,
		Email:     contact.Email,
		Stage:     stage,
		SentAt:    now,
	}, nil
}

type repliedSet map[string]bool

func (r repliedSet) HasReplied(email string) bool { return r[email] }

type noEnrichment struct{}

func (noEnrichment) EnrichmentFor(string) (prospecting.Enrichment, bool) {
	return prospecting.Enrichment{}, false
}

func seedContact(t *testing.T, repo prospecting.Repository, email string) *prospecting.Contact {
	t.Helper()
	contact := &prospecting.Contact{
		ID:    uuid.NewString(),
		Name:  "Sarah Chen",
		Role:  "CFO",
		Email: email,
		Company: prospecting.Company{
			Name:     "Aussie Manufacturing Co",
			Industry: "Manufacturing",
			Size:     "200-500 employees",
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Put(context.Background(), contact))
	return contact
}

func newTestWorker(t *testing.T, queue Queue, repo prospecting.Repository, sender StageSender, replied ReplyChecker) *Worker {
	t.Helper()
	return NewWorker(queue, repo, sender, suppression.NewInMemoryStore(), replied, noEnrichment{}, logging.Default())
}

func TestWorkerSendsDueJobs(t *testing.T) {
	ctx := context.Background()
	queue := NewMemoryQueue(8)
	repo := prospecting.NewInMemoryRepository()
	sender := &recordingSender{}

	contact := seedContact(t, repo, "sarah.chen@aussiemanufacturing.com.au")

	scheduler := NewScheduler(queue, logging.Default())
	sentAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, scheduler.Schedule(ctx, contact, outreach.StageFollowup, sentAt, 72*time.Hour))

	worker := newTestWorker(t, queue, repo, sender, repliedSet{})

	sent, err := worker.ProcessDue(ctx, sentAt.Add(73*time.Hour))
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, outreach.StageFollowup, sent[0].Stage)
	assert.Equal(t, contact.Email, sent[0].Email)
}

func TestWorkerRequeuesNotYetDueJobs(t *testing.T) {
	ctx := context.Background()
	queue := NewMemoryQueue(8)
	repo := prospecting.NewInMemoryRepository()
	sender := &recordingSender{}

	contact := seedContact(t, repo, "sarah.chen@aussiemanufacturing.com.au")

	scheduler := NewScheduler(queue, logging.Default())
	sentAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, scheduler.Schedule(ctx, contact, outreach.StageFollowup, sentAt, 72*time.Hour))

	worker := newTestWorker(t, queue, repo, sender, repliedSet{})

	// One hour in: nothing is due yet.
	sent, err := worker.ProcessDue(ctx, sentAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, sent)
	assert.Empty(t, sender.sent)

	// Day three: the requeued job is now due.
	sent, err = worker.ProcessDue(ctx, sentAt.Add(72*time.Hour))
	require.NoError(t, err)
	require.Len(t, sent, 1)
}

func TestWorkerSkipsRepliedContacts(t *testing.T) {
	ctx := context.Background()
	queue := NewMemoryQueue(8)
	repo := prospecting.NewInMemoryRepository()
	sender := &recordingSender{}

	contact := seedContact(t, repo, "sarah.chen@aussiemanufacturing.com.au")

	scheduler := NewScheduler(queue, logging.Default())
	sentAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, scheduler.Schedule(ctx, contact, outreach.StageFollowup, sentAt, 72*time.Hour))

	worker := newTestWorker(t, queue, repo, sender, repliedSet{contact.Email: true})

	sent, err := worker.ProcessDue(ctx, sentAt.Add(96*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, sent)
	assert.Empty(t, sender.sent)
}

func TestWorkerSkipsSuppressedContacts(t *testing.T) {
	ctx := context.Background()
	queue := NewMemoryQueue(8)
	repo := prospecting.NewInMemoryRepository()
	sender := &recordingSender{}
	suppressed := suppression.NewInMemoryStore()

	contact := seedContact(t, repo, "mike.osullivan@melbindustrial.com.au")
	require.NoError(t, suppressed.Add(ctx, contact.Email, suppression.ReasonUnsubscribed))

	scheduler := NewScheduler(queue, logging.Default())
	sentAt := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, scheduler.Schedule(ctx, contact, outreach.StageFollowup, sentAt, 72*time.Hour))

	worker := NewWorker(queue, repo, sender, suppressed, repliedSet{}, noEnrichment{}, logging.Default())

	sent, err := worker.ProcessDue(ctx, sentAt.Add(96*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, sent)
	assert.Empty(t, sender.sent)
}

func TestWorkerDropsMalformedJobs(t *testing.T) {
	ctx := context.Background()
	queue := NewMemoryQueue(8)
	repo := prospecting.NewInMemoryRepository()
	sender := &recordingSender{}

	require.NoError(t, queue.Send(ctx, "{not json"))

	worker := newTestWorker(t, queue, repo, sender, repliedSet{})

	sent, err := worker.ProcessDue(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, sent)

	// The malformed message must not come back.
	messages, err := queue.Receive(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, messages)
}
