package followup

import (
	"context"
	"time"

	"github.com/mathersonandsons/outreach-agent/internal/outreach"
)

// Job is a queued follow-up for a single contact.
type Job struct {
	ContactID string         `json:"contact_id"`
	Email     string         `json:"email"`
	Stage     outreach.Stage `json:"stage"`
	DueAt     time.Time      `json:"due_at"`
}

type queueMessage struct {
	ID            string
	Body          string
	ReceiptHandle string
}

// Queue is the transport for pending follow-up jobs. The in-memory
// implementation backs simulated runs; SQS backs deployed ones.
type Queue interface {
	Send(ctx context.Context, body string) error
	Receive(ctx context.Context, maxMessages int, waitSeconds int) ([]queueMessage, error)
	Delete(ctx context.Context, receiptHandle string) error
}
