package followup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mathersonandsons/outreach-agent/internal/outreach"
	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/internal/suppression"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// StageSender sends a campaign stage to a contact. Implemented by
// outreach.Sender.
type StageSender interface {
	SendStage(ctx context.Context, stage outreach.Stage, contact *prospecting.Contact, enrichment prospecting.Enrichment, now time.Time) (*outreach.Message, error)
}

// ReplyChecker reports whether a contact has already replied, in which case
// their pending follow-ups are dropped.
type ReplyChecker interface {
	HasReplied(email string) bool
}

// EnrichmentSource resolves the enrichment gathered for a contact during
// prospecting. Personalized follow-ups use it for message content.
type EnrichmentSource interface {
	EnrichmentFor(contactID string) (prospecting.Enrichment, bool)
}

// Worker drains due follow-up jobs from the queue and sends them. Jobs for
// contacts who replied or were suppressed are discarded; jobs not yet due are
// requeued.
type Worker struct {
	queue       Queue
	contacts    prospecting.Repository
	sender      StageSender
	suppressed  suppression.Store
	replied     ReplyChecker
	enrichments EnrichmentSource
	logger      *logging.Logger
}

// NewWorker creates a follow-up worker.
func NewWorker(
	queue Queue,
	contacts prospecting.Repository,
	sender StageSender,
	suppressed suppression.Store,
	replied ReplyChecker,
	enrichments EnrichmentSource,
	logger *logging.Logger,
) *Worker {
	if queue == nil {
		panic("followup: queue cannot be nil")
	}
	if contacts == nil {
		panic("followup: contact repository cannot be nil")
	}
	if sender == nil {
		panic("followup: sender cannot be nil")
	}
	if suppressed == nil {
		panic("followup: suppression store cannot be nil")
	}
	if replied == nil {
		panic("followup: reply checker cannot be nil")
	}
	if enrichments == nil {
		panic("followup: enrichment source cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Worker{
		queue:       queue,
		contacts:    contacts,
		sender:      sender,
		suppressed:  suppressed,
		replied:     replied,
		enrichments: enrichments,
		logger:      logger.Component("followup"),
	}
}

// ProcessDue handles every job whose due time is at or before now and returns
// the messages that were sent. Time is passed in rather than read from the
// clock so simulated runs can advance days in a single process.
func (w *Worker) ProcessDue(ctx context.Context, now time.Time) ([]*outreach.Message, error) {
	var sent []*outreach.Message
	var requeue []Job

	for {
		messages, err := w.queue.Receive(ctx, 10, 0)
		if err != nil {
			return sent, fmt.Errorf("followup: receive jobs: %w", err)
		}
		if len(messages) == 0 {
			break
		}

		for _, msg := range messages {
			var job Job
			if err := json.Unmarshal([]byte(msg.Body), &job); err != nil {
				w.logger.Error("dropping malformed follow-up job", "error", err, "message_id", msg.ID)
				_ = w.queue.Delete(ctx, msg.ReceiptHandle)
				continue
			}

			if job.DueAt.After(now) {
				requeue = append(requeue, job)
				_ = w.queue.Delete(ctx, msg.ReceiptHandle)
				continue
			}

			message, err := w.process(ctx, job, now)
			if err != nil {
				return sent, err
			}
			if message != nil {
				sent = append(sent, message)
			}
			if err := w.queue.Delete(ctx, msg.ReceiptHandle); err != nil {
				w.logger.Error("failed to delete processed job", "error", err, "message_id", msg.ID)
			}
		}
	}

	// Jobs not yet due go back on the queue for the next pass.
	for _, job := range requeue {
		body, err := json.Marshal(job)
		if err != nil {
			return sent, fmt.Errorf("followup: marshal requeued job: %w", err)
		}
		if err := w.queue.Send(ctx, string(body)); err != nil {
			return sent, fmt.Errorf("followup: requeue job for %s: %w", job.Email, err)
		}
	}

	return sent, nil
}

func (w *Worker) process(ctx context.Context, job Job, now time.Time) (*outreach.Message, error) {
	if w.replied.HasReplied(job.Email) {
		w.logger.Info("skipping follow-up, contact already replied", "email", job.Email, "stage", string(job.Stage))
		return nil, nil
	}

	blocked, err := w.suppressed.IsSuppressed(ctx, job.Email)
	if err != nil {
		return nil, fmt.Errorf("followup: check suppression for %s: %w", job.Email, err)
	}
	if blocked {
		w.logger.Info("skipping follow-up, contact suppressed", "email", job.Email, "stage", string(job.Stage))
		return nil, nil
	}

	contact, err := w.contacts.GetByID(ctx, job.ContactID)
	if err != nil {
		return nil, fmt.Errorf("followup: resolve contact %s: %w", job.ContactID, err)
	}

	enrichment, _ := w.enrichments.EnrichmentFor(contact.ID)

	message, err := w.sender.SendStage(ctx, job.Stage, contact, enrichment, now)
	if err != nil {
		return nil, fmt.Errorf("followup: send %s to %s: %w", job.Stage, job.Email, err)
	}

	w.logger.Info("follow-up sent", "email", job.Email, "stage", string(job.Stage))
	return message, nil
}
