package followup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mathersonandsons/outreach-agent/internal/outreach"
	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// Scheduler queues follow-up jobs that become due after a configured delay.
type Scheduler struct {
	queue  Queue
	logger *logging.Logger
}

// NewScheduler creates a Scheduler on top of the provided queue.
func NewScheduler(queue Queue, logger *logging.Logger) *Scheduler {
	if queue == nil {
		panic("followup: queue cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Scheduler{
		queue:  queue,
		logger: logger.Component("followup"),
	}
}

// Schedule enqueues a stage for a contact, due at sentAt plus delay.
func (s *Scheduler) Schedule(ctx context.Context, contact *prospecting.Contact, stage outreach.Stage, sentAt time.Time, delay time.Duration) error {
	job := Job{
		ContactID: contact.ID,
		Email:     contact.Email,
		Stage:     stage,
		DueAt:     sentAt.Add(delay),
	}

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("followup: marshal job: %w", err)
	}
	if err := s.queue.Send(ctx, string(body)); err != nil {
		return fmt.Errorf("followup: schedule %s for %s: %w", stage, contact.Email, err)
	}

	s.logger.Info("follow-up scheduled",
		"contact_id", contact.ID,
		"email", contact.Email,
		"stage", string(stage),
		"due_at", job.DueAt,
	)
	return nil
}
