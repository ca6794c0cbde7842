package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mathersonandsons/outreach-agent/internal/booking"
	"github.com/mathersonandsons/outreach-agent/internal/events"
	"github.com/mathersonandsons/outreach-agent/internal/followup"
	"github.com/mathersonandsons/outreach-agent/internal/notify"
	"github.com/mathersonandsons/outreach-agent/internal/observability/metrics"
	"github.com/mathersonandsons/outreach-agent/internal/outreach"
	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/internal/replies"
	"github.com/mathersonandsons/outreach-agent/internal/suppression"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// ReportArchiver uploads a finished campaign report. Implemented by Archiver.
type ReportArchiver interface {
	Archive(ctx context.Context, report *Report) (string, error)
}

// RunnerConfig holds the campaign parameters.
type RunnerConfig struct {
	IndustryKeywords  string
	TargetRegion      string
	TargetRoles       []string
	FollowupDelay     time.Duration
	PersonalizedDelay time.Duration
}

// Runner drives a complete campaign: discovery, initial outreach, scheduled
// follow-ups, reply handling, notifications and meeting booking. Time is
// simulated: the runner advances a logical clock through the follow-up days
// instead of sleeping.
type Runner struct {
	cfg RunnerConfig

	directory prospecting.Directory
	enricher  *prospecting.Enricher
	contacts  prospecting.Repository

	sender    followup.StageSender
	scheduler *followup.Scheduler
	worker    *followup.Worker

	processor  *replies.Processor
	suppressed suppression.Store
	notifier   *notify.Service
	booker     *booking.Booker

	state    *State
	activity ActivityRecorder
	archiver ReportArchiver
	metrics  *metrics.OutreachMetrics

	tracer trace.Tracer
	logger *logging.Logger
}

// RunnerDeps bundles the collaborators a Runner needs.
type RunnerDeps struct {
	Directory  prospecting.Directory
	Enricher   *prospecting.Enricher
	Contacts   prospecting.Repository
	Sender     followup.StageSender
	Scheduler  *followup.Scheduler
	Worker     *followup.Worker
	Processor  *replies.Processor
	Suppressed suppression.Store
	Notifier   *notify.Service
	Booker     *booking.Booker
	State      *State
	Activity   ActivityRecorder
	Archiver   ReportArchiver
	Metrics    *metrics.OutreachMetrics
	Logger     *logging.Logger
}

// NewRunner creates a campaign runner.
func NewRunner(cfg RunnerConfig, deps RunnerDeps) *Runner {
	if deps.Directory == nil {
		panic("campaign: directory cannot be nil")
	}
	if deps.Enricher == nil {
		panic("campaign: enricher cannot be nil")
	}
	if deps.Contacts == nil {
		panic("campaign: contact repository cannot be nil")
	}
	if deps.Sender == nil {
		panic("campaign: sender cannot be nil")
	}
	if deps.Scheduler == nil {
		panic("campaign: scheduler cannot be nil")
	}
	if deps.Worker == nil {
		panic("campaign: worker cannot be nil")
	}
	if deps.Processor == nil {
		panic("campaign: reply processor cannot be nil")
	}
	if deps.Suppressed == nil {
		panic("campaign: suppression store cannot be nil")
	}
	if deps.Notifier == nil {
		panic("campaign: notifier cannot be nil")
	}
	if deps.Booker == nil {
		panic("campaign: booker cannot be nil")
	}
	if deps.State == nil {
		deps.State = NewState()
	}
	if deps.Activity == nil {
		deps.Activity = NopRecorder{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.Default()
	}
	if cfg.FollowupDelay <= 0 {
		cfg.FollowupDelay = 72 * time.Hour
	}
	if cfg.PersonalizedDelay <= cfg.FollowupDelay {
		cfg.PersonalizedDelay = cfg.FollowupDelay + 24*time.Hour
	}

	return &Runner{
		cfg:        cfg,
		directory:  deps.Directory,
		enricher:   deps.Enricher,
		contacts:   deps.Contacts,
		sender:     deps.Sender,
		scheduler:  deps.Scheduler,
		worker:     deps.Worker,
		processor:  deps.Processor,
		suppressed: deps.Suppressed,
		notifier:   deps.Notifier,
		booker:     deps.Booker,
		state:      deps.State,
		activity:   deps.Activity,
		archiver:   deps.Archiver,
		metrics:    deps.Metrics,
		tracer:     otel.Tracer("campaign"),
		logger:     deps.Logger.Component("campaign"),
	}
}

// State exposes the run's live state for the status API.
func (r *Runner) State() *State {
	return r.state
}

// Run executes the full campaign from the given start time and returns the
// final report. The first stage error aborts the run.
func (r *Runner) Run(ctx context.Context, start time.Time) (*Report, error) {
	runID := uuid.NewString()

	ctx, span := r.tracer.Start(ctx, "campaign.run",
		trace.WithAttributes(attribute.String("run.id", runID)))
	defer span.End()

	r.logger.Info("starting outreach campaign",
		"run_id", runID,
		"industry", r.cfg.IndustryKeywords,
		"region", r.cfg.TargetRegion,
	)

	if err := r.discover(ctx, runID, start); err != nil {
		return nil, err
	}
	if err := r.sendInitial(ctx, runID, start); err != nil {
		return nil, err
	}

	// Immediate responses to the initial wave.
	if err := r.checkResponses(ctx, runID, start); err != nil {
		return nil, err
	}

	// Day 3: plain follow-up to everyone who has not replied.
	day3 := start.Add(r.cfg.FollowupDelay)
	if err := r.processFollowups(ctx, runID, day3); err != nil {
		return nil, err
	}
	if err := r.checkResponses(ctx, runID, day3); err != nil {
		return nil, err
	}

	// Day 4: personalized one-on-one email to the remaining holdouts.
	day4 := start.Add(r.cfg.PersonalizedDelay)
	if err := r.processFollowups(ctx, runID, day4); err != nil {
		return nil, err
	}
	if err := r.checkResponses(ctx, runID, day4); err != nil {
		return nil, err
	}

	report := BuildReport(runID, r.state, start, day4)
	summary := report.Summary
	r.logger.Info("campaign finished",
		"run_id", runID,
		"contacts", summary.TotalContacts,
		"messages_sent", summary.MessagesSent,
		"bounced", summary.Bounced,
		"unsubscribed", summary.Unsubscribed,
		"replied", summary.Replied,
		"interested", summary.Interested,
		"meetings_booked", summary.MeetingsBooked,
	)

	if r.archiver != nil {
		key, err := r.archiver.Archive(ctx, report)
		if err != nil {
			return nil, fmt.Errorf("campaign: archive report: %w", err)
		}
		r.logger.Info("report archived", "run_id", runID, "key", key)
	}

	return report, nil
}

func (r *Runner) discover(ctx context.Context, runID string, now time.Time) error {
	ctx, span := r.tracer.Start(ctx, "campaign.discover")
	defer span.End()

	req := prospecting.SearchRequest{
		IndustryKeywords: r.cfg.IndustryKeywords,
		Region:           r.cfg.TargetRegion,
		TargetRoles:      r.cfg.TargetRoles,
	}
	contacts, err := r.directory.Search(ctx, req)
	if err != nil {
		return fmt.Errorf("campaign: discover contacts: %w", err)
	}

	for _, contact := range contacts {
		enrichment := r.enricher.Enrich(contact)
		if err := r.contacts.Put(ctx, contact); err != nil {
			return fmt.Errorf("campaign: store contact %s: %w", contact.Email, err)
		}
		r.state.AddContact(contact, enrichment)
		r.metrics.ContactDiscovered()

		if err := r.activity.Record(ctx, runID, events.TypeContactDiscovered, events.ContactDiscoveredV1{
			ContactID: contact.ID,
			Name:      contact.Name,
			Role:      contact.Role,
			Email:     contact.Email,
			Company:   contact.Company.Name,
			Industry:  contact.Company.Industry,
			At:        now,
		}); err != nil {
			return err
		}
	}

	span.SetAttributes(attribute.Int("contacts.count", len(contacts)))
	r.logger.Info("discovery complete", "run_id", runID, "contacts", len(contacts))
	return nil
}

func (r *Runner) sendInitial(ctx context.Context, runID string, now time.Time) error {
	ctx, span := r.tracer.Start(ctx, "campaign.send_initial")
	defer span.End()

	contacts := r.state.Contacts()
	r.logger.Info("sending initial emails", "run_id", runID, "contacts", len(contacts))

	for _, contact := range contacts {
		enrichment, _ := r.state.EnrichmentFor(contact.ID)
		msg, err := r.sender.SendStage(ctx, outreach.StageInitial, contact, enrichment, now)
		if err != nil {
			return fmt.Errorf("campaign: initial email to %s: %w", contact.Email, err)
		}
		if err := r.recordMessage(ctx, runID, msg); err != nil {
			return err
		}

		// Both later waves are queued up front; the worker drops jobs for
		// contacts who reply or get suppressed in the meantime.
		if err := r.scheduler.Schedule(ctx, contact, outreach.StageFollowup, now, r.cfg.FollowupDelay); err != nil {
			return err
		}
		if err := r.scheduler.Schedule(ctx, contact, outreach.StagePersonalized, now, r.cfg.PersonalizedDelay); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) processFollowups(ctx context.Context, runID string, now time.Time) error {
	ctx, span := r.tracer.Start(ctx, "campaign.followups",
		trace.WithAttributes(attribute.String("due.at", now.Format(time.RFC3339))))
	defer span.End()

	sent, err := r.worker.ProcessDue(ctx, now)
	if err != nil {
		return err
	}
	for _, msg := range sent {
		if err := r.recordMessage(ctx, runID, msg); err != nil {
			return err
		}
	}

	r.logger.Info("follow-up wave processed", "run_id", runID, "sent", len(sent))
	return nil
}

func (r *Runner) checkResponses(ctx context.Context, runID string, now time.Time) error {
	ctx, span := r.tracer.Start(ctx, "campaign.check_responses")
	defer span.End()

	results, err := r.processor.Process(ctx, r.state.SentInitial())
	if err != nil {
		return err
	}

	for _, reply := range results {
		r.state.RecordReply(reply)
		r.metrics.ReplyClassified(string(reply.Label))

		if err := r.activity.Record(ctx, runID, events.TypeReplyClassified, events.ReplyClassifiedV1{
			ReplyID:   reply.ID,
			ContactID: reply.ContactID,
			Email:     reply.Email,
			Label:     string(reply.Label),
			At:        now,
		}); err != nil {
			return err
		}

		if err := r.handleReply(ctx, runID, reply, now); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) handleReply(ctx context.Context, runID string, reply *replies.Reply, now time.Time) error {
	switch reply.Label {
	case replies.LabelBounced:
		r.state.MarkBounced(reply.Email)
		if err := r.suppressed.Add(ctx, reply.Email, suppression.ReasonBounced); err != nil {
			return fmt.Errorf("campaign: suppress bounced %s: %w", reply.Email, err)
		}

	case replies.LabelUnsubscribed:
		r.state.MarkUnsubscribed(reply.Email)
		if err := r.suppressed.Add(ctx, reply.Email, suppression.ReasonUnsubscribed); err != nil {
			return fmt.Errorf("campaign: suppress unsubscribed %s: %w", reply.Email, err)
		}

	case replies.LabelOutOfOffice:
		// Not a real reply; the contact stays in the follow-up sequence.

	case replies.LabelInterested:
		r.state.MarkReplied(reply.Email)
		r.state.MarkInterested(reply.Email)
		return r.handleInterested(ctx, runID, reply, now)

	default:
		r.state.MarkReplied(reply.Email)
	}

	return nil
}

func (r *Runner) handleInterested(ctx context.Context, runID string, reply *replies.Reply, now time.Time) error {
	var contact *prospecting.Contact
	if reply.ContactID != "" {
		var err error
		contact, err = r.contacts.GetByID(ctx, reply.ContactID)
		if err != nil {
			return fmt.Errorf("campaign: resolve interested contact %s: %w", reply.Email, err)
		}
	}

	if err := r.notifier.NotifyInterested(ctx, contact, reply); err != nil {
		return err
	}
	r.metrics.NotificationSent()

	if contact == nil {
		r.logger.Warn("interested reply from unknown address, skipping booking", "email", reply.Email)
		return nil
	}

	meeting, err := r.booker.BookMeeting(ctx, contact, now)
	if err != nil {
		return err
	}
	r.state.RecordMeeting(meeting)
	r.metrics.MeetingBooked()

	return r.activity.Record(ctx, runID, events.TypeMeetingBooked, events.MeetingBookedV1{
		MeetingID: meeting.ID,
		ContactID: meeting.ContactID,
		Email:     meeting.Email,
		Start:     meeting.Start,
		End:       meeting.End,
		At:        now,
	})
}

func (r *Runner) recordMessage(ctx context.Context, runID string, msg *outreach.Message) error {
	r.state.RecordMessage(msg)
	r.metrics.MessageSent(string(msg.Stage))

	return r.activity.Record(ctx, runID, events.TypeMessageSent, events.MessageSentV1{
		MessageID: msg.ID,
		ContactID: msg.ContactID,
		Email:     msg.Email,
		Stage:     string(msg.Stage),
		Subject:   msg.Subject,
		At:        msg.SentAt,
	})
}
