package outreach

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/internal/outreach/templates"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// Sender renders campaign templates and hands the result to an EmailSender.
type Sender struct {
	email       EmailSender
	renderer    templates.Renderer
	fromName    string
	fromCompany string
	logger      *logging.Logger
}

// NewSender creates a campaign sender.
func NewSender(email EmailSender, fromName, fromCompany string, logger *logging.Logger) *Sender {
	if logger == nil {
		logger = logging.Default()
	}
	return &Sender{
		email:       email,
		fromName:    fromName,
		fromCompany: fromCompany,
		logger:      logger.Component("outreach"),
	}
}

// SendStage sends one templated email for the given stage and returns the
// Message record. The enrichment may be zero-valued; template defaults cover
// the missing fields.
func (s *Sender) SendStage(ctx context.Context, stage Stage, contact *prospecting.Contact, enr prospecting.Enrichment, now time.Time) (*Message, error) {
	tmpl, err := templates.Lookup(string(stage))
	if err != nil {
		return nil, ErrUnknownStage
	}

	data := templates.Data{
		ContactName: contact.Name,
		Role:        contact.Role,
		Company:     contact.Company.Name,
		CompanySize: contact.Company.Size,
		Industry:    contact.Company.Industry,
		RecentNews:  enr.RecentNews,
		Interests:   enr.Interests,
		FromName:    s.fromName,
		FromCompany: s.fromCompany,
	}.WithDefaults()

	rendered, err := s.renderer.Render(string(stage), tmpl, data)
	if err != nil {
		return nil, fmt.Errorf("outreach: render %s email: %w", stage, err)
	}
	subject, body, err := templates.SplitSubject(rendered)
	if err != nil {
		return nil, fmt.Errorf("outreach: %s email: %w", stage, err)
	}

	msg := EmailMessage{
		To:      contact.Email,
		ToName:  contact.Name,
		Subject: subject,
		Body:    body,
	}
	if err := s.email.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("outreach: send %s email to %s: %w", stage, contact.Email, err)
	}

	s.logger.Info("campaign email sent",
		"stage", string(stage),
		"contact", contact.Name,
		"email", contact.Email,
		"company", contact.Company.Name,
	)

	return &Message{
		ID:        uuid.NewString(),
		ContactID: contact.ID,
		Email:     contact.Email,
		Stage:     stage,
		Subject:   subject,
		Body:      body,
		SentAt:    now,
	}, nil
}
