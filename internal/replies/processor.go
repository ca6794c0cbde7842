package replies

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// Processor fetches raw responses, classifies them and ties them back to
// campaign contacts.
type Processor struct {
	inbox    Inbox
	contacts prospecting.Repository
	logger   *logging.Logger
}

// NewProcessor creates a reply processor.
func NewProcessor(inbox Inbox, contacts prospecting.Repository, logger *logging.Logger) *Processor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Processor{
		inbox:    inbox,
		contacts: contacts,
		logger:   logger.Component("replies"),
	}
}

// Process checks the mailbox for the given addresses and returns classified
// replies.
func (p *Processor) Process(ctx context.Context, emails []string) ([]*Reply, error) {
	raw, err := p.inbox.Fetch(ctx, emails)
	if err != nil {
		return nil, fmt.Errorf("replies: fetch responses: %w", err)
	}

	out := make([]*Reply, 0, len(raw))
	for _, r := range raw {
		reply := &Reply{
			ID:         uuid.NewString(),
			Email:      r.Email,
			Text:       r.Text,
			Label:      Classify(r.Text),
			ReceivedAt: r.ReceivedAt,
		}
		if p.contacts != nil {
			if contact, err := p.contacts.GetByEmail(ctx, r.Email); err == nil {
				reply.ContactID = contact.ID
			}
		}

		switch reply.Label {
		case LabelBounced:
			p.logger.Warn("email bounced", "email", reply.Email)
		case LabelUnsubscribed:
			p.logger.Info("contact unsubscribed", "email", reply.Email)
		case LabelOutOfOffice:
			p.logger.Info("out-of-office reply", "email", reply.Email)
		case LabelInterested:
			p.logger.Info("interested reply", "email", reply.Email, "excerpt", excerpt(reply.Text, 50))
		default:
			p.logger.Info("reply received", "email", reply.Email, "label", string(reply.Label))
		}

		out = append(out, reply)
	}

	return out, nil
}

func excerpt(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
