package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/internal/replies"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// Service alerts the sales team when a prospect shows interest.
type Service struct {
	poster  ChatPoster
	channel string
	logger  *logging.Logger
}

// NewService creates a notification service posting to the given channel.
func NewService(poster ChatPoster, channel string, logger *logging.Logger) *Service {
	if poster == nil {
		panic("notify: chat poster cannot be nil")
	}
	if channel == "" {
		channel = "#sales-leads"
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		poster:  poster,
		channel: channel,
		logger:  logger.Component("notify"),
	}
}

// NotifyInterested posts an alert for an interested reply. The contact may be
// nil when the address could not be matched to anyone we emailed; the alert is
// still sent with the fields we have.
func (s *Service) NotifyInterested(ctx context.Context, contact *prospecting.Contact, reply *replies.Reply) error {
	text := formatInterestedAlert(contact, reply)

	if err := s.poster.Post(ctx, s.channel, text); err != nil {
		return fmt.Errorf("notify: interested alert for %s: %w", reply.Email, err)
	}

	s.logger.Info("interested prospect alert sent",
		"channel", s.channel,
		"email", reply.Email,
	)
	return nil
}

func formatInterestedAlert(contact *prospecting.Contact, reply *replies.Reply) string {
	var b strings.Builder
	b.WriteString(":white_check_mark: *Interested prospect!*\n")
	if contact != nil {
		fmt.Fprintf(&b, "*Name:* %s\n", contact.Name)
		fmt.Fprintf(&b, "*Company:* %s\n", contact.Company.Name)
		fmt.Fprintf(&b, "*Role:* %s\n", contact.Role)
	}
	fmt.Fprintf(&b, "*Email:* %s\n", reply.Email)
	b.WriteString("\n*Their response:*\n```\n")
	b.WriteString(reply.Text)
	b.WriteString("\n```\n")
	b.WriteString("\n*Next steps:* Schedule a call by replying to this thread with \"book call\".")
	return b.String()
}
