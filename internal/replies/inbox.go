package replies

import (
	"context"
	"math/rand"
	"time"

	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// Inbox fetches raw responses for a set of contacted addresses.
// Implementations stand in for a mailbox provider (HubSpot, Gmail API).
type Inbox interface {
	Fetch(ctx context.Context, emails []string) ([]RawResponse, error)
}

// SimulatedInbox synthesizes bounces, unsubscribes and replies at fixed
// rates. Each address responds at most once per campaign run.
type SimulatedInbox struct {
	rng       *rand.Rand
	logger    *logging.Logger
	responded map[string]bool
}

// NewSimulatedInbox creates an inbox simulation driven by the given random
// source.
func NewSimulatedInbox(rng *rand.Rand, logger *logging.Logger) *SimulatedInbox {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SimulatedInbox{
		rng:       rng,
		logger:    logger.Component("inbox"),
		responded: make(map[string]bool),
	}
}

var bounceTexts = []string{
	"Mail delivery failed: invalid email address.",
	"Mail delivery failed: mailbox full.",
	"Mail delivery failed: domain not found.",
}

const unsubscribeText = "Please unsubscribe me from this list."

const outOfOfficeText = "I'm currently out of the office until next week with limited access to email. I'll respond to your message when I return."

var interestedTexts = []string{
	"Thanks for reaching out. This sounds interesting. I'd be happy to schedule a call next week to discuss further.",
	"Your email caught my attention. We've been looking into digital transformation recently. Let's set up a time to chat.",
	"I'm interested in learning more about your services. Can you send over some case studies from similar companies in our industry?",
}

var declinedTexts = []string{
	"Thanks, but we're not looking for these services at the moment.",
	"We've recently signed with another provider for this. Perhaps we can connect in the future.",
	"This isn't relevant to our needs right now.",
}

// Fetch simulates checking the mailbox for each contacted address.
// Rates follow the simulation model: 5% bounce, 3% unsubscribe, 10% reply
// (30% of those out-of-office, 40% of the rest interested).
func (s *SimulatedInbox) Fetch(ctx context.Context, emails []string) ([]RawResponse, error) {
	now := time.Now().UTC()
	var responses []RawResponse

	for _, email := range emails {
		if s.responded[email] {
			continue
		}

		var text string
		switch {
		case s.rng.Float64() < 0.05:
			text = bounceTexts[s.rng.Intn(len(bounceTexts))]
		case s.rng.Float64() < 0.03:
			text = unsubscribeText
		case s.rng.Float64() < 0.10:
			if s.rng.Float64() < 0.30 {
				text = outOfOfficeText
			} else if s.rng.Float64() < 0.40 {
				text = interestedTexts[s.rng.Intn(len(interestedTexts))]
			} else {
				text = declinedTexts[s.rng.Intn(len(declinedTexts))]
			}
		default:
			continue
		}

		s.responded[email] = true
		responses = append(responses, RawResponse{
			Email:      email,
			Text:       text,
			ReceivedAt: now,
		})
	}

	s.logger.Info("mailbox checked", "contacts", len(emails), "responses", len(responses))
	return responses, nil
}

var _ Inbox = (*SimulatedInbox)(nil)
