package outreach

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
)

type mockEmailSender struct {
	sent    []EmailMessage
	callErr error
}

func (m *mockEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	if m.callErr != nil {
		return m.callErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func testContact() *prospecting.Contact {
	return &prospecting.Contact{
		ID:    "contact-1",
		Name:  "Jane Doe",
		Role:  "CFO",
		Email: "jane.doe@example.com",
		Company: prospecting.Company{
			Name:     "BuildRight Constructions",
			Industry: "Construction",
			Size:     "100-250 employees",
		},
	}
}

func TestSendStageInitial(t *testing.T) {
	email := &mockEmailSender{}
	sender := NewSender(email, "Alex Matherson", "Matherson and Sons", nil)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	msg, err := sender.SendStage(context.Background(), StageInitial, testContact(), prospecting.Enrichment{}, now)
	require.NoError(t, err)
	require.Len(t, email.sent, 1)

	assert.Equal(t, "jane.doe@example.com", email.sent[0].To)
	assert.Equal(t, "Modernizing Construction Operations at BuildRight Constructions", email.sent[0].Subject)
	assert.Contains(t, email.sent[0].Body, "Hi Jane Doe,")
	assert.Contains(t, email.sent[0].Body, "Alex Matherson")

	assert.Equal(t, "contact-1", msg.ContactID)
	assert.Equal(t, StageInitial, msg.Stage)
	assert.Equal(t, now, msg.SentAt)
	assert.NotEmpty(t, msg.ID)
}

func TestSendStagePersonalizedUsesEnrichment(t *testing.T) {
	email := &mockEmailSender{}
	sender := NewSender(email, "Alex Matherson", "Matherson and Sons", nil)

	enr := prospecting.Enrichment{
		Interests:  []string{"Supply chain optimization"},
		RecentNews: "Company acquired a smaller competitor",
	}
	msg, err := sender.SendStage(context.Background(), StagePersonalized, testContact(), enr, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, "Your LinkedIn post on Supply chain optimization", msg.Subject)
	assert.Contains(t, msg.Body, "your role as CFO at BuildRight Constructions")
}

func TestSendStageUnknownStage(t *testing.T) {
	sender := NewSender(&mockEmailSender{}, "Alex", "Matherson and Sons", nil)

	_, err := sender.SendStage(context.Background(), Stage("nurture"), testContact(), prospecting.Enrichment{}, time.Now().UTC())
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestSendStagePropagatesProviderError(t *testing.T) {
	email := &mockEmailSender{callErr: errors.New("smtp down")}
	sender := NewSender(email, "Alex", "Matherson and Sons", nil)

	_, err := sender.SendStage(context.Background(), StageInitial, testContact(), prospecting.Enrichment{}, time.Now().UTC())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outreach: send initial email")
}
