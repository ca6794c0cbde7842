package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// ChatPoster posts a message to a team chat channel.
type ChatPoster interface {
	Post(ctx context.Context, channel, text string) error
}

// SlackWebhookPoster posts messages to Slack via an incoming webhook.
type SlackWebhookPoster struct {
	webhookURL string
	client     *http.Client
}

// NewSlackWebhookPoster creates a Slack poster for the given webhook URL.
func NewSlackWebhookPoster(webhookURL string) *SlackWebhookPoster {
	if webhookURL == "" {
		panic("notify: slack webhook URL cannot be empty")
	}
	return &SlackWebhookPoster{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type slackPayload struct {
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text"`
	Mrkdwn  bool   `json:"mrkdwn"`
}

// Post sends the message to the webhook. Slack returns a non-200 status with a
// short error body on failure.
func (p *SlackWebhookPoster) Post(ctx context.Context, channel, text string) error {
	body, err := json.Marshal(slackPayload{Channel: channel, Text: text, Mrkdwn: true})
	if err != nil {
		return fmt.Errorf("notify: marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notify: slack webhook returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}

// StubChatPoster logs messages instead of delivering them. Used in simulated
// runs where no webhook is configured.
type StubChatPoster struct {
	logger *logging.Logger
}

// NewStubChatPoster creates a logging-only chat poster.
func NewStubChatPoster(logger *logging.Logger) *StubChatPoster {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubChatPoster{logger: logger.Component("notify")}
}

// Post logs the message that would have been sent.
func (p *StubChatPoster) Post(_ context.Context, channel, text string) error {
	p.logger.Info("simulated chat notification", "channel", channel, "text", text)
	return nil
}

var (
	_ ChatPoster = (*SlackWebhookPoster)(nil)
	_ ChatPoster = (*StubChatPoster)(nil)
)
