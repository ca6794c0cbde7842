package outreach

import (
	"errors"
	"time"
)

// Stage identifies which campaign template a message was sent from.
type Stage string

const (
	StageInitial      Stage = "initial"
	StageFollowup     Stage = "followup"
	StagePersonalized Stage = "personalized"
)

// Message records a single outbound campaign email.
type Message struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contact_id"`
	Email     string    `json:"email"`
	Stage     Stage     `json:"stage"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

// ErrUnknownStage is returned when a send is requested for a stage with no
// template.
var ErrUnknownStage = errors.New("outreach: unknown campaign stage")
