// Package events defines the versioned event payloads emitted as the
// campaign progresses. Events are recorded to the activity log and included
// in archived campaign reports.
package events

import "time"

// Event names. The suffix is the payload version.
const (
	TypeContactDiscovered = "contact.discovered.v1"
	TypeMessageSent       = "message.sent.v1"
	TypeReplyClassified   = "reply.classified.v1"
	TypeMeetingBooked     = "meeting.booked.v1"
)

// ContactDiscoveredV1 is emitted once per contact surfaced by discovery.
type ContactDiscoveredV1 struct {
	ContactID string    `json:"contact_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Industry  string    `json:"industry"`
	At        time.Time `json:"at"`
}

// MessageSentV1 is emitted for every outbound email, initial or follow-up.
type MessageSentV1 struct {
	MessageID string    `json:"message_id"`
	ContactID string    `json:"contact_id"`
	Email     string    `json:"email"`
	Stage     string    `json:"stage"`
	Subject   string    `json:"subject"`
	At        time.Time `json:"at"`
}

// ReplyClassifiedV1 is emitted when an inbox response has been labelled.
type ReplyClassifiedV1 struct {
	ReplyID   string    `json:"reply_id"`
	ContactID string    `json:"contact_id,omitempty"`
	Email     string    `json:"email"`
	Label     string    `json:"label"`
	At        time.Time `json:"at"`
}

// MeetingBookedV1 is emitted when a call is booked with an interested
// prospect.
type MeetingBookedV1 struct {
	MeetingID string    `json:"meeting_id"`
	ContactID string    `json:"contact_id"`
	Email     string    `json:"email"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	At        time.Time `json:"at"`
}
