package replies

import "time"

// Label is the classification assigned to an inbound reply.
type Label string

const (
	LabelBounced      Label = "bounced"
	LabelUnsubscribed Label = "unsubscribed"
	LabelOutOfOffice  Label = "out_of_office"
	LabelInterested   Label = "interested"
	LabelOther        Label = "other"
)

// RawResponse is an unclassified inbound message fetched from the mailbox.
type RawResponse struct {
	Email      string
	Text       string
	ReceivedAt time.Time
}

// Reply is a classified inbound response tied back to a campaign contact.
type Reply struct {
	ID         string    `json:"id"`
	ContactID  string    `json:"contact_id,omitempty"`
	Email      string    `json:"email"`
	Text       string    `json:"text"`
	Label      Label     `json:"label"`
	ReceivedAt time.Time `json:"received_at"`
}

// CountsAsReplied reports whether this reply removes the contact from
// follow-up eligibility. Out-of-office auto-replies do not.
func (r *Reply) CountsAsReplied() bool {
	return r.Label != LabelOutOfOffice
}
