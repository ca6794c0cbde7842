package campaign

import (
	"sync"

	"github.com/mathersonandsons/outreach-agent/internal/booking"
	"github.com/mathersonandsons/outreach-agent/internal/outreach"
	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/internal/replies"
)

// State is the in-memory record of a campaign run: who was contacted, who
// bounced or unsubscribed, who replied and what came of it.
type State struct {
	mu sync.RWMutex

	contacts    []*prospecting.Contact
	enrichments map[string]prospecting.Enrichment

	sentInitial  map[string]struct{}
	bounced      map[string]struct{}
	unsubscribed map[string]struct{}
	replied      map[string]struct{}
	interested   map[string]struct{}

	messages []*outreach.Message
	replies  []*replies.Reply
	meetings []*booking.Meeting
}

// NewState creates an empty campaign state.
func NewState() *State {
	return &State{
		enrichments:  make(map[string]prospecting.Enrichment),
		sentInitial:  make(map[string]struct{}),
		bounced:      make(map[string]struct{}),
		unsubscribed: make(map[string]struct{}),
		replied:      make(map[string]struct{}),
		interested:   make(map[string]struct{}),
	}
}

// AddContact records a discovered contact and its enrichment.
func (s *State) AddContact(contact *prospecting.Contact, enrichment prospecting.Enrichment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, contact)
	s.enrichments[contact.ID] = enrichment
}

// Contacts returns the discovered contacts in discovery order.
func (s *State) Contacts() []*prospecting.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*prospecting.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// EnrichmentFor returns the enrichment gathered for a contact.
func (s *State) EnrichmentFor(contactID string) (prospecting.Enrichment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	enrichment, ok := s.enrichments[contactID]
	return enrichment, ok
}

// RecordMessage records an outbound email. Initial sends also mark the
// address as contacted.
func (s *State) RecordMessage(msg *outreach.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	if msg.Stage == outreach.StageInitial {
		s.sentInitial[msg.Email] = struct{}{}
	}
}

// SentInitial returns the addresses that received the initial email, in
// contact discovery order.
func (s *State) SentInitial() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.sentInitial))
	for _, contact := range s.contacts {
		if _, ok := s.sentInitial[contact.Email]; ok {
			out = append(out, contact.Email)
		}
	}
	return out
}

// RecordReply records a classified reply.
func (s *State) RecordReply(reply *replies.Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, reply)
}

// MarkBounced records a hard bounce for the address.
func (s *State) MarkBounced(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bounced[email] = struct{}{}
}

// MarkUnsubscribed records an opt-out for the address.
func (s *State) MarkUnsubscribed(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsubscribed[email] = struct{}{}
}

// MarkReplied records that the address replied. Out-of-office responses must
// not be marked; their senders still get follow-ups.
func (s *State) MarkReplied(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replied[email] = struct{}{}
}

// MarkInterested records that the address replied with interest.
func (s *State) MarkInterested(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interested[email] = struct{}{}
}

// HasReplied reports whether the address has replied.
func (s *State) HasReplied(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.replied[email]
	return ok
}

// RecordMeeting records a booked meeting.
func (s *State) RecordMeeting(meeting *booking.Meeting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = append(s.meetings, meeting)
}

// Messages returns every recorded outbound email.
func (s *State) Messages() []*outreach.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*outreach.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Replies returns every recorded reply.
func (s *State) Replies() []*replies.Reply {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*replies.Reply, len(s.replies))
	copy(out, s.replies)
	return out
}

// Meetings returns every booked meeting.
func (s *State) Meetings() []*booking.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*booking.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

// Summary holds the headline numbers for a campaign run.
type Summary struct {
	TotalContacts  int `json:"total_contacts"`
	MessagesSent   int `json:"messages_sent"`
	Bounced        int `json:"bounced"`
	Unsubscribed   int `json:"unsubscribed"`
	Replied        int `json:"replied"`
	Interested     int `json:"interested"`
	MeetingsBooked int `json:"meetings_booked"`
}

// Summary returns the current campaign totals.
func (s *State) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summary{
		TotalContacts:  len(s.contacts),
		MessagesSent:   len(s.messages),
		Bounced:        len(s.bounced),
		Unsubscribed:   len(s.unsubscribed),
		Replied:        len(s.replied),
		Interested:     len(s.interested),
		MeetingsBooked: len(s.meetings),
	}
}
