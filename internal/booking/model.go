package booking

import (
	"errors"
	"time"
)

// Slot is a bookable window in the sales calendar.
type Slot struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Meeting is a booked introductory call with a prospect.
type Meeting struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contact_id"`
	Email     string    `json:"email"`
	Summary   string    `json:"summary"`
	Location  string    `json:"location"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	BookedAt  time.Time `json:"booked_at"`
}

var (
	// ErrNoSlotsAvailable indicates the calendar had no open slot in the
	// booking window.
	ErrNoSlotsAvailable = errors.New("booking: no available slots")

	// ErrMeetingExists indicates a meeting is already booked for the contact.
	ErrMeetingExists = errors.New("booking: meeting already exists")

	// ErrMeetingNotFound indicates no meeting exists for the given key.
	ErrMeetingNotFound = errors.New("booking: meeting not found")
)
