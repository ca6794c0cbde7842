package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

// Booker books introductory calls with interested prospects.
type Booker struct {
	calendar    *Calendar
	store       MeetingStore
	rng         *rand.Rand
	fromCompany string
	logger      *logging.Logger
}

// NewBooker creates a Booker on top of the given calendar and store.
func NewBooker(calendar *Calendar, store MeetingStore, rng *rand.Rand, fromCompany string, logger *logging.Logger) *Booker {
	if calendar == nil {
		panic("booking: calendar cannot be nil")
	}
	if store == nil {
		panic("booking: meeting store cannot be nil")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Booker{
		calendar:    calendar,
		store:       store,
		rng:         rng,
		fromCompany: fromCompany,
		logger:      logger.Component("booking"),
	}
}

// BookMeeting picks an open slot and books a call with the contact. If the
// contact already has a meeting the existing one is returned unchanged.
func (b *Booker) BookMeeting(ctx context.Context, contact *prospecting.Contact, now time.Time) (*Meeting, error) {
	slots := b.calendar.FindAvailableSlots(now)
	if len(slots) == 0 {
		return nil, fmt.Errorf("booking: %s: %w", contact.Email, ErrNoSlotsAvailable)
	}

	slot := slots[b.rng.Intn(len(slots))]

	meeting := &Meeting{
		ID:        uuid.NewString(),
		ContactID: contact.ID,
		Email:     contact.Email,
		Summary:   b.fromCompany + " - Introductory Call",
		Location:  "Zoom (link in description)",
		Start:     slot.Start,
		End:       slot.End,
		BookedAt:  now,
	}

	if err := b.store.Put(ctx, meeting); err != nil {
		if errors.Is(err, ErrMeetingExists) {
			return b.store.GetByContactID(ctx, contact.ID)
		}
		return nil, fmt.Errorf("booking: store meeting for %s: %w", contact.Email, err)
	}

	b.logger.Info("meeting booked",
		"contact", contact.Name,
		"email", contact.Email,
		"start", meeting.Start,
	)
	return meeting, nil
}
