package booking

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

func testContact() *prospecting.Contact {
	return &prospecting.Contact{
		ID:    "c-1",
		Name:  "Sarah Chen",
		Role:  "CFO",
		Email: "sarah.chen@aussiemanufacturing.com.au",
		Company: prospecting.Company{
			Name: "Aussie Manufacturing Co",
		},
	}
}

func TestFindAvailableSlotsSkipsWeekends(t *testing.T) {
	calendar := NewCalendar(rand.New(rand.NewSource(7)), 7, 30*time.Minute)

	// A Friday, so the 7-day window spans a weekend.
	now := time.Date(2025, 6, 6, 8, 0, 0, 0, time.UTC)
	slots := calendar.FindAvailableSlots(now)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		wd := slot.Start.Weekday()
		assert.NotEqual(t, time.Saturday, wd, "slot on Saturday: %s", slot.Start)
		assert.NotEqual(t, time.Sunday, wd, "slot on Sunday: %s", slot.Start)
	}
}

func TestFindAvailableSlotsBusinessHours(t *testing.T) {
	calendar := NewCalendar(rand.New(rand.NewSource(7)), 7, 30*time.Minute)
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	for _, slot := range calendar.FindAvailableSlots(now) {
		hour := slot.Start.Hour()
		assert.GreaterOrEqual(t, hour, 9)
		assert.Less(t, hour, 17)
		assert.Equal(t, 30*time.Minute, slot.End.Sub(slot.Start))
		assert.Equal(t, "slot_"+slot.Start.Format("200601021504"), slot.ID)
	}
}

func TestFindAvailableSlotsDeterministicPerSeed(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	a := NewCalendar(rand.New(rand.NewSource(42)), 7, 30*time.Minute).FindAvailableSlots(now)
	b := NewCalendar(rand.New(rand.NewSource(42)), 7, 30*time.Minute).FindAvailableSlots(now)
	assert.Equal(t, a, b)
}

func TestBookMeetingStoresMeeting(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryMeetingStore()
	calendar := NewCalendar(rand.New(rand.NewSource(7)), 7, 30*time.Minute)
	booker := NewBooker(calendar, store, rand.New(rand.NewSource(7)), "Matherson and Sons", logging.Default())

	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	meeting, err := booker.BookMeeting(ctx, testContact(), now)
	require.NoError(t, err)

	assert.Equal(t, "Matherson and Sons - Introductory Call", meeting.Summary)
	assert.Equal(t, "c-1", meeting.ContactID)
	assert.True(t, meeting.Start.After(now))

	stored, err := store.GetByContactID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, meeting.ID, stored.ID)
}

func TestBookMeetingIsIdempotentPerContact(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryMeetingStore()
	calendar := NewCalendar(rand.New(rand.NewSource(7)), 7, 30*time.Minute)
	booker := NewBooker(calendar, store, rand.New(rand.NewSource(7)), "Matherson and Sons", logging.Default())

	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	first, err := booker.BookMeeting(ctx, testContact(), now)
	require.NoError(t, err)

	second, err := booker.BookMeeting(ctx, testContact(), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	meetings, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, meetings, 1)
}

func TestMeetingStoreNotFound(t *testing.T) {
	store := NewInMemoryMeetingStore()
	_, err := store.GetByContactID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrMeetingNotFound)
}
