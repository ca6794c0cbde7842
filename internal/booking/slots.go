package booking

import (
	"math/rand"
	"time"
)

const (
	businessDayStart = 9
	businessDayEnd   = 17
	dailySlots       = 3
)

// Calendar finds open meeting slots. The simulation stands in for a real
// calendar API; roughly 30% of candidate slots read as already booked.
type Calendar struct {
	rng       *rand.Rand
	daysAhead int
	duration  time.Duration
}

// NewCalendar creates a simulated calendar searching daysAhead business days
// for slots of the given duration.
func NewCalendar(rng *rand.Rand, daysAhead int, duration time.Duration) *Calendar {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if daysAhead <= 0 {
		daysAhead = 7
	}
	if duration <= 0 {
		duration = 30 * time.Minute
	}
	return &Calendar{rng: rng, daysAhead: daysAhead, duration: duration}
}

// FindAvailableSlots returns the open slots after now. Weekends are skipped
// and candidate hours are spread across business hours, 9:00 to 17:00.
func (c *Calendar) FindAvailableSlots(now time.Time) []Slot {
	var slots []Slot

	step := (businessDayEnd - businessDayStart - 1) / dailySlots
	if step < 1 {
		step = 1
	}

	for day := 1; day <= c.daysAhead; day++ {
		date := now.AddDate(0, 0, day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		for hour := businessDayStart; hour < businessDayEnd; hour += step {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
			if c.rng.Float64() <= 0.3 {
				continue
			}
			slots = append(slots, Slot{
				ID:    "slot_" + start.Format("200601021504"),
				Start: start,
				End:   start.Add(c.duration),
			})
		}
	}

	return slots
}
