package campaign

import (
	"time"

	"github.com/mathersonandsons/outreach-agent/internal/booking"
	"github.com/mathersonandsons/outreach-agent/internal/outreach"
	"github.com/mathersonandsons/outreach-agent/internal/replies"
)

// Report is the full record of one campaign run, suitable for archiving.
type Report struct {
	RunID      string               `json:"run_id"`
	StartedAt  time.Time            `json:"started_at"`
	FinishedAt time.Time            `json:"finished_at"`
	Summary    Summary              `json:"summary"`
	Messages   []*outreach.Message  `json:"messages"`
	Replies    []*replies.Reply     `json:"replies"`
	Meetings   []*booking.Meeting   `json:"meetings"`
}

// BuildReport snapshots the state of a finished run.
func BuildReport(runID string, state *State, startedAt, finishedAt time.Time) *Report {
	return &Report{
		RunID:      runID,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Summary:    state.Summary(),
		Messages:   state.Messages(),
		Replies:    state.Replies(),
		Meetings:   state.Meetings(),
	}
}
