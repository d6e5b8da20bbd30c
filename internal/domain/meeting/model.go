package meeting

import (
	"time"

	"github.com/seedbed/incubator/internal/domain/startup"
)

// Kind distinguishes the meeting formats run by the incubator.
type Kind string

const (
	KindSMC      Kind = "smc"
	KindOneOnOne Kind = "one_on_one"
	KindFMC      Kind = "fmc"
)

// Valid reports whether the kind is a known meeting format.
func (k Kind) Valid() bool {
	switch k {
	case KindSMC, KindOneOnOne, KindFMC:
		return true
	}
	return false
}

// Meeting represents one scheduled (and possibly completed) meeting with a startup.
// Scheduling slot, completion time and the stage snapshot taken at completion are
// proper columns here; the legacy system packed them into one pipe-delimited string
// (see ParseLegacyAgenda).
type Meeting struct {
	ID                string         `json:"id"`
	StartupID         string         `json:"startup_id"`
	Kind              Kind           `json:"kind"`
	ScheduledOn       time.Time      `json:"scheduled_on"`
	TimeSlot          string         `json:"time_slot,omitempty"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
	StageAtCompletion *startup.Stage `json:"stage_at_completion,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

// Completed reports whether the meeting has been held.
func (m *Meeting) Completed() bool {
	return m.CompletedAt != nil
}
