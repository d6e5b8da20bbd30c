package meeting

import "strings"

// LegacyAgenda is the unpacked form of the legacy "agenda" field, which packed
// three values into one pipe-delimited string: slot|completedAt|stage. A missing
// trailing segment means the meeting has not been completed yet.
type LegacyAgenda struct {
	TimeSlot          string
	CompletedAt       string
	StageAtCompletion string
}

// ParseLegacyAgenda splits a packed agenda string into its named parts.
// Positions 0/1/2 are always slot, completion time, stage snapshot.
func ParseLegacyAgenda(packed string) LegacyAgenda {
	parts := strings.Split(packed, "|")
	agenda := LegacyAgenda{}
	if len(parts) > 0 {
		agenda.TimeSlot = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		agenda.CompletedAt = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		agenda.StageAtCompletion = strings.TrimSpace(parts[2])
	}
	return agenda
}

// Pack renders the agenda back into the legacy pipe-delimited form, dropping
// empty trailing segments the way the legacy writers did.
func (a LegacyAgenda) Pack() string {
	if a.StageAtCompletion != "" {
		return a.TimeSlot + "|" + a.CompletedAt + "|" + a.StageAtCompletion
	}
	if a.CompletedAt != "" {
		return a.TimeSlot + "|" + a.CompletedAt
	}
	return a.TimeSlot
}
