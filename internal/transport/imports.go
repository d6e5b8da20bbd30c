package transport

import (
	"net/http"

	"github.com/seedbed/incubator/internal/importer"
)

// importResponse is the display shape of an import run: summary counters
// renamed for the legacy admin UI, plus the per-record error list.
type importResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Stats   importStats            `json:"stats"`
	Errors  []importer.RecordError `json:"errors"`
}

type importStats struct {
	StartupsCreated          int `json:"startupsCreated"`
	StartupsUpdated          int `json:"startupsUpdated"`
	AchievementsMigrated     int `json:"achievementsMigrated"`
	ProgressRecordsMigrated  int `json:"progressRecordsMigrated"`
	RevenueRecordsMigrated   int `json:"revenueRecordsMigrated"`
	SMCMeetingsMigrated      int `json:"smcMeetingsMigrated"`
	OneOnOneMeetingsMigrated int `json:"oneOnOneMeetingsMigrated"`
	SchedulesSkipped         int `json:"schedulesSkipped"`
}

// handleImport accepts a legacy export bundle and runs the reconciling
// importer. Per-record failures still produce a 200 with the error list;
// only infrastructure faults produce a 500.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var bundle importer.Bundle
	if err := decodeBody(r, &bundle); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	summary, err := s.svc.Importer.Run(r.Context(), &bundle)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	errs := summary.Errors
	if errs == nil {
		errs = []importer.RecordError{}
	}

	writeJSON(w, http.StatusOK, importResponse{
		Success: true,
		Message: "import completed",
		Stats: importStats{
			StartupsCreated:          summary.StartupsCreated,
			StartupsUpdated:          summary.StartupsUpdated,
			AchievementsMigrated:     summary.AchievementsMigrated,
			ProgressRecordsMigrated:  summary.ProgressMigrated,
			RevenueRecordsMigrated:   summary.RevenueMigrated,
			SMCMeetingsMigrated:      summary.SMCMeetingsMigrated,
			OneOnOneMeetingsMigrated: summary.OneOnOneMeetingsMigrated,
			SchedulesSkipped:         summary.SchedulesSkipped,
		},
		Errors: errs,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.svc.Stats.Counts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
