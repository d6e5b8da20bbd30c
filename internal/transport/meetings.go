package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seedbed/incubator/internal/domain/meeting"
	"github.com/seedbed/incubator/internal/domain/startup"
)

type schedulePayload struct {
	Kind        string    `json:"kind"`
	ScheduledOn time.Time `json:"scheduled_on"`
	TimeSlot    string    `json:"time_slot"`
	Notes       string    `json:"notes"`
}

func (s *Server) handleScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	var p schedulePayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	m, err := s.svc.Meetings.Schedule(r.Context(), meeting.ScheduleRequest{
		StartupID:   chi.URLParam(r, "id"),
		Kind:        meeting.Kind(p.Kind),
		ScheduledOn: p.ScheduledOn,
		TimeSlot:    p.TimeSlot,
		Notes:       p.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleListMeetings(w http.ResponseWriter, r *http.Request) {
	kind := meeting.Kind(r.URL.Query().Get("kind"))
	meetings, err := s.svc.Meetings.ListByStartup(r.Context(), chi.URLParam(r, "id"), kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"meetings": meetings})
}

func (s *Server) handleGetMeeting(w http.ResponseWriter, r *http.Request) {
	m, err := s.svc.Meetings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type completePayload struct {
	CompletedAt *time.Time `json:"completed_at"`
	Stage       string     `json:"stage"`
}

func (s *Server) handleCompleteMeeting(w http.ResponseWriter, r *http.Request) {
	var p completePayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	completedAt := time.Time{}
	if p.CompletedAt != nil {
		completedAt = *p.CompletedAt
	}
	m, err := s.svc.Meetings.Complete(r.Context(), chi.URLParam(r, "id"), completedAt, startup.Stage(p.Stage))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleDeleteMeeting(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Meetings.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
