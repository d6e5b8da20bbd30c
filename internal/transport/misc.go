package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seedbed/incubator/internal/domain/user"
)

type guestPayload struct {
	Name         string     `json:"name"`
	Organization string     `json:"organization"`
	Purpose      string     `json:"purpose"`
	VisitedOn    *time.Time `json:"visited_on"`
}

func (s *Server) handleRegisterGuest(w http.ResponseWriter, r *http.Request) {
	var p guestPayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	visitedOn := time.Time{}
	if p.VisitedOn != nil {
		visitedOn = *p.VisitedOn
	}
	g, err := s.svc.Guests.Register(r.Context(), p.Name, p.Organization, p.Purpose, visitedOn)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleGetGuest(w http.ResponseWriter, r *http.Request) {
	g, err := s.svc.Guests.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGuest(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Guests.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := s.svc.Guests.List(r.Context(), queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"guests": guests})
}

type documentPayload struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

func (s *Server) handleAttachDocument(w http.ResponseWriter, r *http.Request) {
	var p documentPayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	d, err := s.svc.Documents.Attach(r.Context(), chi.URLParam(r, "id"), p.Name, p.URL, p.ContentType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	d, err := s.svc.Documents.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Documents.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := s.svc.Documents.ListByStartup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": documents})
}

type userPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var p userPayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	u, err := s.svc.Users.Create(r.Context(), p.Email, p.Name, user.Role(p.Role))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.svc.Users.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
