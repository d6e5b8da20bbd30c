package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/seedbed/incubator/internal/domain/document"
	"github.com/seedbed/incubator/internal/domain/guest"
	"github.com/seedbed/incubator/internal/domain/meeting"
	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/domain/user"
	"github.com/seedbed/incubator/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain sentinels onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, startup.ErrNotFound),
		errors.Is(err, meeting.ErrNotFound),
		errors.Is(err, guest.ErrNotFound),
		errors.Is(err, document.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, startup.ErrInvalidInput),
		errors.Is(err, startup.ErrInvalidStage),
		errors.Is(err, meeting.ErrInvalidInput),
		errors.Is(err, meeting.ErrInvalidKind),
		errors.Is(err, guest.ErrInvalidInput),
		errors.Is(err, document.ErrInvalidInput),
		errors.Is(err, user.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, startup.ErrDuplicateEmail),
		errors.Is(err, user.ErrDuplicateEmail),
		errors.Is(err, meeting.ErrAlreadyCompleted),
		errors.Is(err, repository.ErrDuplicate):
		status = http.StatusConflict
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
