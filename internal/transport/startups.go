package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seedbed/incubator/internal/domain/startup"
)

type startupPayload struct {
	Name            string     `json:"name"`
	Founder         string     `json:"founder"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Sector          string     `json:"sector"`
	Stage           string     `json:"stage"`
	FundingAmount   float64    `json:"funding_amount"`
	AnnualRevenue   float64    `json:"annual_revenue"`
	Employees       int        `json:"employees"`
	Description     string     `json:"description"`
	RecognitionDate *time.Time `json:"recognition_date"`
	OnboardedDate   *time.Time `json:"onboarded_date"`
	GraduationDate  *time.Time `json:"graduation_date"`
}

func (s *Server) handleCreateStartup(w http.ResponseWriter, r *http.Request) {
	var p startupPayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	st, err := s.svc.Startups.Create(r.Context(), startup.CreateRequest{
		Name:            p.Name,
		Founder:         p.Founder,
		Email:           p.Email,
		Phone:           p.Phone,
		Sector:          p.Sector,
		Stage:           startup.Stage(p.Stage),
		FundingAmount:   p.FundingAmount,
		AnnualRevenue:   p.AnnualRevenue,
		Employees:       p.Employees,
		Description:     p.Description,
		RecognitionDate: p.RecognitionDate,
		OnboardedDate:   p.OnboardedDate,
		GraduationDate:  p.GraduationDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) handleGetStartup(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.Startups.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

type startupUpdatePayload struct {
	Name            *string    `json:"name"`
	Founder         *string    `json:"founder"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	Sector          *string    `json:"sector"`
	FundingAmount   *float64   `json:"funding_amount"`
	AnnualRevenue   *float64   `json:"annual_revenue"`
	Employees       *int       `json:"employees"`
	Description     *string    `json:"description"`
	RecognitionDate *time.Time `json:"recognition_date"`
	OnboardedDate   *time.Time `json:"onboarded_date"`
	GraduationDate  *time.Time `json:"graduation_date"`
}

func (s *Server) handleUpdateStartup(w http.ResponseWriter, r *http.Request) {
	var p startupUpdatePayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	st, err := s.svc.Startups.Update(r.Context(), startup.UpdateRequest{
		ID:              chi.URLParam(r, "id"),
		Name:            p.Name,
		Founder:         p.Founder,
		Email:           p.Email,
		Phone:           p.Phone,
		Sector:          p.Sector,
		FundingAmount:   p.FundingAmount,
		AnnualRevenue:   p.AnnualRevenue,
		Employees:       p.Employees,
		Description:     p.Description,
		RecognitionDate: p.RecognitionDate,
		OnboardedDate:   p.OnboardedDate,
		GraduationDate:  p.GraduationDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleDeleteStartup(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Startups.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListStartups(w http.ResponseWriter, r *http.Request) {
	opts := startup.ListOptions{
		Sector: r.URL.Query().Get("sector"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}
	for _, stage := range r.URL.Query()["stage"] {
		opts.Stages = append(opts.Stages, startup.Stage(stage))
	}

	startups, err := s.svc.Startups.List(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"startups": startups})
}

type transitionPayload struct {
	Stage string `json:"stage"`
	Note  string `json:"note"`
}

func (s *Server) handleTransitionStartup(w http.ResponseWriter, r *http.Request) {
	var p transitionPayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	st, err := s.svc.Startups.Transition(r.Context(), chi.URLParam(r, "id"), startup.Stage(p.Stage), p.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleListTransitions(w http.ResponseWriter, r *http.Request) {
	transitions, err := s.svc.Startups.ListStageTransitions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transitions": transitions})
}

type achievementPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AchievedOn  *time.Time `json:"achieved_on"`
}

func (s *Server) handleAddAchievement(w http.ResponseWriter, r *http.Request) {
	var p achievementPayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	achievedOn := time.Time{}
	if p.AchievedOn != nil {
		achievedOn = *p.AchievedOn
	}
	a, err := s.svc.Startups.AddAchievement(r.Context(), chi.URLParam(r, "id"), p.Title, p.Description, achievedOn)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := s.svc.Startups.ListAchievements(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"achievements": achievements})
}

type progressPayload struct {
	Metric     string     `json:"metric"`
	Value      float64    `json:"value"`
	RecordedOn *time.Time `json:"recorded_on"`
}

func (s *Server) handleAddProgress(w http.ResponseWriter, r *http.Request) {
	var p progressPayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	recordedOn := time.Time{}
	if p.RecordedOn != nil {
		recordedOn = *p.RecordedOn
	}
	entry, err := s.svc.Startups.AddProgressEntry(r.Context(), chi.URLParam(r, "id"), p.Metric, p.Value, recordedOn)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.Startups.ListProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"progress": entries})
}

type revenuePayload struct {
	Amount     float64    `json:"amount"`
	Period     string     `json:"period"`
	RecordedOn *time.Time `json:"recorded_on"`
}

func (s *Server) handleAddRevenue(w http.ResponseWriter, r *http.Request) {
	var p revenuePayload
	if err := decodeBody(r, &p); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	recordedOn := time.Time{}
	if p.RecordedOn != nil {
		recordedOn = *p.RecordedOn
	}
	entry, err := s.svc.Startups.AddRevenueEntry(r.Context(), chi.URLParam(r, "id"), p.Amount, p.Period, recordedOn)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleListRevenue(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.Startups.ListRevenue(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"revenue": entries})
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
