package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seedbed/incubator/internal/domain/document"
	"github.com/seedbed/incubator/internal/domain/guest"
	"github.com/seedbed/incubator/internal/domain/meeting"
	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/domain/user"
	"github.com/seedbed/incubator/internal/importer"
	"github.com/seedbed/incubator/internal/repository"
)

// Services bundles everything the HTTP layer dispatches to.
type Services struct {
	Startups  *startup.Service
	Meetings  *meeting.Service
	Guests    *guest.Service
	Documents *document.Service
	Users     *user.Service
	Importer  *importer.Service
	Stats     repository.StatsRepository
	Logger    *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	svc Services
}

// NewRouter creates the HTTP router with middleware. The health endpoint is
// open; everything under /api requires a bearer token.
func NewRouter(svc Services, resolver UserResolver) *chi.Mux {
	r := chi.NewRouter()

	srv := &Server{svc: svc}

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(api chi.Router) {
		if resolver != nil {
			api.Use(AuthMiddleware(resolver))
		}
		if svc.Logger != nil {
			api.Use(requestLogger(svc.Logger))
		}

		api.Route("/startups", func(sr chi.Router) {
			sr.Get("/", srv.handleListStartups)
			sr.Post("/", srv.handleCreateStartup)
			sr.Route("/{id}", func(one chi.Router) {
				one.Get("/", srv.handleGetStartup)
				one.Put("/", srv.handleUpdateStartup)
				one.With(RequireAdmin).Delete("/", srv.handleDeleteStartup)
				one.Post("/stage", srv.handleTransitionStartup)
				one.Get("/transitions", srv.handleListTransitions)

				one.Get("/achievements", srv.handleListAchievements)
				one.Post("/achievements", srv.handleAddAchievement)
				one.Get("/progress", srv.handleListProgress)
				one.Post("/progress", srv.handleAddProgress)
				one.Get("/revenue", srv.handleListRevenue)
				one.Post("/revenue", srv.handleAddRevenue)
				one.Get("/meetings", srv.handleListMeetings)
				one.Post("/meetings", srv.handleScheduleMeeting)
				one.Get("/documents", srv.handleListDocuments)
				one.Post("/documents", srv.handleAttachDocument)
			})
		})

		api.Route("/meetings/{id}", func(mr chi.Router) {
			mr.Get("/", srv.handleGetMeeting)
			mr.Post("/complete", srv.handleCompleteMeeting)
			mr.Delete("/", srv.handleDeleteMeeting)
		})

		api.Route("/guests", func(gr chi.Router) {
			gr.Get("/", srv.handleListGuests)
			gr.Post("/", srv.handleRegisterGuest)
			gr.Get("/{id}", srv.handleGetGuest)
			gr.Delete("/{id}", srv.handleDeleteGuest)
		})

		api.Route("/documents/{id}", func(dr chi.Router) {
			dr.Get("/", srv.handleGetDocument)
			dr.Delete("/", srv.handleDeleteDocument)
		})

		api.Route("/users", func(ur chi.Router) {
			ur.Use(RequireAdmin)
			ur.Get("/", srv.handleListUsers)
			ur.Post("/", srv.handleCreateUser)
			ur.Delete("/{id}", srv.handleDeleteUser)
		})

		api.With(RequireAdmin).Post("/import", srv.handleImport)
		api.Get("/stats", srv.handleStats)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
		})
	}
}
