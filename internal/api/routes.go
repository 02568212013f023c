package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/dsaportal/internal/metrics"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/session", s.handleCurrentSession)
		r.Post("/session", s.handleLogin)
		r.Delete("/session", s.handleLogout)
		r.Post("/session/register", s.handleRegister)

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/topics", s.handleTopics)
		r.Get("/topics/{id}", s.handleTopicDetail)
		r.Get("/sheets", s.handleSheets)
		r.Get("/sheets/{id}", s.handleSheetDetail)
		r.Post("/problems/{id}/complete", s.handleMarkComplete)
		r.Get("/sync", s.handleSyncLog)

		r.Get("/roadmaps", s.handleRoadmaps)
		r.Get("/roadmaps/{slug}", s.handleRoadmap)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "NOT_FOUND", "no such route")
	})
	return r
}
