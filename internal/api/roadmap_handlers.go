package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/roadmap"
)

func (s *Server) handleRoadmaps(w http.ResponseWriter, r *http.Request) {
	list, err := roadmap.ByLevel(models.TopicLevel(r.URL.Query().Get("level")))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	rm, err := roadmap.BySlug(chi.URLParam(r, "slug"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rm)
}
