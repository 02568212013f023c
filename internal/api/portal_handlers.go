package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vytor/dsaportal/internal/models"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := s.Portal.DashboardStats(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	level := models.TopicLevel(r.URL.Query().Get("difficulty"))
	topics, err := s.Portal.ListTopics(r.Context(), level)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

func (s *Server) handleTopicDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := s.Portal.TopicWithProblems(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleSheets(w http.ResponseWriter, r *http.Request) {
	sheets, err := s.Portal.ListSheets(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sheets)
}

func (s *Server) handleSheetDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := s.Portal.SheetDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleMarkComplete(w http.ResponseWriter, r *http.Request) {
	identity, err := s.Portal.MarkComplete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, identity)
}
