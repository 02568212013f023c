package api

import (
	"net/http"
	"strconv"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/models"
)

type syncLogResponse struct {
	Failed  int                 `json:"failed"`
	Records []models.SyncRecord `json:"records"`
}

// handleSyncLog lists recent background progress pushes for the signed-in identity.
func (s *Server) handleSyncLog(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.Session.Current()
	if !ok {
		s.handleError(w, r, errors.NewAuthError(0, "not signed in"))
		return
	}
	if s.SyncLog == nil {
		writeJSON(w, http.StatusOK, syncLogResponse{Records: []models.SyncRecord{}})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.handleError(w, r, errors.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		limit = n
	}

	records, err := s.SyncLog.Recent(r.Context(), identity.ID, limit)
	if err != nil {
		s.handleError(w, r, errors.NewInternalError(err))
		return
	}
	failed, err := s.SyncLog.CountFailed(r.Context(), identity.ID)
	if err != nil {
		s.handleError(w, r, errors.NewInternalError(err))
		return
	}
	if records == nil {
		records = []models.SyncRecord{}
	}
	writeJSON(w, http.StatusOK, syncLogResponse{Failed: failed, Records: records})
}
