package api

import (
	"net/http"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/logger"
)

// handleError centralizes error handling for HTTP responses. An auth error from any
// layer signs the session out before the 401 goes back.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if s.Session != nil && s.Session.ClearOnAuthError(r.Context(), err) {
		logger.FromContext(r.Context()).Info("session cleared after auth error")
	}
	s.respondError(w, r, err)
}

// respondError writes err without touching the session. Login and register use it:
// their 401 rejects the submitted credentials, not the stored token.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.NewInternalError(err)
	}
	status := errors.HTTPStatus(appErr)

	if status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Warn("client error: %v", appErr)
	}

	writeJSONError(w, status, appErr.Code, appErr.Message)
}
