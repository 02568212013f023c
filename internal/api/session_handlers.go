package api

import (
	"net/http"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	identity, err := s.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, identity)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	identity, err := s.Sessions.Register(r.Context(), req)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, identity)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.Sessions.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.Session.Current()
	if !ok {
		logger.FromContext(r.Context()).Debug("no active session")
		s.handleError(w, r, errors.NewAuthError(0, "not signed in"))
		return
	}
	writeJSON(w, http.StatusOK, identity)
}
