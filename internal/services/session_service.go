package services

import (
	"context"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/gateway"
	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/session"
	"github.com/vytor/dsaportal/internal/transport"
)

// SessionService drives the login and logout lifecycle of the session store.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Identity, error)
	Logout(ctx context.Context)
	// Whoami refreshes the identity from /auth/me and replaces the stored copy.
	Whoami(ctx context.Context) (*models.Identity, error)
}

type sessionService struct {
	auth    gateway.AuthGateway
	session *session.Store
}

// NewSessionService creates a new SessionService
func NewSessionService(auth gateway.AuthGateway, store *session.Store) SessionService {
	return &sessionService{auth: auth, session: store}
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	log := logger.FromContext(ctx)
	log.Debug("login requested: email=%s", email)

	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, res)
}

func (s *sessionService) Register(ctx context.Context, req models.RegisterRequest) (*models.Identity, error) {
	log := logger.FromContext(ctx)
	log.Debug("registration requested: username=%s", req.Username)

	res, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, res)
}

func (s *sessionService) establish(ctx context.Context, res *models.AuthResult) (*models.Identity, error) {
	if err := s.session.SetSession(ctx, &res.User, res.Token); err != nil {
		return nil, errors.NewInternalError(err)
	}
	identity := res.User.Clone()
	logger.FromContext(ctx).Info("signed in as %s", identity.Username)
	return &identity, nil
}

func (s *sessionService) Logout(ctx context.Context) {
	logger.FromContext(ctx).Info("signing out")
	s.session.Clear(ctx)
}

func (s *sessionService) Whoami(ctx context.Context) (*models.Identity, error) {
	token := s.session.Token()
	if token == "" {
		return nil, errors.NewAuthError(0, "not signed in")
	}
	identity, err := s.auth.Me(transport.ContextWithToken(ctx, token))
	if err != nil {
		return nil, err
	}
	if !s.session.UpdateIdentity(token, identity) {
		return nil, errors.NewSessionChangedError("session changed while refreshing the identity")
	}
	return identity, nil
}
