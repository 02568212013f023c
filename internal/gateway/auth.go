package gateway

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/transport"
)

type authGateway struct {
	doer   transport.Doer
	tokens transport.TokenSource
	now    func() time.Time
}

func NewAuthGateway(doer transport.Doer, tokens transport.TokenSource) AuthGateway {
	return &authGateway{doer: doer, tokens: tokens, now: time.Now}
}

func (g *authGateway) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	log := logger.FromContext(ctx).WithField("email", email)
	log.Debug("logging in")

	if strings.TrimSpace(email) == "" {
		return nil, errors.NewValidationError("email", "cannot be empty")
	}
	if password == "" {
		return nil, errors.NewValidationError("password", "cannot be empty")
	}

	var out models.AuthResult
	if err := g.doer.Do(ctx, http.MethodPost, "/auth/login", models.Credentials{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	if err := validate("login", out); err != nil {
		log.Error("login response invalid: %v", err)
		return nil, err
	}
	return &out, nil
}

func (g *authGateway) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	log := logger.FromContext(ctx).WithField("email", req.Email)
	log.Debug("registering account")

	if strings.TrimSpace(req.Username) == "" {
		return nil, errors.NewValidationError("username", "cannot be empty")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, errors.NewValidationError("email", "cannot be empty")
	}
	if req.Password == "" {
		return nil, errors.NewValidationError("password", "cannot be empty")
	}

	var out models.AuthResult
	if err := g.doer.Do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	if err := validate("register", out); err != nil {
		log.Error("register response invalid: %v", err)
		return nil, err
	}
	return &out, nil
}

func (g *authGateway) Me(ctx context.Context) (*models.Identity, error) {
	token := transport.ResolveToken(ctx, g.tokens)
	if token == "" {
		return nil, errors.NewAuthError(0, "not signed in")
	}
	if expired(token, g.now()) {
		logger.FromContext(ctx).Debug("stored token expired, skipping /auth/me")
		return nil, errors.NewAuthError(0, "session expired")
	}

	var out models.Identity
	if err := g.doer.Do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	if err := validate("identity", out); err != nil {
		return nil, err
	}
	return &out, nil
}

// expired reports whether token is a JWT whose exp claim is before now. Opaque tokens
// and JWTs without exp are left to the server. The signature is not checked here.
func expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
