// Package session holds the single authenticated identity and credential token the
// portal client acts as. Every authenticated request reads the token from here.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/metrics"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/transport"
)

// State is the authentication state of the store.
type State string

const (
	Anonymous     State = "anonymous"
	Authenticated State = "authenticated"
)

// TokenPersister keeps the credential token across process restarts. The identity
// itself is never persisted; it is re-fetched on Restore.
type TokenPersister interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// IdentityFetcher resolves the identity owning the token carried by ctx.
type IdentityFetcher interface {
	Me(ctx context.Context) (*models.Identity, error)
}

// Store is safe for concurrent use. Identity and token are always replaced together.
type Store struct {
	// writeMu orders session changes with their persistence so the token on disk
	// always matches the last change. mu guards the in-memory fields only.
	writeMu  sync.Mutex
	mu       sync.RWMutex
	identity *models.Identity
	token    string
	persist  TokenPersister
	log      *logger.Logger
}

var _ transport.TokenSource = (*Store)(nil)

// New returns an anonymous store. persist may be nil for a memory-only session.
func New(persist TokenPersister) *Store {
	return &Store{
		persist: persist,
		log:     logger.Default().WithPrefix("session"),
	}
}

// Restore loads a persisted token and, when present, validates it against the portal
// by fetching the identity it belongs to. A rejected token is deleted. Other failures
// leave the persisted token alone so a later start can retry.
func (s *Store) Restore(ctx context.Context, fetcher IdentityFetcher) error {
	if s.persist == nil {
		return nil
	}
	log := logger.FromContextOr(ctx, s.log)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	token, err := s.persist.Load(ctx)
	if err != nil {
		log.Error("failed to load persisted token: %v", err)
		return errors.NewInternalError(err)
	}
	if token == "" {
		log.Debug("no persisted token, staying anonymous")
		return nil
	}

	identity, err := fetcher.Me(transport.ContextWithToken(ctx, token))
	if err != nil {
		if errors.IsAuth(err) {
			log.Info("persisted token rejected, discarding it")
			if delErr := s.persist.Delete(ctx); delErr != nil {
				log.Warn("failed to delete rejected token: %v", delErr)
			}
			return nil
		}
		log.Warn("could not validate persisted token: %v", err)
		return err
	}

	c := identity.Clone()
	s.set(&c, token)
	log.WithField("user", identity.Username).Info("session restored")
	return nil
}

// SetSession replaces identity and token as one unit and persists the token.
// A persistence failure is logged; the in-memory session still takes effect.
func (s *Store) SetSession(ctx context.Context, identity *models.Identity, token string) error {
	if identity == nil {
		return errors.NewValidationError("identity", "cannot be nil")
	}
	if strings.TrimSpace(token) == "" {
		return errors.NewValidationError("token", "cannot be empty")
	}

	c := identity.Clone()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.set(&c, token)

	if s.persist != nil {
		if err := s.persist.Save(ctx, token); err != nil {
			logger.FromContextOr(ctx, s.log).Warn("failed to persist token: %v", err)
		}
	}
	return nil
}

// UpdateIdentity swaps the identity while keeping the current token. It only applies
// when expectedToken is still the session token and the identity id is unchanged, so
// a reply for one session never lands in another.
func (s *Store) UpdateIdentity(expectedToken string, identity *models.Identity) bool {
	if identity == nil || expectedToken == "" {
		return false
	}
	c := identity.Clone()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != expectedToken {
		return false
	}
	if s.identity != nil && s.identity.ID != c.ID {
		return false
	}
	s.identity = &c
	return true
}

func (s *Store) set(identity *models.Identity, token string) {
	s.mu.Lock()
	s.identity = identity
	s.token = token
	s.mu.Unlock()
	metrics.ObserveSession(string(Authenticated))
}

// Clear drops identity and token and deletes the persisted token.
func (s *Store) Clear(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	wasSet := s.token != ""
	s.identity = nil
	s.token = ""
	s.mu.Unlock()

	if wasSet {
		metrics.ObserveSession(string(Anonymous))
	}
	if s.persist != nil {
		if err := s.persist.Delete(ctx); err != nil {
			logger.FromContextOr(ctx, s.log).Warn("failed to delete persisted token: %v", err)
		}
	}
}

// Close drops the in-memory session at shutdown. Unlike Clear it keeps the persisted
// token so the next Restore can pick it up.
func (s *Store) Close() {
	s.mu.Lock()
	s.identity = nil
	s.token = ""
	s.mu.Unlock()
}

// ClearOnAuthError clears the session when err is an AuthError and reports whether it did.
func (s *Store) ClearOnAuthError(ctx context.Context, err error) bool {
	if !errors.IsAuth(err) {
		return false
	}
	logger.FromContextOr(ctx, s.log).Info("credentials rejected, signing out")
	s.Clear(ctx)
	return true
}

// Current returns a copy of the identity, if any.
func (s *Store) Current() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return s.identity.Clone(), true
}

// Snapshot returns a copy of the identity together with the token it belongs to.
func (s *Store) Snapshot() (models.Identity, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return models.Identity{}, "", false
	}
	return s.identity.Clone(), s.token, true
}

// Token returns the credential token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) State() State {
	if s.Token() == "" {
		return Anonymous
	}
	return Authenticated
}
