package api

import (
	"context"

	"github.com/vytor/dsaportal/internal/repository"
	"github.com/vytor/dsaportal/internal/services"
	"github.com/vytor/dsaportal/internal/session"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server is the JSON backend-for-frontend over the portal services.
type Server struct {
	Portal   services.PortalService
	Sessions services.SessionService
	Session  *session.Store
	// SyncLog and DB are optional.
	SyncLog repository.SyncRepository
	DB      Pinger
}
