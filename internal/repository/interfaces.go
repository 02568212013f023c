package repository

import (
	"context"

	"github.com/vytor/dsaportal/internal/models"
)

// TokenRepository stores the single persisted credential token.
type TokenRepository interface {
	// Load returns "" when no token is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// SyncRepository keeps a log of background progress pushes.
type SyncRepository interface {
	Record(ctx context.Context, rec models.SyncRecord) (int64, error)
	Recent(ctx context.Context, identityID string, limit int) ([]models.SyncRecord, error)
	CountFailed(ctx context.Context, identityID string) (int, error)
}
