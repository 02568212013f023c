// Package gateway exposes one typed gateway per portal API entity family.
// Each gateway is a thin projection over transport.Doer plus schema validation.
package gateway

import (
	"context"

	"github.com/vytor/dsaportal/internal/models"
)

type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)
	// Me requires a stored token and fails with an auth error when it is absent or expired.
	Me(ctx context.Context) (*models.Identity, error)
}

type TopicsGateway interface {
	List(ctx context.Context) ([]models.Topic, error)
	Get(ctx context.Context, id string) (*models.Topic, error)
}

type SheetsGateway interface {
	List(ctx context.Context) ([]models.Sheet, error)
	Get(ctx context.Context, id string) (*models.Sheet, error)
}

type ProblemsGateway interface {
	List(ctx context.Context) ([]models.Problem, error)
	Get(ctx context.Context, id string) (*models.Problem, error)
	// MarkComplete is the only write; repeating it for the same id yields the same progress.
	MarkComplete(ctx context.Context, id string) (*models.Progress, error)
}

type UsersGateway interface {
	Profile(ctx context.Context) (*models.Profile, error)
	PushProgress(ctx context.Context, update models.ProgressUpdate) error
}

// Set bundles every gateway so callers can be wired with one value.
type Set struct {
	Auth     AuthGateway
	Topics   TopicsGateway
	Sheets   SheetsGateway
	Problems ProblemsGateway
	Users    UsersGateway
}
