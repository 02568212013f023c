package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vytor/dsaportal/internal/gateway"
	"github.com/vytor/dsaportal/internal/models"
)

// MockAuthGateway is a mock implementation of gateway.AuthGateway
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResult), args.Error(1)
}

func (m *MockAuthGateway) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResult), args.Error(1)
}

func (m *MockAuthGateway) Me(ctx context.Context) (*models.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

// MockTopicsGateway is a mock implementation of gateway.TopicsGateway
type MockTopicsGateway struct {
	mock.Mock
}

func (m *MockTopicsGateway) List(ctx context.Context) ([]models.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockTopicsGateway) Get(ctx context.Context, id string) (*models.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topic), args.Error(1)
}

// MockSheetsGateway is a mock implementation of gateway.SheetsGateway
type MockSheetsGateway struct {
	mock.Mock
}

func (m *MockSheetsGateway) List(ctx context.Context) ([]models.Sheet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Sheet), args.Error(1)
}

func (m *MockSheetsGateway) Get(ctx context.Context, id string) (*models.Sheet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sheet), args.Error(1)
}

// MockProblemsGateway is a mock implementation of gateway.ProblemsGateway
type MockProblemsGateway struct {
	mock.Mock
}

func (m *MockProblemsGateway) List(ctx context.Context) ([]models.Problem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Problem), args.Error(1)
}

func (m *MockProblemsGateway) Get(ctx context.Context, id string) (*models.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Problem), args.Error(1)
}

func (m *MockProblemsGateway) MarkComplete(ctx context.Context, id string) (*models.Progress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Progress), args.Error(1)
}

// MockUsersGateway is a mock implementation of gateway.UsersGateway
type MockUsersGateway struct {
	mock.Mock
}

func (m *MockUsersGateway) Profile(ctx context.Context) (*models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockUsersGateway) PushProgress(ctx context.Context, update models.ProgressUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

// Gateways bundles one mock per gateway.
type Gateways struct {
	Auth     *MockAuthGateway
	Topics   *MockTopicsGateway
	Sheets   *MockSheetsGateway
	Problems *MockProblemsGateway
	Users    *MockUsersGateway
}

func NewGateways() *Gateways {
	return &Gateways{
		Auth:     &MockAuthGateway{},
		Topics:   &MockTopicsGateway{},
		Sheets:   &MockSheetsGateway{},
		Problems: &MockProblemsGateway{},
		Users:    &MockUsersGateway{},
	}
}

// Set returns the mocks as a gateway.Set.
func (g *Gateways) Set() gateway.Set {
	return gateway.Set{
		Auth:     g.Auth,
		Topics:   g.Topics,
		Sheets:   g.Sheets,
		Problems: g.Problems,
		Users:    g.Users,
	}
}
