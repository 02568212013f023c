package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/services"
	"github.com/vytor/dsaportal/internal/session"
	"github.com/vytor/dsaportal/internal/testutil/mocks"
)

func TestSessionService_LoginAndLogout(t *testing.T) {
	auth := &mocks.MockAuthGateway{}
	auth.On("Login", anyCtx, "ada@example.com", "secret").
		Return(&models.AuthResult{Token: "tok-9", User: scenarioIdentity()}, nil)
	store := session.New(nil)
	svc := services.NewSessionService(auth, store)

	identity, err := svc.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ada", identity.Username)
	assert.Equal(t, "tok-9", store.Token())
	assert.Equal(t, session.Authenticated, store.State())

	svc.Logout(context.Background())
	_, ok := store.Current()
	assert.False(t, ok)
	assert.Equal(t, "", store.Token())
}

func TestSessionService_LoginFailureKeepsAnonymous(t *testing.T) {
	auth := &mocks.MockAuthGateway{}
	auth.On("Login", anyCtx, "ada@example.com", "wrong").Return(nil, errors.NewAuthError(401, "Invalid credentials"))
	store := session.New(nil)
	svc := services.NewSessionService(auth, store)

	_, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.True(t, errors.IsAuth(err))
	assert.Equal(t, session.Anonymous, store.State())
}

func TestSessionService_Register(t *testing.T) {
	req := models.RegisterRequest{Username: "grace", Email: "grace@example.com", Password: "pw"}
	auth := &mocks.MockAuthGateway{}
	auth.On("Register", anyCtx, req).
		Return(&models.AuthResult{Token: "tok-r", User: models.Identity{ID: "u2", Username: "grace"}}, nil)
	store := session.New(nil)

	identity, err := services.NewSessionService(auth, store).Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u2", identity.ID)
	assert.Equal(t, "tok-r", store.Token())
}

func TestSessionService_WhoamiRefreshesIdentity(t *testing.T) {
	store := signedIn(t, scenarioIdentity())
	fresh := scenarioIdentity()
	fresh.SolvedProblems = fresh.SolvedProblems.Add("P4")
	auth := &mocks.MockAuthGateway{}
	auth.On("Me", anyCtx).Return(&fresh, nil)

	got, err := services.NewSessionService(auth, store).Whoami(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.SolvedProblems, 3)

	current, _ := store.Current()
	assert.Len(t, current.SolvedProblems, 3)
}

func TestSessionService_WhoamiAnonymous(t *testing.T) {
	auth := &mocks.MockAuthGateway{}

	_, err := services.NewSessionService(auth, session.New(nil)).Whoami(context.Background())
	assert.True(t, errors.IsAuth(err))
	auth.AssertNotCalled(t, "Me", anyCtx)
}

func TestSessionService_WhoamiDiscardsReplyForReplacedSession(t *testing.T) {
	store := signedIn(t, scenarioIdentity())
	stale := scenarioIdentity()
	bob := models.Identity{ID: "u2", Username: "bob"}
	auth := &mocks.MockAuthGateway{}
	auth.On("Me", anyCtx).
		Run(func(mock.Arguments) {
			store.Clear(context.Background())
			require.NoError(t, store.SetSession(context.Background(), &bob, "tok-bob"))
		}).
		Return(&stale, nil)

	_, err := services.NewSessionService(auth, store).Whoami(context.Background())
	assert.True(t, errors.IsConflict(err))

	current, _ := store.Current()
	assert.Equal(t, "u2", current.ID)
}
