package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/dsaportal/internal/errors"
)

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading dashboard: %w", errors.NewAuthError(http.StatusUnauthorized, "token expired"))

	assert.True(t, errors.IsAuth(wrapped))
	assert.False(t, errors.IsNotFound(wrapped))
	assert.False(t, errors.IsAuth(stderrors.New("plain")))
	assert.False(t, errors.IsAuth(nil))
}

func TestAppError_CarriesStatusAndCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.NewTransportError(0, "GET /topics failed", cause)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, 0, appErr.Status)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "TRANSPORT_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"auth", errors.NewAuthError(http.StatusForbidden, "nope"), http.StatusUnauthorized},
		{"not found", errors.NewNotFoundError("topic", "t1"), http.StatusNotFound},
		{"validation", errors.NewValidationError("id", "empty"), http.StatusBadRequest},
		{"decode", errors.NewDecodeError("topic", nil), http.StatusBadGateway},
		{"transport", errors.NewTransportError(500, "boom", nil), http.StatusBadGateway},
		{"session changed", errors.NewSessionChangedError("signed out"), http.StatusConflict},
		{"internal", errors.NewInternalError(stderrors.New("x")), http.StatusInternalServerError},
		{"unknown", stderrors.New("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.HTTPStatus(tt.err))
		})
	}
}
