package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/logger"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithLogger(logger.Discard())}, opts...)
	return New(srv.URL+"/api", opts...)
}

func TestDo_DecodesJSONAndSendsHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/topics", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"Arrays"}]`))
	}, WithTokenSource(staticToken("tok-1")))

	var out []struct {
		Name string `json:"name"`
	}
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/topics", nil, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Arrays", out[0].Name)
}

func TestDo_OmitsAuthorizationWithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.Do(context.Background(), http.MethodGet, "/problems", nil, nil))
}

func TestDo_PublicPathsNeverCarryToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body["email"])
		w.Write([]byte(`{}`))
	}, WithTokenSource(staticToken("stale")))

	body := map[string]string{"email": "a@b.c", "password": "pw"}
	assert.NoError(t, c.Do(context.Background(), http.MethodPost, "/auth/login", body, nil))
}

func TestDo_ForwardsRequestIDFromContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get("X-Request-ID"))
	})

	ctx := logger.WithRequestID(context.Background(), "req-42")
	assert.NoError(t, c.Do(ctx, http.MethodGet, "/sheets", nil, nil))
}

func TestDo_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"token expired"}`, errors.IsAuth, "token expired"},
		{"forbidden", http.StatusForbidden, `{"error":"forbidden"}`, errors.IsAuth, "forbidden"},
		{"not found", http.StatusNotFound, `Topic not found`, errors.IsNotFound, "Topic not found"},
		{"server error", http.StatusInternalServerError, ``, errors.IsTransport, "Internal Server Error"},
		{"teapot", http.StatusTeapot, `{"message":"short and stout"}`, errors.IsTransport, "short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			err := c.Do(context.Background(), http.MethodGet, "/topics/t1", nil, &struct{}{})
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)

			appErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, appErr.Status)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestDo_MalformedBodyIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": 12`))
	})

	var out map[string]string
	err := c.Do(context.Background(), http.MethodGet, "/topics", nil, &out)
	assert.True(t, errors.IsDecode(err), "got %v", err)
}

func TestDo_EmptyBodyWithTargetIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var out map[string]string
	err := c.Do(context.Background(), http.MethodGet, "/topics", nil, &out)
	assert.True(t, errors.IsDecode(err), "got %v", err)
}

func TestDo_NetworkFailureIsTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1", WithLogger(logger.Discard()))

	err := c.Do(context.Background(), http.MethodGet, "/topics", nil, nil)
	require.True(t, errors.IsTransport(err), "got %v", err)
	appErr, _ := errors.As(err)
	assert.Equal(t, 0, appErr.Status)
}

func TestDo_RejectsAbsolutePaths(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	for _, p := range []string{"http://evil.example/topics", "//evil.example/topics", "topics"} {
		err := c.Do(context.Background(), http.MethodGet, p, nil, nil)
		assert.True(t, errors.IsTransport(err), "path %q: got %v", p, err)
	}
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestDo_HonoursContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Do(ctx, http.MethodGet, "/topics", nil, nil)
	assert.True(t, errors.IsTransport(err), "got %v", err)
}

func TestDo_DoesNotRetry(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_ = c.Do(context.Background(), http.MethodGet, "/topics", nil, nil)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestWithRateLimit(t *testing.T) {
	c := New("http://example.invalid", WithRateLimit(0, 0))
	assert.Nil(t, c.limiter)

	c = New("http://example.invalid", WithRateLimit(5, 0))
	require.NotNil(t, c.limiter)
	assert.Equal(t, 1, c.limiter.Burst())
}

func TestRouteTemplate(t *testing.T) {
	tests := map[string]string{
		"/topics":               "/topics",
		"/topics/abc":           "/topics/:id",
		"/problems/p1/complete": "/problems/:id/complete",
		"/sheets/s1?x=1":        "/sheets/:id",
		"/auth/me":              "/auth/me",
		"/users/profile":        "/users/profile",
	}
	for in, want := range tests {
		assert.Equal(t, want, routeTemplate(in), in)
	}
}
