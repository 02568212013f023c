package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/metrics"
)

const (
	maxErrorBody = 1024
	maxBody      = 8 << 20
)

// Paths that never carry the bearer token.
var publicPaths = map[string]bool{
	"/auth/login":    true,
	"/auth/register": true,
}

// TokenSource supplies the current credential token. An empty string means anonymous.
type TokenSource interface {
	Token() string
}

type noToken struct{}

func (noToken) Token() string { return "" }

// Client performs JSON-over-HTTP requests against one base URL fixed at construction.
// It never retries and never caches.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	log        *logger.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		if ts != nil {
			c.tokens = ts
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithRateLimit throttles outbound requests. rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     noToken{},
		log:        logger.Default().WithPrefix("transport"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string { return c.baseURL }

// Do sends method to path with body encoded as JSON (when non-nil) and decodes a 2xx
// response into out (when non-nil).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	if err := checkRelative(path); err != nil {
		return err
	}
	route := routeTemplate(path)

	requestID := logger.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := logger.FromContextOr(ctx, c.log).WithPrefix("transport").WithFields(map[string]any{
		"method":     method,
		"route":      route,
		"request_id": requestID,
	})

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			log.Warn("rate limiter wait aborted: %v", err)
			return errors.NewTransportError(0, fmt.Sprintf("%s %s not sent", method, path), err)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			log.Error("failed to encode request body: %v", err)
			return errors.NewInternalError(fmt.Errorf("encode %s %s body: %w", method, path, err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return errors.NewTransportError(0, fmt.Sprintf("build %s %s", method, path), err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := ResolveToken(ctx, c.tokens); token != "" && !publicPaths[path] {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debug("request started")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(method, route, 0, time.Since(start))
		log.Error("request failed after %v: %v", time.Since(start), err)
		return errors.NewTransportError(0, fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream(method, route, resp.StatusCode, time.Since(start))
	log.Debug("response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(resp)
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			log.Warn("request rejected: status=%d, message=%s", resp.StatusCode, msg)
			return errors.NewAuthError(resp.StatusCode, msg)
		case http.StatusNotFound:
			log.Debug("resource not found: %s", msg)
			return &errors.AppError{Code: errors.ErrCodeNotFound, Message: msg, Status: resp.StatusCode}
		default:
			log.Error("unexpected status=%d, message=%s", resp.StatusCode, msg)
			return errors.NewTransportError(resp.StatusCode, msg, nil)
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(out); err != nil {
		log.Error("failed to decode response: %v", err)
		return errors.NewDecodeError(route, err)
	}
	return nil
}

func checkRelative(path string) error {
	u, err := url.Parse(path)
	if err != nil || u.Scheme != "" || u.Host != "" || !strings.HasPrefix(path, "/") {
		return errors.NewTransportError(0, fmt.Sprintf("path must be relative to the base URL: %q", path), err)
	}
	return nil
}

// errorMessage extracts {"message": ...} or {"error": ...} from an error body, falling
// back to the raw text and then to the status text.
func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

// routeTemplate collapses entity ids so metric labels stay bounded.
func routeTemplate(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) >= 2 {
		switch parts[0] {
		case "topics", "sheets", "problems":
			parts[1] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
