package transport

import "context"

// Doer is the request surface the resource gateways depend on.
type Doer interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

var _ Doer = (*Client)(nil)

type tokenKey struct{}

// ContextWithToken overrides the TokenSource for requests made with the returned context.
// It lets a persisted token be checked before it is installed in the session.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// ResolveToken returns the context override when present, otherwise ts's token.
func ResolveToken(ctx context.Context, ts TokenSource) string {
	if tok, ok := ctx.Value(tokenKey{}).(string); ok {
		return tok
	}
	if ts == nil {
		return ""
	}
	return ts.Token()
}
