// Package identity derives the caller identity from forwarded request
// headers and threads it through the request context. Header values are
// trusted verbatim; validating them is the proxy's job, not ours.
package identity

import (
	"context"
	"net/http"
)

// Forwarded identity headers, matched case-insensitively.
const (
	HeaderUser  = "x-forwarded-user"
	HeaderEmail = "x-forwarded-email"
	HeaderName  = "x-forwarded-name"
)

// Sentinel values used when a header is missing.
const (
	AnonymousID    = "anonymous"
	AnonymousEmail = "anonymous@example.com"
	AnonymousName  = "Anonymous User"
)

// Identity is the per-request caller identity. It is never persisted on its
// own; it is denormalized into each todo at creation time.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// Anonymous returns the fallback identity used when no headers are present.
func Anonymous() Identity {
	return Identity{ID: AnonymousID, Email: AnonymousEmail, Name: AnonymousName}
}

// FromHeaders derives an Identity from request headers. Each missing value
// falls back to its anonymous sentinel independently.
func FromHeaders(h http.Header) Identity {
	id := Anonymous()
	if v := h.Get(HeaderUser); v != "" {
		id.ID = v
	}
	if v := h.Get(HeaderEmail); v != "" {
		id.Email = v
	}
	if v := h.Get(HeaderName); v != "" {
		id.Name = v
	}
	return id
}

type contextKey struct{}

// WithContext returns a context carrying the given identity.
func WithContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored in the context, or the anonymous
// identity when none was set.
func FromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(contextKey{}).(Identity); ok {
		return id
	}
	return Anonymous()
}

// HTTPContextFunc captures the caller identity from an inbound HTTP request.
// Wire it into the streamable server via server.WithHTTPContextFunc.
func HTTPContextFunc(ctx context.Context, r *http.Request) context.Context {
	return WithContext(ctx, FromHeaders(r.Header))
}
