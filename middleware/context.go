package middleware

import (
	"context"

	"github.com/SebasDosman/vortex-bird-test/auth"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Context key type to avoid collisions
type contextKey string

const (
	// PrincipalKey is the context key for the resolved principal
	PrincipalKey contextKey = "principal"
)

// GetRequestIDFromContext retrieves the request ID set by chi's RequestID
// middleware
func GetRequestIDFromContext(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// PrincipalFromContext returns the principal attached by Authenticate, or
// the anonymous principal
func PrincipalFromContext(ctx context.Context) auth.Principal {
	if val := ctx.Value(PrincipalKey); val != nil {
		if p, ok := val.(auth.Principal); ok {
			return p
		}
	}
	return auth.Anonymous()
}

// WithPrincipal attaches a principal to the context
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}
