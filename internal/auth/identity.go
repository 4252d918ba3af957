package auth

import (
	"context"
	"net/http"
	"strings"
)

// Request metadata headers carrying the caller identity. This is the entire
// trust boundary: the service trusts them verbatim and performs no
// cryptographic verification.
const (
	HeaderUserID   = "X-User-Id"
	HeaderProfiles = "X-User-Profiles"
)

// Identity is the caller identity derived once per request. It is never
// persisted and is passed explicitly into handlers and guards.
type Identity struct {
	ID              string
	Profiles        []string
	IsAuthenticated bool
}

// HasAnyProfile reports whether the caller's profile set intersects allowed.
func (id Identity) HasAnyProfile(allowed []string) bool {
	for _, p := range id.Profiles {
		for _, a := range allowed {
			if p == a {
				return true
			}
		}
	}
	return false
}

// IdentityFromRequest derives the caller identity from request metadata.
// Absent or malformed headers degrade to an unauthenticated identity with
// an empty profile set; extraction never fails.
func IdentityFromRequest(r *http.Request) Identity {
	userID := r.Header.Get(HeaderUserID)

	var profiles []string
	for _, p := range strings.Split(r.Header.Get(HeaderProfiles), ",") {
		if p = strings.TrimSpace(p); p != "" {
			profiles = append(profiles, p)
		}
	}

	return Identity{
		ID:              userID,
		Profiles:        profiles,
		IsAuthenticated: userID != "",
	}
}

type contextKey struct{}

// WithIdentity returns ctx with the identity attached.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext returns the identity attached by the middleware.
// A request that bypassed the middleware yields the zero (unauthenticated)
// identity.
func IdentityFromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(contextKey{}).(Identity)
	return id
}

// Middleware derives the caller identity and attaches it to the request
// context for downstream gates and handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithIdentity(r.Context(), IdentityFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
