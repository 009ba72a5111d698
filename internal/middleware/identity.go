package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mhaugen/awaydays/backend/internal/domain"
)

// Identity headers set by the authentication proxy fronting this API.
// The proxy verifies the session and forwards the result; this service
// trusts the headers and never sees tokens or credentials.
const (
	HeaderUserID = "X-User-Id"
	HeaderGuest  = "X-Guest"
)

// ctxKey is unexported so no other package can forge identity context values.
type ctxKey struct{}

// NewIdentityHandler returns a middleware that lifts the identity headers
// into the request context. Requests without X-User-Id are rejected with 401;
// every route behind this middleware can assume IdentityFrom succeeds.
func NewIdentityHandler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner := strings.TrimSpace(r.Header.Get(HeaderUserID))
			if owner == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":"unauthenticated","message":"missing ` + HeaderUserID + ` header"}}`))
				return
			}

			id := domain.Identity{
				Owner: owner,
				Guest: strings.EqualFold(r.Header.Get(HeaderGuest), "true"),
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// WithIdentity returns a context carrying the given identity.
// Exported for handler tests; production code goes through NewIdentityHandler.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom extracts the caller identity placed in the context by
// NewIdentityHandler.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(domain.Identity)
	return id, ok
}
