// Package requestid attaches a correlation identifier to every HTTP request
// so log records for one submission can be tied together.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the request identifier.
const Header = "X-Request-ID"

type contextKey struct{}

// WithContext returns a context carrying the given request ID.
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// FromContext extracts the request ID from ctx, or "" if none is set.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, ok := ctx.Value(contextKey{}).(string)
	if !ok {
		return ""
	}
	return requestID
}

// Middleware ensures every request has an identifier. A client-supplied
// X-Request-ID is reused when it parses as a UUID; otherwise a new UUIDv4
// is generated. The chosen ID is stored in the request context and echoed
// in the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}
