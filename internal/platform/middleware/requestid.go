package middleware

import (
	"context"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID tags each request with an ID stored under chi's RequestIDKey and
// echoed in X-Request-Id. A caller-supplied ID is kept when it is short
// printable ASCII, so it can go into log lines as is; otherwise a UUIDv4 is
// issued.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(chimiddleware.RequestIDHeader)
			if !loggable(reqID) {
				reqID = uuid.NewString()
			}
			w.Header().Set(chimiddleware.RequestIDHeader, reqID)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), chimiddleware.RequestIDKey, reqID)))
		})
	}
}

func loggable(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	return strings.IndexFunc(id, func(c rune) bool { return c < ' ' || c > '~' }) < 0
}
