package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin to read the API. The app only serves safe methods,
// so credentials are never allowed.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-Id",
			"traceparent",
		},
		ExposedHeaders: []string{"Link", "X-Request-Id"},
		MaxAge:         300,
	})
}
