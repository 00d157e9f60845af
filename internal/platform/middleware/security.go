package middleware

import (
	"net/http"
	"strings"
)

// apiHeaders hardens JSON and CBOR responses that no browser should frame,
// cache or sniff.
var apiHeaders = [...][2]string{
	{"Cache-Control", "no-store"},
	{"Content-Security-Policy", "frame-ancestors 'none'"},
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Permissions-Policy", "accelerometer=(), camera=(), geolocation=(), gyroscope=(), " +
		"magnetometer=(), microphone=(), payment=(), usb=()"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
}

// Security sets apiHeaders on every response except those whose path starts
// with one of the exempt prefixes.
func Security(exempt ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isExempt(r.URL.Path, exempt) {
				h := w.Header()
				for _, kv := range apiHeaders {
					h.Set(kv[0], kv[1])
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isExempt(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
