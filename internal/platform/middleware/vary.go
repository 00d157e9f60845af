package middleware

import (
	"net/http"
	"strings"
)

// Vary adds Accept to the Vary header, since responses are negotiated
// between JSON and CBOR. CORS adds Origin on its own.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			AddVary(w.Header(), "Accept")
			next.ServeHTTP(w, r)
		})
	}
}

// AddVary appends value to the Vary header unless it is already listed
// (case-insensitively, across repeated or comma-separated values).
func AddVary(h http.Header, value string) {
	for _, existing := range h.Values("Vary") {
		for part := range strings.SplitSeq(existing, ",") {
			part = strings.TrimSpace(part)
			if part == "*" || strings.EqualFold(part, value) {
				return
			}
		}
	}
	h.Add("Vary", value)
}
