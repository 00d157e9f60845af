// Package demo serves the demo app's two endpoints as HTTP Cloud Functions.
package demo

import (
	"encoding/json"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// Greeting matches the message served by the main server.
const Greeting = "Hello from CI/CD Demo App!"

func init() {
	functions.HTTP("Home", homeHandler)
	functions.HTTP("Health", healthHandler)
}

// HomeResponse is the home function payload.
type HomeResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the health function payload.
type HealthResponse struct {
	Status string `json:"status"`
}

func homeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, HomeResponse{Message: Greeting})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, HealthResponse{Status: "healthy"})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
