package health

import (
	"encoding/json"
	"net/http"

	applog "github.com/janisto/cicd-demo-app/internal/platform/logging"
)

// StatusHealthy is the only status the service reports while it can answer.
const StatusHealthy = "healthy"

// Response is the payload for the health endpoint.
type Response struct {
	Status string `json:"status"`
}

// Handler is a plain HTTP handler for the health check endpoint. It bypasses
// the API layer so load balancer checks stay cheap.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Response{Status: StatusHealthy}); err != nil {
		applog.LogError(r.Context(), "failed to write health response", err)
	}
}
