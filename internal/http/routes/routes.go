package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/janisto/cicd-demo-app/internal/http/health"
	"github.com/janisto/cicd-demo-app/internal/http/home"
)

const (
	// HealthPath is served directly by chi, outside the OpenAPI surface.
	HealthPath = "/health"
	// DocsPath hosts the interactive API reference.
	DocsPath = "/api-docs"
	// MetricsPath exposes Prometheus metrics when they are enabled.
	MetricsPath = "/metrics"
)

// Unhardened lists the path prefixes served without the API security
// headers. The docs page loads its scripts and styles from a CDN.
func Unhardened() []string {
	return []string{DocsPath}
}

// APIConfig returns the huma configuration shared by the server and tests.
// The default create hooks are dropped so response bodies carry no $schema
// field and no describedBy Link header.
func APIConfig(title, version string) huma.Config {
	cfg := huma.DefaultConfig(title, version)
	cfg.DocsPath = DocsPath
	cfg.CreateHooks = nil
	return cfg
}

// Register wires the application routes: the health check on the router and
// the home operation on the API.
func Register(router chi.Router, api huma.API) {
	router.Get(HealthPath, health.Handler)
	home.Register(api)
}
