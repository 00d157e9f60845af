package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/cicd-demo-app/internal/config"
	"github.com/janisto/cicd-demo-app/internal/http/routes"
	applog "github.com/janisto/cicd-demo-app/internal/platform/logging"
	"github.com/janisto/cicd-demo-app/internal/platform/metrics"
	appmiddleware "github.com/janisto/cicd-demo-app/internal/platform/middleware"
	"github.com/janisto/cicd-demo-app/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load(Version)
	if err != nil {
		applog.LogFatal(context.Background(), "config load failed", err)
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogFatal(context.Background(), "invalid log level", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.String("app", cfg.AppName),
			zap.String("version", cfg.Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		_ = applog.Sync()
		os.Exit(1)
	case sig := <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// newRouter assembles middleware, routes and operational endpoints.
// Middleware order matters: request IDs must exist before the request logger
// reads them, and the recoverer sits innermost so access logs and metrics see
// the 500 it writes.
func newRouter(cfg config.Config) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	stack := []func(http.Handler) http.Handler{
		appmiddleware.Security(routes.Unhardened()...),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP / X-Forwarded-For. Only run behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1 << 20), // 1 MB
		chimiddleware.GetHead,
		applog.RequestLogger(cfg.ProjectID),
		applog.AccessLogger(),
	}
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(cfg.AppName, cfg.Version)
		stack = append(stack, m.Middleware())
	}
	stack = append(stack, respond.Recoverer())
	router.Use(stack...)

	api := humachi.New(router, routes.APIConfig(cfg.AppName, cfg.Version))
	routes.Register(router, api)
	if m != nil {
		router.Method(http.MethodGet, routes.MetricsPath, m.Handler())
	}
	return router
}
