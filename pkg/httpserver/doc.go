// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, health-check handlers, and
// structured logging via slog.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal is
// received and then shuts the server down using http.Server.Shutdown with a
// configurable deadline. Serve does the same on a caller-provided listener,
// which is what tests use to bind an ephemeral port.
//
// Construction is done through New or NewFromConfig together with Option
// helpers such as WithAddr, WithReadTimeout and WithLogger. Config carries
// the same settings as `env` tags for pkg/config.
//
// LivenessHandler and ReadinessHandler back the /health/live and
// /health/ready probes. Readiness runs every Check, usually the Healthcheck of
// the configured storage backend.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/ready", httpserver.ReadinessHandler(log,
//		httpserver.Check{Name: "redis", Fn: store.Healthcheck},
//	))
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Listen and serve errors are wrapped with ErrStart, shutdown errors with
// ErrShutdown. Use errors.Is to distinguish them.
package httpserver
