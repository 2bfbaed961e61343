package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	notesmod "github.com/dmitrymomot/sealnote/modules/notes"
	"github.com/dmitrymomot/sealnote/pkg/clientip"
	"github.com/dmitrymomot/sealnote/pkg/environment"
	"github.com/dmitrymomot/sealnote/pkg/httpserver"
	"github.com/dmitrymomot/sealnote/pkg/ratelimiter"
	"github.com/dmitrymomot/sealnote/pkg/requestid"
	"github.com/dmitrymomot/sealnote/svc/notes"
)

func newRouter(cfg appConfig, svc *notes.Service, b *backend, limiter ratelimiter.RateLimiter, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		clientip.Middleware(cfg.TrustProxy),
		requestid.Middleware,
		environment.Middleware(environment.Parse(cfg.Env)),
		middleware.Recoverer,
	)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log,
		httpserver.Check{Name: "store", Fn: b.ping},
	))

	opts := []notesmod.Option{
		notesmod.WithLogger(log),
		notesmod.WithMaxFrameBytes(cfg.MaxFrameBytes),
	}
	if limiter != nil {
		opts = append(opts, notesmod.WithWriteLimiter(limiter))
	}
	if cfg.StaticDir != "" {
		opts = append(opts, notesmod.WithStatic(os.DirFS(cfg.StaticDir)))
	}
	r.Mount("/", notesmod.New(svc, opts...).Handle())

	return r
}
