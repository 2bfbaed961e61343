// Command notesd serves a single end-to-end encrypted note.
//
// The server stores opaque frames and accepts a new frame only when it is
// signed, together with the frame it replaces, by the key in
// NOTES_PUBLIC_KEY. Derive that key with `notes pubkey`.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/sealnote/pkg/clientip"
	"github.com/dmitrymomot/sealnote/pkg/config"
	"github.com/dmitrymomot/sealnote/pkg/environment"
	"github.com/dmitrymomot/sealnote/pkg/httpserver"
	"github.com/dmitrymomot/sealnote/pkg/logger"
	"github.com/dmitrymomot/sealnote/pkg/ratelimiter"
	"github.com/dmitrymomot/sealnote/pkg/requestid"
	"github.com/dmitrymomot/sealnote/pkg/signing"
	"github.com/dmitrymomot/sealnote/svc/notes"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.Env)
	log, err := newLogger(cfg, env, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "notesd: %v\n", err)
		os.Exit(1)
	}
	logger.SetAsDefault(log)

	ctx := environment.WithContext(context.Background(), env)
	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "notesd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg appConfig, env environment.Environment, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithOutput(w),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	verifier, err := signing.ParseVerifier(cfg.PublicKey)
	if err != nil {
		return err
	}

	b, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.close()

	svc := notes.NewService(b.store, verifier,
		notes.WithKey(cfg.Key),
		notes.WithLogger(log),
	)

	var limiter ratelimiter.RateLimiter
	if cfg.WriteLimitEnabled {
		bucket, done, err := writeLimiter(cfg, b)
		if err != nil {
			return err
		}
		defer done()
		limiter = bucket
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(cfg, svc, b, limiter, log))
}
