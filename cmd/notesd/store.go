package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/sealnote/pkg/config"
	"github.com/dmitrymomot/sealnote/pkg/logger"
	"github.com/dmitrymomot/sealnote/pkg/mongo"
	"github.com/dmitrymomot/sealnote/pkg/notestore"
	"github.com/dmitrymomot/sealnote/pkg/pg"
	"github.com/dmitrymomot/sealnote/pkg/ratelimiter"
	"github.com/dmitrymomot/sealnote/pkg/redis"
	"github.com/dmitrymomot/sealnote/svc/notes"
)

// backend is an opened note store with its readiness check and cleanup.
type backend struct {
	store notes.Store
	ping  func(context.Context) error
	close func()

	limits ratelimiter.Store
}

// openStore connects the engine selected by cfg.Store. Backend settings are
// read from the environment only for that engine.
func openStore(ctx context.Context, cfg appConfig, log *slog.Logger) (*backend, error) {
	log = log.With(logger.Store(cfg.Store), logger.Component("store"))

	switch cfg.Store {
	case storeRedis:
		var rc redis.Config
		if err := config.Load(&rc); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, rc)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "note store connected")
		st := notestore.NewRedis(client)
		return &backend{
			store:  st,
			ping:   st.Healthcheck,
			close:  func() { _ = client.Close() },
			limits: ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(cfg.Key+":ratelimit:")),
		}, nil

	case storePostgres:
		var pc pg.Config
		if err := config.Load(&pc); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, pc)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, notestore.Migrations, notestore.MigrationsDir, pc, log); err != nil {
			pool.Close()
			return nil, err
		}
		log.InfoContext(ctx, "note store connected")
		st := notestore.NewPostgres(pool)
		return &backend{
			store: st,
			ping:  st.Healthcheck,
			close: pool.Close,
		}, nil

	case storeMongo:
		var mc mongo.Config
		if err := config.Load(&mc); err != nil {
			return nil, err
		}
		client, err := mongo.Connect(ctx, mc)
		if err != nil {
			return nil, err
		}
		coll := client.Database(mc.Database).Collection(cfg.MongoColl)
		log.InfoContext(ctx, "note store connected")
		st := notestore.NewMongo(coll)
		return &backend{
			store: st,
			ping:  st.Healthcheck,
			close: func() { _ = client.Disconnect(context.WithoutCancel(ctx)) },
		}, nil

	case storeS3:
		var sc notestore.S3Config
		if err := config.Load(&sc); err != nil {
			return nil, err
		}
		s3store, err := notestore.NewS3(ctx, sc)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "note store connected")
		return &backend{
			store: s3store,
			ping:  s3store.Healthcheck,
			close: func() {},
		}, nil

	default:
		log.WarnContext(ctx, "using in-memory note store, notes are lost on restart")
		mem := notestore.NewMemory()
		return &backend{
			store: mem,
			ping:  mem.Healthcheck,
			close: func() {},
		}, nil
	}
}

// writeLimiter builds the POST /notes limiter. Buckets live in Redis when the
// note store does, so every instance enforces the same limit.
func writeLimiter(cfg appConfig, b *backend) (*ratelimiter.Bucket, func(), error) {
	store, done := b.limits, func() {}
	if store == nil {
		mem := ratelimiter.NewMemoryStore()
		store, done = mem, mem.Close
	}
	limiter, err := ratelimiter.NewBucket(store, cfg.WriteLimit)
	if err != nil {
		done()
		return nil, nil, err
	}
	return limiter, done, nil
}
