// Package pg connects to PostgreSQL with pgx and applies goose migrations
// from an embedded filesystem.
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := pg.Migrate(ctx, pool, migrations, "migrations", cfg, log); err != nil {
//	    return err
//	}
//
// IsNotFoundError
// and IsDuplicateKeyError classify driver errors without importing pgconn at
// every call site.
package pg
