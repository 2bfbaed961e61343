package notestore

import (
	"context"
	"embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Migrations holds the goose migrations for the notes table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations to pass to pg.Migrate.
const MigrationsDir = "migrations"

const (
	pgGet = `SELECT value FROM notes WHERE key = $1`

	pgSet = `INSERT INTO notes (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	// An absent row and an empty value both count as the empty note.
	pgInsertIfEmpty = `INSERT INTO notes (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
WHERE notes.value = ''::bytea`

	pgUpdateIfEqual = `UPDATE notes SET value = $3, updated_at = now() WHERE key = $1 AND value = $2`
)

// PgxConn is the subset of *pgxpool.Pool used by Postgres.
type PgxConn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// Postgres keeps one row per key in the notes table created by Migrations.
type Postgres struct {
	conn PgxConn
}

func NewPostgres(conn PgxConn) *Postgres {
	return &Postgres{conn: conn}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := p.conn.QueryRow(ctx, pgGet, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrGetFailed, err)
	}
	return v, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	if _, err := p.conn.Exec(ctx, pgSet, key, nonNil(value)); err != nil {
		return errors.Join(ErrSetFailed, err)
	}
	return nil
}

func (p *Postgres) CompareAndSwap(ctx context.Context, key string, old, next []byte) (bool, error) {
	var (
		tag pgconn.CommandTag
		err error
	)
	if len(old) == 0 {
		tag, err = p.conn.Exec(ctx, pgInsertIfEmpty, key, nonNil(next))
	} else {
		tag, err = p.conn.Exec(ctx, pgUpdateIfEqual, key, old, nonNil(next))
	}
	if err != nil {
		return false, errors.Join(ErrCASFailed, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (p *Postgres) Healthcheck(ctx context.Context) error {
	if err := p.conn.Ping(ctx); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// nonNil keeps pgx from encoding an empty note as NULL.
func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
