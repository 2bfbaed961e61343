// Package notestore provides persistence engines for note frames.
//
// Every engine stores raw bytes under a string key and implements:
//
//	Get(ctx, key) ([]byte, error)                          // nil, nil when absent
//	Set(ctx, key, value) error
//	CompareAndSwap(ctx, key, old, next) (bool, error)      // atomic, absent == empty
//
// CompareAndSwap compares the exact stored bytes with old and writes next only
// on equality, which lets the notes service commit exactly the value it
// verified a signature against. Engines:
//
//   - Memory: in-process map, for tests and single-node development.
//   - Redis: GET/SET plus a Lua script for the conditional set.
//   - Postgres: one row per key in the notes table, conditional UPDATE/UPSERT.
//     Schema migrations are embedded and applied with goose.
//   - Mongo: one document per key, conditional update with upsert.
//   - S3: one object per key, conditional PutObject with If-Match/If-None-Match.
//
// Every engine also exposes Healthcheck for the readiness probe.
package notestore
