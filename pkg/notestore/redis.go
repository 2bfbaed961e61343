package notestore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// casScript sets KEYS[1] to ARGV[2] when its current value, with a missing
// key read as the empty string, equals ARGV[1].
var casScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur then cur = '' end
if cur == ARGV[1] then
	redis.call('SET', KEYS[1], ARGV[2])
	return 1
end
return 0
`)

// Redis stores each note as a plain string value.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis wraps a connected client, see pkg/redis.Connect.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrGetFailed, err)
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Join(ErrSetFailed, err)
	}
	return nil
}

func (r *Redis) CompareAndSwap(ctx context.Context, key string, old, next []byte) (bool, error) {
	n, err := casScript.Run(ctx, r.client, []string{key}, old, next).Int()
	if err != nil {
		return false, errors.Join(ErrCASFailed, err)
	}
	return n == 1, nil
}

func (r *Redis) Healthcheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}
