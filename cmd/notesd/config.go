package main

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/sealnote/pkg/httpserver"
	"github.com/dmitrymomot/sealnote/pkg/ratelimiter"
)

const (
	storeMemory   = "memory"
	storeRedis    = "redis"
	storePostgres = "postgres"
	storeMongo    = "mongo"
	storeS3       = "s3"
)

var (
	errUnknownStore  = errors.New("unknown note store")
	errMissingPubKey = errors.New("NOTES_PUBLIC_KEY is required")
)

type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	ServiceName   string `env:"APP_NAME" envDefault:"notesd"`
	LogLevel      string `env:"LOG_LEVEL"` // overrides the APP_ENV default
	PublicKey     string `env:"NOTES_PUBLIC_KEY"` // hex Ed25519 key, see `notes pubkey`
	Key           string `env:"NOTES_KEY" envDefault:"notes"`
	Store         string `env:"NOTES_STORE" envDefault:"memory"`
	StaticDir     string `env:"NOTES_STATIC_DIR"`
	MaxFrameBytes int64  `env:"NOTES_MAX_FRAME_BYTES" envDefault:"1048576"`
	MongoColl     string `env:"NOTES_MONGO_COLLECTION" envDefault:"notes"`
	TrustProxy    bool   `env:"NOTES_TRUST_PROXY" envDefault:"false"` // take client addresses from proxy headers

	WriteLimitEnabled bool               `env:"NOTES_WRITE_LIMIT_ENABLED" envDefault:"true"`
	WriteLimit        ratelimiter.Config `envPrefix:"NOTES_WRITE_LIMIT_"`

	HTTP httpserver.Config
}

func (c appConfig) validate() error {
	if c.PublicKey == "" {
		return errMissingPubKey
	}
	switch c.Store {
	case storeMemory, storeRedis, storePostgres, storeMongo, storeS3:
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownStore, c.Store)
	}
}
