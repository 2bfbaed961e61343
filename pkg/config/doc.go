// Package config fills configuration structs from the environment with
// github.com/caarlos0/env/v11, optionally seeded from .env files through
// github.com/joho/godotenv.
//
// notesd loads its appConfig once with MustLoad and then loads only the
// config of the selected note store (redis.Config, pg.Config, mongo.Config
// or notestore.S3Config). Each struct type is parsed once and cached, so
// packages can call Load for the same type without re-reading the
// environment.
//
// The notes CLI calls LoadEnv for --env-file and then ForceReload, because
// flags and env files may change the environment after an earlier load.
//
//	type serverConfig struct {
//	    PublicKey string `env:"NOTES_PUBLIC_KEY,required"`
//	    Store     string `env:"NOTES_STORE" envDefault:"memory"`
//	}
//
//	var cfg serverConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can
// be matched with errors.Is. ResetCache clears the cache between tests.
package config
