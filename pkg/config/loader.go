package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed copy per configuration type, keyed by type name.
type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	global = &cache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v based on its `env` field tags.
// Every configuration type is parsed at most once: later calls for the same
// type copy the cached value into v.
//
// The default .env file in the working directory is loaded before the first
// parse if it exists. Variables already present in the process environment
// take precedence over the file.
//
// Example:
//
//	type ServerConfig struct {
//		PublicKey string `env:"NOTES_PUBLIC_KEY,required"`
//		Key       string `env:"NOTES_KEY" envDefault:"notes"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	name := typeName[T]()

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[name]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.values[name] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment, later
// files overriding earlier ones. With no paths it loads ./.env.
// Unlike the implicit load done by Load, a missing file is an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Overload(p); err != nil {
			return errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", p, err))
		}
	}
	return nil
}

// ForceReload drops the cached value for T and parses the environment again.
func ForceReload[T any](v *T) error {
	global.mu.Lock()
	delete(global.values, typeName[T]())
	global.mu.Unlock()
	return Load(v)
}

// ResetCache drops every cached configuration.
func ResetCache() {
	global.mu.Lock()
	global.values = make(map[string]any)
	global.mu.Unlock()
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.PkgPath() + "." + t.String()
}
