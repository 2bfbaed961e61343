package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealnote/pkg/config"
)

type storeConfig struct {
	Backend  string `env:"TEST_NOTES_STORE" envDefault:"memory"`
	MaxBytes int64  `env:"TEST_NOTES_MAX_FRAME_BYTES" envDefault:"1048576"`
	Debug    bool   `env:"TEST_NOTES_DEBUG" envDefault:"false"`
}

type overrideConfig struct {
	Backend  string `env:"TEST_NOTES_OVERRIDE_STORE" envDefault:"memory"`
	MaxBytes int64  `env:"TEST_NOTES_OVERRIDE_MAX" envDefault:"1048576"`
}

type cachedConfig struct {
	Key string `env:"TEST_NOTES_CACHED_KEY" envDefault:"notes"`
}

type requiredConfig struct {
	PublicKey string `env:"TEST_NOTES_PUBLIC_KEY,required"`
}

type fileConfig struct {
	Server  string `env:"TEST_NOTES_FILE_SERVER"`
	Context string `env:"TEST_NOTES_FILE_CONTEXT"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg storeConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "memory", cfg.Backend)
	assert.Equal(t, int64(1<<20), cfg.MaxBytes)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_NOTES_OVERRIDE_STORE", "redis")
	t.Setenv("TEST_NOTES_OVERRIDE_MAX", "4096")

	var cfg overrideConfig
	require.NoError(t, config.ForceReload(&cfg))

	assert.Equal(t, "redis", cfg.Backend)
	assert.Equal(t, int64(4096), cfg.MaxBytes)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_NOTES_CACHED_KEY", "first")

	var first cachedConfig
	require.NoError(t, config.ForceReload(&first))

	t.Setenv("TEST_NOTES_CACHED_KEY", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Key)

	var reloaded cachedConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "second", reloaded.Key)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("TEST_NOTES_PUBLIC_KEY")

	var cfg requiredConfig
	err := config.ForceReload(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("TEST_NOTES_PUBLIC_KEY", "abcd")
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "abcd", cfg.PublicKey)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *storeConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("TEST_NOTES_PUBLIC_KEY")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.env")
	override := filepath.Join(dir, "override.env")
	require.NoError(t, os.WriteFile(base, []byte("TEST_NOTES_FILE_SERVER=http://base\nTEST_NOTES_FILE_CONTEXT=base\n"), 0o600))
	require.NoError(t, os.WriteFile(override, []byte("TEST_NOTES_FILE_SERVER=http://override\n"), 0o600))

	t.Setenv("TEST_NOTES_FILE_SERVER", "")
	t.Setenv("TEST_NOTES_FILE_CONTEXT", "")

	require.NoError(t, config.LoadEnv(base, override))

	var cfg fileConfig
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "http://override", cfg.Server)
	assert.Equal(t, "base", cfg.Context)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
