package config_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtheme/pkg/config"
)

// Tests in this file mutate the process environment and the shared cache,
// so they do not run in parallel.

type defaultsConfig struct {
	Name  string `env:"CONFIG_TEST_DEFAULT_NAME" envDefault:"mailtheme"`
	Size  int    `env:"CONFIG_TEST_DEFAULT_SIZE" envDefault:"256"`
	Debug bool   `env:"CONFIG_TEST_DEFAULT_DEBUG" envDefault:"true"`
}

type envConfig struct {
	Name string `env:"CONFIG_TEST_NAME"`
	Size int    `env:"CONFIG_TEST_SIZE"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value  string   `env:"CONFIG_TEST_FILE_VALUE"`
	List   []string `env:"CONFIG_TEST_FILE_LIST" envSeparator:","`
	Quoted string   `env:"CONFIG_TEST_FILE_QUOTED"`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, defaultsConfig{Name: "mailtheme", Size: 256, Debug: true}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("CONFIG_TEST_NAME", "editor")
	t.Setenv("CONFIG_TEST_SIZE", "12")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "editor", cfg.Name)
	assert.Equal(t, 12, cfg.Size)
}

func TestLoad_CachesPerType(t *testing.T) {
	config.ResetCache()
	t.Setenv("CONFIG_TEST_NAME", "first")

	var first envConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_TEST_NAME", "second")
	var cached envConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, "first", cached.Name)

	config.ResetCache()
	var fresh envConfig
	require.NoError(t, config.Load(&fresh))
	assert.Equal(t, "second", fresh.Name)
}

func TestLoad_Concurrent(t *testing.T) {
	config.ResetCache()
	t.Setenv("CONFIG_TEST_NAME", "shared")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg envConfig
			assert.NoError(t, config.Load(&cfg))
			assert.Equal(t, "shared", cfg.Name)
		}()
	}
	wg.Wait()
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()
	t.Setenv("CONFIG_TEST_REQUIRED", "")

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.ErrorIs(t, config.Load[requiredConfig](nil), config.ErrNilPointer)
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("CONFIG_TEST_REQUIRED", "token")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "token", cfg.Token)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	for _, k := range []string{"CONFIG_TEST_FILE_VALUE", "CONFIG_TEST_FILE_LIST"} {
		require.NoError(t, os.Unsetenv(k))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
	t.Setenv("CONFIG_TEST_FILE_QUOTED", "preset")

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, []string{"header", "body", "footer"}, cfg.List)
	assert.Equal(t, "preset", cfg.Quoted, "variables already set are not overridden")
}

func TestLoadEnv_MissingFile(t *testing.T) {
	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
}
