package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pesach-orders/core/config"
)

type requiredConfig struct {
	Host string `env:"CONFIG_TEST_REQUIRED_HOST,required,notEmpty"`
}

type defaultsConfig struct {
	Port int    `env:"CONFIG_TEST_DEFAULTS_PORT" envDefault:"587"`
	Name string `env:"CONFIG_TEST_DEFAULTS_NAME" envDefault:"shop"`
}

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED_VALUE"`
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("CONFIG_TEST_REQUIRED_HOST", "")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Contains(t, err.Error(), "CONFIG_TEST_REQUIRED_HOST")

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})

	// Failures are not cached.
	t.Setenv("CONFIG_TEST_REQUIRED_HOST", "smtp.example.com")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "smtp.example.com", cfg.Host)
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 587, cfg.Port)
	assert.Equal(t, "shop", cfg.Name)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CONFIG_TEST_CACHED_VALUE", "second")

	var second cachedConfig
	config.MustLoad(&second)
	assert.Equal(t, "first", second.Value)
}
