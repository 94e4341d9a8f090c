package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creditdost/portal/core/config"
)

type testAPIConfig struct {
	BaseURL string        `env:"TEST_CFG_BASE_URL" envDefault:"https://api.example.com"`
	Timeout time.Duration `env:"TEST_CFG_TIMEOUT" envDefault:"30s"`
}

type testRequiredConfig struct {
	Secret string `env:"TEST_CFG_MISSING_SECRET,required"`
}

type testCachedConfig struct {
	Value string `env:"TEST_CFG_CACHED" envDefault:"initial"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when variables are unset", func(t *testing.T) {
		var cfg testAPIConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("reads values from environment", func(t *testing.T) {
		t.Setenv("TEST_CFG_ENV_URL", "https://staging.example.com")

		type envConfig struct {
			URL string `env:"TEST_CFG_ENV_URL"`
		}

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://staging.example.com", cfg.URL)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		var cfg testRequiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_CFG_MISSING_SECRET")
	})

	t.Run("returns cached value on repeated load", func(t *testing.T) {
		var first testCachedConfig
		require.NoError(t, config.Load(&first))
		require.Equal(t, "initial", first.Value)

		// A later environment change must not leak into the cached type.
		t.Setenv("TEST_CFG_CACHED", "changed")

		var second testCachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("rejects nil target", func(t *testing.T) {
		err := config.Load[testAPIConfig](nil)
		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg testRequiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("does not panic with defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg testAPIConfig
			config.MustLoad(&cfg)
		})
	})
}
