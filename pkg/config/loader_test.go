package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formguard/formguard/pkg/config"
)

type testConfig struct {
	Addr     string `env:"FORMGUARD_TEST_ADDR" envDefault:":8080"`
	LogLevel string `env:"FORMGUARD_TEST_LOG_LEVEL" envDefault:"info"`
	Required string `env:"FORMGUARD_TEST_REQUIRED"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FORMGUARD_TEST_ADDR", ":9090")
	t.Setenv("FORMGUARD_TEST_LOG_LEVEL", "debug")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadNilPointer(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

type requiredConfig struct {
	Token string `env:"FORMGUARD_TEST_TOKEN,required"`
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}
