package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("OSU_API_KEY", "test-key")
	t.Setenv("OSU_API_MAX_IN_FLIGHT", "20")
	t.Setenv("OSU_API_CONNECTOR", "SYNC")
	t.Setenv("GATEWAY_OPEN_DOCS", "true")

	cfg := Load()

	assert.Equal(t, "test-key", cfg.OsuAPI.Key)
	assert.Equal(t, 20, cfg.OsuAPI.MaxInFlight)
	assert.Equal(t, ConnectorSync, cfg.OsuAPI.Connector)
	assert.True(t, cfg.OpenDocs)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"OSU_API_BASE_URL", "OSU_API_TIMEOUT_SEC", "OSU_API_CONNECTOR", "PORT"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "https://osu.ppy.sh", cfg.OsuAPI.BaseURL)
	assert.Equal(t, 10, cfg.OsuAPI.TimeoutSec)
	assert.Equal(t, ConnectorConcurrent, cfg.OsuAPI.Connector)
	assert.Equal(t, "8080", cfg.Port)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvOneOf(t *testing.T) {
	key := "TEST_ONE_OF_VAR"

	t.Setenv(key, "Concurrent")
	assert.Equal(t, "concurrent", getEnvOneOf(key, "sync", "sync", "concurrent"))

	t.Setenv(key, "threads")
	assert.Equal(t, "sync", getEnvOneOf(key, "sync", "sync", "concurrent"))
}
