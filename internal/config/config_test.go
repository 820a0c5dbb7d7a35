package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
logger:
  level: ${TASKNOTES_TEST_LOG_LEVEL:-info}
server:
  port_grpc: ${TASKNOTES_TEST_GRPC_PORT:-50051}
  port_http: 8080
  graceful_shutdown_timeout: 5
gateway:
  cors_allowed_origins: "*"
storage:
  driver: ${TASKNOTES_TEST_STORAGE:-file}
  file_dir: ./data
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitConfig_Defaults(t *testing.T) {
	cfg, err := InitConfig[Config](writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 50051, cfg.Server.PortGRPC)
	assert.Equal(t, 8080, cfg.Server.PortHTTP)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, "./data", cfg.Storage.FileDir)
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.IsDebug())
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TASKNOTES_TEST_LOG_LEVEL", "debug")
	t.Setenv("TASKNOTES_TEST_GRPC_PORT", "6000")
	t.Setenv("TASKNOTES_TEST_STORAGE", "memory")

	cfg, err := InitConfig[Config](writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.True(t, cfg.IsDebug())
	assert.Equal(t, 6000, cfg.Server.PortGRPC)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
}

func TestInitConfig_MissingFile(t *testing.T) {
	_, err := InitConfig[Config](filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Server: &ConfigServer{}}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.NotNil(t, cfg.Gateway)

	assert.Error(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Server: &ConfigServer{}, Storage: &ConfigStorage{Driver: "sqlite"}}).Validate())
	assert.Error(t, (&Config{Server: &ConfigServer{}, Storage: &ConfigStorage{Driver: "redis"}}).Validate())
	assert.Error(t, (&Config{Server: &ConfigServer{}, Storage: &ConfigStorage{Driver: "etcd"}}).Validate())
}

func TestExpandEnvWithDefaults(t *testing.T) {
	t.Setenv("TASKNOTES_TEST_SET", "value")

	assert.Equal(t, "value", expandEnvWithDefaults("${TASKNOTES_TEST_SET:-other}"))
	assert.Equal(t, "fallback", expandEnvWithDefaults("${TASKNOTES_TEST_UNSET:-fallback}"))
	assert.Equal(t, "", expandEnvWithDefaults("${TASKNOTES_TEST_UNSET}"))
	assert.Equal(t, "plain", expandEnvWithDefaults("plain"))
}
