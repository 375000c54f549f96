package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	inTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, DriverPostgres, cfg.Backend.Driver)
	assert.Equal(t, 256, cfg.Catalog.QueryCacheSize)
	assert.Equal(t, "@every 5m", cfg.Catalog.RefreshSchedule)
	assert.Equal(t, "host=localhost port=5432 user=probagno_user password=probagno_pass dbname=probagno sslmode=disable", cfg.Database.DSN())
}

func TestLoadReadsYAMLAndEnv(t *testing.T) {
	inTempDir(t)
	yaml := []byte("server:\n  port: 9090\nbackend:\n  driver: rest\n  base_url: https://db.example.com\n")
	require.NoError(t, os.WriteFile("config.yaml", yaml, 0o600))
	t.Setenv("SERVER_HOST", "0.0.0.0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, DriverREST, cfg.Backend.Driver)
	assert.Equal(t, "https://db.example.com", cfg.Backend.BaseURL)
}

func TestLoadRejectsRestWithoutBaseURL(t *testing.T) {
	inTempDir(t)
	t.Setenv("BACKEND_DRIVER", "rest")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	inTempDir(t)
	t.Setenv("BACKEND_DRIVER", "mongo")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown backend driver")
}
