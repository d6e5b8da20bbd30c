package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"INCUBATOR_CONFIG_PATH", "INCUBATOR_SERVER_HOST",
		"INCUBATOR_SERVER_PORT", "INCUBATOR_DB_PATH", "INCUBATOR_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "incubator.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INCUBATOR_SERVER_HOST", "127.0.0.1")
	t.Setenv("INCUBATOR_SERVER_PORT", "9090")
	t.Setenv("INCUBATOR_DB_PATH", "/tmp/test.db")
	t.Setenv("INCUBATOR_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/test.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("INCUBATOR_SERVER_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadYAMLFileThenEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  host: 10.0.0.5\n  port: 7000\nlog:\n  level: warn\n"), 0o644))

	t.Setenv("INCUBATOR_CONFIG_PATH", path)
	t.Setenv("INCUBATOR_SERVER_PORT", "7001")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "10.0.0.5", cfg.Server.Host)
	require.Equal(t, 7001, cfg.Server.Port)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("INCUBATOR_CONFIG_PATH", "/does/not/exist.yaml")
	_, err := Load()
	require.Error(t, err)
}
