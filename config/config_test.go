package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hospital-management-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("works without an env file", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("DB_HOST", "db.internal")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "db.internal", cfg.DB.Host)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
		assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	})

	t.Run("reads values from an env file when present", func(t *testing.T) {
		dir := t.TempDir()
		envFile := "APP_PORT=9090\nJWT_SECRET=file-secret\nJWT_ACCESS_EXPIRY=5m\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(envFile), 0o600))
		chdir(t, dir)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "file-secret", cfg.JWT.Secret)
		assert.Equal(t, 5*time.Minute, cfg.JWT.AccessExpiry)
	})
}
