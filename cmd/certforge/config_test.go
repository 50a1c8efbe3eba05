package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("STORAGE_ACCESS_KEY", "")
	t.Setenv("STORAGE_SECRET_KEY", "")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, 32, cfg.AssetCacheSize)
	require.Equal(t, int64(32<<20), cfg.MaxAssetSize)
	require.Equal(t, "production", cfg.Sentry.Environment)
	require.Equal(t, slog.LevelWarn, cfg.Sentry.MinLevel)
	require.False(t, cfg.Storage.Enabled())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"CERTFORGE_ASSETS_DIR=/srv/assets\n"+
			"STORAGE_BUCKET=certs\n"+
			"STORAGE_ACCESS_KEY=key\n"+
			"STORAGE_SECRET_KEY=secret\n"+
			"STORAGE_PATH_STYLE=true\n",
	), 0o600))

	// godotenv never overrides variables that are already set
	t.Setenv("CERTFORGE_ASSET_CACHE_SIZE", "4")
	for _, k := range []string{"CERTFORGE_ASSETS_DIR", "STORAGE_BUCKET", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY", "STORAGE_PATH_STYLE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := loadConfig(envFile)
	require.NoError(t, err)
	require.Equal(t, "/srv/assets", cfg.AssetsDir)
	require.Equal(t, 4, cfg.AssetCacheSize)
	require.Equal(t, "certs", cfg.Storage.Bucket)
	require.True(t, cfg.Storage.PathStyle)
	require.True(t, cfg.Storage.Enabled())
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("CERTFORGE_MAX_ASSET_SIZE", "0")

	_, err := loadConfig("")
	require.Error(t, err)

	t.Setenv("CERTFORGE_MAX_ASSET_SIZE", "not-a-number")
	_, err = loadConfig("")
	require.Error(t, err)
}
