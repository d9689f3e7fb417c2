package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pss-assistant/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "embed", cfg.Server.Format)
	assert.Equal(t, "http", cfg.API.Source)
	assert.Equal(t, 15*time.Minute, cfg.API.CacheTTL)
	assert.Equal(t, "assets", cfg.Storage.Bucket)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, ".", cfg.Wiki.OutputDir)
	assert.Empty(t, cfg.Wiki.Guilds)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "SERVER_PORT=9090\nAPI_CACHE_TTL=30s\nWIKI_GUILDS=1,2\nLOG_FORMAT=console\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"SERVER_PORT", "API_CACHE_TTL", "WIKI_GUILDS", "LOG_FORMAT"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.API.CacheTTL)
	assert.Equal(t, []string{"1", "2"}, cfg.Wiki.Guilds)
	assert.Equal(t, "console", cfg.Log.Format)
}
