package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billrecon/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, int64(20), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(20<<20), cfg.Upload.MaxBytes())
	assert.False(t, cfg.S3.Archive)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 100, cfg.Session.MaxSessions)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BILLRECON_SERVER_PORT", ":9090")
	t.Setenv("BILLRECON_LOG_FORMAT", "json")
	t.Setenv("BILLRECON_UPLOAD_MAX_FILE_SIZE_MB", "5")
	t.Setenv("BILLRECON_S3_ARCHIVE", "true")
	t.Setenv("BILLRECON_S3_BUCKET", "recon-archive")
	t.Setenv("BILLRECON_CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("BILLRECON_SESSION_MAX_SESSIONS", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, int64(5), cfg.Upload.MaxFileSizeMB)
	assert.True(t, cfg.S3.Archive)
	assert.Equal(t, "recon-archive", cfg.S3.Bucket)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 3, cfg.Session.MaxSessions)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "7000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)
}
