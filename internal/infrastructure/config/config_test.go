package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pillowcase/pillowcase/internal/infrastructure/config"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults when only the image directory is set", func(t *testing.T) {
		t.Setenv("IMAGE_DIRECTORY", "/var/lib/pillowcase/images")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 8000, cfg.Server.Port)
		assert.False(t, cfg.Server.DebugMode)
		assert.Equal(t, "localhost:8000", cfg.Server.Addr())
		assert.Equal(t, "/var/lib/pillowcase/images", cfg.Storage.ImageDirectory)
		assert.EqualValues(t, 10485760, cfg.Upload.MaxUploadSize)
		assert.False(t, cfg.S3.ArchiveEnabled)
		assert.False(t, cfg.RateLimit.Enabled)
	})

	t.Run("fails fast when the image directory is missing", func(t *testing.T) {
		t.Setenv("IMAGE_DIRECTORY", "")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "IMAGE_DIRECTORY")
	})

	t.Run("requires a bucket when the archive is enabled", func(t *testing.T) {
		t.Setenv("IMAGE_DIRECTORY", "/images")
		t.Setenv("S3_ARCHIVE_ENABLED", "true")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "S3_BUCKET")
	})

	t.Run("derives cors origins from the bind address", func(t *testing.T) {
		t.Setenv("IMAGE_DIRECTORY", "/images")
		t.Setenv("HOST", "example.test")
		t.Setenv("PORT", "9000")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"http://example.test", "http://example.test:9000"}, cfg.Server.AllowedOrigins())
	})

	t.Run("explicit cors origins win", func(t *testing.T) {
		t.Setenv("IMAGE_DIRECTORY", "/images")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test,https://b.test")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.Server.AllowedOrigins())
	})
}
