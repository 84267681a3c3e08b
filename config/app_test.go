package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bassdanger/document-summarizer/config"
)

func TestLoadAppConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadAppConfig("")

		require.NoError(t, err)
		assert.Equal(t, "redact", cfg.PIIMode)
		assert.Equal(t, "[REDACTED]", cfg.PIIMask)
		assert.Equal(t, 4000, cfg.ChunkChars)
		assert.Equal(t, 1024, cfg.MaxTokens)
		assert.Equal(t, 2*time.Second, cfg.PollInterval())
		assert.Equal(t, 5*time.Minute, cfg.PollTimeout())
		assert.Equal(t, "s3", cfg.Storage)
	})

	t.Run("YAML file overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "summarizer.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"piiMode: block\npiiMask: \"***\"\nchunkChars: 2500\n"+
				"maxTokens: 256\ntemperature: 0.7\npollTimeoutSeconds: 60\nstorage: minio\n",
		), 0644))

		cfg, err := config.LoadAppConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "block", cfg.PIIMode)
		assert.Equal(t, "***", cfg.PIIMask)
		assert.Equal(t, 2500, cfg.ChunkChars)
		assert.Equal(t, 256, cfg.MaxTokens)
		assert.Equal(t, float32(0.7), cfg.Temperature)
		assert.Equal(t, time.Minute, cfg.PollTimeout())
		assert.Equal(t, "minio", cfg.Storage)
		// untouched fields keep their defaults
		assert.Equal(t, "en", cfg.PIILanguage)
		assert.Equal(t, 2*time.Second, cfg.PollInterval())
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadAppConfig("/nonexistent/summarizer.yaml")

		require.Error(t, err)
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("chunkChars: [oops"), 0644))

		_, err := config.LoadAppConfig(path)

		require.Error(t, err)
	})
}
