package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/stego_lsb/imageio"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Empty(t, cfg.Options())
	})

	t.Run("file", func(t *testing.T) {
		path := writeFile(t, "stego.yaml", `
log:
  level: debug
  development: true
codec:
  shuffle: true
  seed: 42
  golay: true
output:
  format: bmp
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Development)
		assert.Equal(t, CodecConfig{Shuffle: true, Seed: 42, Golay: true}, cfg.Codec)
		assert.Equal(t, imageio.BMP, cfg.Output.Format)
		assert.Len(t, cfg.Options(), 2)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeFile(t, "stego.yaml", "codec:\n  golay: true\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, imageio.PNG, cfg.Output.Format)
		assert.Len(t, cfg.Options(), 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, "stego.yaml", "log: [")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("lossy output format", func(t *testing.T) {
		path := writeFile(t, "stego.yaml", "output:\n  format: jpeg\n")
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, imageio.ErrLossyFormat)
	})

	t.Run("passphrase", func(t *testing.T) {
		path := writeFile(t, "stego.yaml", "codec:\n  passphrase: sesame\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "sesame", cfg.Codec.Passphrase)
		assert.Len(t, cfg.Options(), 1)
	})

	t.Run("seed and passphrase", func(t *testing.T) {
		path := writeFile(t, "stego.yaml", "codec:\n  shuffle: true\n  passphrase: sesame\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		path := writeFile(t, "stego.yaml", "log:\n  level: loud\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
