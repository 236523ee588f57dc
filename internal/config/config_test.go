package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
server:
  host: "game.example.com"
  port: 9090
  path: "/ws"

game:
  track_width: 820
  animation_ms: 300

sound:
  muted: true
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "client.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "game.example.com", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/ws", cfg.Server.Path)
	assert.Equal(t, 820, cfg.Game.TrackWidth)
	assert.Equal(t, 300, cfg.Game.AnimationMs)
	assert.True(t, cfg.Sound.Muted)

	assert.Equal(t, "ws://game.example.com:9090/ws", cfg.Server.URL())
	assert.Equal(t, 300*time.Millisecond, cfg.Game.AnimationWindow())
}

func TestLoad_BackfillsDefaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "client.yaml")
	err := os.WriteFile(configPath, []byte("server:\n  port: 9999\n"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "/", cfg.Server.Path)
	assert.Equal(t, 600, cfg.Game.TrackWidth)
	assert.Equal(t, 600, cfg.Game.AnimationMs)
	assert.False(t, cfg.Sound.Muted)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "client.yaml")
	err := os.WriteFile(configPath, []byte("server: [not a map"), 0o600)
	require.NoError(t, err)

	_, err = Load(configPath)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "ws://localhost:8080/", cfg.Server.URL())
	assert.Equal(t, 600*time.Millisecond, cfg.Game.AnimationWindow())
	assert.Equal(t, 600, cfg.Game.TrackWidth)
}
