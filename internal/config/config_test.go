package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg")
	cfg := Default()

	assert.Equal(t, filepath.Join("data", "students", "*"), filepath.Clean(cfg.Images))
	assert.Equal(t, filepath.Join("data", "score"), filepath.Clean(cfg.Scores))
	assert.Equal(t, 5, cfg.Recent)
	assert.Equal(t, "add", cfg.Missing)
	assert.Equal(t, "/xdg/facecards/history.db", cfg.History.Path)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "300px", cfg.Display.Width)
	assert.Equal(t, "auto", cfg.Display.Height)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv("XDG_DATA_HOME", "/xdg")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facecards.yaml")
	content := `
images: /photos/*.png
scores: /photos/score.json
recent: 3
missing: reject
display:
  width: 200px
history:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/photos/*.png", cfg.Images)
	assert.Equal(t, "/photos/score.json", cfg.Scores)
	assert.Equal(t, 3, cfg.Recent)
	assert.Equal(t, "reject", cfg.Missing)
	assert.Equal(t, "200px", cfg.Display.Width)
	assert.Equal(t, "auto", cfg.Display.Height, "unset nested keys keep defaults")
	assert.False(t, cfg.History.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facecards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("recent: 3\nseed: 1\n"), 0o644))
	t.Setenv(EnvConfigFile, path)
	t.Setenv("FACECARDS_RECENT", "7")
	t.Setenv("FACECARDS_DISPLAY__RENDERER", "none")
	t.Setenv("FACECARDS_WATCH", "true")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Recent)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, RendererNone, cfg.Display.Renderer)
	assert.True(t, cfg.Watch)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty images", func(c *Config) { c.Images = "" }},
		{"bad glob", func(c *Config) { c.Images = "[" }},
		{"empty scores", func(c *Config) { c.Scores = "" }},
		{"negative recent", func(c *Config) { c.Recent = -1 }},
		{"unknown policy", func(c *Config) { c.Missing = "ignore" }},
		{"unknown renderer", func(c *Config) { c.Display.Renderer = "sixel" }},
		{"unknown prompt", func(c *Config) { c.Prompt = "voice" }},
		{"history without path", func(c *Config) { c.History.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.History.Path = "/tmp/h.db"
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_ZeroRecentAllowed(t *testing.T) {
	cfg := Default()
	cfg.History.Enabled = false
	cfg.Recent = 0
	assert.NoError(t, cfg.Validate())
}
