package config_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"iconview/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)
	return tmpFile.Name()
}

const (
	validYAML = `
preview:
  max_width: 256
  max_height: 128
window:
  width: 800
  height: 600
paths:
  index_file: "/data/icon_db.json"
  image_root: "/data/png"
behavior:
  auto_reload: true
thumbs:
  size: 48
theme:
  background: "#101010"
`
	invalidSyntaxYAML = `
preview:
  max_width: [unclosed
`
	invalidBoundsYAML = `
preview:
  max_width: -5
`
	invalidColorYAML = `
theme:
  highlight: "purple"
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		configFile := createTestYAML(t, validYAML)
		cfg, err := config.LoadConfigFile(configFile)

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, 256, cfg.Preview.MaxWidth)
		assert.Equal(t, 128, cfg.Preview.MaxHeight)
		assert.Equal(t, 800, cfg.Window.Width)
		assert.Equal(t, 600, cfg.Window.Height)
		assert.Equal(t, "/data/icon_db.json", cfg.Paths.IndexFile)
		assert.Equal(t, "/data/png", cfg.Paths.ImageRoot)
		assert.True(t, cfg.Behavior.AutoReload)
		assert.Equal(t, 48, cfg.Thumbs.Size)

		// Overridden color applies, unset colors keep defaults
		assert.Equal(t, "#101010", cfg.Theme.Background)
		assert.Equal(t, "#D1D1D1", cfg.Theme.Foreground)
	})

	t.Run("load non-existent file returns defaults", func(t *testing.T) {
		nonExistentPath := filepath.Join(t.TempDir(), "does_not_exist.yaml")
		cfg, err := config.LoadConfigFile(nonExistentPath)

		require.NoError(t, err, "Loading non-existent file should return default config, not an error")
		require.NotNil(t, cfg)

		defaultCfg := config.New()
		assert.Equal(t, defaultCfg.Preview.MaxWidth, cfg.Preview.MaxWidth)
		assert.Equal(t, defaultCfg.Window.Height, cfg.Window.Height)
		assert.Equal(t, defaultCfg.Theme.Background, cfg.Theme.Background)
		assert.False(t, cfg.Behavior.AutoReload)
	})

	t.Run("invalid YAML syntax", func(t *testing.T) {
		configFile := createTestYAML(t, invalidSyntaxYAML)
		_, err := config.LoadConfigFile(configFile)
		assert.Error(t, err)
	})

	t.Run("negative bounds fall back to defaults", func(t *testing.T) {
		configFile := createTestYAML(t, invalidBoundsYAML)
		cfg, err := config.LoadConfigFile(configFile)

		require.NoError(t, err)
		assert.Equal(t, 512, cfg.Preview.MaxWidth)
	})

	t.Run("invalid theme color", func(t *testing.T) {
		configFile := createTestYAML(t, invalidColorYAML)
		_, err := config.LoadConfigFile(configFile)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.Preview.MaxWidth = 300
	cfg.Paths.ImageRoot = "/icons"
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 300, loaded.Preview.MaxWidth)
	assert.Equal(t, "/icons", loaded.Paths.ImageRoot)
}

func TestValidate(t *testing.T) {
	cfg := config.New()
	assert.NoError(t, cfg.Validate())

	cfg.Preview.MaxWidth = 0
	assert.Error(t, cfg.Validate())

	cfg = config.New()
	cfg.Theme.Highlight = "nope"
	assert.Error(t, cfg.Validate())
}

func TestParseHexColor(t *testing.T) {
	c, err := config.ParseHexColor("#202124")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x20, G: 0x21, B: 0x24, A: 255}, c)

	_, err = config.ParseHexColor("202124")
	assert.NoError(t, err, "leading # is optional")

	_, err = config.ParseHexColor("#xyzxyz")
	assert.Error(t, err)

	_, err = config.ParseHexColor("#fff")
	assert.Error(t, err)
}
