package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the viewer configuration structure. It covers preview
// bounds, window geometry, remembered paths, behavior flags, and the
// theme palette.
type Config struct {
	Preview struct {
		MaxWidth  int `yaml:"max_width"`  // Preview bound in pixels
		MaxHeight int `yaml:"max_height"` // Preview bound in pixels
	} `yaml:"preview"`
	Window struct {
		Width  int `yaml:"width"`  // Initial window width
		Height int `yaml:"height"` // Initial window height
	} `yaml:"window"`
	Paths struct {
		IndexFile string `yaml:"index_file"` // Last loaded icon index document
		ImageRoot string `yaml:"image_root"` // Last chosen image root directory
	} `yaml:"paths"`
	Behavior struct {
		AutoReload bool `yaml:"auto_reload"` // Reload the index when its file changes
		Debug      bool `yaml:"debug"`       // Enable debug logging
	} `yaml:"behavior"`
	Thumbs struct {
		Size int `yaml:"size"` // Exported thumbnail bound in pixels
	} `yaml:"thumbs"`
	Theme struct {
		Background string `yaml:"background"` // Main background
		Foreground string `yaml:"foreground"` // Primary text
		Input      string `yaml:"input"`      // Entry and selector background
		List       string `yaml:"list"`       // Id list background
		Button     string `yaml:"button"`     // Button background
		Highlight  string `yaml:"highlight"`  // Selection highlight
		Preview    string `yaml:"preview"`    // Preview pane background
	} `yaml:"theme"`
}

// DefaultPath returns the default configuration file location
// (~/.config/iconview/config.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "iconview.yaml")
	}
	return filepath.Join(home, ".config", "iconview", "config.yaml")
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(DefaultPath())
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Preview.MaxWidth > 0 {
		cfg.Preview.MaxWidth = tempCfg.Preview.MaxWidth
	}
	if tempCfg.Preview.MaxHeight > 0 {
		cfg.Preview.MaxHeight = tempCfg.Preview.MaxHeight
	}
	if tempCfg.Window.Width > 0 {
		cfg.Window.Width = tempCfg.Window.Width
	}
	if tempCfg.Window.Height > 0 {
		cfg.Window.Height = tempCfg.Window.Height
	}
	if tempCfg.Paths.IndexFile != "" {
		cfg.Paths.IndexFile = tempCfg.Paths.IndexFile
	}
	if tempCfg.Paths.ImageRoot != "" {
		cfg.Paths.ImageRoot = tempCfg.Paths.ImageRoot
	}
	cfg.Behavior.AutoReload = tempCfg.Behavior.AutoReload
	cfg.Behavior.Debug = tempCfg.Behavior.Debug
	if tempCfg.Thumbs.Size > 0 {
		cfg.Thumbs.Size = tempCfg.Thumbs.Size
	}

	if tempCfg.Theme.Background != "" {
		cfg.Theme.Background = tempCfg.Theme.Background
	}
	if tempCfg.Theme.Foreground != "" {
		cfg.Theme.Foreground = tempCfg.Theme.Foreground
	}
	if tempCfg.Theme.Input != "" {
		cfg.Theme.Input = tempCfg.Theme.Input
	}
	if tempCfg.Theme.List != "" {
		cfg.Theme.List = tempCfg.Theme.List
	}
	if tempCfg.Theme.Button != "" {
		cfg.Theme.Button = tempCfg.Theme.Button
	}
	if tempCfg.Theme.Highlight != "" {
		cfg.Theme.Highlight = tempCfg.Theme.Highlight
	}
	if tempCfg.Theme.Preview != "" {
		cfg.Theme.Preview = tempCfg.Theme.Preview
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration: 512x512 preview
// bounds, a 1000x650 window, and a dark palette.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Preview.MaxWidth = 512
	cfg.Preview.MaxHeight = 512

	cfg.Window.Width = 1000
	cfg.Window.Height = 650

	cfg.Behavior.AutoReload = false
	cfg.Behavior.Debug = false

	cfg.Thumbs.Size = 64

	cfg.Theme.Background = "#202124"
	cfg.Theme.Foreground = "#D1D1D1"
	cfg.Theme.Input = "#303134"
	cfg.Theme.List = "#1F1F22"
	cfg.Theme.Button = "#3C4043"
	cfg.Theme.Highlight = "#5F6368"
	cfg.Theme.Preview = "#202124"

	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if c.Preview.MaxWidth < 1 || c.Preview.MaxHeight < 1 {
		return fmt.Errorf("preview bounds must be >= 1 pixel")
	}

	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size must be >= 1 pixel")
	}

	if c.Thumbs.Size < 1 {
		return fmt.Errorf("thumbnail size must be >= 1 pixel")
	}

	for _, hex := range []string{
		c.Theme.Background, c.Theme.Foreground, c.Theme.Input,
		c.Theme.List, c.Theme.Button, c.Theme.Highlight, c.Theme.Preview,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("invalid theme color %q: %w", hex, err)
		}
	}

	return nil
}

// ParseHexColor parses a "#RRGGBB" string into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}

	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
