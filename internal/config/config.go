// Package config handles the showcase configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/willowui"
)

// Default configuration values.
const (
	DefaultTitle        = "willowui showcase"
	DefaultWidth        = 1280
	DefaultHeight       = 720
	DefaultProducerText = "Some notification text"
	DefaultAssetsDir    = "assets"
	DefaultLogLevel     = "info"

	maxWindowSize = 16384
)

// Config represents the showcase configuration.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Theme    ThemeConfig    `toml:"theme"`
	Producer ProducerConfig `toml:"producer"`
	Assets   AssetsConfig   `toml:"assets"`
	Foods    []FoodConfig   `toml:"foods"`
	Log      LogConfig      `toml:"log"`
}

// WindowConfig holds window options.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
	ShowFPS   bool   `toml:"show_fps"`
}

// ThemeConfig selects the Catppuccin flavor.
type ThemeConfig struct {
	Flavor string `toml:"flavor"` // mocha, macchiato, frappe, latte
}

// ProducerConfig holds the notification producer defaults.
type ProducerConfig struct {
	Text string `toml:"text"`
}

// AssetsConfig locates icon files.
type AssetsConfig struct {
	Dir string `toml:"dir"` // relative to the working directory
}

// FoodConfig is one entry of the expansion list.
type FoodConfig struct {
	Name string `toml:"name"`
	Icon string `toml:"icon"` // path under Assets.Dir; empty = placeholder
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// DefaultFoods returns the stock expansion list entries.
func DefaultFoods() []FoodConfig {
	return []FoodConfig{
		{Name: "Bacon", Icon: "food/13_bacon.png"},
		{Name: "Burger", Icon: "food/15_burger.png"},
		{Name: "Burrito", Icon: "food/18_burrito.png"},
		{Name: "Bagel", Icon: "food/20_bagel.png"},
		{Name: "Cheesecake", Icon: "food/22_cheesecake.png"},
		{Name: "Cheese puff", Icon: "food/24_cheesepuff.png"},
		{Name: "Chocolate", Icon: "food/26_chocolate.png"},
		{Name: "Cookie", Icon: "food/28_cookies.png"},
	}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     DefaultTitle,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Resizable: true,
		},
		Theme: ThemeConfig{
			Flavor: willowui.DefaultThemeName,
		},
		Producer: ProducerConfig{
			Text: DefaultProducerText,
		},
		Assets: AssetsConfig{
			Dir: DefaultAssetsDir,
		},
		Foods: DefaultFoods(),
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "willowui", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("willowui: read config: %w", err)
	}

	// A [[foods]] table in the file replaces the stock list rather than
	// merging into it.
	cfg.Foods = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("willowui: parse config %s: %w", path, err)
	}
	if cfg.Foods == nil {
		cfg.Foods = DefaultFoods()
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("willowui: create config dir: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("willowui: encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("willowui: write config: %w", err)
	}
	return nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Width > maxWindowSize {
		errs = append(errs, fmt.Errorf("window.width %d out of range (1..%d)", c.Window.Width, maxWindowSize))
	}
	if c.Window.Height <= 0 || c.Window.Height > maxWindowSize {
		errs = append(errs, fmt.Errorf("window.height %d out of range (1..%d)", c.Window.Height, maxWindowSize))
	}
	if _, err := willowui.ThemeByName(c.Theme.Flavor); err != nil {
		errs = append(errs, fmt.Errorf("theme.flavor: %w", err))
	}
	if len(c.Foods) == 0 {
		errs = append(errs, errors.New("foods: at least one entry required"))
	}
	for i, f := range c.Foods {
		if strings.TrimSpace(f.Name) == "" {
			errs = append(errs, fmt.Errorf("foods[%d]: name is empty", i))
		}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// ParseLevel converts a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return l, nil
}
