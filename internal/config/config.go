// Package config loads settings for invcanvas applications from a TOML file
// and INVCANVAS_ environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const configFile = "config.toml"

// Config holds application configuration.
type Config struct {
	Window     WindowConfig     `mapstructure:"window" toml:"window"`
	UI         UIConfig         `mapstructure:"ui" toml:"ui"`
	Script     ScriptConfig     `mapstructure:"script" toml:"script"`
	Screenshot ScreenshotConfig `mapstructure:"screenshot" toml:"screenshot"`
}

// WindowConfig holds host window settings.
type WindowConfig struct {
	Title  string `mapstructure:"title" toml:"title"`
	Width  int    `mapstructure:"width" toml:"width"`
	Height int    `mapstructure:"height" toml:"height"`
}

// UIConfig holds manager presentation settings.
type UIConfig struct {
	Scale        float64 `mapstructure:"scale" toml:"scale"`
	MessageTicks int     `mapstructure:"message_ticks" toml:"message_ticks"`
	ShowFPS      bool    `mapstructure:"show_fps" toml:"show_fps"`
	Debug        bool    `mapstructure:"debug" toml:"debug"`
}

// ScriptConfig points at an optional JSON test script replayed on start.
type ScriptConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// ScreenshotConfig holds where scripted screenshots are written.
type ScreenshotConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:     WindowConfig{Title: "Inventory", Width: 800, Height: 600},
		UI:         UIConfig{Scale: 1, MessageTicks: 200},
		Screenshot: ScreenshotConfig{Dir: "screenshots"},
	}
}

// Path returns the config file location: $INVCANVAS_CONFIG when set,
// otherwise invcanvas/config.toml under the user config directory
// (~/.config on Linux). Without a user config directory it falls back to
// config.toml in the working directory.
func Path() string {
	if p := os.Getenv("INVCANVAS_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return configFile
	}
	return filepath.Join(dir, "invcanvas", configFile)
}

// Load reads configuration from file and env. Env var overrides use prefix
// INVCANVAS_ with dots replaced by underscores, e.g. INVCANVAS_UI_SCALE. A
// missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("ui.scale", d.UI.Scale)
	v.SetDefault("ui.message_ticks", d.UI.MessageTicks)
	v.SetDefault("ui.show_fps", d.UI.ShowFPS)
	v.SetDefault("ui.debug", d.UI.Debug)
	v.SetDefault("script.path", d.Script.Path)
	v.SetDefault("screenshot.dir", d.Screenshot.Dir)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("INVCANVAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// WriteDefault writes the built-in configuration to path as TOML, creating
// the directory if needed. An existing file is left untouched. Reports
// whether a file was written.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("mkdir config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return false, fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
