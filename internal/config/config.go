// Package config loads quickpanel settings from defaults, an optional config
// file and QUICKPANEL_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quickpanel/internal/panel"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Panel PanelConfig `mapstructure:"panel"`
	Debug bool        `mapstructure:"debug"`
	Log   LogConfig   `mapstructure:"log"`
}

// PanelConfig holds the panel's construction inputs.
type PanelConfig struct {
	Size    int            `mapstructure:"size"`
	Margin  int            `mapstructure:"margin"`
	Options []OptionConfig `mapstructure:"options"`
}

// OptionConfig is one entry of panel.options.
type OptionConfig struct {
	Icon  string `mapstructure:"icon"`
	Title string `mapstructure:"title"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// DefaultOptions is the sample option list. Entries repeat on purpose so the
// grid has enough rows to scroll on small sizes.
var DefaultOptions = []OptionConfig{
	{Icon: "airplane", Title: "Airplane"},
	{Icon: "cellular", Title: "Cellular"},
	{Icon: "wifi", Title: "Wi-fi"},
	{Icon: "bluetooth", Title: "Bluetooth"},
	{Icon: "developer", Title: "Developer"},
	{Icon: "android", Title: "Android"},
	{Icon: "airplane", Title: "Airplane"},
	{Icon: "cellular", Title: "Cellular"},
	{Icon: "wifi", Title: "Wi-fi"},
	{Icon: "bluetooth", Title: "Bluetooth"},
	{Icon: "developer", Title: "Developer"},
	{Icon: "android", Title: "Android"},
}

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "QUICKPANEL_CONFIG"

// New returns a viper instance with defaults, env overrides and the config
// file location set. path overrides QUICKPANEL_CONFIG; when both are empty
// config.{toml,yaml,json} is searched in the user config dir.
func New(path string) *viper.Viper {
	v := viper.New()

	v.SetDefault("panel.size", 16)
	v.SetDefault("panel.margin", 2)
	v.SetDefault("panel.options", defaultOptionMaps())
	v.SetDefault("debug", false)
	v.SetDefault("log.file", "")

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "quickpanel"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUICKPANEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and returns the validated config. A
// missing file is only an error when it was named explicitly.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the panel settings.
func (c Config) Validate() error {
	if c.Panel.Size <= 0 {
		return fmt.Errorf("panel.size must be positive, got %d", c.Panel.Size)
	}
	if c.Panel.Margin < 0 {
		return fmt.Errorf("panel.margin must not be negative, got %d", c.Panel.Margin)
	}
	for i, o := range c.Panel.Options {
		if strings.TrimSpace(o.Title) == "" {
			return fmt.Errorf("panel.options[%d]: title is required", i)
		}
	}
	return nil
}

// PanelOptions converts the configured options for the panel.
func (c Config) PanelOptions() []panel.Option {
	out := make([]panel.Option, len(c.Panel.Options))
	for i, o := range c.Panel.Options {
		out[i] = panel.Option{Icon: panel.IconRef(o.Icon), Title: o.Title}
	}
	return out
}

func defaultOptionMaps() []map[string]any {
	out := make([]map[string]any, len(DefaultOptions))
	for i, o := range DefaultOptions {
		out[i] = map[string]any{"icon": o.Icon, "title": o.Title}
	}
	return out
}
