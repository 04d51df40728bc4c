package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"quickpanel/internal/panel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config dir at an empty temp dir so a developer's
// own config file never leaks into tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfig, "")
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, 16, c.Panel.Size)
	assert.Equal(t, 2, c.Panel.Margin)
	assert.False(t, c.Debug)
	assert.Empty(t, c.Log.File)
	assert.Equal(t, DefaultOptions, c.Panel.Options)

	opts := c.PanelOptions()
	require.Len(t, opts, 12)
	assert.Equal(t, panel.Option{Icon: "bluetooth", Title: "Bluetooth"}, opts[3])
}

func TestLoad_TOMLFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.toml", `
debug = true

[panel]
size = 20

[[panel.options]]
icon = "wifi"
title = "Wi-fi"

[[panel.options]]
icon = "bluetooth"
title = "Bluetooth"

[log]
file = "/tmp/quickpanel.log"
`)

	c, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, 20, c.Panel.Size)
	assert.Equal(t, 2, c.Panel.Margin, "unset keys keep defaults")
	assert.True(t, c.Debug)
	assert.Equal(t, "/tmp/quickpanel.log", c.Log.File)
	assert.Equal(t, []OptionConfig{
		{Icon: "wifi", Title: "Wi-fi"},
		{Icon: "bluetooth", Title: "Bluetooth"},
	}, c.Panel.Options)
}

func TestLoad_YAMLFileFromEnv(t *testing.T) {
	isolate(t)
	path := writeFile(t, "panel.yaml", `
panel:
  margin: 0
  options:
    - icon: android
      title: Android
`)
	t.Setenv(EnvConfig, path)

	c, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Panel.Margin)
	assert.Equal(t, []OptionConfig{{Icon: "android", Title: "Android"}}, c.Panel.Options)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("QUICKPANEL_PANEL_SIZE", "24")
	t.Setenv("QUICKPANEL_DEBUG", "true")

	c, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, 24, c.Panel.Size)
	assert.True(t, c.Debug)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(New(filepath.Join(t.TempDir(), "nope.toml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_InvalidFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.toml", "[panel]\nsize = 0\n")
	_, err := Load(New(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panel.size")
}

func TestValidate(t *testing.T) {
	valid := Config{Panel: PanelConfig{Size: 16, Margin: 2}}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero size", func(c *Config) { c.Panel.Size = 0 }, "panel.size"},
		{"negative margin", func(c *Config) { c.Panel.Margin = -1 }, "panel.margin"},
		{"blank title", func(c *Config) {
			c.Panel.Options = []OptionConfig{{Icon: "wifi", Title: "Wi-fi"}, {Icon: "wifi", Title: "  "}}
		}, "panel.options[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_EmptyOptionsAllowed(t *testing.T) {
	c := Config{Panel: PanelConfig{Size: 16}}
	assert.NoError(t, c.Validate())
	assert.Empty(t, c.PanelOptions())
}

func TestWatch_NoFile(t *testing.T) {
	isolate(t)
	v := New("")
	_, err := Load(v)
	require.NoError(t, err)
	assert.False(t, Watch(context.Background(), v, func(Config) {}))
}

func TestWatch_ReportsEdits(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.toml", "[panel]\nsize = 16\n")
	v := New(path)
	_, err := Load(v)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan Config, 8)
	require.True(t, Watch(ctx, v, func(c Config) { changes <- c }))

	require.NoError(t, os.WriteFile(path, []byte("[panel]\nsize = 30\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.Panel.Size == 30 {
				return
			}
		case <-deadline:
			t.Fatal("no config change reported")
		}
	}
}
