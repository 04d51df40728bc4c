package main

import (
	"flag"
	"io"
	"testing"

	"quickpanel/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("quickpanel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func baseConfig() config.Config {
	return config.Config{Panel: config.PanelConfig{Size: 16, Margin: 2}}
}

func TestParseFlags_OnlySetFlagsOverride(t *testing.T) {
	f, err := parseFlags(newFlagSet(), []string{"--debug"})
	require.NoError(t, err)

	c, err := f.apply(baseConfig())
	require.NoError(t, err)
	assert.True(t, c.Debug)
	assert.Equal(t, 16, c.Panel.Size, "unset --size keeps the configured size")
}

func TestParseFlags_SizeOverride(t *testing.T) {
	f, err := parseFlags(newFlagSet(), []string{"--size", "24", "--config", "/tmp/q.toml"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/q.toml", f.config)

	c, err := f.apply(baseConfig())
	require.NoError(t, err)
	assert.Equal(t, 24, c.Panel.Size)
}

func TestParseFlags_InvalidSize(t *testing.T) {
	f, err := parseFlags(newFlagSet(), []string{"--size=0"})
	require.NoError(t, err)
	_, err = f.apply(baseConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panel.size")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags(newFlagSet(), []string{"--nope"})
	assert.Error(t, err)
}

func TestReloadMsg_KeepsFlagOverrides(t *testing.T) {
	f, err := parseFlags(newFlagSet(), []string{"--size", "24"})
	require.NoError(t, err)

	edited := baseConfig()
	edited.Panel.Margin = 5
	edited.Panel.Options = []config.OptionConfig{{Icon: "wifi", Title: "Wi-fi"}}

	msg, err := reloadMsg(f, edited)
	require.NoError(t, err)
	assert.Equal(t, 24, msg.Size, "--size survives a config edit")
	assert.Equal(t, 5, msg.Margin)
	require.Len(t, msg.Options, 1)
	assert.Equal(t, "Wi-fi", msg.Options[0].Title)
}

func TestReloadMsg_UsesFileWithoutFlags(t *testing.T) {
	f, err := parseFlags(newFlagSet(), nil)
	require.NoError(t, err)

	edited := baseConfig()
	edited.Panel.Size = 30
	msg, err := reloadMsg(f, edited)
	require.NoError(t, err)
	assert.Equal(t, 30, msg.Size)
	assert.Equal(t, 2, msg.Margin)
}

func TestReloadMsg_RejectsInvalidConfig(t *testing.T) {
	f, err := parseFlags(newFlagSet(), nil)
	require.NoError(t, err)

	edited := baseConfig()
	edited.Panel.Margin = -1
	_, err = reloadMsg(f, edited)
	assert.Error(t, err)
}

func TestParseFlags_Help(t *testing.T) {
	_, err := parseFlags(newFlagSet(), []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestPopupArgv_DropsPopupFlag(t *testing.T) {
	got := popupArgv("/bin/quickpanel", []string{"--popup", "--size", "20", "-popup=true", "--debug"})
	assert.Equal(t, []string{"/bin/quickpanel", "--size", "20", "--debug"}, got)
}

func TestPopupArgv_KeepsPositionalNamedPopup(t *testing.T) {
	got := popupArgv("/bin/quickpanel", []string{"popup"})
	assert.Equal(t, []string{"/bin/quickpanel", "popup"}, got)
}

func TestPopupSize_FitsExpandedPanel(t *testing.T) {
	w, h := popupSize(baseConfig())
	assert.Equal(t, 40+4+2, w)
	assert.Equal(t, 28+1+4, h)
}
