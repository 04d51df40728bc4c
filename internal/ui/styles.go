package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorSurface   = "235" // Panel background (near black)
	ColorIconBg    = "234" // Icon disc background
	ColorBorder    = "250" // Panel outline
	ColorText      = "255" // Labels
	ColorAccent    = "39"  // Bluetooth blue, focused item
	ColorMuted     = "241" // Hints, trace strip
	ColorHighlight = "205" // Help keys
)

// Styles contains shared style definitions used by the panel and its chrome.
var Styles = struct {
	Panel     lipgloss.Style // Expanded grid and detail panel frame
	Launcher  lipgloss.Style // Collapsed launcher frame
	Pressed   lipgloss.Style // Launcher frame while pressed
	Icon      lipgloss.Style
	IconFocus lipgloss.Style // Icon under the keyboard cursor
	Label     lipgloss.Style
	Detail    lipgloss.Style // Bluetooth glyph on the detail panel
	Muted     lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	HelpBox   lipgloss.Style
}{
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Background(lipgloss.Color(ColorSurface)),
	Launcher: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Background(lipgloss.Color(ColorSurface)),
	Pressed: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorSurface)),
	Icon: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorIconBg)),
	IconFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorIconBg)).
		Bold(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorSurface)),
	Detail: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorIconBg)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HelpBox: lipgloss.NewStyle().
		Padding(0, 1),
}
