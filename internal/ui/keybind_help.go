package ui

import (
	"quickpanel/internal/panel"

	"github.com/charmbracelet/bubbles/help"
)

// RenderKeybindHelp renders the one-line help bar for mode.
func RenderKeybindHelp(keys KeyMap, mode panel.Mode, debug bool, width int) string {
	helpModel := help.New()
	helpModel.Width = width
	helpModel.Styles.ShortKey = Styles.HelpKey
	helpModel.Styles.ShortDesc = Styles.HelpDesc
	helpModel.Styles.ShortSeparator = Styles.HelpDesc
	return Styles.HelpBox.Render(helpModel.View(keys.ForMode(mode, debug)))
}
