package ui

import (
	"quickpanel/internal/panel"
)

// Glyphs are kept to single-column runes so grid cells stay aligned.
var iconGlyphs = map[panel.IconRef]string{
	"airplane":   "✈",
	"cellular":   "▟",
	"wifi":       "≋",
	"bluetooth":  "ᛒ",
	"developer":  "λ",
	"android":    "◉",
	"flashlight": "☼",
	"battery":    "▮",
	"location":   "⌖",
	"dnd":        "⊘",
}

// fallbackGlyph is used for icon refs with no mapping.
const fallbackGlyph = "•"

// Glyph returns the terminal glyph for an icon ref.
func Glyph(ref panel.IconRef) string {
	if g, ok := iconGlyphs[ref]; ok {
		return g
	}
	return fallbackGlyph
}

// iconDisc renders a glyph inside a small disc, e.g. "(✈)". Narrow cells get
// the bare glyph.
func iconDisc(glyph string, width int) string {
	if width < 3 {
		return glyph
	}
	return "(" + glyph + ")"
}
