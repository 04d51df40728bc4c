// Package ui renders the quick settings panel with Bubble Tea.
//
// Core pieces:
//   - OptionsWidget: the panel itself; owns a panel.State and maps pointer
//     and key input onto panel events
//   - Geometry: cell layout of the launcher, grid and detail panel, shared
//     by rendering and hit testing
//   - Panel: places a View in the terminal and converts coordinates
//   - AppModel: the root model hosting one widget, help bar and trace strip
package ui
