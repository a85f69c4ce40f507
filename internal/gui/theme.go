package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"iconview/internal/config"
)

// viewerTheme applies the configured dark palette on top of Fyne's
// default dark theme.
type viewerTheme struct {
	base       fyne.Theme
	background color.Color
	foreground color.Color
	input      color.Color
	button     color.Color
	highlight  color.Color
}

func newViewerTheme(cfg *config.Config) *viewerTheme {
	t := &viewerTheme{base: theme.DefaultTheme()}

	// Validate() guarantees these parse
	t.background, _ = config.ParseHexColor(cfg.Theme.Background)
	t.foreground, _ = config.ParseHexColor(cfg.Theme.Foreground)
	t.input, _ = config.ParseHexColor(cfg.Theme.Input)
	t.button, _ = config.ParseHexColor(cfg.Theme.Button)
	t.highlight, _ = config.ParseHexColor(cfg.Theme.Highlight)

	return t
}

func (t *viewerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.background
	case theme.ColorNameForeground:
		return t.foreground
	case theme.ColorNameInputBackground:
		return t.input
	case theme.ColorNameButton:
		return t.button
	case theme.ColorNameSelection, theme.ColorNameHover:
		return t.highlight
	default:
		return t.base.Color(name, theme.VariantDark)
	}
}

func (t *viewerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *viewerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *viewerTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
