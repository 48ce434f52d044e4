package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// MealTheme is a warm pastel theme for the meal finder
type MealTheme struct{}

// NewMealTheme creates a new meal theme
func NewMealTheme() fyne.Theme {
	return &MealTheme{}
}

// Color returns theme colors
func (t *MealTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return DarkBackground
		}
		return WindowBackground
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return DarkForeground
		}
		return ContentForeground
	case theme.ColorNameButton:
		if variant == theme.VariantDark {
			break
		}
		return ButtonBackground
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			break
		}
		return InputBackground
	case theme.ColorNamePrimary:
		return HeaderForeground
	case theme.ColorNameSelection:
		return TileHighlight
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *MealTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *MealTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *MealTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
