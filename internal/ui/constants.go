package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRandom   = "🎲"
	IconGrid     = "▦"
	IconView     = "🍽"
	IconFlag     = "🇵🇭"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window sizing
const (
	WindowWidth  float32 = 1200
	WindowHeight float32 = 900
)

// Layout sizing
const (
	SidebarWidth    float32 = 230
	TileImageSize   float32 = 80
	TileMinWidth    float32 = 150
	DetailImageSize float32 = 250
)

// Colors
var (
	TileBackground     = color.NRGBA{R: 0xF5, G: 0xE0, B: 0xC3, A: 0xFF}
	TileHighlight      = color.NRGBA{R: 0xFF, G: 0xDA, B: 0xB9, A: 0xFF}
	PlaceholderFill    = color.NRGBA{R: 0xEE, G: 0xD6, B: 0xC4, A: 0xFF}
	PlaceholderBorder  = color.NRGBA{R: 0xC8, G: 0xB0, B: 0x9C, A: 0xFF}
	HeaderBackground   = color.NRGBA{R: 0xEE, G: 0xD6, B: 0xC4, A: 0xFF}
	HeaderForeground   = color.NRGBA{R: 0x6B, G: 0x4F, B: 0x3F, A: 0xFF}
	WindowBackground   = color.NRGBA{R: 0xF5, G: 0xE9, B: 0xDA, A: 0xFF}
	ContentForeground  = color.NRGBA{R: 0x5C, G: 0x40, B: 0x33, A: 0xFF}
	ButtonBackground   = color.NRGBA{R: 0xEE, G: 0xD6, B: 0xC4, A: 0xFF}
	InputBackground    = color.NRGBA{R: 0xFB, G: 0xE8, B: 0xD3, A: 0xFF}
	TextAreaBackground = color.NRGBA{R: 0xFD, G: 0xF1, B: 0xE4, A: 0xFF}
	DarkBackground     = color.NRGBA{R: 0x2B, G: 0x22, B: 0x1C, A: 0xFF}
	DarkForeground     = color.NRGBA{R: 0xF5, G: 0xE9, B: 0xDA, A: 0xFF}
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)
