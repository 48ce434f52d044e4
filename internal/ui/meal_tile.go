package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// MealTile is a clickable thumbnail with the meal name under it. Each tile
// keeps its own name, so a tap always reports the tile that was tapped.
type MealTile struct {
	widget.BaseWidget

	name        string
	highlighted bool
	onTap       func(name string)

	// UI components
	background *canvas.Rectangle
	thumbnail  *canvas.Image
	label      *widget.Label
}

var (
	_ fyne.Tappable      = (*MealTile)(nil)
	_ desktop.Cursorable = (*MealTile)(nil)
)

// NewMealTile creates a tile for name. A nil thumbnail shows a placeholder.
func NewMealTile(name string, thumbnail image.Image, onTap func(name string)) *MealTile {
	if thumbnail == nil {
		thumbnail = placeholderImage(int(TileImageSize), int(TileImageSize))
	}

	t := &MealTile{
		name:  name,
		onTap: onTap,
	}

	t.background = canvas.NewRectangle(TileBackground)
	t.background.SetMinSize(fyne.NewSize(TileMinWidth, 0))
	t.background.CornerRadius = 4

	t.thumbnail = canvas.NewImageFromImage(thumbnail)
	t.thumbnail.FillMode = canvas.ImageFillContain
	t.thumbnail.ScaleMode = canvas.ImageScaleSmooth
	t.thumbnail.SetMinSize(fyne.NewSize(TileImageSize, TileImageSize))

	t.label = widget.NewLabel(name)
	t.label.Alignment = fyne.TextAlignCenter
	t.label.Truncation = fyne.TextTruncateEllipsis

	t.ExtendBaseWidget(t)
	return t
}

// Name returns the meal this tile stands for
func (t *MealTile) Name() string {
	return t.name
}

// SetHighlighted marks the tile as the current selection
func (t *MealTile) SetHighlighted(highlighted bool) {
	if t.highlighted == highlighted {
		return
	}
	t.highlighted = highlighted
	if highlighted {
		t.background.FillColor = TileHighlight
	} else {
		t.background.FillColor = TileBackground
	}
	t.background.Refresh()
}

// IsHighlighted reports whether the tile is highlighted
func (t *MealTile) IsHighlighted() bool {
	return t.highlighted
}

// Tapped reports the tile's own name
func (t *MealTile) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap(t.name)
	}
}

// Cursor shows a hand over the tile
func (t *MealTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (t *MealTile) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(
		container.NewCenter(t.thumbnail),
		t.label,
	)
	return widget.NewSimpleRenderer(container.NewStack(t.background, container.NewPadded(content)))
}
