package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/mealfinder/meal-finder/internal/catalog"
)

// Gallery shows every catalog meal as a scrollable multi-column grid
type Gallery struct {
	grid    *fyne.Container
	scroll  *container.Scroll
	tiles   []*MealTile
	columns int
	onOpen  func(name string)
}

// NewGallery creates an empty gallery with the given column count
func NewGallery(columns int, onOpen func(name string)) *Gallery {
	if columns < 1 {
		columns = 1
	}
	g := &Gallery{
		columns: columns,
		onOpen:  onOpen,
	}
	g.grid = container.NewGridWithColumns(columns)
	g.scroll = container.NewVScroll(g.grid)
	return g
}

// Container returns the gallery canvas object
func (g *Gallery) Container() fyne.CanvasObject {
	return g.scroll
}

// SetEntries replaces the grid contents
func (g *Gallery) SetEntries(entries []catalog.Entry) {
	g.tiles = make([]*MealTile, 0, len(entries))
	objects := make([]fyne.CanvasObject, 0, len(entries))
	for _, entry := range entries {
		tile := NewMealTile(entry.Name, entry.Thumbnail, g.open)
		g.tiles = append(g.tiles, tile)
		objects = append(objects, tile)
	}

	g.grid.Objects = objects
	g.grid.Refresh()
	g.scroll.Offset = fyne.NewPos(0, 0)
	g.scroll.Refresh()
}

// SetColumns changes the number of grid columns
func (g *Gallery) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	g.columns = columns
	g.grid.Layout = layout.NewGridLayoutWithColumns(columns)
	g.grid.Refresh()
}

// Columns returns the current column count
func (g *Gallery) Columns() int {
	return g.columns
}

// Tiles returns the rendered tiles in order
func (g *Gallery) Tiles() []*MealTile {
	return g.tiles
}

func (g *Gallery) open(name string) {
	if g.onOpen != nil {
		g.onOpen(name)
	}
}
