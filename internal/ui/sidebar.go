package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/mealfinder/meal-finder/internal/catalog"
)

// Sidebar is the scrollable vertical list of meal tiles. It owns the
// name to tile registry and the single highlighted entry.
type Sidebar struct {
	box         *fyne.Container
	scroll      *container.Scroll
	tiles       map[string]*MealTile
	order       []string
	highlighted string
	onOpen      func(name string)
}

// NewSidebar creates an empty sidebar; onOpen runs when a tile is tapped
func NewSidebar(onOpen func(name string)) *Sidebar {
	s := &Sidebar{
		box:    container.NewVBox(),
		tiles:  make(map[string]*MealTile),
		onOpen: onOpen,
	}
	s.scroll = container.NewVScroll(s.box)
	s.scroll.SetMinSize(fyne.NewSize(SidebarWidth, 0))
	return s
}

// Container returns the sidebar canvas object
func (s *Sidebar) Container() fyne.CanvasObject {
	return s.scroll
}

// SetEntries replaces the tiles with entries in order
func (s *Sidebar) SetEntries(entries []catalog.Entry) {
	s.tiles = make(map[string]*MealTile, len(entries))
	s.order = make([]string, 0, len(entries))
	s.highlighted = ""

	objects := make([]fyne.CanvasObject, 0, len(entries))
	for _, entry := range entries {
		tile := NewMealTile(entry.Name, entry.Thumbnail, s.open)
		s.tiles[entry.Name] = tile
		s.order = append(s.order, entry.Name)
		objects = append(objects, tile)
	}

	s.box.Objects = objects
	s.box.Refresh()
	s.scroll.Offset = fyne.NewPos(0, 0)
	s.scroll.Refresh()
}

// SetHighlight clears prev and highlights next, then scrolls next into view.
// Unknown names are ignored.
func (s *Sidebar) SetHighlight(prev, next string) {
	if tile, ok := s.tiles[prev]; ok {
		tile.SetHighlighted(false)
	}
	// Clear whatever is highlighted even if prev is stale
	if tile, ok := s.tiles[s.highlighted]; ok && s.highlighted != next {
		tile.SetHighlighted(false)
	}

	tile, ok := s.tiles[next]
	if !ok {
		s.highlighted = ""
		return
	}
	tile.SetHighlighted(true)
	s.highlighted = next
	s.scrollTo(tile)
}

// Highlighted returns the highlighted meal name
func (s *Sidebar) Highlighted() string {
	return s.highlighted
}

// Tile returns the tile registered for name
func (s *Sidebar) Tile(name string) (*MealTile, bool) {
	tile, ok := s.tiles[name]
	return tile, ok
}

// Names returns the meal names in display order
func (s *Sidebar) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// scrollTo moves the viewport so that tile is visible
func (s *Sidebar) scrollTo(tile *MealTile) {
	top := tile.Position().Y
	bottom := top + tile.Size().Height
	view := s.scroll.Size().Height
	offset := s.scroll.Offset.Y

	switch {
	case top < offset:
		offset = top
	case bottom > offset+view:
		offset = bottom - view
	default:
		return
	}

	maxOffset := s.box.MinSize().Height - view
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	s.scroll.Offset = fyne.NewPos(0, offset)
	s.scroll.Refresh()
}

func (s *Sidebar) open(name string) {
	if s.onOpen != nil {
		s.onOpen(name)
	}
}
