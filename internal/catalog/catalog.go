// Package catalog holds the in-memory meal list of the current area: the
// name to id mapping in service order and the decoded sidebar thumbnails.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mealfinder/meal-finder/internal/mealdb"
	"github.com/mealfinder/meal-finder/internal/model"
)

// Thumbnail size in the sidebar and gallery
const (
	ThumbnailWidth  = 80
	ThumbnailHeight = 80
)

// Entry is one catalog meal as rendered by the list views
type Entry struct {
	Name      string
	ID        string
	Thumbnail image.Image // nil if the thumbnail failed to load
}

// ThumbnailError reports the meals whose thumbnails could not be loaded.
// The meals themselves are in the catalog.
type ThumbnailError struct {
	Failed map[string]error
}

func (e *ThumbnailError) Error() string {
	names := make([]string, 0, len(e.Failed))
	for name := range e.Failed {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%d thumbnail(s) could not be loaded: %s", len(names), strings.Join(names, ", "))
}

// Unwrap exposes the individual causes to errors.Is
func (e *ThumbnailError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, err := range e.Failed {
		errs = append(errs, err)
	}
	return errs
}

// Catalog is safe for concurrent use
type Catalog struct {
	gateway mealdb.Gateway
	log     zerolog.Logger

	mu         sync.RWMutex
	area       string
	order      []string
	ids        map[string]string
	thumbnails map[string]image.Image
	status     model.LoadStatus
}

// New creates an empty catalog backed by gateway
func New(gateway mealdb.Gateway, log zerolog.Logger) *Catalog {
	return &Catalog{
		gateway:    gateway,
		log:        log,
		ids:        make(map[string]string),
		thumbnails: make(map[string]image.Image),
		status:     model.LoadStatusIdle,
	}
}

// Load replaces the catalog with the meals of area. On a list failure the
// previous contents are kept and the error returned. Thumbnail failures
// leave the meal in place and are reported together as a *ThumbnailError.
func (c *Catalog) Load(ctx context.Context, area string) error {
	previous := c.setStatus(model.LoadStatusLoading)

	meals, err := c.gateway.ListMealsByArea(ctx, area)
	if err != nil {
		// A failed reload keeps serving the previous meals
		if previous.HasMeals() {
			c.setStatus(previous)
		} else {
			c.setStatus(model.LoadStatusError)
		}
		return err
	}

	order := make([]string, 0, len(meals))
	ids := make(map[string]string, len(meals))
	thumbURLs := make(map[string]string, len(meals))
	for _, meal := range meals {
		if _, dup := ids[meal.Name]; dup {
			c.log.Warn().Str("meal", meal.Name).Str("id", meal.ID).Msg("duplicate meal name ignored")
			continue
		}
		order = append(order, meal.Name)
		ids[meal.Name] = meal.ID
		thumbURLs[meal.Name] = meal.ThumbnailURL
	}

	thumbnails := make(map[string]image.Image, len(order))
	failed := make(map[string]error)
	for _, name := range order {
		img, err := c.gateway.FetchImage(ctx, thumbURLs[name], ThumbnailWidth, ThumbnailHeight)
		if err != nil {
			c.log.Warn().Str("meal", name).Err(err).Msg("thumbnail not loaded")
			failed[name] = err
			continue
		}
		thumbnails[name] = img
	}

	c.mu.Lock()
	c.area = area
	c.order = order
	c.ids = ids
	c.thumbnails = thumbnails
	if len(failed) > 0 {
		c.status = model.LoadStatusPartial
	} else {
		c.status = model.LoadStatusReady
	}
	c.mu.Unlock()

	c.log.Info().Str("area", area).Int("meals", len(order)).Int("thumbnail_failures", len(failed)).Msg("catalog loaded")

	if len(failed) > 0 {
		return &ThumbnailError{Failed: failed}
	}
	return nil
}

// Area returns the area of the last successful load
func (c *Catalog) Area() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.area
}

// Status returns the current load status
func (c *Catalog) Status() model.LoadStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Names returns the meal names in load order
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Len returns the number of meals
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Contains reports whether name is a catalog meal
func (c *Catalog) Contains(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.ids[name]
	return ok
}

// IDFor returns the meal id for name
func (c *Catalog) IDFor(name string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.ids[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownMeal, name)
	}
	return id, nil
}

// ThumbnailFor returns the decoded thumbnail for name. The image is nil
// when the meal exists but its thumbnail failed to load.
func (c *Catalog) ThumbnailFor(name string) (image.Image, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := c.ids[name]; !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownMeal, name)
	}
	return c.thumbnails[name], nil
}

// Entries returns every meal with its thumbnail in load order
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries := make([]Entry, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, Entry{
			Name:      name,
			ID:        c.ids[name],
			Thumbnail: c.thumbnails[name],
		})
	}
	return entries
}

// setStatus stores status and returns the one it replaced
func (c *Catalog) setStatus(status model.LoadStatus) model.LoadStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	previous := c.status
	c.status = status
	return previous
}

// IsThumbnailError reports whether err only concerns thumbnails
func IsThumbnailError(err error) bool {
	var thumbErr *ThumbnailError
	return errors.As(err, &thumbErr)
}
