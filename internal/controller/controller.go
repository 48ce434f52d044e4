// Package controller implements the commands behind the main window:
// selecting a meal, picking a random one, viewing the selected meal's
// details and showing the whole catalog as a gallery.
package controller

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/mealfinder/meal-finder/internal/catalog"
	"github.com/mealfinder/meal-finder/internal/mealdb"
	"github.com/mealfinder/meal-finder/internal/model"
	"github.com/mealfinder/meal-finder/internal/selection"
)

// Detail image size
const (
	DetailImageWidth  = 250
	DetailImageHeight = 250
)

// View renders command results. Implementations are called from whatever
// goroutine runs the command and must marshal onto the UI thread themselves.
// Calls may hold the controller lock, so a View must not call back into the
// Controller synchronously.
type View interface {
	// ShowCatalog replaces the sidebar and meal picker contents
	ShowCatalog(entries []catalog.Entry)

	// ShowDetail renders one meal; img is nil when the image failed
	ShowDetail(detail *model.MealDetail, img image.Image)

	// SetHighlight clears prev (if set) and highlights next
	SetHighlight(prev, next string)

	// ShowGallery renders every entry as a clickable grid
	ShowGallery(entries []catalog.Entry)

	// ShowWarning gives guidance for an expected user-input condition
	ShowWarning(err error)

	// ShowError reports a failure
	ShowError(err error)
}

// Controller wires catalog, selection state and gateway to a View
type Controller struct {
	gateway mealdb.Gateway
	catalog *catalog.Catalog
	state   *selection.State
	view    View
	log     zerolog.Logger
	randN   func(n int) int

	// mu pairs each selection or ticket change with the view call showing it,
	// so concurrent commands reach the view in the order they changed state.
	// Never held across gateway calls.
	mu sync.Mutex

	// detailTicket increments per ViewSelected and per reload; only the
	// latest ticket renders
	detailTicket atomic.Uint64
}

// Option configures a Controller
type Option func(*Controller)

// WithRandom replaces the uniform picker used by SelectRandom
func WithRandom(randN func(n int) int) Option {
	return func(c *Controller) {
		if randN != nil {
			c.randN = randN
		}
	}
}

// WithLogger sets the controller logger
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// New creates a controller
func New(gateway mealdb.Gateway, cat *catalog.Catalog, state *selection.State, view View, opts ...Option) *Controller {
	c := &Controller{
		gateway: gateway,
		catalog: cat,
		state:   state,
		view:    view,
		log:     zerolog.Nop(),
		randN:   rand.Intn,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetView replaces the view; used when the window is built after the controller
func (c *Controller) SetView(view View) {
	c.view = view
}

// Catalog returns the catalog backing the controller
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Load fills the catalog with the meals of area and shows them. Thumbnail
// failures still show the catalog and are then reported once.
func (c *Controller) Load(ctx context.Context, area string) error {
	err := c.catalog.Load(ctx, area)
	if err != nil && !catalog.IsThumbnailError(err) {
		c.report(err)
		return err
	}

	c.mu.Lock()
	// Detail requests issued against the old catalog must not render
	c.detailTicket.Add(1)
	if dropped := c.state.Clear(); dropped != "" {
		c.log.Debug().Str("meal", dropped).Msg("selection cleared by reload")
	}
	c.view.ShowCatalog(c.catalog.Entries())
	c.mu.Unlock()

	if err != nil {
		c.report(err)
	}
	return err
}

// Select makes name the selected meal and moves the sidebar highlight to it
func (c *Controller) Select(name string) error {
	c.mu.Lock()
	prev, err := c.state.Select(name, c.catalog.Contains)
	if err == nil {
		c.view.SetHighlight(prev, name)
	}
	c.mu.Unlock()

	if err != nil {
		c.report(err)
		return err
	}
	c.log.Debug().Str("meal", name).Str("previous", prev).Msg("meal selected")
	return nil
}

// SelectRandom selects a uniformly random catalog meal
func (c *Controller) SelectRandom() (string, error) {
	names := c.catalog.Names()
	if len(names) == 0 {
		err := fmt.Errorf("random meal: %w", model.ErrEmptyCatalog)
		c.report(err)
		return "", err
	}

	name := names[c.randN(len(names))]
	if err := c.Select(name); err != nil {
		return "", err
	}
	return name, nil
}

// ViewSelected fetches and renders the selected meal. Without a selection
// it warns and makes no gateway call. If another ViewSelected starts before
// this one finishes, this result is dropped.
func (c *Controller) ViewSelected(ctx context.Context) error {
	c.mu.Lock()
	name, ok := c.state.Selected()
	var ticket uint64
	if ok {
		ticket = c.detailTicket.Add(1)
	}
	c.mu.Unlock()

	if !ok {
		err := fmt.Errorf("view meal: %w", model.ErrNoSelection)
		c.report(err)
		return err
	}

	id, err := c.catalog.IDFor(name)
	if err != nil {
		c.report(err)
		return err
	}

	detail, err := c.gateway.GetMealDetail(ctx, id)
	if err != nil {
		if c.stale(ticket) {
			c.log.Warn().Str("meal", name).Err(err).Msg("superseded detail request failed")
			return err
		}
		c.report(err)
		return err
	}

	img, imgErr := c.gateway.FetchImage(ctx, detail.ImageURL, DetailImageWidth, DetailImageHeight)

	c.mu.Lock()
	if c.stale(ticket) {
		c.mu.Unlock()
		c.log.Debug().Str("meal", name).Msg("detail superseded by a newer request")
		return nil
	}
	c.view.ShowDetail(detail, img)
	c.mu.Unlock()
	c.log.Info().Str("meal", detail.Name).Str("id", id).Msg("meal displayed")

	if imgErr != nil {
		c.report(imgErr)
		return imgErr
	}
	return nil
}

// Open is what clicking a sidebar or gallery entry does
func (c *Controller) Open(ctx context.Context, name string) error {
	if err := c.Select(name); err != nil {
		return err
	}
	return c.ViewSelected(ctx)
}

// Random selects a random meal and views it
func (c *Controller) Random(ctx context.Context) error {
	if _, err := c.SelectRandom(); err != nil {
		return err
	}
	return c.ViewSelected(ctx)
}

// ShowAll renders the whole catalog as a gallery
func (c *Controller) ShowAll() {
	entries := c.catalog.Entries()
	c.log.Debug().Int("meals", len(entries)).Msg("showing gallery")
	c.view.ShowGallery(entries)
}

// stale reports whether a newer detail request has been issued
func (c *Controller) stale(ticket uint64) bool {
	return c.detailTicket.Load() != ticket
}

// report sends err to the view once. Expected user-input conditions are
// warnings and stay out of the error log.
func (c *Controller) report(err error) {
	if model.IsUserInput(err) {
		c.log.Debug().Err(err).Msg("user guidance shown")
		c.view.ShowWarning(err)
		return
	}

	event := c.log.Error()
	if errors.Is(err, model.ErrImageDecode) || catalog.IsThumbnailError(err) {
		event = c.log.Warn()
	}
	event.Err(err).Msg("command failed")
	c.view.ShowError(err)
}
