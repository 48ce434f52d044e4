package controller

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mealfinder/meal-finder/internal/catalog"
	"github.com/mealfinder/meal-finder/internal/mealdb/mealdbtest"
	"github.com/mealfinder/meal-finder/internal/model"
	"github.com/mealfinder/meal-finder/internal/selection"
)

// recordingView captures every render call
type recordingView struct {
	mu         sync.Mutex
	catalogs   [][]catalog.Entry
	details    []*model.MealDetail
	images     []image.Image
	highlights [][2]string
	galleries  [][]catalog.Entry
	warnings   []error
	errs       []error
}

func (v *recordingView) ShowCatalog(entries []catalog.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.catalogs = append(v.catalogs, entries)
}

func (v *recordingView) ShowDetail(detail *model.MealDetail, img image.Image) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.details = append(v.details, detail)
	v.images = append(v.images, img)
}

func (v *recordingView) SetHighlight(prev, next string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.highlights = append(v.highlights, [2]string{prev, next})
}

func (v *recordingView) ShowGallery(entries []catalog.Entry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.galleries = append(v.galleries, entries)
}

func (v *recordingView) ShowWarning(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.warnings = append(v.warnings, err)
}

func (v *recordingView) ShowError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.errs = append(v.errs, err)
}

func newLoadedController(t *testing.T, gw *mealdbtest.Gateway, opts ...Option) (*Controller, *recordingView) {
	t.Helper()
	view := &recordingView{}
	cat := catalog.New(gw, zerolog.Nop())
	c := New(gw, cat, selection.New(), view, opts...)
	if err := c.Load(context.Background(), "Filipino"); err != nil {
		t.Fatalf("Expected no error loading, got %v", err)
	}
	return c, view
}

func twoMeals() *mealdbtest.Gateway {
	return mealdbtest.New(
		mealdbtest.Meal("Adobo", "101"),
		mealdbtest.Meal("Sinigang", "102"),
	)
}

func TestLoad_ShowsCatalog(t *testing.T) {
	_, view := newLoadedController(t, twoMeals())

	if len(view.catalogs) != 1 {
		t.Fatalf("Expected catalog shown once, got %d", len(view.catalogs))
	}
	if len(view.catalogs[0]) != 2 || view.catalogs[0][0].Name != "Adobo" {
		t.Errorf("Unexpected catalog entries: %+v", view.catalogs[0])
	}
}

func TestLoad_ListFailureReportsError(t *testing.T) {
	gw := twoMeals()
	gw.ListErr = fmt.Errorf("list: %w", model.ErrNetwork)
	view := &recordingView{}
	c := New(gw, catalog.New(gw, zerolog.Nop()), selection.New(), view)

	err := c.Load(context.Background(), "Filipino")
	if !errors.Is(err, model.ErrNetwork) {
		t.Fatalf("Expected ErrNetwork, got %v", err)
	}
	if len(view.errs) != 1 {
		t.Errorf("Expected exactly one error shown, got %d", len(view.errs))
	}
	if len(view.catalogs) != 0 {
		t.Error("Expected no catalog shown on list failure")
	}
}

func TestLoad_ThumbnailFailureShowsCatalogAndError(t *testing.T) {
	gw := twoMeals()
	gw.ImageErrs["http://img/101.jpg"] = fmt.Errorf("img: %w", model.ErrImageDecode)
	view := &recordingView{}
	c := New(gw, catalog.New(gw, zerolog.Nop()), selection.New(), view)

	err := c.Load(context.Background(), "Filipino")
	if !catalog.IsThumbnailError(err) {
		t.Fatalf("Expected thumbnail error, got %v", err)
	}
	if len(view.catalogs) != 1 || len(view.catalogs[0]) != 2 {
		t.Errorf("Expected catalog of 2 shown, got %+v", view.catalogs)
	}
	if len(view.errs) != 1 {
		t.Errorf("Expected exactly one error shown, got %d", len(view.errs))
	}
}

func TestSelectThenView_Scenario(t *testing.T) {
	gw := twoMeals()
	c, view := newLoadedController(t, gw)

	if err := c.Select("Sinigang"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := c.ViewSelected(context.Background()); err != nil {
		t.Fatalf("ViewSelected failed: %v", err)
	}

	if gw.LastDetailCall() != "102" {
		t.Errorf("Expected GetMealDetail(102), got %v", gw.DetailCalls)
	}
	if len(view.details) != 1 || view.details[0].Name != "Sinigang" {
		t.Fatalf("Expected Sinigang rendered, got %+v", view.details)
	}
	img := view.images[0]
	if img == nil {
		t.Fatal("Expected detail image")
	}
	if b := img.Bounds(); b.Dx() != DetailImageWidth || b.Dy() != DetailImageHeight {
		t.Errorf("Expected %dx%d image, got %dx%d", DetailImageWidth, DetailImageHeight, b.Dx(), b.Dy())
	}
}

func TestSelect_UnknownMeal(t *testing.T) {
	c, view := newLoadedController(t, twoMeals())
	c.Select("Adobo")

	err := c.Select("Pizza")
	if !errors.Is(err, model.ErrUnknownMeal) {
		t.Fatalf("Expected ErrUnknownMeal, got %v", err)
	}
	if name, _ := c.state.Selected(); name != "Adobo" {
		t.Errorf("Expected selection to stay Adobo, got %q", name)
	}
	if len(view.errs) != 1 {
		t.Errorf("Expected the unknown meal reported once, got %d", len(view.errs))
	}
	if len(view.highlights) != 1 {
		t.Errorf("Expected no highlight change for unknown meal, got %v", view.highlights)
	}
}

func TestSelect_HighlightMoves(t *testing.T) {
	c, view := newLoadedController(t, twoMeals())

	c.Select("Adobo")
	c.Select("Sinigang")

	expected := [][2]string{{"", "Adobo"}, {"Adobo", "Sinigang"}}
	if len(view.highlights) != len(expected) {
		t.Fatalf("Expected %d highlight updates, got %v", len(expected), view.highlights)
	}
	for i := range expected {
		if view.highlights[i] != expected[i] {
			t.Errorf("Highlight %d: expected %v, got %v", i, expected[i], view.highlights[i])
		}
	}
	if name, _ := c.state.Highlighted(); name != "Sinigang" {
		t.Errorf("Expected Sinigang highlighted, got %q", name)
	}
}

func TestViewSelected_NoSelection(t *testing.T) {
	gw := twoMeals()
	c, view := newLoadedController(t, gw)

	err := c.ViewSelected(context.Background())
	if !errors.Is(err, model.ErrNoSelection) {
		t.Fatalf("Expected ErrNoSelection, got %v", err)
	}
	if gw.DetailCallCount() != 0 {
		t.Errorf("Expected no gateway call, got %v", gw.DetailCalls)
	}
	if len(view.warnings) != 1 || len(view.errs) != 0 {
		t.Errorf("Expected one warning and no errors, got %d warnings %d errors", len(view.warnings), len(view.errs))
	}
}

func TestViewSelected_DetailFailure(t *testing.T) {
	gw := twoMeals()
	c, view := newLoadedController(t, gw)
	c.Select("Adobo")

	gw.DetailErr = fmt.Errorf("lookup: %w", model.ErrNetwork)
	err := c.ViewSelected(context.Background())

	if !errors.Is(err, model.ErrNetwork) {
		t.Fatalf("Expected ErrNetwork, got %v", err)
	}
	if len(view.errs) != 1 {
		t.Errorf("Expected one error shown, got %d", len(view.errs))
	}
	if len(view.details) != 0 {
		t.Error("Expected nothing rendered")
	}
}

func TestViewSelected_ImageFailureStillRendersText(t *testing.T) {
	gw := twoMeals()
	c, view := newLoadedController(t, gw)
	c.Select("Adobo")

	gw.ImageErrs["http://img/101.jpg"] = fmt.Errorf("img: %w", model.ErrImageDecode)
	err := c.ViewSelected(context.Background())

	if !errors.Is(err, model.ErrImageDecode) {
		t.Fatalf("Expected ErrImageDecode, got %v", err)
	}
	if len(view.details) != 1 || view.images[0] != nil {
		t.Errorf("Expected text rendered with nil image, got %d renders", len(view.details))
	}
	if len(view.errs) != 1 {
		t.Errorf("Expected one error shown, got %d", len(view.errs))
	}
}

func TestSelectRandom(t *testing.T) {
	gw := twoMeals()
	c, _ := newLoadedController(t, gw, WithRandom(func(n int) int { return n - 1 }))

	name, err := c.SelectRandom()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if name != "Sinigang" {
		t.Errorf("Expected last meal picked, got %s", name)
	}
	if selected, _ := c.state.Selected(); selected != "Sinigang" {
		t.Errorf("Expected Sinigang selected, got %q", selected)
	}
}

func TestSelectRandom_Uniform(t *testing.T) {
	c, _ := newLoadedController(t, twoMeals())

	seen := map[string]bool{}
	for i := 0; i < 200 && len(seen) < 2; i++ {
		name, err := c.SelectRandom()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		seen[name] = true
	}
	if len(seen) != 2 {
		t.Errorf("Expected both meals picked over 200 draws, got %v", seen)
	}
}

func TestSelectRandom_EmptyCatalog(t *testing.T) {
	gw := mealdbtest.New()
	view := &recordingView{}
	c := New(gw, catalog.New(gw, zerolog.Nop()), selection.New(), view)

	_, err := c.SelectRandom()
	if !errors.Is(err, model.ErrEmptyCatalog) {
		t.Fatalf("Expected ErrEmptyCatalog, got %v", err)
	}
	if len(view.warnings) != 1 {
		t.Errorf("Expected one warning, got %d", len(view.warnings))
	}
}

func TestOpen(t *testing.T) {
	gw := twoMeals()
	c, view := newLoadedController(t, gw)

	if err := c.Open(context.Background(), "Adobo"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if gw.LastDetailCall() != "101" {
		t.Errorf("Expected lookup of 101, got %v", gw.DetailCalls)
	}
	if len(view.details) != 1 || view.details[0].Name != "Adobo" {
		t.Errorf("Expected Adobo rendered, got %+v", view.details)
	}
	if h, _ := c.state.Highlighted(); h != "Adobo" {
		t.Errorf("Expected Adobo highlighted, got %q", h)
	}
}

func TestRandom(t *testing.T) {
	gw := twoMeals()
	c, view := newLoadedController(t, gw, WithRandom(func(int) int { return 0 }))

	if err := c.Random(context.Background()); err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if len(view.details) != 1 || view.details[0].Name != "Adobo" {
		t.Errorf("Expected Adobo rendered, got %+v", view.details)
	}
}

func TestShowAll(t *testing.T) {
	gw := twoMeals()
	c, view := newLoadedController(t, gw)

	c.ShowAll()

	if len(view.galleries) != 1 || len(view.galleries[0]) != 2 {
		t.Fatalf("Expected gallery of 2, got %+v", view.galleries)
	}
	if gw.DetailCallCount() != 0 {
		t.Error("ShowAll should not look up details")
	}
	if _, ok := c.state.Selected(); ok {
		t.Error("ShowAll should not change the selection")
	}
}

// interleavingGateway runs hook before serving the first lookup of hookID
type interleavingGateway struct {
	*mealdbtest.Gateway
	hookID string
	hook   func()
}

func (g *interleavingGateway) GetMealDetail(ctx context.Context, id string) (*model.MealDetail, error) {
	if id == g.hookID && g.hook != nil {
		hook := g.hook
		g.hook = nil
		hook()
	}
	return g.Gateway.GetMealDetail(ctx, id)
}

func TestViewSelected_LatestRequestWins(t *testing.T) {
	base := twoMeals()
	gw := &interleavingGateway{Gateway: base, hookID: "101"}
	view := &recordingView{}
	c := New(gw, catalog.New(base, zerolog.Nop()), selection.New(), view)
	if err := c.Load(context.Background(), "Filipino"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// While Adobo's lookup is in flight, Sinigang is opened
	gw.hook = func() {
		if err := c.Open(context.Background(), "Sinigang"); err != nil {
			t.Errorf("Nested open failed: %v", err)
		}
	}

	if err := c.Open(context.Background(), "Adobo"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if len(view.details) != 1 {
		t.Fatalf("Expected only the latest detail rendered, got %d", len(view.details))
	}
	if view.details[0].Name != "Sinigang" {
		t.Errorf("Expected Sinigang rendered, got %s", view.details[0].Name)
	}
}

// gatedView blocks SetHighlight for one meal until released
type gatedView struct {
	*recordingView
	gateName string
	entered  chan struct{}
	release  chan struct{}
}

func (v *gatedView) SetHighlight(prev, next string) {
	if next == v.gateName {
		close(v.entered)
		<-v.release
	}
	v.recordingView.SetHighlight(prev, next)
}

func TestOpen_ConcurrentKeepsHighlightWithSelection(t *testing.T) {
	gw := twoMeals()
	view := &gatedView{
		recordingView: &recordingView{},
		gateName:      "Adobo",
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
	}
	c := New(gw, catalog.New(gw, zerolog.Nop()), selection.New(), view)
	if err := c.Load(context.Background(), "Filipino"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.Open(context.Background(), "Adobo")
	}()

	// Adobo is selected and its highlight is pending when Sinigang is opened
	<-view.entered
	go func() {
		defer wg.Done()
		c.Open(context.Background(), "Sinigang")
	}()
	close(view.release)
	wg.Wait()

	selected, ok := c.state.Selected()
	if !ok {
		t.Fatal("Expected a selection")
	}

	view.mu.Lock()
	defer view.mu.Unlock()
	last := view.highlights[len(view.highlights)-1][1]
	if last != selected {
		t.Errorf("Selection %q and last highlight %q diverged", selected, last)
	}
	if len(view.details) > 0 && view.details[len(view.details)-1].Name != selected {
		t.Errorf("Detail %q shown for selection %q", view.details[len(view.details)-1].Name, selected)
	}
}

func TestLoad_DropsDetailRequestedBeforeReload(t *testing.T) {
	base := twoMeals()
	gw := &interleavingGateway{Gateway: base, hookID: "101"}
	view := &recordingView{}
	c := New(gw, catalog.New(base, zerolog.Nop()), selection.New(), view)
	if err := c.Load(context.Background(), "Filipino"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// The catalog is reloaded while Adobo's lookup is in flight
	gw.hook = func() {
		if err := c.Load(context.Background(), "Filipino"); err != nil {
			t.Errorf("Reload failed: %v", err)
		}
	}

	if err := c.Open(context.Background(), "Adobo"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if _, ok := c.state.Selected(); ok {
		t.Error("Reload should clear the selection")
	}
	if len(view.details) != 0 {
		t.Errorf("Expected no detail rendered after reload, got %d", len(view.details))
	}
	if len(view.catalogs) != 2 {
		t.Errorf("Expected 2 catalog renders, got %d", len(view.catalogs))
	}
}

func TestLoad_FailedReloadKeepsDetailRequest(t *testing.T) {
	base := twoMeals()
	gw := &interleavingGateway{Gateway: base, hookID: "101"}
	view := &recordingView{}
	c := New(gw, catalog.New(base, zerolog.Nop()), selection.New(), view)
	if err := c.Load(context.Background(), "Filipino"); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// A failed reload leaves the catalog and the pending request alone
	gw.hook = func() {
		base.ListErr = fmt.Errorf("list: %w", model.ErrNetwork)
		c.Load(context.Background(), "Filipino")
	}

	if err := c.Open(context.Background(), "Adobo"); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(view.details) != 1 || view.details[0].Name != "Adobo" {
		t.Errorf("Expected Adobo rendered, got %+v", view.details)
	}
}
