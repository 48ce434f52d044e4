// Package mealdbtest provides an in-memory mealdb.Gateway for tests.
package mealdbtest

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/mealfinder/meal-finder/internal/model"
)

// Gateway serves canned meals and records every call
type Gateway struct {
	mu sync.Mutex

	Meals     []model.MealSummary
	Details   map[string]*model.MealDetail
	ListErr   error
	DetailErr error
	ImageErrs map[string]error // keyed by image url

	ListCalls   []string
	DetailCalls []string
	ImageCalls  []string
}

// New creates a gateway serving meals; details are generated from them
func New(meals ...model.MealSummary) *Gateway {
	g := &Gateway{
		Meals:     meals,
		Details:   make(map[string]*model.MealDetail),
		ImageErrs: make(map[string]error),
	}
	for _, m := range meals {
		g.Details[m.ID] = &model.MealDetail{
			ID:       m.ID,
			Name:     m.Name,
			ImageURL: m.ThumbnailURL,
		}
	}
	return g
}

// Meal is a shorthand for a summary with a derived thumbnail url
func Meal(name, id string) model.MealSummary {
	return model.MealSummary{Name: name, ID: id, ThumbnailURL: "http://img/" + id + ".jpg"}
}

// ListMealsByArea implements mealdb.Gateway
func (g *Gateway) ListMealsByArea(ctx context.Context, area string) ([]model.MealSummary, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ListCalls = append(g.ListCalls, area)
	if g.ListErr != nil {
		return nil, g.ListErr
	}
	if len(g.Meals) == 0 {
		return nil, fmt.Errorf("list meals for %q: %w", area, model.ErrNoResults)
	}
	meals := make([]model.MealSummary, len(g.Meals))
	copy(meals, g.Meals)
	return meals, nil
}

// GetMealDetail implements mealdb.Gateway
func (g *Gateway) GetMealDetail(ctx context.Context, id string) (*model.MealDetail, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.DetailCalls = append(g.DetailCalls, id)
	if g.DetailErr != nil {
		return nil, g.DetailErr
	}
	detail, ok := g.Details[id]
	if !ok {
		return nil, fmt.Errorf("lookup meal %s: %w", id, model.ErrNotFound)
	}
	clone := *detail
	return &clone, nil
}

// FetchImage implements mealdb.Gateway with a blank image of the requested size
func (g *Gateway) FetchImage(ctx context.Context, url string, width, height int) (image.Image, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ImageCalls = append(g.ImageCalls, url)
	if err := g.ImageErrs[url]; err != nil {
		return nil, err
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// DetailCallCount returns the number of detail lookups so far
func (g *Gateway) DetailCallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.DetailCalls)
}

// LastDetailCall returns the id of the latest detail lookup
func (g *Gateway) LastDetailCall() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.DetailCalls) == 0 {
		return ""
	}
	return g.DetailCalls[len(g.DetailCalls)-1]
}
