package mealdb

import (
	"context"
	"image"

	"github.com/mealfinder/meal-finder/internal/model"
)

// Gateway defines the read-only operations against the recipe service.
type Gateway interface {
	// ListMealsByArea returns the meals of a cuisine area in service order
	ListMealsByArea(ctx context.Context, area string) ([]model.MealSummary, error)

	// GetMealDetail returns the full record for a meal id
	GetMealDetail(ctx context.Context, id string) (*model.MealDetail, error)

	// FetchImage downloads, decodes and resizes an image to width x height
	FetchImage(ctx context.Context, url string, width, height int) (image.Image, error)
}
