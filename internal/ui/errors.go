package ui

import (
	"errors"

	"github.com/mealfinder/meal-finder/internal/catalog"
	"github.com/mealfinder/meal-finder/internal/mealdb"
	"github.com/mealfinder/meal-finder/internal/model"
)

// messageKeyFor maps an error onto the localized message explaining it
func messageKeyFor(err error) string {
	switch {
	case errors.Is(err, model.ErrNoSelection):
		return KeyNoSelection
	case errors.Is(err, model.ErrEmptyCatalog):
		return KeyEmptyCatalog
	case catalog.IsThumbnailError(err):
		return KeyErrThumbnails
	case errors.Is(err, model.ErrNoResults):
		return KeyErrNoResults
	case errors.Is(err, model.ErrNotFound):
		return KeyErrNotFound
	case errors.Is(err, model.ErrUnknownMeal):
		return KeyErrUnknownMeal
	case errors.Is(err, model.ErrMalformedResponse):
		return KeyErrMalformed
	case errors.Is(err, model.ErrImageDecode):
		return KeyErrImage
	case errors.Is(err, mealdb.ErrResponseTooLarge):
		return KeyErrTooLarge
	case errors.Is(err, model.ErrNetwork):
		return KeyErrNetwork
	default:
		return KeyErrGeneric
	}
}
