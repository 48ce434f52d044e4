package mealdb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mealfinder/meal-finder/internal/model"
)

// Response field names
const (
	fieldMeals        = "meals"
	fieldID           = "idMeal"
	fieldName         = "strMeal"
	fieldThumb        = "strMealThumb"
	fieldCategory     = "strCategory"
	fieldArea         = "strArea"
	fieldInstructions = "strInstructions"
	fieldTags         = "strTags"
	fieldYouTube      = "strYoutube"
	fieldSource       = "strSource"
	fieldIngredientN  = "strIngredient%d"
	fieldMeasureN     = "strMeasure%d"
)

// envelope is the common {"meals": [...]} wrapper of every endpoint
type envelope struct {
	Meals json.RawMessage `json:"meals"`
}

// decodeMeals returns the raw meal records. A null or empty list yields a nil
// slice; a missing key or any other shape is malformed.
func decodeMeals(body []byte) ([]map[string]any, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	if len(env.Meals) == 0 {
		return nil, fmt.Errorf("%w: missing %q key", model.ErrMalformedResponse, fieldMeals)
	}
	if string(env.Meals) == "null" {
		return nil, nil
	}

	var records []map[string]any
	if err := json.Unmarshal(env.Meals, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records, nil
}

// field reads a record value as a string. Numbers are formatted without
// exponent, null and absent values are empty.
func field(record map[string]any, key string) string {
	switch v := record[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func toSummary(record map[string]any) (model.MealSummary, error) {
	summary := model.MealSummary{
		Name:         field(record, fieldName),
		ID:           field(record, fieldID),
		ThumbnailURL: field(record, fieldThumb),
	}
	if summary.Name == "" || summary.ID == "" {
		return model.MealSummary{}, fmt.Errorf("%w: meal entry without %s/%s", model.ErrMalformedResponse, fieldName, fieldID)
	}
	return summary, nil
}

func toDetail(record map[string]any) (*model.MealDetail, error) {
	detail := &model.MealDetail{
		ID:           field(record, fieldID),
		Name:         field(record, fieldName),
		Category:     field(record, fieldCategory),
		Area:         field(record, fieldArea),
		Instructions: field(record, fieldInstructions),
		ImageURL:     field(record, fieldThumb),
		Tags:         model.ParseTags(field(record, fieldTags)),
		YouTubeURL:   strings.TrimSpace(field(record, fieldYouTube)),
		SourceURL:    strings.TrimSpace(field(record, fieldSource)),
	}
	if detail.Name == "" {
		return nil, fmt.Errorf("%w: meal record without %s", model.ErrMalformedResponse, fieldName)
	}

	for i := 1; i <= model.MaxIngredientSlots; i++ {
		nameKey := fmt.Sprintf(fieldIngredientN, i)
		measureKey := fmt.Sprintf(fieldMeasureN, i)
		_, hasName := record[nameKey]
		_, hasMeasure := record[measureKey]
		if !hasName && !hasMeasure {
			continue
		}
		detail.Ingredients = append(detail.Ingredients, model.Ingredient{
			Name:    strings.TrimSpace(field(record, nameKey)),
			Measure: strings.TrimSpace(field(record, measureKey)),
		})
	}
	return detail, nil
}
