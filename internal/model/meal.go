package model

import (
	"fmt"
	"strings"
)

// MaxIngredientSlots is the number of numbered ingredient/measure pairs a
// meal record can declare
const MaxIngredientSlots = 20

// MealSummary represents one entry of the area meal list
type MealSummary struct {
	Name         string
	ID           string
	ThumbnailURL string
}

// Ingredient is a single ingredient slot with its measure. Measure may be blank.
type Ingredient struct {
	Name    string
	Measure string
}

// MealDetail represents the full record of one meal
type MealDetail struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Ingredients  []Ingredient // declared slots in order, blanks included
	Instructions string
	ImageURL     string
	Tags         []string
	YouTubeURL   string
	SourceURL    string
}

// DisplayIngredients returns the ingredient slots that carry a name, in
// declaration order
func (md *MealDetail) DisplayIngredients() []Ingredient {
	shown := make([]Ingredient, 0, len(md.Ingredients))
	for _, ing := range md.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			continue
		}
		shown = append(shown, ing)
	}
	return shown
}

// IngredientLines returns one bullet line per displayed ingredient
func (md *MealDetail) IngredientLines() []string {
	ingredients := md.DisplayIngredients()
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, fmt.Sprintf("- %s (%s)", ing.Name, ing.Measure))
	}
	return lines
}

// Description formats the meal as the multi-line text shown in the detail view
func (md *MealDetail) Description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Meal Name: %s\n", md.Name)
	fmt.Fprintf(&b, "Category: %s\n", md.Category)
	fmt.Fprintf(&b, "Area: %s\n\n", md.Area)

	b.WriteString("Ingredients:\n")
	for _, line := range md.IngredientLines() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("Instructions:\n")
	b.WriteString(md.Instructions)
	return b.String()
}

// ParseTags splits a comma separated tag string, dropping empty entries
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
