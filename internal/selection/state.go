// Package selection tracks the currently selected meal and the single
// highlighted sidebar entry.
package selection

import (
	"fmt"
	"sync"

	"github.com/mealfinder/meal-finder/internal/model"
)

// State holds the selected and highlighted meal names. Both start unset.
type State struct {
	mu          sync.RWMutex
	selected    string
	highlighted string
}

// New creates an empty selection state
func New() *State {
	return &State{}
}

// Select makes name the selected and highlighted meal. known reports
// whether a name exists in the catalog; an unknown name fails with
// model.ErrUnknownMeal and leaves the state unchanged. The previous
// highlight is returned so the caller can clear it.
func (s *State) Select(name string, known func(string) bool) (string, error) {
	if known == nil || !known(name) {
		return "", fmt.Errorf("select %q: %w", name, model.ErrUnknownMeal)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.highlighted
	s.selected = name
	s.highlighted = name
	return previous, nil
}

// Selected returns the selected meal name
func (s *State) Selected() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.selected != ""
}

// Highlighted returns the highlighted sidebar entry
func (s *State) Highlighted() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highlighted, s.highlighted != ""
}

// Clear unsets both fields and returns the highlight that was dropped
func (s *State) Clear() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.highlighted
	s.selected = ""
	s.highlighted = ""
	return previous
}
