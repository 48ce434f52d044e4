package model

import "errors"

// Sentinel errors reported by the gateway, catalog and command layer.
// Callers wrap them with context and match with errors.Is.
var (
	ErrNetwork           = errors.New("network error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrNoResults         = errors.New("no results")
	ErrNotFound          = errors.New("meal not found")
	ErrImageDecode       = errors.New("image decode failed")
	ErrUnknownMeal       = errors.New("unknown meal")
	ErrNoSelection       = errors.New("no meal selected")
	ErrEmptyCatalog      = errors.New("meal catalog is empty")
)

// IsUserInput reports whether err is an expected user-input condition
// rather than a system fault. Such errors are shown as guidance and never
// logged as errors.
func IsUserInput(err error) bool {
	return errors.Is(err, ErrNoSelection) || errors.Is(err, ErrEmptyCatalog)
}
