package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyArea           = "area"
	KeyAPIBaseURL     = "api_base_url"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyGalleryColumns = "gallery_columns"
	KeyLanguage       = "app_language"
	KeyLogLevel       = "log_level"
)

// Default values
const (
	DefaultArea           = "Filipino"
	DefaultAPIBaseURL     = "https://www.themealdb.com/api/json/v1/1"
	DefaultRequestTimeout = 15
	DefaultGalleryColumns = 3
	DefaultLanguage       = "en"
	DefaultLogLevel       = "info"
)

// Bounds for numeric settings
const (
	MinRequestTimeout = 1
	MaxRequestTimeout = 120
	MinGalleryColumns = 1
	MaxGalleryColumns = 6
)

// Settings manages application configuration. Getters fall back to the
// defaults without writing them, so nothing is stored until a setter runs.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetArea returns the cuisine area whose meals are listed
func (s *Settings) GetArea() string {
	area := strings.TrimSpace(s.app.Preferences().StringWithFallback(KeyArea, DefaultArea))
	if area == "" {
		return DefaultArea
	}
	return area
}

// SetArea sets the cuisine area
func (s *Settings) SetArea(area string) {
	s.app.Preferences().SetString(KeyArea, strings.TrimSpace(area))
}

// GetAPIBaseURL returns the recipe service base URL without a trailing slash
func (s *Settings) GetAPIBaseURL() string {
	base := strings.TrimSpace(s.app.Preferences().StringWithFallback(KeyAPIBaseURL, DefaultAPIBaseURL))
	if base == "" {
		return DefaultAPIBaseURL
	}
	return strings.TrimRight(base, "/")
}

// SetAPIBaseURL sets the recipe service base URL
func (s *Settings) SetAPIBaseURL(base string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, strings.TrimSpace(base))
}

// GetRequestTimeout returns the per-request HTTP timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().IntWithFallback(KeyRequestTimeout, DefaultRequestTimeout)
	return time.Duration(clamp(seconds, MinRequestTimeout, MaxRequestTimeout)) * time.Second
}

// SetRequestTimeout sets the per-request HTTP timeout in seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, clamp(seconds, MinRequestTimeout, MaxRequestTimeout))
}

// GetGalleryColumns returns the number of columns in the all-meals grid
func (s *Settings) GetGalleryColumns() int {
	cols := s.app.Preferences().IntWithFallback(KeyGalleryColumns, DefaultGalleryColumns)
	return clamp(cols, MinGalleryColumns, MaxGalleryColumns)
}

// SetGalleryColumns sets the number of gallery columns
func (s *Settings) SetGalleryColumns(cols int) {
	s.app.Preferences().SetInt(KeyGalleryColumns, clamp(cols, MinGalleryColumns, MaxGalleryColumns))
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
	if level == "" {
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level name
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"en":  "English",
		"fil": "Filipino",
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
