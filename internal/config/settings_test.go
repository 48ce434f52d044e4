package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestArea(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if area := settings.GetArea(); area != DefaultArea {
		t.Errorf("Expected default area %s, got %s", DefaultArea, area)
	}

	// Defaults are not persisted by reading
	if stored := app.Preferences().String(KeyArea); stored != "" {
		t.Errorf("Expected nothing stored after read, got %q", stored)
	}

	settings.SetArea(" Japanese ")
	if area := settings.GetArea(); area != "Japanese" {
		t.Errorf("Expected area Japanese, got %s", area)
	}

	// Blank area falls back to default
	settings.SetArea("   ")
	if area := settings.GetArea(); area != DefaultArea {
		t.Errorf("Blank area should fall back to %s, got %s", DefaultArea, area)
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if base := settings.GetAPIBaseURL(); base != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultAPIBaseURL, base)
	}

	settings.SetAPIBaseURL("http://localhost:8080/api/")
	if base := settings.GetAPIBaseURL(); base != "http://localhost:8080/api" {
		t.Errorf("Expected trailing slash trimmed, got %s", base)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if timeout := settings.GetRequestTimeout(); timeout != DefaultRequestTimeout*time.Second {
		t.Errorf("Expected default timeout %ds, got %v", DefaultRequestTimeout, timeout)
	}

	settings.SetRequestTimeout(30)
	if timeout := settings.GetRequestTimeout(); timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", timeout)
	}

	// Test boundary values
	settings.SetRequestTimeout(0)
	if settings.GetRequestTimeout() != MinRequestTimeout*time.Second {
		t.Error("Timeout should be clamped to minimum")
	}

	settings.SetRequestTimeout(1000)
	if settings.GetRequestTimeout() != MaxRequestTimeout*time.Second {
		t.Error("Timeout should be clamped to maximum")
	}
}

func TestGalleryColumns(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if cols := settings.GetGalleryColumns(); cols != DefaultGalleryColumns {
		t.Errorf("Expected default columns %d, got %d", DefaultGalleryColumns, cols)
	}

	settings.SetGalleryColumns(4)
	if cols := settings.GetGalleryColumns(); cols != 4 {
		t.Errorf("Expected 4 columns, got %d", cols)
	}

	settings.SetGalleryColumns(0)
	if settings.GetGalleryColumns() != MinGalleryColumns {
		t.Error("Columns should be clamped to minimum")
	}

	settings.SetGalleryColumns(12)
	if settings.GetGalleryColumns() != MaxGalleryColumns {
		t.Error("Columns should be clamped to maximum")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("fil")
	if lang := settings.GetLanguage(); lang != "fil" {
		t.Errorf("Expected language 'fil', got %s", lang)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if level := settings.GetLogLevel(); level != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, level)
	}

	settings.SetLogLevel("debug")
	if level := settings.GetLogLevel(); level != "debug" {
		t.Errorf("Expected log level debug, got %s", level)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"en", "fil"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
