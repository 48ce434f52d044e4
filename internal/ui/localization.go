package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHeader            = "header"
	KeySelectMealLabel   = "select_meal_label"
	KeySelectPlaceholder = "select_placeholder"
	KeyViewMeal          = "view_meal"
	KeyRandomMeal        = "random_meal"
	KeyShowAll           = "show_all"
	KeyReload            = "reload"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyArea              = "area"
	KeyAPIBaseURL        = "api_base_url"
	KeyRequestTimeout    = "request_timeout"
	KeyGalleryColumns    = "gallery_columns"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyLoadingMeals      = "loading_meals"
	KeyMealsLoaded       = "meals_loaded"
	KeyWarningTitle      = "warning_title"
	KeyNoSelection       = "no_selection"
	KeyEmptyCatalog      = "empty_catalog"
	KeyErrNetwork        = "err_network"
	KeyErrTooLarge       = "err_too_large"
	KeyErrMalformed      = "err_malformed"
	KeyErrNoResults      = "err_no_results"
	KeyErrNotFound       = "err_not_found"
	KeyErrImage          = "err_image"
	KeyErrUnknownMeal    = "err_unknown_meal"
	KeyErrThumbnails     = "err_thumbnails"
	KeyErrGeneric        = "err_generic"
	KeyTags              = "tags"
	KeyWatchVideo        = "watch_video"
	KeyViewSource        = "view_source"
	KeyDetailHint        = "detail_hint"
	KeyLoadingMeal       = "loading_meal"
	KeyErrorTitle        = "error_title"
	KeyIngredients       = "ingredients"
	KeyInstructions      = "instructions"
	KeyAllMeals          = "all_meals"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en":  "English",
		"fil": "Filipino",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "The Filipino Meal Finder",
		KeyHeader:            "Filipino Meal Finder",
		KeySelectMealLabel:   "Select a meal:",
		KeySelectPlaceholder: "Select a meal",
		KeyViewMeal:          "View Meal",
		KeyRandomMeal:        "Random Meal",
		KeyShowAll:           "Show All Meals",
		KeyReload:            "Reload Meals",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyArea:              "Cuisine Area",
		KeyAPIBaseURL:        "Recipe Service URL",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyGalleryColumns:    "Gallery Columns",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyLoadingMeals:      "Loading meals...",
		KeyMealsLoaded:       "%d meals loaded",
		KeyLoadingMeal:       "Loading %s...",
		KeyWarningTitle:      "Selection Error",
		KeyErrorTitle:        "Error",
		KeyNoSelection:       "Please select a meal.",
		KeyEmptyCatalog:      "No meals are loaded yet.",
		KeyErrNetwork:        "Could not reach the recipe service.",
		KeyErrTooLarge:       "The recipe service sent more data than expected.",
		KeyErrMalformed:      "The recipe service sent an unexpected response.",
		KeyErrNoResults:      "No meals found for this cuisine.",
		KeyErrNotFound:       "This meal could not be found.",
		KeyErrImage:          "The meal image could not be shown.",
		KeyErrUnknownMeal:    "That meal is not in the list.",
		KeyErrThumbnails:     "Some meal pictures could not be loaded.",
		KeyErrGeneric:        "Something went wrong.",
		KeyIngredients:       "Ingredients",
		KeyInstructions:      "Instructions",
		KeyTags:              "Tags",
		KeyWatchVideo:        "Watch video",
		KeyViewSource:        "Original recipe",
		KeyDetailHint:        "Pick a meal from the list or press Random Meal.",
		KeyAllMeals:          "All Meals",
	}

	l.texts["fil"] = map[string]string{
		KeyAppTitle:          "Tagahanap ng Pagkaing Pilipino",
		KeyHeader:            "Tagahanap ng Pagkaing Pilipino",
		KeySelectMealLabel:   "Pumili ng pagkain:",
		KeySelectPlaceholder: "Pumili ng pagkain",
		KeyViewMeal:          "Tingnan",
		KeyRandomMeal:        "Kahit Ano",
		KeyShowAll:           "Lahat ng Pagkain",
		KeyReload:            "I-reload",
		KeySettings:          "Mga Setting",
		KeyFile:              "File",
		KeyLanguage:          "Wika",
		KeyArea:              "Lutuin",
		KeyAPIBaseURL:        "URL ng Serbisyo",
		KeyRequestTimeout:    "Timeout (segundo)",
		KeyGalleryColumns:    "Bilang ng Hanay",
		KeySave:              "I-save",
		KeyCancel:            "Kanselahin",
		KeySettingsSaved:     "Nai-save ang mga setting!",
		KeyLoadingMeals:      "Kinukuha ang mga pagkain...",
		KeyMealsLoaded:       "%d pagkain ang nakuha",
		KeyLoadingMeal:       "Kinukuha ang %s...",
		KeyWarningTitle:      "Walang Napili",
		KeyErrorTitle:        "May Mali",
		KeyNoSelection:       "Pumili muna ng pagkain.",
		KeyEmptyCatalog:      "Wala pang nakuhang pagkain.",
		KeyErrNetwork:        "Hindi maabot ang serbisyo ng recipe.",
		KeyErrTooLarge:       "Sobrang laki ng sagot mula sa serbisyo.",
		KeyErrMalformed:      "Hindi inaasahang sagot mula sa serbisyo.",
		KeyErrNoResults:      "Walang nakitang pagkain para sa lutuing ito.",
		KeyErrNotFound:       "Hindi makita ang pagkaing ito.",
		KeyErrImage:          "Hindi maipakita ang larawan.",
		KeyErrUnknownMeal:    "Wala sa listahan ang pagkaing iyan.",
		KeyErrThumbnails:     "May mga larawang hindi nakuha.",
		KeyErrGeneric:        "May nangyaring mali.",
		KeyIngredients:       "Mga Sangkap",
		KeyInstructions:      "Paraan ng Pagluto",
		KeyTags:              "Mga Tag",
		KeyWatchVideo:        "Panoorin ang video",
		KeyViewSource:        "Orihinal na recipe",
		KeyDetailHint:        "Pumili ng pagkain sa listahan o pindutin ang Kahit Ano.",
		KeyAllMeals:          "Lahat ng Pagkain",
	}
}
