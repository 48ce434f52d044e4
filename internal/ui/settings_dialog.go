package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfinder/meal-finder/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func(areaChanged bool)

	// UI components
	areaEntry      *widget.Entry
	columnsEntry   *widget.Entry
	baseURLEntry   *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select

	// languageCodes maps the names shown in languageSelect to codes
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been persisted and may be nil.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func(areaChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.areaEntry = widget.NewEntry()
	sd.areaEntry.SetPlaceHolder(config.DefaultArea)

	sd.columnsEntry = widget.NewEntry()
	sd.columnsEntry.SetPlaceHolder("1-6")

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("1-120")

	languages := sd.settings.GetLanguageOptions()
	sd.languageCodes = make(map[string]string, len(languages))
	languageOptions := make([]string, 0, len(languages))
	for code, name := range languages {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(sd.localization.GetText(KeyArea), sd.areaEntry),
		widget.NewFormItem(sd.localization.GetText(KeyGalleryColumns), sd.columnsEntry),
		widget.NewFormItem(sd.localization.GetText(KeyAPIBaseURL), sd.baseURLEntry),
		widget.NewFormItem(sd.localization.GetText(KeyRequestTimeout), sd.timeoutEntry),
		widget.NewFormItem(sd.localization.GetText(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewPadded(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.areaEntry.SetText(sd.settings.GetArea())
	sd.columnsEntry.SetText(strconv.Itoa(sd.settings.GetGalleryColumns()))
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	areaChanged := sd.apply()
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved(areaChanged)
	}
}

// apply persists the entered values and reports whether the area changed.
// Blank or unparsable fields keep their current value.
func (sd *SettingsDialog) apply() bool {
	areaChanged := false
	if area := strings.TrimSpace(sd.areaEntry.Text); area != "" && area != sd.settings.GetArea() {
		sd.settings.SetArea(area)
		areaChanged = true
	}

	if cols, err := strconv.Atoi(strings.TrimSpace(sd.columnsEntry.Text)); err == nil {
		sd.settings.SetGalleryColumns(cols)
	}

	// Base URL and timeout take effect on next start
	if base := strings.TrimSpace(sd.baseURLEntry.Text); base != "" {
		sd.settings.SetAPIBaseURL(base)
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeout(secs)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
	return areaChanged
}
