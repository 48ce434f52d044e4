package ui

import (
	"context"
	"fmt"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/mealfinder/meal-finder/internal/catalog"
	"github.com/mealfinder/meal-finder/internal/config"
	"github.com/mealfinder/meal-finder/internal/controller"
	"github.com/mealfinder/meal-finder/internal/model"
)

// ResultMode is what the lower content area currently shows
type ResultMode int

const (
	ResultDetail ResultMode = iota
	ResultGallery
)

// String returns a display name for the mode
func (rm ResultMode) String() string {
	switch rm {
	case ResultDetail:
		return "Detail"
	case ResultGallery:
		return "Gallery"
	default:
		return "Unknown"
	}
}

// RootUI represents the main window. It implements controller.View; view
// methods may be called from any goroutine and hop onto the UI thread.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	ctrl         *controller.Controller
	log          zerolog.Logger
	ctx          context.Context

	// Widgets
	headerLabel *widget.Label
	selectLabel *widget.Label
	mealSelect  *widget.Select
	viewBtn     *widget.Button
	randomBtn   *widget.Button
	showAllBtn  *widget.Button
	sidebar     *Sidebar
	gallery     *Gallery
	detail      *DetailView
	resultMode  ResultMode

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationTimer     *time.Timer

	// syncingSelect suppresses the picker callback while it mirrors the selection
	syncingSelect bool

	// runAsync runs gateway-bound commands off the UI thread
	runAsync func(func())
}

var _ controller.View = (*RootUI)(nil)

// NewRootUI creates the main window content and attaches itself to ctrl
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, settings *config.Settings, ctrl *controller.Controller, log zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		ctrl:         ctrl,
		log:          log,
		ctx:          ctx,
		runAsync:     func(fn func()) { go fn() },
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ctrl.SetView(ui)

	ui.setupUI()
	log.Debug().Msg("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Header
	ui.headerLabel = widget.NewLabel(ui.headerText())
	ui.headerLabel.Alignment = fyne.TextAlignCenter
	ui.headerLabel.TextStyle = fyne.TextStyle{Bold: true}
	headerBg := canvas.NewRectangle(HeaderBackground)
	header := container.NewStack(headerBg, container.NewPadded(ui.headerLabel))

	// Meal picker and buttons
	ui.selectLabel = widget.NewLabel(ui.localization.GetText(KeySelectMealLabel))
	ui.selectLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.mealSelect = widget.NewSelect(nil, ui.onSelectChanged)
	ui.mealSelect.PlaceHolder = ui.localization.GetText(KeySelectPlaceholder)

	ui.viewBtn = widget.NewButton(ui.withIcon(IconView, KeyViewMeal), ui.onViewClick)
	ui.randomBtn = widget.NewButton(ui.withIcon(IconRandom, KeyRandomMeal), ui.onRandomClick)
	ui.showAllBtn = widget.NewButton(ui.withIcon(IconGrid, KeyShowAll), ui.onShowAllClick)
	buttons := container.NewCenter(container.NewHBox(ui.viewBtn, ui.randomBtn, ui.showAllBtn))

	selectRow := container.NewBorder(nil, nil, ui.selectLabel, nil, ui.mealSelect)
	selectFrame := container.NewVBox(selectRow, buttons)

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Detail and gallery share the lower area
	ui.sidebar = NewSidebar(ui.onOpen)
	ui.gallery = NewGallery(ui.settings.GetGalleryColumns(), ui.onOpen)
	ui.detail = NewDetailView(ui.localization)
	ui.gallery.Container().Hide()
	ui.resultMode = ResultDetail
	results := container.NewStack(canvas.NewRectangle(TextAreaBackground), ui.detail.TextArea(), ui.gallery.Container())

	top := container.NewVBox(selectFrame, ui.notificationContainer, ui.detail.ImageArea())
	content := container.NewBorder(top, nil, nil, nil, results)

	body := container.NewBorder(nil, nil, ui.sidebar.Container(), nil, container.NewPadded(content))
	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, body))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.LoadCatalog)
	settingsItem := fyne.NewMenuItem(ui.withIcon(IconSettings, KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), reloadItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.headerLabel.SetText(ui.headerText())
	ui.selectLabel.SetText(ui.localization.GetText(KeySelectMealLabel))
	ui.mealSelect.PlaceHolder = ui.localization.GetText(KeySelectPlaceholder)
	ui.mealSelect.Refresh()
	ui.viewBtn.SetText(ui.withIcon(IconView, KeyViewMeal))
	ui.randomBtn.SetText(ui.withIcon(IconRandom, KeyRandomMeal))
	ui.showAllBtn.SetText(ui.withIcon(IconGrid, KeyShowAll))
}

func (ui *RootUI) headerText() string {
	return ui.localization.GetText(KeyHeader) + " " + IconFlag
}

// withIcon prefixes the localized text for key with icon
func (ui *RootUI) withIcon(icon, key string) string {
	return icon + " " + ui.localization.GetText(key)
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies settings that take effect immediately
func (ui *RootUI) onSettingsSaved(areaChanged bool) {
	ui.gallery.SetColumns(ui.settings.GetGalleryColumns())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
	if areaChanged {
		ui.LoadCatalog()
	}
}

// LoadCatalog fetches the configured area's meals in the background
func (ui *RootUI) LoadCatalog() {
	area := ui.settings.GetArea()
	ui.showNotification(ui.localization.GetText(KeyLoadingMeals), true)
	ui.log.Info().Str("area", area).Msg("loading catalog")

	ui.runAsync(func() {
		err := ui.ctrl.Load(ui.ctx, area)
		if err != nil && !catalog.IsThumbnailError(err) {
			ui.hideNotification()
			return
		}
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyMealsLoaded), ui.ctrl.Catalog().Len()), false)
		ui.scheduleHideNotification()
	})
}

// onSelectChanged handles a pick in the meal dropdown
func (ui *RootUI) onSelectChanged(name string) {
	if ui.syncingSelect || name == "" {
		return
	}
	if err := ui.ctrl.Select(name); err != nil {
		ui.log.Debug().Str("meal", name).Err(err).Msg("dropdown selection rejected")
	}
}

// onViewClick handles the View Meal button
func (ui *RootUI) onViewClick() {
	ui.runAsync(func() {
		ui.ctrl.ViewSelected(ui.ctx)
	})
}

// onRandomClick handles the Random Meal button
func (ui *RootUI) onRandomClick() {
	ui.runAsync(func() {
		ui.ctrl.Random(ui.ctx)
	})
}

// onShowAllClick handles the Show All Meals button
func (ui *RootUI) onShowAllClick() {
	ui.ctrl.ShowAll()
}

// onOpen handles a tap on a sidebar or gallery tile
func (ui *RootUI) onOpen(name string) {
	ui.runAsync(func() {
		ui.ctrl.Open(ui.ctx, name)
	})
}

// ShowCatalog implements controller.View
func (ui *RootUI) ShowCatalog(entries []catalog.Entry) {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}

	fyne.Do(func() {
		ui.sidebar.SetEntries(entries)
		ui.syncingSelect = true
		ui.mealSelect.ClearSelected()
		ui.mealSelect.SetOptions(names)
		ui.syncingSelect = false
		if ui.resultMode == ResultGallery {
			ui.gallery.SetEntries(entries)
		}
	})
}

// ShowDetail implements controller.View
func (ui *RootUI) ShowDetail(detail *model.MealDetail, img image.Image) {
	fyne.Do(func() {
		ui.detail.Show(detail, img)
		ui.setResultMode(ResultDetail)
	})
}

// SetHighlight implements controller.View
func (ui *RootUI) SetHighlight(prev, next string) {
	fyne.Do(func() {
		ui.sidebar.SetHighlight(prev, next)
		if ui.mealSelect.Selected != next {
			ui.syncingSelect = true
			ui.mealSelect.SetSelected(next)
			ui.syncingSelect = false
		}
	})
}

// ShowGallery implements controller.View
func (ui *RootUI) ShowGallery(entries []catalog.Entry) {
	fyne.Do(func() {
		ui.gallery.SetEntries(entries)
		ui.setResultMode(ResultGallery)
	})
}

// ShowWarning implements controller.View
func (ui *RootUI) ShowWarning(err error) {
	fyne.Do(func() {
		dialog.ShowInformation(
			ui.localization.GetText(KeyWarningTitle),
			ui.localization.GetText(messageKeyFor(err)),
			ui.window,
		)
	})
}

// ShowError implements controller.View
func (ui *RootUI) ShowError(err error) {
	message := fmt.Errorf("%s\n\n%v", ui.localization.GetText(messageKeyFor(err)), err)
	fyne.Do(func() {
		dialog.ShowError(message, ui.window)
	})
}

// setResultMode swaps the lower area between detail text and gallery
func (ui *RootUI) setResultMode(mode ResultMode) {
	ui.resultMode = mode
	if mode == ResultGallery {
		ui.detail.TextArea().Hide()
		ui.gallery.Container().Show()
	} else {
		ui.gallery.Container().Hide()
		ui.detail.TextArea().Show()
	}
}

// showNotification displays a message in the notification panel under the picker.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	fyne.Do(func() {
		ui.stopNotificationTimer()
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
			ui.notificationSpinner.Start()
		} else {
			ui.notificationSpinner.Stop()
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// scheduleHideNotification hides the panel after NotificationAutoHide
// unless another notification replaces it first
func (ui *RootUI) scheduleHideNotification() {
	fyne.Do(func() {
		ui.stopNotificationTimer()
		ui.notificationTimer = time.AfterFunc(NotificationAutoHide, ui.hideNotification)
	})
}

func (ui *RootUI) stopNotificationTimer() {
	if ui.notificationTimer != nil {
		ui.notificationTimer.Stop()
		ui.notificationTimer = nil
	}
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	fyne.Do(func() {
		ui.notificationSpinner.Stop()
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}
