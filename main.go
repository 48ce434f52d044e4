package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/mealfinder/meal-finder/internal/catalog"
	"github.com/mealfinder/meal-finder/internal/config"
	"github.com/mealfinder/meal-finder/internal/controller"
	"github.com/mealfinder/meal-finder/internal/logger"
	"github.com/mealfinder/meal-finder/internal/mealdb"
	"github.com/mealfinder/meal-finder/internal/selection"
	"github.com/mealfinder/meal-finder/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.mealfinder.meal-finder"
	AppName = "Filipino Meal Finder"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply meal theme
	myApp.Settings().SetTheme(ui.NewMealTheme())

	settings := config.NewSettings(myApp)
	log := logger.NewConsole(logger.ParseLevel(settings.GetLogLevel()))
	log.Info().Str("version", version).Msg("meal finder starting")

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	myWindow.SetOnClosed(cancel)

	// Initialize services
	gateway := mealdb.NewClient(
		settings.GetAPIBaseURL(),
		mealdb.WithTimeout(settings.GetRequestTimeout()),
		mealdb.WithLogger(logger.Component(log, "mealdb")),
	)
	cat := catalog.New(gateway, logger.Component(log, "catalog"))
	ctrl := controller.New(gateway, cat, selection.New(), nil,
		controller.WithLogger(logger.Component(log, "controller")))

	// Create and setup UI
	root := ui.NewRootUI(ctx, myWindow, myApp, settings, ctrl, logger.Component(log, "ui"))
	root.LoadCatalog()

	// Show and run
	myWindow.ShowAndRun()
	log.Info().Msg("meal finder stopped")
}
