package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the meal sidebar, the detail view and the all-meals gallery, and
// wires buttons and clicks to the command controller. All UI strings are
// localized via Localization.
