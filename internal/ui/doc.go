package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It shows one image at a time with the tag vocabulary as checkboxes and
// forwards the user's choices to the tagging session. All UI strings are
// localized via Localization.
