package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the editor and viewer sessions to their windows, renders scene
// backgrounds with clickable hotspot overlays, and surfaces the mode chooser,
// notifications, and settings. All UI strings are localized via Localization.
