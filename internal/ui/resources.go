package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "imagenav.png"
)

// LoadAppIcon loads the application icon from file path
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
