package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/imagenav/imagenav/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.imagenav.imagenav"
	AppName = "Image Navigator"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	// Set application icon when one ships next to the binary
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	// Create the mode chooser and run the application loop. The chooser
	// hands off to editor and viewer windows and comes back when they close.
	chooser := ui.NewChooser(myApp)
	chooser.ShowAndRun()
}
