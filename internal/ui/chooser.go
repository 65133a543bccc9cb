package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/imagenav/imagenav/internal/config"
	"github.com/imagenav/imagenav/internal/session"
)

// Chooser is the mode chooser: a small window offering the editor, the
// viewer, or quitting. Closing a session window brings the chooser back, so
// one run of the app can open any number of sessions in turn.
type Chooser struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
}

// NewChooser creates the mode chooser and its window.
func NewChooser(app fyne.App) *Chooser {
	settings := config.NewSettings(app)
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	c := &Chooser{
		app:          app,
		settings:     settings,
		localization: localization,
	}

	c.window = app.NewWindow(localization.GetText(KeyAppTitle))
	c.window.SetMaster() // closing the chooser ends the app
	c.setupUI()
	return c
}

// ShowAndRun shows the chooser and runs the application loop.
func (c *Chooser) ShowAndRun() {
	c.window.ShowAndRun()
}

// setupUI creates the chooser content
func (c *Chooser) setupUI() {
	title := widget.NewLabel(c.localization.GetText(KeyChooseMode))
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}

	editorBtn := widget.NewButton(c.localization.GetText(KeyEditor), c.onOpenEditor)
	editorBtn.Importance = widget.HighImportance
	viewerBtn := widget.NewButton(c.localization.GetText(KeyViewer), c.onOpenViewer)
	quitBtn := widget.NewButton(c.localization.GetText(KeyQuit), c.onQuit)

	content := container.NewVBox(
		container.NewPadded(title),
		editorBtn,
		viewerBtn,
		widget.NewSeparator(),
		quitBtn,
	)

	c.window.SetContent(container.NewPadded(content))
	c.window.Resize(fyne.NewSize(ChooserWindowWidth, ChooserWindowHeight))
	c.window.CenterOnScreen()
}

// onOpenEditor opens a fresh editor session
func (c *Chooser) onOpenEditor() {
	w := c.app.NewWindow(c.localization.GetText(KeyEditorTitle))
	w.Resize(fyne.NewSize(SessionWindowWidth, SessionWindowHeight))
	NewEditorWindow(w, session.NewEditor(), c.settings, c.localization)
	c.openSession(w)
}

// onOpenViewer opens a fresh viewer session
func (c *Chooser) onOpenViewer() {
	w := c.app.NewWindow(c.localization.GetText(KeyViewerTitle))
	w.Resize(fyne.NewSize(SessionWindowWidth, SessionWindowHeight))
	NewViewerWindow(w, session.NewViewer(), c.settings, c.localization)
	c.openSession(w)
}

// openSession hides the chooser while the session window is open and shows
// it again when the window closes.
func (c *Chooser) openSession(w fyne.Window) {
	w.SetOnClosed(func() {
		c.window.Show()
	})
	c.window.Hide()
	w.Show()
	log.Printf("Chooser: session window opened")
}

// onQuit exits the application
func (c *Chooser) onQuit() {
	c.app.Quit()
}
