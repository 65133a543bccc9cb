package ui

import (
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/imagenav/imagenav/internal/config"
	"github.com/imagenav/imagenav/internal/model"
	"github.com/imagenav/imagenav/internal/nav"
	"github.com/imagenav/imagenav/internal/platform"
	"github.com/imagenav/imagenav/internal/session"
)

// ViewerWindow represents the playback window: the scene canvas plus a
// single control for loading a project. Navigation happens only by clicking
// hotspots, there is no back control and no way to change the project.
type ViewerWindow struct {
	window       fyne.Window
	viewer       *session.Viewer
	settings     *config.Settings
	localization *Localization

	sceneView      *SceneView
	loadProjectBtn *widget.Button
	sceneLabel     *widget.Label

	// Decoded backgrounds by path. Failures are not cached, so a file fixed
	// on disk is picked up on the next scene change.
	imageCache map[string]image.Image

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewViewerWindow creates and initializes the viewer window around a viewer
// session.
func NewViewerWindow(window fyne.Window, viewer *session.Viewer, settings *config.Settings, localization *Localization) *ViewerWindow {
	vw := &ViewerWindow{
		window:       window,
		viewer:       viewer,
		settings:     settings,
		localization: localization,
		imageCache:   make(map[string]image.Image),
	}

	window.SetTitle(localization.GetText(KeyViewerTitle))
	viewer.SetChangeCallback(vw.refresh)

	vw.setupUI()
	vw.refresh()
	return vw
}

// setupUI creates and arranges all UI components
func (vw *ViewerWindow) setupUI() {
	vw.createMenu()

	vw.sceneView = NewSceneView(false)
	vw.sceneView.SetCallbacks(vw.followHotspot, nil)

	vw.loadProjectBtn = widget.NewButton(vw.localization.GetText(KeyLoadProject), vw.onLoadProject)

	vw.sceneLabel = widget.NewLabel(vw.localization.GetText(KeyNoScene))
	vw.sceneLabel.TextStyle = fyne.TextStyle{Italic: true}

	topPanel := container.NewBorder(nil, nil, nil, vw.sceneLabel, container.NewHBox(vw.loadProjectBtn))

	// Notification panel under the toolbar (hidden by default)
	vw.notificationLabel = widget.NewLabel("")
	vw.notificationLabel.Alignment = fyne.TextAlignLeading
	vw.notificationContainer = container.NewHBox(container.NewPadded(vw.notificationLabel))
	vw.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, vw.notificationContainer)

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		vw.sceneView,
	)

	vw.window.SetContent(content)

	log.Printf("Viewer window setup completed")
}

// createMenu creates the window menu
func (vw *ViewerWindow) createMenu() {
	settingsItem := fyne.NewMenuItem(vw.localization.GetText(KeySettings), vw.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(vw.localization.GetText(KeyLanguage))
	for code, name := range vw.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			vw.onLanguageChange(langCode)
		})

		// Mark current language
		if vw.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(vw.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	vw.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (vw *ViewerWindow) onLanguageChange(langCode string) {
	vw.localization.SetLanguage(langCode)
	vw.settings.SetLanguage(langCode)

	vw.refreshUITexts()

	// Recreate menu to update checkmarks
	vw.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (vw *ViewerWindow) refreshUITexts() {
	vw.window.SetTitle(vw.localization.GetText(KeyViewerTitle))
	vw.loadProjectBtn.SetText(vw.localization.GetText(KeyLoadProject))
	vw.updateSceneLabel()
}

// onShowSettings shows the settings dialog. The refresh afterwards re-applies
// the hotspot visibility setting.
func (vw *ViewerWindow) onShowSettings() {
	NewSettingsDialog(vw.settings, vw.localization, vw.window, vw.refresh).Show()
}

// onLoadProject loads a project document and enters its first scene. On a
// malformed document the current project is retained unchanged.
func (vw *ViewerWindow) onLoadProject() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, vw.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		path := reader.URI().Path()
		if err := vw.viewer.Load(reader); err != nil {
			dialog.ShowError(err, vw.window)
			return
		}
		vw.settings.SetProjectDirectory(filepath.Dir(path))
		vw.showNotification(fmt.Sprintf(vw.localization.GetText(KeyProjectLoaded), path))
	}, vw.window)
	fd.SetFilter(storage.NewExtensionFileFilter(ProjectExtensions))
	setDialogLocation(fd, vw.settings.GetProjectDirectory())
	fd.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fd.Show()
}

// followHotspot navigates to the hotspot target. Dangling targets are a
// notice, the displayed scene stays put.
func (vw *ViewerWindow) followHotspot(hotspot model.Hotspot) {
	if err := vw.viewer.ActivateHotspot(hotspot); err != nil {
		if errors.Is(err, nav.ErrSceneNotFound) {
			vw.showNotification(fmt.Sprintf(vw.localization.GetText(KeySceneNotFound), hotspot.Target))
			return
		}
		dialog.ShowError(err, vw.window)
	}
}

// refresh re-renders everything from the session state
func (vw *ViewerWindow) refresh() {
	vw.sceneView.SetShowHotspots(vw.settings.GetShowViewerHotspots())

	scene, ok := vw.viewer.CurrentScene()
	if ok {
		background, _ := vw.loadBackground(scene.Background)
		vw.sceneView.SetScene(scene, background)
	} else {
		vw.sceneView.SetScene(nil, nil)
	}
	vw.updateSceneLabel()
}

// updateSceneLabel shows the current scene name next to the toolbar
func (vw *ViewerWindow) updateSceneLabel() {
	if name := vw.viewer.CurrentName(); name != "" {
		vw.sceneLabel.SetText(fmt.Sprintf(vw.localization.GetText(KeySceneLabel), name))
	} else {
		vw.sceneLabel.SetText(vw.localization.GetText(KeyNoScene))
	}
}

// loadBackground decodes a background image, caching successes by path
func (vw *ViewerWindow) loadBackground(path string) (image.Image, error) {
	if img, ok := vw.imageCache[path]; ok {
		return img, nil
	}
	img, err := platform.LoadImage(path)
	if err != nil {
		log.Printf("Viewer window: %v", err)
		return nil, err
	}
	vw.imageCache[path] = img
	return img, nil
}

// showNotification displays a message in the notification panel under the toolbar.
func (vw *ViewerWindow) showNotification(message string) {
	if vw.notificationLabel == nil || vw.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		vw.notificationLabel.SetText(message)
		vw.notificationContainer.Show()
		vw.notificationContainer.Refresh()
	})
}
