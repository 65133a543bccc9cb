package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/imagenav/imagenav/internal/config"
	"github.com/imagenav/imagenav/internal/model"
	"github.com/imagenav/imagenav/internal/nav"
	"github.com/imagenav/imagenav/internal/platform"
	"github.com/imagenav/imagenav/internal/project"
	"github.com/imagenav/imagenav/internal/session"
)

// EditorWindow represents the authoring window: the scene canvas with a
// toolbar above it, a scene selector, and the hotspot list of the current
// scene on the right.
type EditorWindow struct {
	window       fyne.Window
	editor       *session.Editor
	settings     *config.Settings
	localization *Localization

	sceneView   *SceneView
	sceneSelect *widget.Select
	hotspotList *widget.List
	hotspots    []model.Hotspot

	loadImageBtn   *widget.Button
	addButtonBtn   *widget.Button
	backBtn        *widget.Button
	saveProjectBtn *widget.Button
	loadProjectBtn *widget.Button
	hotspotsLabel  *widget.Label

	// Decoded backgrounds by path. Failures are not cached, so a file fixed
	// on disk is picked up on the next scene change.
	imageCache map[string]image.Image

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewEditorWindow creates and initializes the editor window around an editor
// session.
func NewEditorWindow(window fyne.Window, editor *session.Editor, settings *config.Settings, localization *Localization) *EditorWindow {
	ew := &EditorWindow{
		window:       window,
		editor:       editor,
		settings:     settings,
		localization: localization,
		imageCache:   make(map[string]image.Image),
	}

	window.SetTitle(localization.GetText(KeyEditorTitle))

	// Every successful session operation funnels into refresh
	editor.SetChangeCallback(ew.refresh)

	ew.setupUI()
	ew.refresh()
	return ew
}

// setupUI creates and arranges all UI components
func (ew *EditorWindow) setupUI() {
	ew.createMenu()

	ew.sceneView = NewSceneView(true)
	ew.sceneView.SetCallbacks(ew.followHotspot, ew.onDraftComplete)

	ew.loadImageBtn = widget.NewButton(ew.localization.GetText(KeyLoadSceneImage), ew.onLoadSceneImage)
	ew.addButtonBtn = widget.NewButton(ew.localization.GetText(KeyAddButton), ew.onAddButton)
	ew.backBtn = widget.NewButton(ew.localization.GetText(KeyBack), ew.onBack)
	ew.saveProjectBtn = widget.NewButton(ew.localization.GetText(KeySaveProject), ew.onSaveProject)
	ew.loadProjectBtn = widget.NewButton(ew.localization.GetText(KeyLoadProject), ew.onLoadProject)

	ew.sceneSelect = widget.NewSelect(nil, ew.onSceneSelected)
	ew.sceneSelect.PlaceHolder = ew.localization.GetText(KeyNoScene)

	toolbar := container.NewHBox(
		ew.loadImageBtn,
		ew.addButtonBtn,
		ew.backBtn,
		widget.NewSeparator(),
		ew.saveProjectBtn,
		ew.loadProjectBtn,
	)
	topPanel := container.NewBorder(nil, nil, nil, ew.sceneSelect, toolbar)

	// Notification panel under the toolbar (hidden by default)
	ew.notificationLabel = widget.NewLabel("")
	ew.notificationLabel.Alignment = fyne.TextAlignLeading
	ew.notificationContainer = container.NewHBox(container.NewPadded(ew.notificationLabel))
	ew.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ew.notificationContainer)

	// Hotspot list for the current scene
	ew.hotspotList = widget.NewList(
		func() int {
			return len(ew.hotspots)
		},
		func() fyne.CanvasObject { return ew.createHotspotItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ew.updateHotspotItem(id, obj) },
	)
	ew.hotspotsLabel = widget.NewLabel(ew.localization.GetText(KeyButtons))
	ew.hotspotsLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Fix the side panel width with a transparent rectangle underneath
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(SidePanelWidth, 0))
	sidePanel := container.NewStack(
		spacer,
		container.NewBorder(ew.hotspotsLabel, nil, nil, nil, ew.hotspotList),
	)

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		sidePanel,   // right
		ew.sceneView,
	)

	ew.window.SetContent(content)

	log.Printf("Editor window setup completed")
}

// createHotspotItem creates a list row template
func (ew *EditorWindow) createHotspotItem() fyne.CanvasObject {
	row := NewHotspotRow(ew.localization)
	row.SetCallbacks(ew.followHotspot)
	return row
}

// updateHotspotItem fills a list row with the hotspot at id
func (ew *EditorWindow) updateHotspotItem(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*HotspotRow)
	if !ok {
		log.Printf("Warning: unexpected list item type %T", obj)
		return
	}
	if id < 0 || id >= len(ew.hotspots) {
		return
	}
	row.UpdateHotspot(ew.hotspots[id])
}

// createMenu creates the window menu
func (ew *EditorWindow) createMenu() {
	settingsItem := fyne.NewMenuItem(ew.localization.GetText(KeySettings), ew.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ew.localization.GetText(KeyLanguage))
	for code, name := range ew.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ew.onLanguageChange(langCode)
		})

		// Mark current language
		if ew.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ew.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ew.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ew *EditorWindow) onLanguageChange(langCode string) {
	ew.localization.SetLanguage(langCode)
	ew.settings.SetLanguage(langCode)

	ew.refreshUITexts()

	// Recreate menu to update checkmarks
	ew.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ew *EditorWindow) refreshUITexts() {
	ew.window.SetTitle(ew.localization.GetText(KeyEditorTitle))

	ew.loadImageBtn.SetText(ew.localization.GetText(KeyLoadSceneImage))
	ew.addButtonBtn.SetText(ew.localization.GetText(KeyAddButton))
	ew.backBtn.SetText(ew.localization.GetText(KeyBack))
	ew.saveProjectBtn.SetText(ew.localization.GetText(KeySaveProject))
	ew.loadProjectBtn.SetText(ew.localization.GetText(KeyLoadProject))
	ew.hotspotsLabel.SetText(ew.localization.GetText(KeyButtons))

	ew.sceneSelect.PlaceHolder = ew.localization.GetText(KeyNoScene)
	ew.sceneSelect.Refresh()

	// Row buttons re-read their texts on update
	ew.hotspotList.Refresh()
}

// onShowSettings shows the settings dialog
func (ew *EditorWindow) onShowSettings() {
	NewSettingsDialog(ew.settings, ew.localization, ew.window, nil).Show()
}

// onLoadSceneImage picks a background image and enters the scene named after
// the file.
func (ew *EditorWindow) onLoadSceneImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ew.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()
		ew.openSceneImage(path)
	}, ew.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	setDialogLocation(fd, ew.settings.GetImageDirectory())
	fd.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fd.Show()
}

// openSceneImage creates or reopens the scene named after the image file and
// makes it current.
func (ew *EditorWindow) openSceneImage(path string) {
	name := platform.SceneNameFromPath(path)
	if _, err := ew.editor.OpenOrLoadScene(name, path); err != nil {
		dialog.ShowError(err, ew.window)
		return
	}
	if ew.editor.CurrentName() != name {
		if err := ew.editor.GoToScene(name); err != nil {
			dialog.ShowError(err, ew.window)
			return
		}
	}
	ew.settings.SetImageDirectory(filepath.Dir(path))

	if _, err := ew.loadBackground(path); err != nil {
		ew.showNotification(fmt.Sprintf(ew.localization.GetText(KeyImageLoadFailed), path))
	} else {
		ew.hideNotification()
	}
}

// onAddButton toggles rubber-band drawing on the canvas. Pressing it again
// before a rectangle is drawn disarms the mode.
func (ew *EditorWindow) onAddButton() {
	if ew.sceneView.DrawMode() {
		ew.sceneView.SetDrawMode(false)
		ew.hideNotification()
		return
	}
	if err := ew.editor.BeginHotspotDraw(); err != nil {
		ew.showNotification(ew.localization.GetText(KeyLoadImageFirst))
		return
	}
	ew.sceneView.SetDrawMode(true)
	ew.showNotification(ew.localization.GetText(KeyDragHint))
}

// onDraftComplete asks for the target scene image and commits the hotspot.
// Cancelling the dialog discards the draft.
func (ew *EditorWindow) onDraftComplete(rect model.Rect) {
	ew.sceneView.SetDrawMode(false)

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ew.window)
			return
		}
		if reader == nil {
			ew.hideNotification()
			return // cancelled
		}
		path := reader.URI().Path()
		reader.Close()
		ew.commitHotspot(rect, path)
	}, ew.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	setDialogLocation(fd, ew.settings.GetImageDirectory())
	fd.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fd.Show()
	ew.showNotification(ew.localization.GetText(KeyPickTargetHint))
}

// commitHotspot records the drawn hotspot pointing at the scene named after
// the chosen image.
func (ew *EditorWindow) commitHotspot(rect model.Rect, targetPath string) {
	targetName := platform.SceneNameFromPath(targetPath)
	hotspot, err := ew.editor.CommitHotspot(rect, targetName, targetPath)
	if err != nil {
		dialog.ShowError(err, ew.window)
		return
	}
	ew.settings.SetImageDirectory(filepath.Dir(targetPath))
	ew.showNotification(fmt.Sprintf(ew.localization.GetText(KeyHotspotAdded), hotspot.Target))
}

// onBack pops one history entry. An empty history is a notice, not an error.
func (ew *EditorWindow) onBack() {
	if _, err := ew.editor.GoBack(); err != nil {
		if errors.Is(err, nav.ErrNoHistory) {
			ew.showNotification(ew.localization.GetText(KeyNoHistory))
			return
		}
		dialog.ShowError(err, ew.window)
	}
}

// onSaveProject writes the project document to a chosen file
func (ew *EditorWindow) onSaveProject() {
	if ew.editor.SceneCount() == 0 {
		ew.showNotification(ew.localization.GetText(KeyEmptyProject))
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ew.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer writer.Close()

		path := writer.URI().Path()
		if err := ew.editor.Save(writer); err != nil {
			if errors.Is(err, project.ErrEmptyProject) {
				ew.showNotification(ew.localization.GetText(KeyEmptyProject))
				return
			}
			dialog.ShowError(err, ew.window)
			return
		}
		ew.settings.SetProjectDirectory(filepath.Dir(path))
		ew.showNotification(fmt.Sprintf(ew.localization.GetText(KeyProjectSaved), path))
	}, ew.window)
	fd.SetFilter(storage.NewExtensionFileFilter(ProjectExtensions))
	fd.SetFileName(DefaultProjectFileName)
	setDialogLocation(fd, ew.settings.GetProjectDirectory())
	fd.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fd.Show()
}

// onLoadProject replaces the session with a project document from disk. On a
// malformed document the current project is retained unchanged.
func (ew *EditorWindow) onLoadProject() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ew.window)
			return
		}
		if reader == nil {
			return // cancelled
		}
		defer reader.Close()

		path := reader.URI().Path()
		if err := ew.editor.Load(reader); err != nil {
			dialog.ShowError(err, ew.window)
			return
		}
		ew.settings.SetProjectDirectory(filepath.Dir(path))
		ew.showNotification(fmt.Sprintf(ew.localization.GetText(KeyProjectLoaded), path))
	}, ew.window)
	fd.SetFilter(storage.NewExtensionFileFilter(ProjectExtensions))
	setDialogLocation(fd, ew.settings.GetProjectDirectory())
	fd.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fd.Show()
}

// onSceneSelected jumps to the scene picked in the selector
func (ew *EditorWindow) onSceneSelected(name string) {
	if name == "" || name == ew.editor.CurrentName() {
		return
	}
	if err := ew.editor.GoToScene(name); err != nil {
		dialog.ShowError(err, ew.window)
	}
}

// followHotspot navigates to the hotspot target, reporting dangling targets
// as a notice.
func (ew *EditorWindow) followHotspot(hotspot model.Hotspot) {
	if err := ew.editor.ActivateHotspot(hotspot); err != nil {
		if errors.Is(err, nav.ErrSceneNotFound) {
			ew.showNotification(fmt.Sprintf(ew.localization.GetText(KeySceneNotFound), hotspot.Target))
			return
		}
		dialog.ShowError(err, ew.window)
	}
}

// refresh re-renders everything from the session state
func (ew *EditorWindow) refresh() {
	scene, ok := ew.editor.CurrentScene()
	if ok {
		background, _ := ew.loadBackground(scene.Background)
		ew.sceneView.SetScene(scene, background)
		ew.hotspots = scene.Buttons
	} else {
		ew.sceneView.SetScene(nil, nil)
		ew.hotspots = nil
	}

	ew.sceneSelect.Options = ew.editor.SceneNames()
	ew.sceneSelect.Refresh()
	if current := ew.editor.CurrentName(); current != "" {
		ew.sceneSelect.SetSelected(current)
	}

	ew.hotspotList.Refresh()

	if ew.editor.CanGoBack() {
		ew.backBtn.Enable()
	} else {
		ew.backBtn.Disable()
	}
}

// loadBackground decodes a background image, caching successes by path
func (ew *EditorWindow) loadBackground(path string) (image.Image, error) {
	if img, ok := ew.imageCache[path]; ok {
		return img, nil
	}
	img, err := platform.LoadImage(path)
	if err != nil {
		log.Printf("Editor window: %v", err)
		return nil, err
	}
	ew.imageCache[path] = img
	return img, nil
}

// showNotification displays a message in the notification panel under the toolbar.
func (ew *EditorWindow) showNotification(message string) {
	if ew.notificationLabel == nil || ew.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ew.notificationLabel.SetText(message)
		ew.notificationContainer.Show()
		ew.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ew *EditorWindow) hideNotification() {
	if ew.notificationContainer == nil {
		return
	}
	fyne.Do(func() {
		ew.notificationContainer.Hide()
	})
}

// setDialogLocation points a file dialog at a remembered directory when it is
// still resolvable.
func setDialogLocation(fd *dialog.FileDialog, dir string) {
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		log.Printf("File dialog: cannot list %s: %v", dir, err)
		return
	}
	fd.SetLocation(lister)
}
