package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/imagenav/imagenav/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// UI components
	projectDirEntry   *widget.Entry
	imageDirEntry     *widget.Entry
	languageSelect    *widget.Select
	viewerHotspotsChk *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been persisted; pass nil when nothing needs re-rendering.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Project directory selection
	sd.projectDirEntry = widget.NewEntry()
	sd.projectDirEntry.SetPlaceHolder("Project directory path")

	projectBrowseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		sd.browseDirectory(sd.projectDirEntry)
	})
	projectDirRow := container.NewBorder(nil, nil, nil, projectBrowseBtn, sd.projectDirEntry)

	// Image directory selection
	sd.imageDirEntry = widget.NewEntry()
	sd.imageDirEntry.SetPlaceHolder("Image directory path")

	imageBrowseBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		sd.browseDirectory(sd.imageDirEntry)
	})
	imageDirRow := container.NewBorder(nil, nil, nil, imageBrowseBtn, sd.imageDirEntry)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Viewer hotspot visibility
	sd.viewerHotspotsChk = widget.NewCheck(sd.localization.GetText(KeyShowViewerHotspots), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDirectories)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyProjectDirectory)+":"),
		projectDirRow,

		widget.NewLabel(sd.localization.GetText(KeyImageDirectory)+":"),
		imageDirRow,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		sd.viewerHotspotsChk,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.projectDirEntry.SetText(sd.settings.GetProjectDirectory())
	sd.imageDirEntry.SetText(sd.settings.GetImageDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.viewerHotspotsChk.SetChecked(sd.settings.GetShowViewerHotspots())
}

// browseDirectory handles directory browsing into the given entry
func (sd *SettingsDialog) browseDirectory(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.projectDirEntry.Text; dir != "" {
		sd.settings.SetProjectDirectory(dir)
	}
	if dir := sd.imageDirEntry.Text; dir != "" {
		sd.settings.SetImageDirectory(dir)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetShowViewerHotspots(sd.viewerHotspotsChk.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
