package config

import (
	"fyne.io/fyne/v2"

	"github.com/imagenav/imagenav/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyProjectDir         = "project_directory"
	KeyImageDir           = "image_directory"
	KeyLanguage           = "app_language"
	KeyShowViewerHotspots = "show_viewer_hotspots"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultShowViewerHotspots = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetProjectDirectory returns the directory of the last opened or saved project
func (s *Settings) GetProjectDirectory() string {
	dir := s.app.Preferences().String(KeyProjectDir)
	if dir == "" {
		defaultDir := platform.DefaultBrowseDir()
		s.SetProjectDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetProjectDirectory remembers the directory of the last opened or saved project
func (s *Settings) SetProjectDirectory(dir string) {
	s.app.Preferences().SetString(KeyProjectDir, dir)
}

// GetImageDirectory returns the directory of the last opened scene image
func (s *Settings) GetImageDirectory() string {
	dir := s.app.Preferences().String(KeyImageDir)
	if dir == "" {
		defaultDir := platform.DefaultBrowseDir()
		s.SetImageDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetImageDirectory remembers the directory of the last opened scene image
func (s *Settings) SetImageDirectory(dir string) {
	s.app.Preferences().SetString(KeyImageDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetShowViewerHotspots returns whether hotspot overlays are drawn in the viewer
func (s *Settings) GetShowViewerHotspots() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowViewerHotspots, DefaultShowViewerHotspots)
}

// SetShowViewerHotspots sets whether hotspot overlays are drawn in the viewer
func (s *Settings) SetShowViewerHotspots(show bool) {
	s.app.Preferences().SetBool(KeyShowViewerHotspots, show)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
