package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestProjectDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test setting custom value
	customDir := "/custom/projects"
	settings.SetProjectDirectory(customDir)

	retrievedDir := settings.GetProjectDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected project directory %s, got %s", customDir, retrievedDir)
	}
}

func TestImageDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	customDir := "/custom/images"
	settings.SetImageDirectory(customDir)

	retrievedDir := settings.GetImageDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected image directory %s, got %s", customDir, retrievedDir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestShowViewerHotspots(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if !settings.GetShowViewerHotspots() {
		t.Error("Expected viewer hotspots to be shown by default")
	}

	// Test setting custom value
	settings.SetShowViewerHotspots(false)
	if settings.GetShowViewerHotspots() {
		t.Error("Expected viewer hotspots to be hidden after disabling")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
