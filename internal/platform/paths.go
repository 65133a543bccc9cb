package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// SceneNameFromPath derives a scene name from an image path: the base file
// name without its extension, so "shots/hall.png" names the scene "hall".
func SceneNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DefaultBrowseDir returns the user's home directory, the starting point for
// open dialogs before any directory has been remembered.
func DefaultBrowseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
