package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	SessionWindowWidth  float32 = 1200
	SessionWindowHeight float32 = 800

	ChooserWindowWidth  float32 = 360
	ChooserWindowHeight float32 = 220
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 400

	FileDialogWidth  float32 = 700
	FileDialogHeight float32 = 500
)

// Zoom behavior: wheel step factors and absolute scale clamps
const (
	ZoomInFactor  = 1.25
	ZoomOutFactor = 0.8

	ZoomMinScale = 0.05
	ZoomMaxScale = 20.0
)

// MinDraftSpan is the rubber-band size floor in image pixels. Drafts narrower
// than this on either axis are discarded as accidental clicks.
const MinDraftSpan float64 = 3

// Placeholder canvas size for scenes whose background cannot be decoded.
// Hotspots keep their stored coordinates, so the placeholder only needs a
// stable surface to stay clickable.
const (
	PlaceholderWidth  float64 = 800
	PlaceholderHeight float64 = 600
)

// Layout sizing (scene canvas / hotspot list)
const (
	SceneViewMinWidth  float32 = 400
	SceneViewMinHeight float32 = 300

	SidePanelWidth float32 = 280

	CoordsLabelWidth float32 = 150
	RowMinWidth      float32 = 240
	RowMinHeight     float32 = 40
)

// Overlay stroke widths
const (
	HotspotStrokeWidth float32 = 3
	DraftStrokeWidth   float32 = 2
)

// Text sizing
const (
	PlaceholderTextSize float32 = 14
)

// Project files
const (
	DefaultProjectFileName = "project.json"
)

// ProjectExtensions lists the file extensions offered by project open and
// save dialogs.
var ProjectExtensions = []string{".json"}

// Overlay and canvas colors
var (
	HotspotStrokeColor = color.NRGBA{R: 255, A: 255}
	HotspotFillEditor  = color.NRGBA{R: 255, A: 100}
	HotspotFillViewer  = color.NRGBA{R: 255, A: 80}

	DraftStrokeColor = color.NRGBA{B: 255, A: 255}
	DraftFillColor   = color.NRGBA{B: 255, A: 40}

	CanvasBackdropColor    = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	PlaceholderFillColor   = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	PlaceholderStrokeColor = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	PlaceholderTextColor   = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
)
