package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/imagenav/imagenav/internal/model"
)

// HotspotRow represents a compact hotspot row widget for the editor's button
// list: the target scene, the stored rectangle, and a jump action.
type HotspotRow struct {
	widget.BaseWidget

	hotspot      model.Hotspot
	localization *Localization

	// UI components
	targetLabel *widget.Label
	coordsLabel *widget.Label

	// Action buttons
	goBtn *widget.Button

	// Callbacks
	onGo func(hotspot model.Hotspot)
}

// NewHotspotRow creates a new hotspot row widget
func NewHotspotRow(localization *Localization) *HotspotRow {
	hr := &HotspotRow{
		localization: localization,
	}
	hr.ExtendBaseWidget(hr)
	hr.createUI()
	return hr
}

// SetCallbacks sets the action callbacks
func (hr *HotspotRow) SetCallbacks(onGo func(hotspot model.Hotspot)) {
	hr.onGo = onGo
}

// UpdateHotspot updates the row with new hotspot data
func (hr *HotspotRow) UpdateHotspot(hotspot model.Hotspot) {
	hr.hotspot = hotspot
	hr.targetLabel.SetText(hotspot.Target)
	hr.coordsLabel.SetText(hotspot.Coords.String())
	hr.goBtn.SetText(hr.localization.GetText(KeyGo))
	hr.Refresh()
}

// createUI creates the row components
func (hr *HotspotRow) createUI() {
	hr.targetLabel = widget.NewLabel("")
	hr.targetLabel.TextStyle = fyne.TextStyle{Bold: true}
	hr.targetLabel.Truncation = fyne.TextTruncateEllipsis

	hr.coordsLabel = widget.NewLabel("")

	hr.goBtn = widget.NewButton(hr.localization.GetText(KeyGo), func() {
		if hr.onGo != nil {
			hr.onGo(hr.hotspot)
		}
	})
	hr.goBtn.Importance = widget.LowImportance
}

// CreateRenderer creates the widget renderer
func (hr *HotspotRow) CreateRenderer() fyne.WidgetRenderer {
	return &hotspotRowRenderer{row: hr}
}

// hotspotRowRenderer renders the hotspot row widget
type hotspotRowRenderer struct {
	row    *HotspotRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *hotspotRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *hotspotRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *hotspotRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *hotspotRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *hotspotRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *hotspotRowRenderer) createLayout() {
	hr := r.row

	// Fix the coords column width with a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Target name grows on the left, coords and the jump button stay pinned
	// to the right edge.
	rightCluster := container.NewHBox(
		fixedWidth(CoordsLabelWidth, hr.coordsLabel),
		hr.goBtn,
	)
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, hr.targetLabel)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
