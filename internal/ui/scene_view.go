package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/imagenav/imagenav/internal/model"
)

// SceneView renders a scene background with its hotspot overlays and turns
// pointer input into navigation and drawing actions. An editable view
// activates hotspots on double click and supports rubber-band drawing; a
// read-only view activates on single click. Dragging pans unless draw mode
// is armed, and the scroll wheel zooms around the cursor.
type SceneView struct {
	widget.BaseWidget

	scene      *model.Scene
	background image.Image
	imgW, imgH float64

	transform    ViewTransform
	viewW, viewH float64
	userMoved    bool // pan or zoom applied; stop refitting on resize

	editable     bool
	showHotspots bool

	drawMode         bool
	drafting         bool
	draftX1, draftY1 float64 // image coords of the drag start corner
	draftX2, draftY2 float64 // image coords of the moving corner

	// Callbacks
	onActivate func(hotspot model.Hotspot)
	onDraw     func(rect model.Rect)
}

// NewSceneView creates a new scene view widget.
func NewSceneView(editable bool) *SceneView {
	sv := &SceneView{
		editable:     editable,
		showHotspots: true,
	}
	sv.ExtendBaseWidget(sv)
	return sv
}

// SetCallbacks sets the hotspot activation and rubber-band completion callbacks.
func (sv *SceneView) SetCallbacks(onActivate func(hotspot model.Hotspot), onDraw func(rect model.Rect)) {
	sv.onActivate = onActivate
	sv.onDraw = onDraw
}

// SetScene replaces the displayed scene and background. A nil background
// shows the placeholder canvas; hotspots stay clickable on it because hit
// testing only needs the stored coordinates. Re-rendering the same scene
// keeps the current pan and zoom, a scene change refits the view.
func (sv *SceneView) SetScene(scene *model.Scene, background image.Image) {
	sameScene := scene != nil && scene == sv.scene && background == sv.background
	sv.scene = scene
	sv.background = background

	if !sameScene {
		if background != nil {
			bounds := background.Bounds()
			sv.imgW, sv.imgH = float64(bounds.Dx()), float64(bounds.Dy())
		} else {
			sv.imgW, sv.imgH = PlaceholderWidth, PlaceholderHeight
		}
		sv.userMoved = false
		sv.drafting = false
		sv.refit()
	}
	sv.Refresh()
}

// SetShowHotspots toggles overlay rendering. Hidden hotspots remain
// clickable, only their painted face disappears.
func (sv *SceneView) SetShowHotspots(show bool) {
	sv.showHotspots = show
	sv.Refresh()
}

// SetDrawMode toggles rubber-band drawing. Leaving draw mode discards any
// draft in progress.
func (sv *SceneView) SetDrawMode(active bool) {
	sv.drawMode = active
	if !active {
		sv.drafting = false
	}
	sv.Refresh()
}

// DrawMode reports whether rubber-band drawing is armed.
func (sv *SceneView) DrawMode() bool {
	return sv.drawMode
}

// Tapped activates the hotspot under the cursor on a read-only view.
func (sv *SceneView) Tapped(e *fyne.PointEvent) {
	if sv.editable {
		return
	}
	sv.activateAt(e.Position)
}

// DoubleTapped activates the hotspot under the cursor on an editable view.
func (sv *SceneView) DoubleTapped(e *fyne.PointEvent) {
	if !sv.editable {
		return
	}
	sv.activateAt(e.Position)
}

// Dragged stretches the draft rectangle while draw mode is armed, and pans
// the view otherwise.
func (sv *SceneView) Dragged(e *fyne.DragEvent) {
	if sv.scene == nil {
		return
	}

	if sv.editable && sv.drawMode {
		if !sv.drafting {
			sv.drafting = true
			startX := float64(e.Position.X - e.Dragged.DX)
			startY := float64(e.Position.Y - e.Dragged.DY)
			sv.draftX1, sv.draftY1 = sv.transform.ToImage(startX, startY)
		}
		sv.draftX2, sv.draftY2 = sv.transform.ToImage(float64(e.Position.X), float64(e.Position.Y))
		sv.Refresh()
		return
	}

	sv.transform = sv.transform.Pan(float64(e.Dragged.DX), float64(e.Dragged.DY))
	sv.userMoved = true
	sv.Refresh()
}

// DragEnd completes the draft rectangle and reports it when it spans enough
// image pixels to be clickable.
func (sv *SceneView) DragEnd() {
	if !sv.drafting {
		return
	}
	sv.drafting = false
	sv.Refresh()

	rect := model.NewRect(sv.draftX1, sv.draftY1, sv.draftX2, sv.draftY2)
	if rect.W < MinDraftSpan || rect.H < MinDraftSpan {
		return
	}
	if sv.onDraw != nil {
		sv.onDraw(rect)
	}
}

// Scrolled zooms around the cursor position.
func (sv *SceneView) Scrolled(e *fyne.ScrollEvent) {
	if sv.scene == nil {
		return
	}
	factor := ZoomInFactor
	if e.Scrolled.DY < 0 {
		factor = ZoomOutFactor
	}
	sv.transform = sv.transform.ZoomAt(factor, float64(e.Position.X), float64(e.Position.Y))
	sv.userMoved = true
	sv.Refresh()
}

// activateAt hit-tests the click in image space and reports the first
// matching hotspot.
func (sv *SceneView) activateAt(pos fyne.Position) {
	if sv.scene == nil {
		return
	}
	ix, iy := sv.transform.ToImage(float64(pos.X), float64(pos.Y))
	hotspot, ok := sv.scene.HotspotAt(ix, iy)
	if !ok {
		return
	}
	if sv.onActivate != nil {
		sv.onActivate(hotspot)
	}
}

// refit recomputes the fit-to-view transform when both sizes are known.
func (sv *SceneView) refit() {
	if sv.viewW > 0 && sv.viewH > 0 && sv.imgW > 0 && sv.imgH > 0 {
		sv.transform = FitTransform(sv.imgW, sv.imgH, sv.viewW, sv.viewH)
	}
}

// CreateRenderer creates the widget renderer.
func (sv *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return &sceneViewRenderer{view: sv, content: container.NewWithoutLayout()}
}

// sceneViewRenderer renders the scene view widget.
type sceneViewRenderer struct {
	view    *SceneView
	content *fyne.Container
}

// Layout resizes the canvas and refits the transform until the user pans or
// zooms.
func (r *sceneViewRenderer) Layout(size fyne.Size) {
	sv := r.view
	if float64(size.Width) != sv.viewW || float64(size.Height) != sv.viewH {
		sv.viewW, sv.viewH = float64(size.Width), float64(size.Height)
		if !sv.userMoved {
			sv.refit()
		}
	}
	r.content.Resize(size)
	r.rebuild()
}

// MinSize returns the minimum size.
func (r *sceneViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(SceneViewMinWidth, SceneViewMinHeight)
}

// Refresh re-renders background and overlays from the current scene state.
func (r *sceneViewRenderer) Refresh() {
	r.rebuild()
	r.content.Refresh()
}

// Objects returns the container objects.
func (r *sceneViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

// Destroy cleans up the renderer.
func (r *sceneViewRenderer) Destroy() {}

// rebuild reconstructs the canvas objects for the current scene, transform,
// and draft state.
func (r *sceneViewRenderer) rebuild() {
	sv := r.view

	backdrop := canvas.NewRectangle(CanvasBackdropColor)
	backdrop.Move(fyne.NewPos(0, 0))
	backdrop.Resize(fyne.NewSize(float32(sv.viewW), float32(sv.viewH)))

	objects := []fyne.CanvasObject{backdrop}

	if sv.scene == nil {
		r.content.Objects = objects
		return
	}

	x, y := sv.transform.ToView(0, 0)
	w := sv.imgW * sv.transform.Scale
	h := sv.imgH * sv.transform.Scale

	if sv.background != nil {
		img := canvas.NewImageFromImage(sv.background)
		img.FillMode = canvas.ImageFillStretch
		img.Move(fyne.NewPos(float32(x), float32(y)))
		img.Resize(fyne.NewSize(float32(w), float32(h)))
		objects = append(objects, img)
	} else {
		placeholder := canvas.NewRectangle(PlaceholderFillColor)
		placeholder.StrokeColor = PlaceholderStrokeColor
		placeholder.StrokeWidth = 1
		placeholder.Move(fyne.NewPos(float32(x), float32(y)))
		placeholder.Resize(fyne.NewSize(float32(w), float32(h)))
		objects = append(objects, placeholder)

		label := canvas.NewText(sv.scene.Background, PlaceholderTextColor)
		label.TextSize = PlaceholderTextSize
		labelSize := label.MinSize()
		label.Move(fyne.NewPos(
			float32(x)+(float32(w)-labelSize.Width)/2,
			float32(y)+(float32(h)-labelSize.Height)/2,
		))
		objects = append(objects, label)
	}

	if sv.showHotspots {
		fill := HotspotFillViewer
		if sv.editable {
			fill = HotspotFillEditor
		}
		for _, hotspot := range sv.scene.Buttons {
			rx, ry, rw, rh := sv.transform.RectToView(hotspot.Coords)
			if rw <= 0 || rh <= 0 {
				continue // degenerate spans stay in the data but have no visible face
			}
			rect := canvas.NewRectangle(fill)
			rect.StrokeColor = HotspotStrokeColor
			rect.StrokeWidth = HotspotStrokeWidth
			rect.Move(fyne.NewPos(float32(rx), float32(ry)))
			rect.Resize(fyne.NewSize(float32(rw), float32(rh)))
			objects = append(objects, rect)
		}
	}

	if sv.drafting {
		draft := model.NewRect(sv.draftX1, sv.draftY1, sv.draftX2, sv.draftY2)
		dx, dy, dw, dh := sv.transform.RectToView(draft)
		rect := canvas.NewRectangle(DraftFillColor)
		rect.StrokeColor = DraftStrokeColor
		rect.StrokeWidth = DraftStrokeWidth
		rect.Move(fyne.NewPos(float32(dx), float32(dy)))
		rect.Resize(fyne.NewSize(float32(dw), float32(dh)))
		objects = append(objects, rect)
	}

	r.content.Objects = objects
}
