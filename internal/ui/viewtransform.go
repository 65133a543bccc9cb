package ui

import (
	"math"

	"github.com/imagenav/imagenav/internal/model"
)

// ViewTransform maps between image coordinates, the space hotspot rectangles
// are stored in, and view coordinates, the widget-local pixels Fyne reports
// events in. Scale applies first, then the offset. Hit testing always runs in
// image space, so the zoom level never changes what a click means.
type ViewTransform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitTransform returns the transform that scales an imgW x imgH image to fit
// a viewW x viewH viewport, centered. Small images are scaled up as well as
// large ones down.
func FitTransform(imgW, imgH, viewW, viewH float64) ViewTransform {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return ViewTransform{Scale: 1}
	}
	scale := math.Min(viewW/imgW, viewH/imgH)
	return ViewTransform{
		Scale:   scale,
		OffsetX: (viewW - imgW*scale) / 2,
		OffsetY: (viewH - imgH*scale) / 2,
	}
}

// ToImage converts a view point to image coordinates. A zero transform maps
// everything to the origin rather than dividing by zero.
func (t ViewTransform) ToImage(vx, vy float64) (float64, float64) {
	if t.Scale == 0 {
		return 0, 0
	}
	return (vx - t.OffsetX) / t.Scale, (vy - t.OffsetY) / t.Scale
}

// ToView converts an image point to view coordinates.
func (t ViewTransform) ToView(ix, iy float64) (float64, float64) {
	return ix*t.Scale + t.OffsetX, iy*t.Scale + t.OffsetY
}

// RectToView converts an image-space rectangle to view-space position and size.
func (t ViewTransform) RectToView(r model.Rect) (x, y, w, h float64) {
	x, y = t.ToView(r.X, r.Y)
	return x, y, r.W * t.Scale, r.H * t.Scale
}

// ZoomAt scales the transform by factor while keeping the image point under
// the view point (vx, vy) stationary. When the resulting scale would leave
// [ZoomMinScale, ZoomMaxScale] the transform is returned unchanged.
func (t ViewTransform) ZoomAt(factor, vx, vy float64) ViewTransform {
	scale := t.Scale * factor
	if scale < ZoomMinScale || scale > ZoomMaxScale {
		return t
	}
	ix, iy := t.ToImage(vx, vy)
	return ViewTransform{
		Scale:   scale,
		OffsetX: vx - ix*scale,
		OffsetY: vy - iy*scale,
	}
}

// Pan shifts the view by a delta in view coordinates.
func (t ViewTransform) Pan(dx, dy float64) ViewTransform {
	t.OffsetX += dx
	t.OffsetY += dy
	return t
}
