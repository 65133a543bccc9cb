package model

import (
	"encoding/json"
	"fmt"
)

// Rect is an axis-aligned rectangle in background image coordinates.
// X and Y locate the top-left corner, W and H extend right and down.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NewRect returns the rectangle spanning the two corner points (x1, y1) and
// (x2, y2) in any order, with non-negative width and height.
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}.Normalized()
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Bounds are half-open: the left and top edges belong to the rectangle,
// the right and bottom edges do not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Normalized returns an equivalent rectangle with non-negative width and
// height, relocating the origin when a span is negative.
func (r Rect) Normalized() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// String returns the rectangle formatted as "x,y wxh" for logs.
func (r Rect) String() string {
	return fmt.Sprintf("%g,%g %gx%g", r.X, r.Y, r.W, r.H)
}

// MarshalJSON encodes the rectangle as the four-element array [x, y, w, h].
func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{r.X, r.Y, r.W, r.H})
}

// UnmarshalJSON decodes a four-element JSON number array into the rectangle.
// Any other arity is an error.
func (r *Rect) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("coords: %w", err)
	}
	if len(coords) != 4 {
		return fmt.Errorf("coords: expected 4 numbers, got %d", len(coords))
	}
	r.X, r.Y, r.W, r.H = coords[0], coords[1], coords[2], coords[3]
	return nil
}
