package model

// Hotspot is a clickable rectangular region on a scene. Activating it
// navigates to the target scene.
type Hotspot struct {
	ID     string `json:"-"` // runtime identity for UI bookkeeping, never persisted
	Coords Rect   `json:"coords"`
	Target string `json:"target"`
}

// Scene is a single still image with hotspots laid over it. Name is the
// scene's key in the project and is kept outside the persisted record.
type Scene struct {
	Name       string    `json:"-"`
	Background string    `json:"background"`
	Buttons    []Hotspot `json:"buttons"`
}

// NewScene returns a scene with the given name and background image path
// and an empty hotspot list.
func NewScene(name, background string) *Scene {
	return &Scene{
		Name:       name,
		Background: background,
		Buttons:    []Hotspot{},
	}
}

// HotspotAt returns the first hotspot containing the point (x, y) in
// background image coordinates. Hotspots are checked in creation order, so
// when regions overlap the earliest one wins. The second result is false
// when no hotspot contains the point.
func (s *Scene) HotspotAt(x, y float64) (Hotspot, bool) {
	for _, h := range s.Buttons {
		if h.Coords.Contains(x, y) {
			return h, true
		}
	}
	return Hotspot{}, false
}
