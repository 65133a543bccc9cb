package project

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imagenav/imagenav/internal/model"
)

// HotspotIDPrefix prefixes runtime hotspot IDs assigned by the store.
const HotspotIDPrefix = "hotspot-"

var (
	// ErrUnknownScene is returned when a hotspot is added to a scene that is
	// not present in the store. It indicates a caller defect: the editor only
	// adds hotspots to scenes it has just ensured.
	ErrUnknownScene = errors.New("unknown scene")

	// ErrInvalidSceneName is returned when a scene is created with an empty name.
	ErrInvalidSceneName = errors.New("invalid scene name")

	// ErrEmptyProject is returned when encoding a store that has no scenes.
	ErrEmptyProject = errors.New("project has no scenes")
)

// Store owns the scene graph: scenes keyed by name plus the explicit order
// in which they were added. A single session owns the store exclusively, so
// no locking is involved.
type Store struct {
	scenes map[string]*model.Scene
	order  []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		scenes: make(map[string]*model.Scene),
	}
}

// EnsureScene returns the scene with the given name, inserting a new scene
// with the given background and an empty hotspot list when the name is not
// present. An existing scene is returned unchanged and its background is
// never overwritten, so revisiting an image keeps its hotspots.
func (st *Store) EnsureScene(name, background string) (*model.Scene, error) {
	if name == "" {
		return nil, ErrInvalidSceneName
	}
	if s, ok := st.scenes[name]; ok {
		return s, nil
	}

	s := model.NewScene(name, background)
	st.scenes[name] = s
	st.order = append(st.order, name)
	return s, nil
}

// AddHotspot appends the hotspot to the named scene, assigning a runtime ID
// when the hotspot has none, and returns the stored value.
func (st *Store) AddHotspot(sceneName string, h model.Hotspot) (model.Hotspot, error) {
	s, ok := st.scenes[sceneName]
	if !ok {
		return model.Hotspot{}, fmt.Errorf("%w: %q", ErrUnknownScene, sceneName)
	}

	if h.ID == "" {
		h.ID = generateHotspotID()
	}
	s.Buttons = append(s.Buttons, h)
	return h, nil
}

// Scene returns the scene with the given name.
func (st *Store) Scene(name string) (*model.Scene, bool) {
	s, ok := st.scenes[name]
	return s, ok
}

// Has reports whether a scene with the given name exists.
func (st *Store) Has(name string) bool {
	_, ok := st.scenes[name]
	return ok
}

// First returns the name of the earliest added scene, or "" for an empty store.
func (st *Store) First() string {
	if len(st.order) == 0 {
		return ""
	}
	return st.order[0]
}

// Names returns the scene names in insertion order.
func (st *Store) Names() []string {
	names := make([]string, len(st.order))
	copy(names, st.order)
	return names
}

// Len returns the number of scenes in the store.
func (st *Store) Len() int {
	return len(st.order)
}

// generateHotspotID generates a unique hotspot ID using UUID v7 for better uniqueness and time ordering
func generateHotspotID() string {
	// Use UUID v7 which includes timestamp and is naturally ordered
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(HotspotIDPrefix+"%d", time.Now().UnixNano())
	}
	return HotspotIDPrefix + id.String()
}
