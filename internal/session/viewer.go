package session

import (
	"io"
	"log"

	"github.com/imagenav/imagenav/internal/model"
	"github.com/imagenav/imagenav/internal/nav"
	"github.com/imagenav/imagenav/internal/project"
)

// Viewer is the playback session: it loads a project and navigates through
// hotspot activation. No mutation operations exist on the type, and no back
// control is surfaced; the viewer walks the graph forward only.
type Viewer struct {
	store     *project.Store
	navigator *nav.Navigator
	onChange  func() // callback for UI updates
}

// NewViewer creates a viewer session with no project loaded.
func NewViewer() *Viewer {
	v := &Viewer{}
	v.install(project.NewStore())
	return v
}

// SetChangeCallback sets the callback invoked after every successful
// operation that changes the current scene.
func (v *Viewer) SetChangeCallback(callback func()) {
	v.onChange = callback
}

// Load replaces the project with the document read from r and enters the
// document's first scene. On a decode error the prior project and navigation
// state are retained unchanged.
func (v *Viewer) Load(r io.Reader) error {
	st, err := project.Decode(r)
	if err != nil {
		return err
	}
	v.install(st)
	v.navigator.Reset(st.First())
	log.Printf("Viewer: project loaded (%d scenes), current %q", st.Len(), st.First())
	v.notifyChange()
	return nil
}

// ActivateHotspot navigates to the hotspot's target scene. A dangling target
// surfaces as nav.ErrSceneNotFound and the current scene stays displayed.
func (v *Viewer) ActivateHotspot(h model.Hotspot) error {
	if err := v.navigator.GoTo(h.Target); err != nil {
		return err
	}
	v.notifyChange()
	return nil
}

// CurrentName returns the current scene name, or "" while no project is loaded.
func (v *Viewer) CurrentName() string {
	name, _ := v.navigator.Current()
	return name
}

// CurrentScene returns the current scene record for rendering.
func (v *Viewer) CurrentScene() (*model.Scene, bool) {
	name, ok := v.navigator.Current()
	if !ok {
		return nil, false
	}
	return v.store.Scene(name)
}

func (v *Viewer) install(st *project.Store) {
	v.store = st
	if v.navigator == nil {
		v.navigator = nav.New(st)
	} else {
		v.navigator.SetLookup(st)
	}
}

func (v *Viewer) notifyChange() {
	if v.onChange != nil {
		v.onChange()
	}
}
