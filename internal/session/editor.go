package session

import (
	"errors"
	"io"
	"log"

	"github.com/imagenav/imagenav/internal/model"
	"github.com/imagenav/imagenav/internal/nav"
	"github.com/imagenav/imagenav/internal/project"
)

// ErrNoActiveScene is returned when an operation needs a current scene and
// no scene has been entered yet.
var ErrNoActiveScene = errors.New("no active scene")

// Editor is the authoring session: a project store plus a navigator, with
// the mutation operations used by the editor window.
type Editor struct {
	store     *project.Store
	navigator *nav.Navigator
	onChange  func() // callback for UI updates
}

// NewEditor creates an editor session over an empty project.
func NewEditor() *Editor {
	e := &Editor{}
	e.install(project.NewStore())
	return e
}

// SetChangeCallback sets the callback invoked after every successful
// operation that changes the project or the current scene.
func (e *Editor) SetChangeCallback(callback func()) {
	e.onChange = callback
}

// OpenOrLoadScene ensures the named scene exists and enters it when no scene
// is current yet. When a scene is already current the navigator is left
// untouched: the author may load a background for a future hotspot target
// without navigating away from the scene being edited.
func (e *Editor) OpenOrLoadScene(name, background string) (*model.Scene, error) {
	s, err := e.store.EnsureScene(name, background)
	if err != nil {
		return nil, err
	}
	if _, ok := e.navigator.Current(); !ok {
		e.navigator.Reset(name)
	}
	log.Printf("Editor: scene %q ready (background %s)", name, background)
	e.notifyChange()
	return s, nil
}

// BeginHotspotDraw checks that hotspot drawing can start. It fails with
// ErrNoActiveScene while no scene is current.
func (e *Editor) BeginHotspotDraw() error {
	if _, ok := e.navigator.Current(); !ok {
		return ErrNoActiveScene
	}
	return nil
}

// CommitHotspot ensures the target scene exists, creating a stub with the
// given background when it is new, and appends a hotspot with the normalized
// rectangle to the current scene. This is the single operation that grows
// the scene graph: every edge is created together with its endpoint scene.
func (e *Editor) CommitHotspot(rect model.Rect, targetName, targetBackground string) (model.Hotspot, error) {
	current, ok := e.navigator.Current()
	if !ok {
		return model.Hotspot{}, ErrNoActiveScene
	}
	if _, err := e.store.EnsureScene(targetName, targetBackground); err != nil {
		return model.Hotspot{}, err
	}

	h, err := e.store.AddHotspot(current, model.Hotspot{
		Coords: rect.Normalized(),
		Target: targetName,
	})
	if err != nil {
		return model.Hotspot{}, err
	}
	log.Printf("Editor: hotspot %s on %q -> %q (%s)", h.ID, current, targetName, h.Coords)
	e.notifyChange()
	return h, nil
}

// ActivateHotspot navigates to the hotspot's target scene. A missing target
// surfaces as nav.ErrSceneNotFound; it cannot happen for hotspots committed
// in this session, only for hand-edited project files.
func (e *Editor) ActivateHotspot(h model.Hotspot) error {
	return e.goTo(h.Target)
}

// GoToScene navigates to the named scene, pushing the current scene onto
// history like any forward step. The editor's scene list uses it.
func (e *Editor) GoToScene(name string) error {
	return e.goTo(name)
}

// GoBack pops one history entry and returns the scene it lands on.
// nav.ErrNoHistory is benign: the window shows a notice, nothing changes.
func (e *Editor) GoBack() (string, error) {
	name, err := e.navigator.Back()
	if err != nil {
		return "", err
	}
	e.notifyChange()
	return name, nil
}

// Save writes the project document to w.
func (e *Editor) Save(w io.Writer) error {
	if err := e.store.Encode(w); err != nil {
		return err
	}
	log.Printf("Editor: project saved (%d scenes)", e.store.Len())
	return nil
}

// Load replaces the project with the document read from r and enters the
// document's first scene with a clean history. On a decode error the prior
// project and navigation state are retained unchanged.
func (e *Editor) Load(r io.Reader) error {
	st, err := project.Decode(r)
	if err != nil {
		return err
	}
	e.install(st)
	e.navigator.Reset(st.First())
	log.Printf("Editor: project loaded (%d scenes), current %q", st.Len(), st.First())
	e.notifyChange()
	return nil
}

// CurrentName returns the current scene name, or "" while unset.
func (e *Editor) CurrentName() string {
	name, _ := e.navigator.Current()
	return name
}

// CurrentScene returns the current scene record.
func (e *Editor) CurrentScene() (*model.Scene, bool) {
	name, ok := e.navigator.Current()
	if !ok {
		return nil, false
	}
	return e.store.Scene(name)
}

// Scene returns the named scene record.
func (e *Editor) Scene(name string) (*model.Scene, bool) {
	return e.store.Scene(name)
}

// SceneNames returns all scene names in project order.
func (e *Editor) SceneNames() []string {
	return e.store.Names()
}

// SceneCount returns the number of scenes in the project.
func (e *Editor) SceneCount() int {
	return e.store.Len()
}

// CanGoBack reports whether back-navigation is possible.
func (e *Editor) CanGoBack() bool {
	return e.navigator.CanGoBack()
}

// History returns the visited scene names, most recent last.
func (e *Editor) History() []string {
	return e.navigator.History()
}

func (e *Editor) goTo(name string) error {
	if err := e.navigator.GoTo(name); err != nil {
		return err
	}
	e.notifyChange()
	return nil
}

// install replaces the store and points the navigator at it.
func (e *Editor) install(st *project.Store) {
	e.store = st
	if e.navigator == nil {
		e.navigator = nav.New(st)
	} else {
		e.navigator.SetLookup(st)
	}
}

func (e *Editor) notifyChange() {
	if e.onChange != nil {
		e.onChange()
	}
}
