package nav

import (
	"errors"
	"fmt"
)

var (
	// ErrSceneNotFound is returned by GoTo when the target scene is not in
	// the project. The navigator state is unchanged.
	ErrSceneNotFound = errors.New("scene not found")

	// ErrNoHistory is returned by Back when there is nothing to go back to.
	// It is a benign condition, not a fault.
	ErrNoHistory = errors.New("no previous scene")
)

// SceneLookup answers whether a scene name exists. The project store
// satisfies it; sessions swap the lookup when a new project is installed.
type SceneLookup interface {
	Has(name string) bool
}

// LookupFunc adapts a function to the SceneLookup interface.
type LookupFunc func(name string) bool

// Has reports whether the scene exists by calling the wrapped function.
func (f LookupFunc) Has(name string) bool {
	return f(name)
}

// Navigator tracks the current scene and the stack of previously visited
// scene names, most recent last. The zero current value means no scene has
// been entered yet.
type Navigator struct {
	lookup  SceneLookup
	current string
	history []string
}

// New creates a navigator with no current scene and empty history.
func New(lookup SceneLookup) *Navigator {
	return &Navigator{lookup: lookup}
}

// SetLookup replaces the scene lookup. Used when a session installs a newly
// loaded project; callers reset the navigator right after.
func (n *Navigator) SetLookup(lookup SceneLookup) {
	n.lookup = lookup
}

// Current returns the current scene name. The second result is false while
// no scene has been entered.
func (n *Navigator) Current() (string, bool) {
	return n.current, n.current != ""
}

// GoTo moves to the named scene, pushing the previous current scene onto
// history. Navigating to the scene already current is allowed and still
// pushes it, so self-loop hotspots behave like any other forward step.
// ErrSceneNotFound is returned, with state unchanged, when the scene is not
// in the project.
func (n *Navigator) GoTo(name string) error {
	if !n.lookup.Has(name) {
		return fmt.Errorf("%w: %q", ErrSceneNotFound, name)
	}
	if n.current != "" {
		n.history = append(n.history, n.current)
	}
	n.current = name
	return nil
}

// Back pops the most recent history entry and makes it current. Nothing is
// pushed in exchange: back-traversal consumes history, there is no forward
// stack. ErrNoHistory is returned, with state unchanged, when history is
// empty.
func (n *Navigator) Back() (string, error) {
	if len(n.history) == 0 {
		return "", ErrNoHistory
	}
	last := len(n.history) - 1
	n.current = n.history[last]
	n.history = n.history[:last]
	return n.current, nil
}

// Reset clears history and makes the named scene current unconditionally.
// The name is not validated: callers reset right after confirming the scene
// via the project store (fresh scene, or first scene of a loaded project).
func (n *Navigator) Reset(name string) {
	n.current = name
	n.history = n.history[:0]
}

// CanGoBack reports whether Back would succeed.
func (n *Navigator) CanGoBack() bool {
	return len(n.history) > 0
}

// History returns a copy of the visited scene names, most recent last.
func (n *Navigator) History() []string {
	history := make([]string, len(n.history))
	copy(history, n.history)
	return history
}
