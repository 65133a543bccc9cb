package nav

// Package nav implements the navigation state machine: the current scene and
// the back-history stack. It knows scene names only; scene records live in
// the project store.
