package session

// Package session wires the project store and the navigator into the two
// window roles: the editor, which grows and persists the scene graph, and
// the viewer, which only loads and navigates. Each session exclusively owns
// its store and navigation state; operations are all-or-nothing, so a failed
// operation leaves both exactly as they were.
