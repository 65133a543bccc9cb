package project

// Package project implements the project store: the scene graph keyed by
// scene name with an explicit insertion order, plus the JSON codec for the
// persisted project document. The codec preserves scene order across save
// and load so "first scene" stays deterministic everywhere.
