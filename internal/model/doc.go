package model

// Package model defines domain data structures used across the app: scenes,
// hotspots, and the rectangle geometry they share. Structures are designed
// for direct binding in the UI and for JSON persistence in project files.
