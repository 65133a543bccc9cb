package platform

// Package platform contains OS and file-format glue: decoding background
// images from disk, the extension list for open dialogs, and deriving scene
// names from image paths.
