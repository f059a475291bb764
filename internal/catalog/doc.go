package catalog

// Package catalog discovers image files below a root directory and exposes
// them as a lazy sequence of entries identified by their relative path.
