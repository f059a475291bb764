package model

// Package model defines domain data structures used across the app: image
// entries discovered by the catalog, tag sets, per-entry status, and the
// predefined tag vocabulary grouped for display.
