package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// atomic file replacement, and opening images in external applications.
