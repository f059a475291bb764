package session

// Package session walks the images of a catalog in order and applies the
// user's tag choices to a tag store. It holds no UI state; the presentation
// layer drives it through explicit calls.
