package model

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrInvalidIdentifier is returned when an image identifier is not a clean
// relative forward-slash path.
var ErrInvalidIdentifier = errors.New("model: invalid image identifier")

// ImageEntry is an image file discovered under the catalog root.
// Entries are values and are not modified after discovery.
type ImageEntry struct {
	ID   string // path relative to the catalog root, forward slashes
	Path string // absolute path on disk
}

// Name returns the file name of the entry without directories
func (e ImageEntry) Name() string {
	return path.Base(e.ID)
}

// Dir returns the directory part of the identifier, "." for top-level images
func (e ImageEntry) Dir() string {
	return path.Dir(e.ID)
}

// NormalizeIdentifier converts an OS-specific relative path into an identifier
func NormalizeIdentifier(rel string) string {
	return filepath.ToSlash(filepath.Clean(rel))
}

// ValidateIdentifier checks that id is a non-empty, clean, relative
// forward-slash path that does not escape its root and is valid UTF-8.
func ValidateIdentifier(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	case !utf8.ValidString(id):
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidIdentifier, id)
	case strings.Contains(id, "\\"):
		return fmt.Errorf("%w: %q uses backslash separators", ErrInvalidIdentifier, id)
	case path.IsAbs(id) || filepath.IsAbs(id):
		return fmt.Errorf("%w: %q is absolute", ErrInvalidIdentifier, id)
	case path.Clean(id) != id || id == ".":
		return fmt.Errorf("%w: %q is not a clean path", ErrInvalidIdentifier, id)
	case id == ".." || strings.HasPrefix(id, "../"):
		return fmt.Errorf("%w: %q escapes the image root", ErrInvalidIdentifier, id)
	}
	return nil
}
