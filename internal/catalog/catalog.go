package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/ytget/gallery-tagger/internal/model"
)

// ErrNotFound is returned when the catalog root does not exist
var ErrNotFound = errors.New("catalog: root directory not found")

// DefaultExtensions lists the raster formats recognized as images
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".webp"}

// Catalog enumerates images below a root directory. It holds no entries
// itself; every call to Entries walks the directory again.
type Catalog struct {
	root    string
	matcher glob.Glob
}

// Scan opens a catalog over root using DefaultExtensions
func Scan(root string) (*Catalog, error) {
	return New(root, DefaultExtensions...)
}

// New opens a catalog over root matching the given file extensions
// (case-insensitive, with or without the leading dot).
func New(root string, extensions ...string) (*Catalog, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, root)
	}

	matcher, err := compileExtensions(extensions)
	if err != nil {
		return nil, err
	}

	return &Catalog{root: absRoot, matcher: matcher}, nil
}

// compileExtensions builds a single brace pattern like "*.{png,jpg}"
func compileExtensions(extensions []string) (glob.Glob, error) {
	if len(extensions) == 0 {
		return nil, fmt.Errorf("catalog: no image extensions configured")
	}

	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		exts = append(exts, glob.QuoteMeta(ext))
	}
	if len(exts) == 0 {
		return nil, fmt.Errorf("catalog: no image extensions configured")
	}

	pattern := "*.{" + strings.Join(exts, ",") + "}"
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid extension pattern '%s': %w", pattern, err)
	}
	return g, nil
}

// Root returns the absolute root directory
func (c *Catalog) Root() string {
	return c.root
}

// IsImage reports whether the file name has a recognized image extension
func (c *Catalog) IsImage(name string) bool {
	return c.matcher.Match(strings.ToLower(name))
}

// Entries returns a lazy sequence of images below the root, recursing into
// subdirectories. Files whose relative path is not a valid identifier are
// skipped like non-images. Iteration stops after the first error is yielded.
// Each call starts a fresh walk.
func (c *Catalog) Entries() iter.Seq2[model.ImageEntry, error] {
	return func(yield func(model.ImageEntry, error) bool) {
		stopped := false
		walkErr := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == c.root && errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("%w: %s", ErrNotFound, c.root)
				}
				return err
			}
			if d.IsDir() || !c.IsImage(d.Name()) {
				return nil
			}

			rel, err := filepath.Rel(c.root, path)
			if err != nil {
				return err
			}
			id := model.NormalizeIdentifier(rel)
			if model.ValidateIdentifier(id) != nil {
				// not storable as a tag file key
				return nil
			}
			entry := model.ImageEntry{ID: id, Path: path}
			if !yield(entry, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if walkErr != nil && !stopped {
			yield(model.ImageEntry{}, walkErr)
		}
	}
}

// List collects all entries sorted by identifier
func (c *Catalog) List() ([]model.ImageEntry, error) {
	var entries []model.ImageEntry
	for entry, err := range c.Entries() {
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b model.ImageEntry) int {
		return strings.Compare(a.ID, b.ID)
	})
	return entries, nil
}

// IDs returns the sorted identifiers of all entries
func (c *Catalog) IDs() ([]string, error) {
	entries, err := c.List()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	return ids, nil
}
