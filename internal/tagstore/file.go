package tagstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ytget/gallery-tagger/internal/platform"
)

// Load reads the tag file at path. A missing file yields an empty store so
// the first run needs no setup.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes the whole store to path, replacing any existing file
// atomically. On failure the previous file stays in place and the store
// remains dirty.
func (s *Store) Save(path string) error {
	data, err := s.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err := platform.WriteFileAtomic(path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	s.dirty = false
	return nil
}
