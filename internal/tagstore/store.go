package tagstore

import (
	"fmt"
	"slices"

	"github.com/ytget/gallery-tagger/internal/model"
)

// Store maps image identifiers to tag sets. It is owned by a single session
// and is not safe for concurrent use.
type Store struct {
	entries map[string]model.TagSet
	dirty   bool
}

// New creates an empty store
func New() *Store {
	return &Store{entries: make(map[string]model.TagSet)}
}

// Tags returns a copy of the tags for id, or an empty set when id has no entry
func (s *Store) Tags(id string) model.TagSet {
	tags, ok := s.entries[id]
	if !ok {
		return model.NewTagSet()
	}
	return tags.Clone()
}

// Has reports whether id has an entry, even an empty one
func (s *Store) Has(id string) bool {
	_, ok := s.entries[id]
	return ok
}

// SetTags replaces the tags for id. Empty or blank tags and malformed
// identifiers are rejected with ErrValidation and leave the store unchanged.
func (s *Store) SetTags(id string, tags model.TagSet) error {
	if err := validate(id, tags); err != nil {
		return err
	}

	if current, ok := s.entries[id]; ok && current.Equal(tags) {
		return nil
	}
	s.entries[id] = tags.Clone()
	s.dirty = true
	return nil
}

// AddTag adds a single tag to id, creating the entry if needed
func (s *Store) AddTag(id, tag string) error {
	if err := validate(id, model.NewTagSet(tag)); err != nil {
		return err
	}

	tags, ok := s.entries[id]
	if ok && tags.Has(tag) {
		return nil
	}
	if !ok {
		tags = model.NewTagSet()
		s.entries[id] = tags
	}
	tags.Add(tag)
	s.dirty = true
	return nil
}

// RemoveTag removes a single tag from id. The entry itself is kept.
func (s *Store) RemoveTag(id, tag string) {
	tags, ok := s.entries[id]
	if !ok || !tags.Has(tag) {
		return
	}
	tags.Remove(tag)
	s.dirty = true
}

// Delete drops the entry for id entirely
func (s *Store) Delete(id string) {
	if _, ok := s.entries[id]; !ok {
		return
	}
	delete(s.entries, id)
	s.dirty = true
}

// IDs returns all identifiers in lexical order
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// Dirty reports whether the store changed since it was loaded or last saved.
// The flag is advisory; the store never saves on its own.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Equal reports whether both stores hold the same identifiers and tag sets
func (s *Store) Equal(other *Store) bool {
	if s.Len() != other.Len() {
		return false
	}
	for id, tags := range s.entries {
		otherTags, ok := other.entries[id]
		if !ok || !tags.Equal(otherTags) {
			return false
		}
	}
	return true
}

func validate(id string, tags model.TagSet) error {
	if err := model.ValidateIdentifier(id); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := tags.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrValidation, id, err)
	}
	return nil
}
