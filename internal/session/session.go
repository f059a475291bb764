package session

import (
	"fmt"
	"log"
	"slices"

	"github.com/ytget/gallery-tagger/internal/catalog"
	"github.com/ytget/gallery-tagger/internal/model"
	"github.com/ytget/gallery-tagger/internal/tagstore"
)

// Session is a cursor over catalog entries bound to a tag store
type Session struct {
	store   *tagstore.Store
	groups  model.TagGroups
	entries []model.ImageEntry
	index   int
	skipped map[string]bool
	keep    map[string]bool
}

// New creates a session over entries, positioned on the first entry
func New(store *tagstore.Store, groups model.TagGroups, entries []model.ImageEntry) *Session {
	return &Session{
		store:   store,
		groups:  groups,
		entries: slices.Clone(entries),
		skipped: make(map[string]bool),
		keep:    make(map[string]bool),
	}
}

// Open lists the catalog and creates a session over its entries
func Open(store *tagstore.Store, groups model.TagGroups, cat *catalog.Catalog) (*Session, error) {
	entries, err := cat.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	log.Printf("session opened: %d images under %s, %d already tagged", len(entries), cat.Root(), store.Len())
	return New(store, groups, entries), nil
}

// Store returns the tag store the session writes to
func (s *Session) Store() *tagstore.Store {
	return s.store
}

// Groups returns the tag vocabulary
func (s *Session) Groups() model.TagGroups {
	return s.groups
}

// Entries returns the entries in navigation order
func (s *Session) Entries() []model.ImageEntry {
	return slices.Clone(s.entries)
}

// Len returns the number of entries
func (s *Session) Len() int {
	return len(s.entries)
}

// Index returns the position of the current entry; equals Len when done
func (s *Session) Index() int {
	return s.index
}

// Done reports whether the cursor moved past the last entry
func (s *Session) Done() bool {
	return s.index >= len(s.entries)
}

// Current returns the entry under the cursor
func (s *Session) Current() (model.ImageEntry, bool) {
	if s.Done() {
		return model.ImageEntry{}, false
	}
	return s.entries[s.index], true
}

// CurrentTags returns the stored tags of the current entry
func (s *Session) CurrentTags() model.TagSet {
	entry, ok := s.Current()
	if !ok {
		return model.NewTagSet()
	}
	return s.store.Tags(entry.ID)
}

// Next advances the cursor. It returns false once the end is reached.
func (s *Session) Next() bool {
	if s.Done() {
		return false
	}
	s.index++
	return !s.Done()
}

// Previous moves the cursor back. It returns false on the first entry.
func (s *Session) Previous() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Seek moves the cursor to the entry with the given identifier
func (s *Session) Seek(id string) bool {
	i := slices.IndexFunc(s.entries, func(e model.ImageEntry) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	s.index = i
	return true
}

// SeekPending moves the cursor to the first entry that has no stored tags
func (s *Session) SeekPending() bool {
	for i, entry := range s.entries {
		if !s.store.Has(entry.ID) {
			s.index = i
			return true
		}
	}
	s.index = len(s.entries)
	return false
}

// Skip leaves the current entry untouched and advances
func (s *Session) Skip() bool {
	if entry, ok := s.Current(); ok && !s.store.Has(entry.ID) {
		s.skipped[entry.ID] = true
	}
	return s.Next()
}

// Commit stores tags for the current entry and advances. On error the
// cursor and the store are left unchanged.
func (s *Session) Commit(tags model.TagSet) (bool, error) {
	entry, ok := s.Current()
	if !ok {
		return false, fmt.Errorf("no current image")
	}
	if err := s.store.SetTags(entry.ID, tags); err != nil {
		return false, err
	}
	delete(s.skipped, entry.ID)
	log.Printf("tagged %s: [%s]", entry.ID, tags)
	return s.Next(), nil
}

// Status returns the tagging state of id
func (s *Session) Status(id string) model.EntryStatus {
	switch {
	case s.store.Has(id):
		return model.EntryStatusTagged
	case s.skipped[id]:
		return model.EntryStatusSkipped
	default:
		return model.EntryStatusUntagged
	}
}

// Progress returns how many of the session's entries have stored tags
func (s *Session) Progress() (tagged, total int) {
	for _, entry := range s.entries {
		if s.store.Has(entry.ID) {
			tagged++
		}
	}
	return tagged, len(s.entries)
}

// SetKeep marks whether selections in group carry over to the next image
func (s *Session) SetKeep(group string, keep bool) {
	if keep {
		s.keep[group] = true
		return
	}
	delete(s.keep, group)
}

// Keep reports whether selections in group carry over
func (s *Session) Keep(group string) bool {
	return s.keep[group]
}

// KeptGroups returns the names of groups whose selections carry over
func (s *Session) KeptGroups() []string {
	names := make([]string, 0, len(s.keep))
	for name := range s.keep {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Carry returns the subset of selected that stays selected for the next
// image: tags of kept groups only.
func (s *Session) Carry(selected model.TagSet) model.TagSet {
	carried := model.NewTagSet()
	for tag := range selected {
		if s.keep[s.groups.GroupOf(tag)] {
			carried.Add(tag)
		}
	}
	return carried
}
