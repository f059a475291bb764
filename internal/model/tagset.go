package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// ErrInvalidTag is returned for tag values that cannot be stored
var ErrInvalidTag = errors.New("model: invalid tag")

// TagSet is an unordered set of tag strings. The zero value is an empty set
// ready for reads; use NewTagSet or Add to build one.
type TagSet map[string]struct{}

// NewTagSet creates a set from the given tags, dropping duplicates
func NewTagSet(tags ...string) TagSet {
	ts := make(TagSet, len(tags))
	for _, tag := range tags {
		ts[tag] = struct{}{}
	}
	return ts
}

// ValidateTag rejects empty and whitespace-only tags and tags that are not
// valid UTF-8, which JSON cannot carry unchanged
func ValidateTag(tag string) error {
	switch {
	case strings.TrimSpace(tag) == "":
		return fmt.Errorf("%w: tag must not be empty", ErrInvalidTag)
	case !utf8.ValidString(tag):
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidTag, tag)
	}
	return nil
}

// Validate checks every tag in the set
func (ts TagSet) Validate() error {
	for tag := range ts {
		if err := ValidateTag(tag); err != nil {
			return err
		}
	}
	return nil
}

// Add inserts tag into the set
func (ts TagSet) Add(tag string) {
	ts[tag] = struct{}{}
}

// Remove deletes tag from the set if present
func (ts TagSet) Remove(tag string) {
	delete(ts, tag)
}

// Has reports whether tag is in the set
func (ts TagSet) Has(tag string) bool {
	_, ok := ts[tag]
	return ok
}

// Len returns the number of tags
func (ts TagSet) Len() int {
	return len(ts)
}

// Sorted returns the tags in lexical order. The result is never nil so it
// encodes as an empty JSON array.
func (ts TagSet) Sorted() []string {
	out := make([]string, 0, len(ts))
	for tag := range ts {
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}

// Equal reports whether both sets contain the same tags
func (ts TagSet) Equal(other TagSet) bool {
	if len(ts) != len(other) {
		return false
	}
	for tag := range ts {
		if !other.Has(tag) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set
func (ts TagSet) Clone() TagSet {
	out := make(TagSet, len(ts))
	maps.Copy(out, ts)
	return out
}

// Union returns a new set containing tags from both sets
func (ts TagSet) Union(other TagSet) TagSet {
	out := ts.Clone()
	maps.Copy(out, other)
	return out
}

// String returns the sorted tags joined by ", "
func (ts TagSet) String() string {
	return strings.Join(ts.Sorted(), ", ")
}

// ParseTagList splits free text on commas and semicolons into a tag set,
// trimming whitespace and ignoring empty items.
func ParseTagList(input string) TagSet {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	ts := make(TagSet, len(fields))
	for _, field := range fields {
		if tag := strings.TrimSpace(field); tag != "" {
			ts.Add(tag)
		}
	}
	return ts
}
