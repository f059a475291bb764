package tagstore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/ytget/gallery-tagger/internal/model"
)

// Output layout; arrays that fit in Width stay on one line
var prettyOptions = &pretty.Options{
	Width:    80,
	Indent:   "  ",
	SortKeys: true,
}

// Parse decodes a tag document. The document must be a JSON object whose keys
// are unique image identifiers and whose values are arrays of non-empty strings.
func Parse(data []byte) (*Store, error) {
	entries, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &Store{entries: entries}, nil
}

// MarshalJSON encodes the store in the persisted layout with sorted keys and tags
func (s *Store) MarshalJSON() ([]byte, error) {
	doc := make(map[string][]string, len(s.entries))
	for id, tags := range s.entries {
		doc[id] = tags.Sorted()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}
	return pretty.PrettyOptions(buf.Bytes(), prettyOptions), nil
}

func decode(data []byte) (map[string]model.TagSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrFormat)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrFormat)
	}

	entries := make(map[string]model.TagSet)
	var decodeErr error
	doc.ForEach(func(key, value gjson.Result) bool {
		decodeErr = decodeEntry(entries, key, value)
		return decodeErr == nil
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	return entries, nil
}

func decodeEntry(entries map[string]model.TagSet, key, value gjson.Result) error {
	if key.Type != gjson.String {
		return fmt.Errorf("%w: non-string key %s", ErrFormat, key.Raw)
	}
	id := key.Str
	if _, dup := entries[id]; dup {
		return fmt.Errorf("%w: duplicate key %q", ErrFormat, id)
	}
	if err := model.ValidateIdentifier(id); err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if !value.IsArray() {
		return fmt.Errorf("%w: value for %q is not an array", ErrFormat, id)
	}

	tags := model.NewTagSet()
	for i, elem := range value.Array() {
		if elem.Type != gjson.String {
			return fmt.Errorf("%w: %q[%d] is not a string", ErrFormat, id, i)
		}
		if err := model.ValidateTag(elem.Str); err != nil {
			return fmt.Errorf("%w: %q[%d]: %w", ErrFormat, id, i, err)
		}
		tags.Add(elem.Str)
	}
	entries[id] = tags
	return nil
}
