package gallery

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/ytget/gallery-tagger/internal/model"
	"github.com/ytget/gallery-tagger/internal/platform"
	"github.com/ytget/gallery-tagger/internal/tagstore"
)

// Defaults for exported entries
const (
	DefaultModuleID = "token-sammlung"
	DefaultSource   = "Token Sammlung"
	DefaultScale    = 1
	MinScale        = 1
	MaxScale        = 10
)

// ErrInvalidModuleID is returned for module IDs other than lowercase letters and hyphens
var ErrInvalidModuleID = errors.New("gallery: module id may only contain lowercase letters and hyphens")

var moduleIDPattern = regexp.MustCompile(`^[a-z-]+$`)

// Art holds the Foundry paths of the images shown for an entry
type Art struct {
	Portrait string `json:"portrait"`
	Thumb    string `json:"thumb"`
	Token    string `json:"token"`
	Subject  string `json:"subject"`
	Scale    int    `json:"scale"`
}

// Entry is one datasheet record
type Entry struct {
	Label  string              `json:"label"`
	Key    string              `json:"key"`
	Source string              `json:"source"`
	Art    Art                 `json:"art"`
	Tags   map[string][]string `json:"tags"`
}

// Options control how store entries map to datasheet records
type Options struct {
	ModuleID   string // Foundry module the images ship in
	PathPrefix string // directory of the image root inside the module
	Source     string
	Scale      int
	Details    DetailsSet // per-image overrides, may be nil
}

// withDefaults fills unset options
func (o Options) withDefaults() Options {
	if o.ModuleID == "" {
		o.ModuleID = DefaultModuleID
	}
	if o.Source == "" {
		o.Source = DefaultSource
	}
	o.Scale = ClampScale(o.Scale)
	return o
}

// ClampScale limits scale to MinScale..MaxScale, mapping unset values to DefaultScale
func ClampScale(scale int) int {
	switch {
	case scale == 0:
		return DefaultScale
	case scale < MinScale:
		return MinScale
	case scale > MaxScale:
		return MaxScale
	}
	return scale
}

// ValidateModuleID checks id against the Foundry module naming rule
func ValidateModuleID(id string) error {
	if !moduleIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidModuleID, id)
	}
	return nil
}

// SuggestLabel derives a display label from an image identifier
func SuggestLabel(id string) string {
	base := path.Base(id)
	base = strings.TrimSuffix(base, path.Ext(base))
	return strings.NewReplacer("_", " ", "-", " ").Replace(base)
}

// KeyFromLabel derives the datasheet key from a label
func KeyFromLabel(label string) string {
	return strings.ReplaceAll(strings.TrimSpace(label), " ", "-")
}

// FoundryPath returns the module-relative URL of an image
func FoundryPath(moduleID, prefix, id string) string {
	return "/" + path.Join("modules", moduleID, prefix, id)
}

// NewEntry builds a record for a single image, applying its details if any
func NewEntry(id string, tags model.TagSet, groups model.TagGroups, opts Options) Entry {
	opts = opts.withDefaults()
	details := opts.Details.Get(id)

	label := details.Label
	if label == "" {
		label = SuggestLabel(id)
	}
	scale := opts.Scale
	if details.Scale != 0 {
		scale = ClampScale(details.Scale)
	}
	art := FoundryPath(opts.ModuleID, opts.PathPrefix, id)
	token := art
	if details.Token != "" {
		token = FoundryPath(opts.ModuleID, opts.PathPrefix, details.Token)
	}

	return Entry{
		Label:  label,
		Key:    KeyFromLabel(label),
		Source: opts.Source,
		Art: Art{
			Portrait: art,
			Thumb:    art,
			Token:    token,
			Subject:  token,
			Scale:    scale,
		},
		Tags: groups.Partition(tags),
	}
}

// Build converts every store entry into a record, ordered by identifier
func Build(store *tagstore.Store, groups model.TagGroups, opts Options) ([]Entry, error) {
	opts = opts.withDefaults()
	if err := ValidateModuleID(opts.ModuleID); err != nil {
		return nil, err
	}

	ids := store.IDs()
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, NewEntry(id, store.Tags(id), groups, opts))
	}
	return entries, nil
}

// WriteDatasheet writes entries as an indented JSON array, replacing path atomically
func WriteDatasheet(filePath string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode datasheet: %w", err)
	}
	data = append(data, '\n')

	if err := platform.WriteFileAtomic(filePath, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write datasheet: %w", err)
	}
	return nil
}

// Export builds the datasheet for store and writes it to filePath
func Export(filePath string, store *tagstore.Store, groups model.TagGroups, opts Options) (int, error) {
	entries, err := Build(store, groups, opts)
	if err != nil {
		return 0, err
	}
	if err := WriteDatasheet(filePath, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}
