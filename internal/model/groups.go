package model

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// UngroupedName is the group used for tags that belong to no predefined group
const UngroupedName = "other"

// Default column counts for laying out group checkboxes
const (
	DefaultGroupColumns = 3
	NarrowGroupColumns  = 2
)

// TagGroup is a named list of predefined tags shown together
type TagGroup struct {
	Name    string   `yaml:"name"`
	Columns int      `yaml:"columns,omitempty"`
	Tags    []string `yaml:"tags"`
}

// TagGroups is the ordered tag vocabulary
type TagGroups []TagGroup

type tagGroupsFile struct {
	Groups TagGroups `yaml:"groups"`
}

// Names returns group names in display order
func (tg TagGroups) Names() []string {
	names := make([]string, 0, len(tg))
	for _, g := range tg {
		names = append(names, g.Name)
	}
	return names
}

// Group returns the group with the given name
func (tg TagGroups) Group(name string) (TagGroup, bool) {
	for _, g := range tg {
		if g.Name == name {
			return g, true
		}
	}
	return TagGroup{}, false
}

// GroupOf returns the name of the first group containing tag, or
// UngroupedName when no group lists it.
func (tg TagGroups) GroupOf(tag string) string {
	for _, g := range tg {
		if slices.Contains(g.Tags, tag) {
			return g.Name
		}
	}
	return UngroupedName
}

// Partition splits a tag set by group. Groups without selected tags are omitted.
func (tg TagGroups) Partition(tags TagSet) map[string][]string {
	out := make(map[string][]string)
	for _, tag := range tags.Sorted() {
		group := tg.GroupOf(tag)
		out[group] = append(out[group], tag)
	}
	return out
}

// Validate checks names are unique and non-empty and that tags are valid
func (tg TagGroups) Validate() error {
	seen := make(map[string]bool, len(tg))
	for i, g := range tg {
		if g.Name == "" {
			return fmt.Errorf("tag group %d has no name", i)
		}
		if seen[g.Name] {
			return fmt.Errorf("duplicate tag group %q", g.Name)
		}
		seen[g.Name] = true
		for _, tag := range g.Tags {
			if err := ValidateTag(tag); err != nil {
				return fmt.Errorf("tag group %q: %w", g.Name, err)
			}
		}
	}
	return nil
}

// LoadTagGroups reads a YAML vocabulary file of the form
//
//	groups:
//	  - name: category
//	    columns: 2
//	    tags: [humanoid, undead]
func LoadTagGroups(path string) (TagGroups, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag groups: %w", err)
	}

	var file tagGroupsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tag groups %s: %w", path, err)
	}
	if err := file.Groups.Validate(); err != nil {
		return nil, err
	}
	for i := range file.Groups {
		if file.Groups[i].Columns <= 0 {
			file.Groups[i].Columns = DefaultGroupColumns
		}
	}
	return file.Groups, nil
}

// MarshalYAMLFile encodes groups in the same layout LoadTagGroups reads
func (tg TagGroups) MarshalYAMLFile() ([]byte, error) {
	return yaml.Marshal(tagGroupsFile{Groups: tg})
}

// DefaultTagGroups returns the built-in Pathfinder 2e character vocabulary
func DefaultTagGroups() TagGroups {
	return TagGroups{
		{Name: "category", Columns: NarrowGroupColumns, Tags: []string{
			"humanoid", "aberrant", "aquatic", "bestial", "constructed", "divine",
			"draconic", "elemental", "fey", "fiendish", "fungal", "monitor",
			"planar", "plant", "undead",
		}},
		{Name: "ancestry", Columns: DefaultGroupColumns, Tags: []string{
			"dwarf", "elf", "gnome", "goblin", "halfling", "human", "leshy", "orc",
			"amurrun", "azarketi", "fetchling", "hobgoblin", "iruxi", "kholo",
			"kitsune", "kobold", "nagaji", "tengu", "tripkee", "vanara", "ysoki",
			"anadi", "android", "automaton", "conrasu", "fleshwarp", "ghoran",
			"goloma", "kashrishi", "poppet", "shisk", "shoony", "skeleton",
			"sprite", "strix", "vishkanya", "aiuvarin", "beastkin", "changeling",
			"dhampir", "dromaar", "geniekin", "nephilim",
		}},
		{Name: "equipment", Columns: NarrowGroupColumns, Tags: []string{
			"axe", "bludgeon", "bomb", "bow", "brawling", "crossbow", "dart",
			"firearm", "flail", "knife", "pick", "polearm", "shield", "sling",
			"sword", "tome", "scroll", "focus", "unarmored", "clothing",
			"light", "medium", "heavy",
		}},
		{Name: "features", Columns: NarrowGroupColumns, Tags: []string{
			"magic", "music", "alchemy", "companion", "dual-wielding",
			"prosthetic", "nature", "tech", "winged",
		}},
		{Name: "family", Columns: NarrowGroupColumns, Tags: []string{
			"civilian", "warrior", "sage", "seafarer", "officer", "outcast",
			"worker", "artisan", "affluent",
		}},
		{Name: "special", Columns: NarrowGroupColumns, Tags: []string{
			"bust", "unique", "iconic", "deity",
		}},
	}
}
