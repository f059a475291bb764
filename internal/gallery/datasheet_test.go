package gallery

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/gallery-tagger/internal/model"
	"github.com/ytget/gallery-tagger/internal/tagstore"
)

func TestValidateModuleID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"token-sammlung", false},
		{"abc", false},
		{"-", false},
		{"", true},
		{"Token", true},
		{"token_1", true},
		{"tokens 2", true},
		{"tökens", true},
	}

	for _, test := range tests {
		err := ValidateModuleID(test.id)
		if test.wantErr {
			assert.ErrorIs(t, err, ErrInvalidModuleID, "id %q", test.id)
		} else {
			assert.NoError(t, err, "id %q", test.id)
		}
	}
}

func TestSuggestLabelAndKey(t *testing.T) {
	tests := []struct {
		id    string
		label string
		key   string
	}{
		{"sub/elf_ranger-female.png", "elf ranger female", "elf-ranger-female"},
		{"Dwarf Fighter.webp", "Dwarf Fighter", "Dwarf-Fighter"},
		{"noext", "noext", "noext"},
		{"a.b.jpg", "a.b", "a.b"},
	}

	for _, test := range tests {
		label := SuggestLabel(test.id)
		assert.Equal(t, test.label, label, "id %q", test.id)
		assert.Equal(t, test.key, KeyFromLabel(label), "id %q", test.id)
	}
}

func TestFoundryPath(t *testing.T) {
	assert.Equal(t, "/modules/token-sammlung/tokens/sub/a.png", FoundryPath("token-sammlung", "tokens", "sub/a.png"))
	assert.Equal(t, "/modules/token-sammlung/a.png", FoundryPath("token-sammlung", "", "a.png"))
	assert.Equal(t, "/modules/m/art/a.png", FoundryPath("m", "/art/", "a.png"))
}

func TestClampScale(t *testing.T) {
	assert.Equal(t, DefaultScale, ClampScale(0))
	assert.Equal(t, MinScale, ClampScale(-3))
	assert.Equal(t, 4, ClampScale(4))
	assert.Equal(t, MaxScale, ClampScale(99))
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry("heroes/elf_ranger.png", model.NewTagSet("elf", "bow", "scout"), model.DefaultTagGroups(), Options{
		ModuleID:   "my-tokens",
		PathPrefix: "art",
		Scale:      2,
	})

	assert.Equal(t, "elf ranger", entry.Label)
	assert.Equal(t, "elf-ranger", entry.Key)
	assert.Equal(t, DefaultSource, entry.Source)
	assert.Equal(t, Art{
		Portrait: "/modules/my-tokens/art/heroes/elf_ranger.png",
		Thumb:    "/modules/my-tokens/art/heroes/elf_ranger.png",
		Token:    "/modules/my-tokens/art/heroes/elf_ranger.png",
		Subject:  "/modules/my-tokens/art/heroes/elf_ranger.png",
		Scale:    2,
	}, entry.Art)
	assert.Equal(t, map[string][]string{
		"ancestry":          {"elf"},
		"equipment":         {"bow"},
		model.UngroupedName: {"scout"},
	}, entry.Tags)
}

func TestBuild_RejectsInvalidModule(t *testing.T) {
	_, err := Build(tagstore.New(), model.DefaultTagGroups(), Options{ModuleID: "Bad ID"})
	assert.ErrorIs(t, err, ErrInvalidModuleID)
}

func TestExport(t *testing.T) {
	store := tagstore.New()
	require.NoError(t, store.SetTags("b/orc_warrior.png", model.NewTagSet("orc", "axe")))
	require.NoError(t, store.SetTags("a.png", nil))

	path := filepath.Join(t.TempDir(), "datasheet.json")
	n, err := Export(path, store, model.DefaultTagGroups(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []Entry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)

	assert.Equal(t, "a", entries[0].Label)
	assert.Empty(t, entries[0].Tags)
	assert.Equal(t, "/modules/token-sammlung/a.png", entries[0].Art.Portrait)
	assert.Equal(t, DefaultScale, entries[0].Art.Scale)

	assert.Equal(t, "orc warrior", entries[1].Label)
	assert.Equal(t, []string{"orc"}, entries[1].Tags["ancestry"])
	assert.Equal(t, []string{"axe"}, entries[1].Tags["equipment"])

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw[0], "tags")
}

func TestWriteDatasheet_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasheet.json")
	require.NoError(t, WriteDatasheet(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriteDatasheet_MissingDirectory(t *testing.T) {
	err := WriteDatasheet(filepath.Join(t.TempDir(), "missing", "datasheet.json"), nil)
	assert.Error(t, err)
}
