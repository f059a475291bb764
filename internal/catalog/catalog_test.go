package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/gallery-tagger/internal/model"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func collectIDs(t *testing.T, c *Catalog) []string {
	t.Helper()
	var ids []string
	for entry, err := range c.Entries() {
		require.NoError(t, err)
		ids = append(ids, entry.ID)
	}
	return ids
}

func TestScan_FiltersImages(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.png", "b.txt", "sub/c.jpg")

	c, err := Scan(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.png", "sub/c.jpg"}, collectIDs(t, c))
}

func TestScan_SkipsUnstorableNames(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("backslash is a path separator on Windows")
	}
	root := t.TempDir()
	writeFiles(t, root, "a.png", `odd\name.png`)
	// Some filesystems refuse names that are not valid UTF-8
	if err := os.WriteFile(filepath.Join(root, "bad\xff.png"), []byte("x"), 0o644); err != nil {
		t.Logf("skipping non-UTF-8 name: %v", err)
	}

	c, err := Scan(root)
	require.NoError(t, err)

	ids := collectIDs(t, c)
	assert.Equal(t, []string{"a.png"}, ids)
	for _, id := range ids {
		assert.NoError(t, model.ValidateIdentifier(id))
	}
}

func TestScan_IsRestartable(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.png", "b.txt", "sub/c.jpg")

	c, err := Scan(root)
	require.NoError(t, err)

	first := collectIDs(t, c)
	second := collectIDs(t, c)
	assert.ElementsMatch(t, first, second)

	again, err := Scan(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, first, collectIDs(t, again))
}

func TestScan_SeesNewFilesOnNextIteration(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.png")

	c, err := Scan(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png"}, collectIDs(t, c))

	writeFiles(t, root, "later/b.webp")
	assert.ElementsMatch(t, []string{"a.png", "later/b.webp"}, collectIDs(t, c))
}

func TestScan_CaseInsensitiveExtensions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "UPPER.PNG", "Mixed.JpEg", "notes.md", "archive.png.zip")

	c, err := Scan(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"UPPER.PNG", "Mixed.JpEg"}, collectIDs(t, c))
}

func TestScan_EntryPaths(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "deep/er/token.gif")

	c, err := Scan(root)
	require.NoError(t, err)

	entries, err := c.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "deep/er/token.gif", entries[0].ID)
	assert.Equal(t, filepath.Join(c.Root(), "deep", "er", "token.gif"), entries[0].Path)
	assert.True(t, filepath.IsAbs(entries[0].Path))
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestScan_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.png")

	_, err := Scan(filepath.Join(root, "a.png"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntries_RootRemovedAfterScan(t *testing.T) {
	root := filepath.Join(t.TempDir(), "images")
	writeFiles(t, root, "a.png")

	c, err := Scan(root)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(root))

	var gotErr error
	for _, err := range c.Entries() {
		gotErr = err
	}
	assert.ErrorIs(t, gotErr, ErrNotFound)
}

func TestEntries_EarlyBreak(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.png", "b.png", "c.png")

	c, err := Scan(root)
	require.NoError(t, err)

	count := 0
	for _, err := range c.Entries() {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestList_Sorted(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "z.png", "a/b.png", "m.jpg")

	c, err := Scan(root)
	require.NoError(t, err)

	ids, err := c.IDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b.png", "m.jpg", "z.png"}, ids)
}

func TestNew_CustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.png", "b.tiff", "c.svg")

	c, err := New(root, "tiff", ".SVG")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"b.tiff", "c.svg"}, collectIDs(t, c))
}

func TestNew_NoExtensions(t *testing.T) {
	_, err := New(t.TempDir())
	assert.Error(t, err)

	_, err = New(t.TempDir(), " ", ".")
	assert.Error(t, err)
}

func TestCatalog_IsImage(t *testing.T) {
	c, err := Scan(t.TempDir())
	require.NoError(t, err)

	assert.True(t, c.IsImage("portrait.webp"))
	assert.True(t, c.IsImage("token.BMP"))
	assert.False(t, c.IsImage("readme.txt"))
	assert.False(t, c.IsImage("png"))
}
