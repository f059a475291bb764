package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/gallery-tagger/internal/catalog"
	"github.com/ytget/gallery-tagger/internal/model"
	"github.com/ytget/gallery-tagger/internal/tagstore"
)

func entries(ids ...string) []model.ImageEntry {
	out := make([]model.ImageEntry, len(ids))
	for i, id := range ids {
		out[i] = model.ImageEntry{ID: id, Path: "/images/" + id}
	}
	return out
}

func newSession(ids ...string) *Session {
	return New(tagstore.New(), model.DefaultTagGroups(), entries(ids...))
}

func TestNavigation(t *testing.T) {
	s := newSession("a.png", "b.png", "c.png")

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "a.png", cur.ID)
	assert.False(t, s.Previous())

	assert.True(t, s.Next())
	assert.True(t, s.Next())
	cur, _ = s.Current()
	assert.Equal(t, "c.png", cur.ID)

	assert.False(t, s.Next())
	assert.True(t, s.Done())
	_, ok = s.Current()
	assert.False(t, ok)
	assert.False(t, s.Next())

	assert.True(t, s.Previous())
	cur, _ = s.Current()
	assert.Equal(t, "c.png", cur.ID)
}

func TestEmptySession(t *testing.T) {
	s := newSession()

	assert.True(t, s.Done())
	assert.False(t, s.Next())
	assert.False(t, s.Skip())

	_, err := s.Commit(model.NewTagSet("x"))
	assert.Error(t, err)
	assert.Equal(t, 0, s.CurrentTags().Len())
}

func TestCommit_StoresAndAdvances(t *testing.T) {
	s := newSession("a.png", "b.png")

	more, err := s.Commit(model.NewTagSet("human", "fighter"))
	require.NoError(t, err)
	assert.True(t, more)

	assert.Equal(t, []string{"fighter", "human"}, s.Store().Tags("a.png").Sorted())
	assert.True(t, s.Store().Dirty())

	cur, _ := s.Current()
	assert.Equal(t, "b.png", cur.ID)

	more, err = s.Commit(model.NewTagSet())
	require.NoError(t, err)
	assert.False(t, more)
	assert.True(t, s.Store().Has("b.png"))
}

func TestCommit_ValidationKeepsPosition(t *testing.T) {
	s := newSession("a.png", "b.png")

	_, err := s.Commit(model.NewTagSet("", "valid"))
	assert.ErrorIs(t, err, tagstore.ErrValidation)

	cur, _ := s.Current()
	assert.Equal(t, "a.png", cur.ID)
	assert.False(t, s.Store().Has("a.png"))
}

func TestSkipAndStatus(t *testing.T) {
	s := newSession("a.png", "b.png", "c.png")

	assert.Equal(t, model.EntryStatusUntagged, s.Status("a.png"))
	assert.True(t, s.Skip())
	assert.Equal(t, model.EntryStatusSkipped, s.Status("a.png"))

	_, err := s.Commit(model.NewTagSet("x"))
	require.NoError(t, err)
	assert.Equal(t, model.EntryStatusTagged, s.Status("b.png"))

	require.True(t, s.Seek("a.png"))
	_, err = s.Commit(model.NewTagSet("y"))
	require.NoError(t, err)
	assert.Equal(t, model.EntryStatusTagged, s.Status("a.png"))
}

func TestSkip_TaggedImageStaysTagged(t *testing.T) {
	store := tagstore.New()
	require.NoError(t, store.SetTags("a.png", model.NewTagSet("x")))
	s := New(store, model.DefaultTagGroups(), entries("a.png"))

	s.Skip()
	assert.Equal(t, model.EntryStatusTagged, s.Status("a.png"))
}

func TestSeek(t *testing.T) {
	s := newSession("a.png", "b.png", "c.png")

	assert.True(t, s.Seek("c.png"))
	assert.Equal(t, 2, s.Index())
	assert.False(t, s.Seek("missing.png"))
	assert.Equal(t, 2, s.Index())
}

func TestSeekPending(t *testing.T) {
	store := tagstore.New()
	require.NoError(t, store.SetTags("a.png", nil))
	require.NoError(t, store.SetTags("b.png", model.NewTagSet("x")))
	s := New(store, model.DefaultTagGroups(), entries("a.png", "b.png", "c.png"))

	assert.True(t, s.SeekPending())
	cur, _ := s.Current()
	assert.Equal(t, "c.png", cur.ID)

	_, err := s.Commit(nil)
	require.NoError(t, err)
	assert.False(t, s.SeekPending())
	assert.True(t, s.Done())
}

func TestProgress(t *testing.T) {
	store := tagstore.New()
	require.NoError(t, store.SetTags("a.png", nil))
	require.NoError(t, store.SetTags("elsewhere.png", nil))
	s := New(store, model.DefaultTagGroups(), entries("a.png", "b.png"))

	tagged, total := s.Progress()
	assert.Equal(t, 1, tagged)
	assert.Equal(t, 2, total)
}

func TestCurrentTags(t *testing.T) {
	store := tagstore.New()
	require.NoError(t, store.SetTags("a.png", model.NewTagSet("elf")))
	s := New(store, model.DefaultTagGroups(), entries("a.png", "b.png"))

	assert.Equal(t, []string{"elf"}, s.CurrentTags().Sorted())
	s.Next()
	assert.Equal(t, 0, s.CurrentTags().Len())
}

func TestCarry(t *testing.T) {
	s := newSession("a.png")
	selected := model.NewTagSet("human", "sword", "undead", "fighter")

	assert.Equal(t, 0, s.Carry(selected).Len())

	s.SetKeep("ancestry", true)
	s.SetKeep(model.UngroupedName, true)
	assert.Equal(t, []string{"fighter", "human"}, s.Carry(selected).Sorted())
	assert.Equal(t, []string{"ancestry", model.UngroupedName}, s.KeptGroups())

	s.SetKeep("ancestry", false)
	assert.False(t, s.Keep("ancestry"))
	assert.Equal(t, []string{"fighter"}, s.Carry(selected).Sorted())
}

func TestOpen_FromCatalog(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.png", "a.jpg", "notes.txt", filepath.Join("sub", "c.gif")} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	cat, err := catalog.Scan(root)
	require.NoError(t, err)

	s, err := Open(tagstore.New(), model.DefaultTagGroups(), cat)
	require.NoError(t, err)

	ids := make([]string, 0, s.Len())
	for _, entry := range s.Entries() {
		ids = append(ids, entry.ID)
	}
	assert.Equal(t, []string{"a.jpg", "b.png", "sub/c.gif"}, ids)
}

func TestOpen_EveryScannedImageCanBeTagged(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("backslash is a path separator on Windows")
	}
	root := t.TempDir()
	for _, name := range []string{"a.png", `odd\name.png`} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}

	cat, err := catalog.Scan(root)
	require.NoError(t, err)
	s, err := Open(tagstore.New(), model.DefaultTagGroups(), cat)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	for !s.Done() {
		_, err := s.Commit(model.NewTagSet("human"))
		require.NoError(t, err)
	}
	tagged, total := s.Progress()
	assert.Equal(t, total, tagged)
}
