package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/gallery-tagger/internal/config"
	"github.com/ytget/gallery-tagger/internal/gallery"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), app.NewWindow("settings"))
	return sd, settings
}

func TestSettingsDialog_UnchangedSaveKeepsDefaultPaths(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	settings.SetImageRoot("/a")

	sd.loadCurrentSettings()
	if sd.tagsFileEntry.Text != "" || sd.datasheetFileEntry.Text != "" || sd.detailsFileEntry.Text != "" {
		t.Fatalf("Default paths should load as empty entries, got %q, %q and %q",
			sd.tagsFileEntry.Text, sd.datasheetFileEntry.Text, sd.detailsFileEntry.Text)
	}
	if err := sd.apply(); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	settings.SetImageRoot("/b")
	if got := settings.GetTagsFile(); got != filepath.Join("/b", config.DefaultTagsFileName) {
		t.Errorf("Tags file should follow the image root after saving, got %s", got)
	}
	if got := settings.GetDatasheetFile(); got != filepath.Join("/b", config.DefaultDatasheetFileName) {
		t.Errorf("Datasheet file should follow the image root after saving, got %s", got)
	}
	if got := settings.GetDetailsFile(); got != filepath.Join("/b", gallery.DefaultDetailsFileName) {
		t.Errorf("Details file should follow the image root after saving, got %s", got)
	}
}

func TestSettingsDialog_UnchangedSaveDoesNotPinImageRoot(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.loadCurrentSettings()
	if err := sd.apply(); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got := settings.ConfiguredImageRoot(); got != "" {
		t.Errorf("Image root should stay unset, got %s", got)
	}
}

func TestSettingsDialog_ApplyStoresCustomValues(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.loadCurrentSettings()
	sd.tagsFileEntry.SetText("/elsewhere/tags.json")
	sd.moduleIDEntry.SetText("my-tokens")
	sd.scaleSelect.SetSelected("4")
	if err := sd.apply(); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if got := settings.GetTagsFile(); got != "/elsewhere/tags.json" {
		t.Errorf("Expected custom tags file, got %s", got)
	}
	if got := settings.GetModuleID(); got != "my-tokens" {
		t.Errorf("Expected module id my-tokens, got %s", got)
	}
	if got := settings.GetDefaultScale(); got != 4 {
		t.Errorf("Expected scale 4, got %d", got)
	}
}

func TestSettingsDialog_InvalidModuleIDStoresNothing(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.loadCurrentSettings()
	sd.moduleIDEntry.SetText("Not Valid")
	sd.tagsFileEntry.SetText("/elsewhere/tags.json")
	if err := sd.apply(); err == nil {
		t.Fatal("Invalid module id should be rejected")
	}
	if got := settings.ConfiguredTagsFile(); got != "" {
		t.Errorf("Nothing should be stored on error, got tags file %s", got)
	}
}
