package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyOpenFolder        = "open_folder"
	KeySaveTags          = "save_tags"
	KeyExportDatasheet   = "export_datasheet"
	KeySettings          = "settings"
	KeyQuit              = "quit"
	KeyLanguage          = "language"
	KeySaveAndNext       = "save_and_next"
	KeySkip              = "skip"
	KeyPrevious          = "previous"
	KeyOpenExternal      = "open_external"
	KeyRevealFile        = "reveal_file"
	KeyKeepTags          = "keep_tags"
	KeyExtraTags         = "extra_tags"
	KeyImages            = "images"
	KeyNoImage           = "no_image"
	KeyNoMoreImages      = "no_more_images"
	KeyDone              = "done"
	KeyAlreadyTagged     = "already_tagged"
	KeyTagsSaved         = "tags_saved"
	KeyDatasheetExported = "datasheet_exported"
	KeyUnsavedChanges    = "unsaved_changes"
	KeySaveBeforeExit    = "save_before_exit"
	KeyError             = "error"
	KeyImageRoot         = "image_root"
	KeyTagsFile          = "tags_file"
	KeyDatasheetFile     = "datasheet_file"
	KeyModuleID          = "module_id"
	KeyPathPrefix        = "path_prefix"
	KeyScale             = "scale"
	KeyTagGroupsFile     = "tag_groups_file"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidModuleID   = "invalid_module_id"
	KeyLabel             = "label"
	KeyTokenImage        = "token_image"
	KeyDetailsFile       = "details_file"
	KeyDerived           = "derived"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Gallery Tagger",
		KeyFile:              "File",
		KeyOpenFolder:        "Open Image Folder...",
		KeySaveTags:          "Save Tags",
		KeyExportDatasheet:   "Export Datasheet",
		KeySettings:          "Settings",
		KeyQuit:              "Quit",
		KeyLanguage:          "Language",
		KeySaveAndNext:       "Save & Next",
		KeySkip:              "Skip",
		KeyPrevious:          "Previous",
		KeyOpenExternal:      "Open Image",
		KeyRevealFile:        "Show in Folder",
		KeyKeepTags:          "Keep tags",
		KeyExtraTags:         "Additional tags (comma separated)",
		KeyImages:            "Images",
		KeyNoImage:           "No image selected",
		KeyNoMoreImages:      "No more images in folder.",
		KeyDone:              "Done",
		KeyAlreadyTagged:     "This image was already tagged.",
		KeyTagsSaved:         "Tags saved",
		KeyDatasheetExported: "Datasheet exported",
		KeyUnsavedChanges:    "Unsaved changes",
		KeySaveBeforeExit:    "Save tags before closing?",
		KeyError:             "Error",
		KeyImageRoot:         "Image Folder",
		KeyTagsFile:          "Tags File",
		KeyDatasheetFile:     "Datasheet File",
		KeyModuleID:          "Foundry Module ID",
		KeyPathPrefix:        "Folder inside Module",
		KeyScale:             "Scale",
		KeyTagGroupsFile:     "Tag Groups File (YAML)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidModuleID:   "The module ID may only contain lowercase letters and hyphens.",
		KeyLabel:             "Label",
		KeyTokenImage:        "Token/Subject image (optional)",
		KeyDetailsFile:       "Image Details File (YAML)",
		KeyDerived:           "from file name",
	}

	// German texts
	l.texts["de"] = map[string]string{
		KeyAppTitle:          "Galerie-Tagger",
		KeyFile:              "Datei",
		KeyOpenFolder:        "Bildordner öffnen...",
		KeySaveTags:          "Tags speichern",
		KeyExportDatasheet:   "Datasheet exportieren",
		KeySettings:          "Einstellungen",
		KeyQuit:              "Beenden",
		KeyLanguage:          "Sprache",
		KeySaveAndNext:       "Speichern & nächstes Bild",
		KeySkip:              "Überspringen",
		KeyPrevious:          "Zurück",
		KeyOpenExternal:      "Bild öffnen",
		KeyRevealFile:        "Im Ordner zeigen",
		KeyKeepTags:          "Tags behalten",
		KeyExtraTags:         "Weitere Tags (durch Komma getrennt)",
		KeyImages:            "Bilder",
		KeyNoImage:           "Kein Bild ausgewählt",
		KeyNoMoreImages:      "Keine weiteren Bilder im Ordner.",
		KeyDone:              "Fertig",
		KeyAlreadyTagged:     "Dieses Bild wurde bereits bearbeitet.",
		KeyTagsSaved:         "Tags gespeichert",
		KeyDatasheetExported: "Datasheet exportiert",
		KeyUnsavedChanges:    "Ungespeicherte Änderungen",
		KeySaveBeforeExit:    "Tags vor dem Beenden speichern?",
		KeyError:             "Fehler",
		KeyImageRoot:         "Bildordner",
		KeyTagsFile:          "Tag-Datei",
		KeyDatasheetFile:     "Datasheet-Datei",
		KeyModuleID:          "Foundry Modul-ID",
		KeyPathPrefix:        "Ordner im Modul",
		KeyScale:             "Skalierung",
		KeyTagGroupsFile:     "Tag-Gruppen-Datei (YAML)",
		KeySave:              "Speichern",
		KeyCancel:            "Abbrechen",
		KeyBrowse:            "Durchsuchen",
		KeySettingsSaved:     "Einstellungen gespeichert!",
		KeyInvalidModuleID:   "Die Modul-ID darf nur Kleinbuchstaben und Bindestriche enthalten.",
		KeyLabel:             "Label",
		KeyTokenImage:        "Token/Subject-Bild (optional)",
		KeyDetailsFile:       "Bilddetails-Datei (YAML)",
		KeyDerived:           "aus dem Dateinamen",
	}
}
