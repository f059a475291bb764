package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/gallery-tagger/internal/gallery"
	"github.com/ytget/gallery-tagger/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyImageRoot     = "image_root"
	KeyTagsFile      = "tags_file"
	KeyDatasheetFile = "datasheet_file"
	KeyModuleID      = "module_id"
	KeyPathPrefix    = "path_prefix"
	KeyDefaultScale  = "default_scale"
	KeyLanguage      = "app_language"
	KeyTagGroupsFile = "tag_groups_file"
	KeyKeptTagGroups = "kept_tag_groups"
	KeyDetailsFile   = "details_file"
)

// Default values
const (
	DefaultTagsFileName      = "gallery-tags.json"
	DefaultDatasheetFileName = "datasheet.json"
	DefaultLanguage          = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetImageRoot returns the configured image directory, falling back to the
// system Pictures directory without storing it
func (s *Settings) GetImageRoot() string {
	if dir := s.ConfiguredImageRoot(); dir != "" {
		return dir
	}
	defaultDir, err := platform.GetHomePicturesDir()
	if err != nil {
		defaultDir = "."
	}
	return defaultDir
}

// ConfiguredImageRoot returns the stored image directory, empty when the
// user has not chosen one
func (s *Settings) ConfiguredImageRoot() string {
	return s.app.Preferences().String(KeyImageRoot)
}

// SetImageRoot sets the image directory
func (s *Settings) SetImageRoot(dir string) {
	s.app.Preferences().SetString(KeyImageRoot, dir)
}

// GetTagsFile returns the tag file path. When unset it lives in the image root.
func (s *Settings) GetTagsFile() string {
	if file := s.ConfiguredTagsFile(); file != "" {
		return file
	}
	return filepath.Join(s.GetImageRoot(), DefaultTagsFileName)
}

// ConfiguredTagsFile returns the stored tag file path, empty for the default
func (s *Settings) ConfiguredTagsFile() string {
	return s.app.Preferences().String(KeyTagsFile)
}

// SetTagsFile sets the tag file path; empty restores the default location
func (s *Settings) SetTagsFile(path string) {
	s.app.Preferences().SetString(KeyTagsFile, path)
}

// GetDatasheetFile returns the export path. When unset it lives in the image root.
func (s *Settings) GetDatasheetFile() string {
	if file := s.ConfiguredDatasheetFile(); file != "" {
		return file
	}
	return filepath.Join(s.GetImageRoot(), DefaultDatasheetFileName)
}

// ConfiguredDatasheetFile returns the stored export path, empty for the default
func (s *Settings) ConfiguredDatasheetFile() string {
	return s.app.Preferences().String(KeyDatasheetFile)
}

// SetDatasheetFile sets the export path; empty restores the default location
func (s *Settings) SetDatasheetFile(path string) {
	s.app.Preferences().SetString(KeyDatasheetFile, path)
}

// GetDetailsFile returns the per-image details path. When unset it lives in the image root.
func (s *Settings) GetDetailsFile() string {
	if file := s.ConfiguredDetailsFile(); file != "" {
		return file
	}
	return filepath.Join(s.GetImageRoot(), gallery.DefaultDetailsFileName)
}

// ConfiguredDetailsFile returns the stored details path, empty for the default
func (s *Settings) ConfiguredDetailsFile() string {
	return s.app.Preferences().String(KeyDetailsFile)
}

// SetDetailsFile sets the details path; empty restores the default location
func (s *Settings) SetDetailsFile(path string) {
	s.app.Preferences().SetString(KeyDetailsFile, path)
}

// GetModuleID returns the Foundry module ID used in exported paths
func (s *Settings) GetModuleID() string {
	id := s.app.Preferences().String(KeyModuleID)
	if id == "" {
		s.SetModuleID(gallery.DefaultModuleID)
		return gallery.DefaultModuleID
	}
	return id
}

// SetModuleID stores id if it is a valid module ID
func (s *Settings) SetModuleID(id string) error {
	if err := gallery.ValidateModuleID(id); err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyModuleID, id)
	return nil
}

// GetPathPrefix returns the image root's directory inside the module
func (s *Settings) GetPathPrefix() string {
	return s.app.Preferences().String(KeyPathPrefix)
}

// SetPathPrefix sets the image root's directory inside the module
func (s *Settings) SetPathPrefix(prefix string) {
	s.app.Preferences().SetString(KeyPathPrefix, filepath.ToSlash(prefix))
}

// GetDefaultScale returns the art scale written to exported entries
func (s *Settings) GetDefaultScale() int {
	value := s.app.Preferences().Int(KeyDefaultScale)
	if value <= 0 {
		s.SetDefaultScale(gallery.DefaultScale)
		return gallery.DefaultScale
	}
	return value
}

// SetDefaultScale sets the art scale
func (s *Settings) SetDefaultScale(scale int) {
	if scale < gallery.MinScale {
		scale = gallery.MinScale
	}
	if scale > gallery.MaxScale {
		scale = gallery.MaxScale
	}
	s.app.Preferences().SetInt(KeyDefaultScale, scale)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"de":     "Deutsch",
	}
}

// GetTagGroupsFile returns the YAML vocabulary path, empty for the built-in set
func (s *Settings) GetTagGroupsFile() string {
	return s.app.Preferences().String(KeyTagGroupsFile)
}

// SetTagGroupsFile sets the YAML vocabulary path
func (s *Settings) SetTagGroupsFile(path string) {
	s.app.Preferences().SetString(KeyTagGroupsFile, path)
}

// GetKeptTagGroups returns groups whose selections carry over between images
func (s *Settings) GetKeptTagGroups() []string {
	return s.app.Preferences().StringList(KeyKeptTagGroups)
}

// SetKeptTagGroups stores groups whose selections carry over between images
func (s *Settings) SetKeptTagGroups(groups []string) {
	s.app.Preferences().SetStringList(KeyKeptTagGroups, groups)
}
