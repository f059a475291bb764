package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that seed preferences at startup
const (
	EnvImageRoot     = "GALLERY_TAGGER_IMAGE_ROOT"
	EnvTagsFile      = "GALLERY_TAGGER_TAGS_FILE"
	EnvDatasheetFile = "GALLERY_TAGGER_DATASHEET_FILE"
	EnvModuleID      = "GALLERY_TAGGER_MODULE_ID"
	EnvPathPrefix    = "GALLERY_TAGGER_PATH_PREFIX"
	EnvDefaultScale  = "GALLERY_TAGGER_SCALE"
	EnvLanguage      = "GALLERY_TAGGER_LANGUAGE"
	EnvTagGroupsFile = "GALLERY_TAGGER_TAG_GROUPS"
)

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// LoadEnvironment reads dotenv files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadEnvironment(files ...string) error {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// ApplyEnvironment copies GALLERY_TAGGER_* variables into preferences.
// Invalid values are logged and skipped.
func (s *Settings) ApplyEnvironment() {
	if v := lookup(EnvImageRoot); v != "" {
		s.SetImageRoot(v)
	}
	if v := lookup(EnvTagsFile); v != "" {
		s.SetTagsFile(v)
	}
	if v := lookup(EnvDatasheetFile); v != "" {
		s.SetDatasheetFile(v)
	}
	if v := lookup(EnvModuleID); v != "" {
		if err := s.SetModuleID(v); err != nil {
			log.Printf("ignoring %s: %v", EnvModuleID, err)
		}
	}
	if v := lookup(EnvPathPrefix); v != "" {
		s.SetPathPrefix(v)
	}
	if v := lookup(EnvDefaultScale); v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("ignoring %s: %v", EnvDefaultScale, err)
		} else {
			s.SetDefaultScale(scale)
		}
	}
	if v := lookup(EnvLanguage); v != "" {
		s.SetLanguage(v)
	}
	if v := lookup(EnvTagGroupsFile); v != "" {
		s.SetTagGroupsFile(v)
	}
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
