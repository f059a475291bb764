package gallery

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/gallery-tagger/internal/model"
	"github.com/ytget/gallery-tagger/internal/platform"
)

// DefaultDetailsFileName is the per-image details file kept next to the tags file
const DefaultDetailsFileName = "gallery-details.yaml"

// ErrInvalidDetails is returned for details that cannot be exported
var ErrInvalidDetails = errors.New("gallery: invalid image details")

// Details are per-image datasheet values entered by the user. Zero fields
// fall back to the derived label, the global scale and the image itself.
type Details struct {
	Label string `yaml:"label,omitempty"`
	Scale int    `yaml:"scale,omitempty"`
	Token string `yaml:"token,omitempty"` // identifier of a separate token/subject image
}

// IsZero reports whether d overrides nothing
func (d Details) IsZero() bool {
	return d == Details{}
}

// Validate checks the token identifier and the scale range
func (d Details) Validate() error {
	if d.Token != "" {
		if err := model.ValidateIdentifier(d.Token); err != nil {
			return fmt.Errorf("%w: token: %w", ErrInvalidDetails, err)
		}
	}
	if d.Scale != 0 && (d.Scale < MinScale || d.Scale > MaxScale) {
		return fmt.Errorf("%w: scale %d outside %d..%d", ErrInvalidDetails, d.Scale, MinScale, MaxScale)
	}
	return nil
}

// DetailsSet maps image identifiers to their details
type DetailsSet map[string]Details

// Get returns the details of id, zero when none were entered
func (ds DetailsSet) Get(id string) Details {
	return ds[id]
}

// Set stores d for id. Zero details remove the entry.
func (ds DetailsSet) Set(id string, d Details) error {
	if err := model.ValidateIdentifier(id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDetails, err)
	}
	d.Label = strings.TrimSpace(d.Label)
	d.Token = strings.TrimSpace(d.Token)
	if err := d.Validate(); err != nil {
		return err
	}
	if d.IsZero() {
		delete(ds, id)
		return nil
	}
	ds[id] = d
	return nil
}

// LoadDetails reads a details file. A missing file yields an empty set.
func LoadDetails(filePath string) (DetailsSet, error) {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DetailsSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read details file: %w", err)
	}

	ds := DetailsSet{}
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDetails, filePath, err)
	}
	if ds == nil {
		ds = DetailsSet{}
	}
	for id, d := range ds {
		if err := model.ValidateIdentifier(id); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDetails, filePath, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %q: %w", filePath, id, err)
		}
	}
	return ds, nil
}

// Save writes the set as YAML, replacing filePath atomically
func (ds DetailsSet) Save(filePath string) error {
	data, err := yaml.Marshal(map[string]Details(ds))
	if err != nil {
		return fmt.Errorf("failed to encode details: %w", err)
	}
	if err := platform.WriteFileAtomic(filePath, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write details file: %w", err)
	}
	return nil
}
