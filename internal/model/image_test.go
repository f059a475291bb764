package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"a.png", false},
		{"subdir/token1.png", false},
		{"deep/er/c.jpg", false},
		{"", true},
		{".", true},
		{"/abs/a.png", true},
		{"../a.png", true},
		{"..", true},
		{"sub/../a.png", true},
		{"sub//a.png", true},
		{"./a.png", true},
		{`sub\a.png`, true},
		{"bad\xff.png", true},
		{"größe/ä.png", false},
	}

	for _, test := range tests {
		err := ValidateIdentifier(test.id)
		if test.wantErr {
			assert.ErrorIs(t, err, ErrInvalidIdentifier, "id %q", test.id)
		} else {
			assert.NoError(t, err, "id %q", test.id)
		}
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	rel := filepath.Join("sub", "dir", "c.jpg")
	assert.Equal(t, "sub/dir/c.jpg", NormalizeIdentifier(rel))
	assert.Equal(t, "a.png", NormalizeIdentifier("./a.png"))
}

func TestImageEntry_NameAndDir(t *testing.T) {
	entry := ImageEntry{ID: "sub/c.jpg", Path: "/root/sub/c.jpg"}
	assert.Equal(t, "c.jpg", entry.Name())
	assert.Equal(t, "sub", entry.Dir())

	top := ImageEntry{ID: "a.png"}
	assert.Equal(t, ".", top.Dir())
}
