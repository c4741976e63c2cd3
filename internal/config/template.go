package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lmprep/lmprep/internal/resource"
)

// TemplatePath is the package-relative path of the bundled template.
const TemplatePath = "default_config.yml"

// Template is the configuration template, kept as the exact bytes found in
// the package. Seeding writes these bytes untouched; nothing here is ever
// re-serialized.
type Template struct {
	raw []byte
}

// LoadTemplate reads the template out of the package filesystem. A missing
// template means a damaged distribution; any other read failure keeps its
// cause.
func LoadTemplate(fsys fs.FS) (*Template, error) {
	data, err := fs.ReadFile(fsys, TemplatePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &resource.NotFoundError{Path: TemplatePath}
		}
		return nil, fmt.Errorf("could not read %s from package: %w", TemplatePath, err)
	}
	return &Template{raw: data}, nil
}

// Bytes returns the verbatim template content.
func (t *Template) Bytes() []byte {
	return t.raw
}

// Settings parses the template, for validation and status display.
func (t *Template) Settings() (Settings, error) {
	return Parse(t.raw)
}
