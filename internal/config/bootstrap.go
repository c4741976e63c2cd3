package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/lmprep/lmprep/internal/log"
)

// Ensure writes the template to path unless a file already exists there.
// Existing files are left byte-identical whatever their content. Returns
// whether the file was created.
func Ensure(path string, tpl *Template, scope Scope) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, &IOError{Scope: scope, Path: path, Err: err}
	}

	if err := os.WriteFile(path, tpl.Bytes(), 0o644); err != nil {
		return false, &IOError{Scope: scope, Path: path, Err: err}
	}
	return true, nil
}

// Bootstrap seeds every destination in order, announcing each file it
// creates. Scopes are independent: one existing file never suppresses the
// creation of the other.
func Bootstrap(tpl *Template, seeds []Seed) error {
	for _, seed := range seeds {
		created, err := Ensure(seed.Path, tpl, seed.Scope)
		if err != nil {
			return err
		}
		if !created {
			continue
		}
		switch seed.Scope {
		case ScopeLocal:
			log.Info("Created local configuration at " + seed.Path)
		default:
			log.Info("Created default configuration at " + seed.Path)
		}
	}
	return nil
}
