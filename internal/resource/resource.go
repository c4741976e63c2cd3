// Package resource locates bundled files inside the distributable package.
//
// The package is an fs.FS: the embedded payload in release binaries, or a
// directory tree when LMPREP_PACKAGE_DIR points at an unpacked
// distribution. Components never touch the payload except through here.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lmprep/lmprep/embedded"
	"github.com/lmprep/lmprep/internal/log"
)

// PackageDirEnv overrides the package root with a plain directory.
const PackageDirEnv = "LMPREP_PACKAGE_DIR"

// NotFoundError reports a package entry that is absent or not a regular
// file. It always means a damaged or incomplete distribution.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return e.Path + " not found in package. Please reinstall lmprep"
}

// Resource is a located package entry, ready to be streamed out.
type Resource struct {
	Path string
	Size int64

	fsys fs.FS
}

// Locate finds the regular file at path inside the package filesystem.
// Only a genuinely absent entry (or a directory where a file belongs)
// is a NotFoundError; any other stat failure keeps its cause.
func Locate(fsys fs.FS, path string) (*Resource, error) {
	info, err := fs.Stat(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("could not read %s from package: %w", path, err)
	}
	if info.IsDir() {
		return nil, &NotFoundError{Path: path}
	}
	return &Resource{Path: path, Size: info.Size(), fsys: fsys}, nil
}

// Open returns a reader over the resource content.
func (r *Resource) Open() (fs.File, error) {
	return r.fsys.Open(r.Path)
}

// Package returns the package filesystem: the LMPREP_PACKAGE_DIR override
// when it names an existing directory, the embedded payload otherwise.
func Package() fs.FS {
	dir := os.Getenv(PackageDirEnv)
	if dir == "" {
		return embedded.Files()
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Debugf("Ignoring %s=%q: not a directory", PackageDirEnv, dir)
		return embedded.Files()
	}
	log.Debugf("Using package directory %s", dir)
	return os.DirFS(dir)
}
