// Package installer places the resolved lm binary into a well-known
// directory on the user's PATH.
//
// Candidates are ordered: a system-wide location first, a per-user
// fallback second. Every run reinstalls into the selected directory, so
// the last writer always wins.
package installer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lmprep/lmprep/internal/resource"
)

// VendorDir is the vendor subdirectory used under the Windows
// program-files root.
const VendorDir = "lmprep"

// Candidate is one installation directory option.
type Candidate struct {
	Dir string
	// Create means the directory may be created (with parents) before the
	// writability probe.
	Create bool
}

// IOError reports a failed installation step.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "install " + e.Op + ": " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// Candidates returns the installation directories for the current host,
// in selection order.
func Candidates() []Candidate {
	home, _ := os.UserHomeDir()
	return candidatesFor(runtime.GOOS, os.Getenv("ProgramFiles"), home)
}

func candidatesFor(goos, programFiles, home string) []Candidate {
	if goos == "windows" {
		if programFiles == "" {
			programFiles = `C:\Program Files`
		}
		return []Candidate{{Dir: filepath.Join(programFiles, VendorDir), Create: true}}
	}

	candidates := []Candidate{{Dir: "/usr/local/bin"}}
	if home != "" {
		candidates = append(candidates, Candidate{Dir: filepath.Join(home, ".local", "bin"), Create: true})
	}
	return candidates
}

// SelectDir returns the first writable candidate. Candidates marked Create
// are created before probing. Writability is probed by actually writing:
// permission bits lie under root and on Windows ACLs.
func SelectDir(candidates []Candidate) (string, error) {
	var lastErr error
	for _, c := range candidates {
		if c.Create {
			if err := os.MkdirAll(c.Dir, 0o755); err != nil {
				lastErr = err
				continue
			}
		}
		if err := probeWritable(c.Dir); err != nil {
			lastErr = err
			continue
		}
		return c.Dir, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no candidate directories")
	}
	dirs := make([]string, len(candidates))
	for i, c := range candidates {
		dirs[i] = c.Dir
	}
	return "", &IOError{Op: "select directory", Path: strings.Join(dirs, ", "), Err: lastErr}
}

func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".lmprep-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// Install copies the resource into dir under name and marks it executable.
// The content lands in a temporary file first and is renamed over any
// existing binary, so a concurrently running lm never sees a torn write.
func Install(res *resource.Resource, dir, name string) (string, error) {
	src, err := res.Open()
	if err != nil {
		return "", &IOError{Op: "open", Path: res.Path, Err: err}
	}
	defer src.Close()

	dst := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, "."+name+"-*")
	if err != nil {
		return "", &IOError{Op: "create", Path: dir, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &IOError{Op: "copy", Path: dst, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &IOError{Op: "write", Path: dst, Err: err}
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpName, 0o755); err != nil {
			os.Remove(tmpName)
			return "", &IOError{Op: "chmod", Path: dst, Err: err}
		}
	}

	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return "", &IOError{Op: "replace", Path: dst, Err: err}
	}
	return dst, nil
}

// InstalledPath returns the existing installed binary among the
// candidates, or "" when none is present.
func InstalledPath(candidates []Candidate, name string) string {
	for _, c := range candidates {
		path := filepath.Join(c.Dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
