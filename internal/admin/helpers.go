package admin

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/lmprep/lmprep/internal/log"
	"github.com/lmprep/lmprep/internal/platform"
)

// applyOutputFlags maps the persistent output flags onto the logger.
// Quiet wins over debug.
func applyOutputFlags(f *pflag.FlagSet) {
	if quiet, _ := f.GetBool("quiet"); quiet {
		log.EnableQuietMode()
		return
	}
	if debug, _ := f.GetBool("debug"); debug {
		log.SetLevel(log.LevelDebug)
	}
}

// onPath reports whether dir appears in the PATH environment variable.
func onPath(dir string) bool {
	for _, p := range filepath.SplitList(os.Getenv("PATH")) {
		if p == "" {
			continue
		}
		if filepath.Clean(p) == filepath.Clean(dir) {
			return true
		}
	}
	return false
}

// executableName returns the name the installed binary carries on this
// host, falling back to the OS convention when the host platform has no
// bundled artifact.
func executableName() string {
	if art, err := platform.Resolve(platform.Current()); err == nil {
		return art.ExecutableName
	}
	if runtime.GOOS == "windows" {
		return "lm.exe"
	}
	return "lm"
}
