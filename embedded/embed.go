// Package embedded carries the distributable payload: the precompiled lm
// executables and the default configuration template.
//
// The payload is compiled into the launcher with go:embed. Release builds
// drop the platform executables into binaries/<target>/ before compiling:
//
//	binaries/linux_x86_64/lm
//	binaries/darwin_arm64/lm
//	binaries/darwin_x86_64/lm
//	binaries/win_amd64/lm.exe
//
// A plain source checkout carries only a directory placeholder, so binary
// lookups fail with a reinstall hint until real artifacts are present.
package embedded

import (
	"embed"
	"io/fs"
)

//go:embed all:binaries default_config.yml
var payload embed.FS

// Files returns the payload rooted at the package level, so the
// binaries/<target>/<name> and default_config.yml paths resolve directly.
func Files() fs.FS {
	return payload
}
