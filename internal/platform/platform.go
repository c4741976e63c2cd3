// Package platform maps the host operating system and architecture onto
// the bundled lm artifact for that platform.
package platform

import "runtime"

// Target identifies a host platform. OS and Arch use the runtime.GOOS and
// runtime.GOARCH vocabulary ("amd64" is x86_64).
type Target struct {
	OS   string
	Arch string
}

// Artifact names the executable for a target and where the distributable
// package stores it.
type Artifact struct {
	// ExecutableName is the file name the binary is installed under.
	ExecutableName string
	// ResourcePath is the package-relative path of the bundled binary.
	ResourcePath string
}

// UnsupportedError reports a platform no bundled binary exists for.
type UnsupportedError struct {
	OS   string
	Arch string
}

func (e *UnsupportedError) Error() string {
	return "unsupported platform: " + e.OS + "/" + e.Arch
}

// Current returns the target of the running process.
func Current() Target {
	return Target{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// Resolve maps a target onto its bundled artifact.
//
// Support table:
//   - windows (any arch) -> binaries/win_amd64/lm.exe
//   - linux/amd64        -> binaries/linux_x86_64/lm
//   - darwin/arm64       -> binaries/darwin_arm64/lm
//   - darwin (other)     -> binaries/darwin_x86_64/lm
//
// Everything else fails with UnsupportedError. Resolve is pure: callers
// rely on it rejecting unsupported hosts before any filesystem work.
func Resolve(t Target) (Artifact, error) {
	switch t.OS {
	case "windows":
		return Artifact{ExecutableName: "lm.exe", ResourcePath: "binaries/win_amd64/lm.exe"}, nil
	case "linux":
		if t.Arch == "amd64" {
			return Artifact{ExecutableName: "lm", ResourcePath: "binaries/linux_x86_64/lm"}, nil
		}
	case "darwin":
		if t.Arch == "arm64" {
			return Artifact{ExecutableName: "lm", ResourcePath: "binaries/darwin_arm64/lm"}, nil
		}
		return Artifact{ExecutableName: "lm", ResourcePath: "binaries/darwin_x86_64/lm"}, nil
	}
	return Artifact{}, &UnsupportedError{OS: t.OS, Arch: t.Arch}
}
