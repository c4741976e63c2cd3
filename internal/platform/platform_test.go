package platform

import (
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestResolveSupported(t *testing.T) {
	tests := []struct {
		name     string
		target   Target
		wantName string
		wantPath string
	}{
		{"windows amd64", Target{"windows", "amd64"}, "lm.exe", "binaries/win_amd64/lm.exe"},
		{"windows arm64 uses amd64 build", Target{"windows", "arm64"}, "lm.exe", "binaries/win_amd64/lm.exe"},
		{"windows 386 uses amd64 build", Target{"windows", "386"}, "lm.exe", "binaries/win_amd64/lm.exe"},
		{"linux amd64", Target{"linux", "amd64"}, "lm", "binaries/linux_x86_64/lm"},
		{"darwin arm64", Target{"darwin", "arm64"}, "lm", "binaries/darwin_arm64/lm"},
		{"darwin amd64 falls back to x86_64", Target{"darwin", "amd64"}, "lm", "binaries/darwin_x86_64/lm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, err := Resolve(tt.target)
			if err != nil {
				t.Fatalf("Resolve(%v) error: %v", tt.target, err)
			}
			if art.ExecutableName != tt.wantName {
				t.Errorf("ExecutableName = %q, want %q", art.ExecutableName, tt.wantName)
			}
			if art.ResourcePath != tt.wantPath {
				t.Errorf("ResourcePath = %q, want %q", art.ResourcePath, tt.wantPath)
			}
		})
	}
}

func TestResolveUnsupported(t *testing.T) {
	tests := []struct {
		name   string
		target Target
	}{
		{"linux arm64", Target{"linux", "arm64"}},
		{"linux 386", Target{"linux", "386"}},
		{"freebsd amd64", Target{"freebsd", "amd64"}},
		{"js wasm", Target{"js", "wasm"}},
		{"empty", Target{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.target)
			if err == nil {
				t.Fatalf("Resolve(%v) should fail", tt.target)
			}

			var unsupported *UnsupportedError
			if !errors.As(err, &unsupported) {
				t.Fatalf("error type = %T, want *UnsupportedError", err)
			}
			if unsupported.OS != tt.target.OS || unsupported.Arch != tt.target.Arch {
				t.Errorf("error carries %s/%s, want %s/%s",
					unsupported.OS, unsupported.Arch, tt.target.OS, tt.target.Arch)
			}
			if !strings.Contains(err.Error(), tt.target.OS) {
				t.Errorf("message %q should name the OS", err.Error())
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	cur := Current()
	if cur.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", cur.OS, runtime.GOOS)
	}
	if cur.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", cur.Arch, runtime.GOARCH)
	}
}
