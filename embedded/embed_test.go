package embedded

import (
	"io/fs"
	"strings"
	"testing"
)

func TestTemplateEmbedded(t *testing.T) {
	data, err := fs.ReadFile(Files(), "default_config.yml")
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("template is empty")
	}

	for _, key := range []string{"allowed_extensions", "delimiter", "subfolder", "ignored_directories", "respect_gitignore"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("template missing %q", key)
		}
	}
}

func TestBinariesDirEmbedded(t *testing.T) {
	// The directory must exist even when no release artifacts are present,
	// so binary lookups fail as missing resources rather than bad paths.
	if _, err := fs.ReadDir(Files(), "binaries"); err != nil {
		t.Fatalf("read binaries dir: %v", err)
	}
}
