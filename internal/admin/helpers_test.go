package admin

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/pflag"

	"github.com/lmprep/lmprep/internal/installer"
	"github.com/lmprep/lmprep/internal/log"
	"github.com/lmprep/lmprep/internal/resource"
)

func TestOnPath(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("PATH", "/usr/local/bin"+sep+sep+"/opt/tools/")

	tests := []struct {
		name string
		dir  string
		want bool
	}{
		{"listed directory", "/usr/local/bin", true},
		{"trailing slash normalized", "/opt/tools", true},
		{"unlisted directory", "/home/user/bin", false},
		{"empty entry does not match dot", ".", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := onPath(tt.dir); got != tt.want {
				t.Errorf("onPath(%q) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestApplyOutputFlags(t *testing.T) {
	restore := func() {
		log.DisableQuietMode()
		log.SetLevel(log.LevelInfo)
	}

	t.Run("debug raises level", func(t *testing.T) {
		defer restore()
		f := pflag.NewFlagSet("test", pflag.ContinueOnError)
		f.Bool("quiet", false, "")
		f.Bool("debug", true, "")
		applyOutputFlags(f)
		if log.GetLevel() != log.LevelDebug {
			t.Errorf("level = %v, want LevelDebug", log.GetLevel())
		}
		if log.IsQuiet() {
			t.Error("quiet mode should stay off")
		}
	})

	t.Run("quiet wins over debug", func(t *testing.T) {
		defer restore()
		f := pflag.NewFlagSet("test", pflag.ContinueOnError)
		f.Bool("quiet", true, "")
		f.Bool("debug", true, "")
		applyOutputFlags(f)
		if !log.IsQuiet() {
			t.Error("quiet mode should be on")
		}
		if log.GetLevel() == log.LevelDebug {
			t.Error("debug level should not apply in quiet mode")
		}
	})

	t.Run("defaults change nothing", func(t *testing.T) {
		defer restore()
		f := pflag.NewFlagSet("test", pflag.ContinueOnError)
		f.Bool("quiet", false, "")
		f.Bool("debug", false, "")
		applyOutputFlags(f)
		if log.IsQuiet() || log.GetLevel() != log.LevelInfo {
			t.Error("flags at defaults should leave logger untouched")
		}
	})
}

func TestExecutableName(t *testing.T) {
	name := executableName()
	if name == "" {
		t.Fatal("executableName() returned empty string")
	}
	if runtime.GOOS == "windows" && name != "lm.exe" {
		t.Errorf("executableName() = %q on windows, want lm.exe", name)
	}
	if runtime.GOOS != "windows" && name != "lm" {
		t.Errorf("executableName() = %q, want lm", name)
	}
}

func TestPackageSource(t *testing.T) {
	t.Run("embedded by default", func(t *testing.T) {
		t.Setenv(resource.PackageDirEnv, "")
		if got := packageSource(); got != "embedded payload" {
			t.Errorf("packageSource() = %q", got)
		}
	})

	t.Run("override directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(resource.PackageDirEnv, dir)
		if got := packageSource(); got != "directory "+dir {
			t.Errorf("packageSource() = %q", got)
		}
	})

	t.Run("invalid override falls back", func(t *testing.T) {
		t.Setenv(resource.PackageDirEnv, filepath.Join(t.TempDir(), "missing"))
		if got := packageSource(); got != "embedded payload" {
			t.Errorf("packageSource() = %q", got)
		}
	})
}

func TestResourceLine(t *testing.T) {
	pkg := fstest.MapFS{
		"binaries/linux_x86_64/lm": &fstest.MapFile{Data: make([]byte, 2048)},
	}

	if got := resourceLine(pkg, "binaries/linux_x86_64/lm"); !strings.HasPrefix(got, "present") {
		t.Errorf("resourceLine() = %q, want present", got)
	}
	if got := resourceLine(pkg, "binaries/win_amd64/lm.exe"); got != "missing" {
		t.Errorf("resourceLine() = %q, want missing", got)
	}
}

func TestTemplateLine(t *testing.T) {
	t.Run("summarizes defaults", func(t *testing.T) {
		pkg := fstest.MapFS{
			"default_config.yml": &fstest.MapFile{
				Data: []byte("allowed_extensions:\n  - py\n  - go\nsubfolder: context\n"),
			},
		}
		got := templateLine(pkg)
		if !strings.HasPrefix(got, "present") {
			t.Errorf("templateLine() = %q, want present", got)
		}
		if !strings.Contains(got, "2 extensions") {
			t.Errorf("templateLine() = %q, want extension count", got)
		}
		if !strings.Contains(got, "subfolder context") {
			t.Errorf("templateLine() = %q, want subfolder", got)
		}
	})

	t.Run("missing template", func(t *testing.T) {
		if got := templateLine(fstest.MapFS{}); got != "missing" {
			t.Errorf("templateLine() = %q, want missing", got)
		}
	})

	t.Run("unparseable template", func(t *testing.T) {
		pkg := fstest.MapFS{
			"default_config.yml": &fstest.MapFile{Data: []byte("delimiter: [unclosed")},
		}
		if got := templateLine(pkg); got != "present (invalid yaml)" {
			t.Errorf("templateLine() = %q", got)
		}
	})
}

func TestInstalledLine(t *testing.T) {
	dir := t.TempDir()
	candidates := []installer.Candidate{{Dir: dir}}

	if got := installedLine(candidates, "lm"); got != "not installed" {
		t.Errorf("installedLine() = %q, want not installed", got)
	}

	path := filepath.Join(dir, "lm")
	if err := os.WriteFile(path, []byte("binary"), 0o755); err != nil {
		t.Fatal(err)
	}
	got := installedLine(candidates, "lm")
	if !strings.HasPrefix(got, path) {
		t.Errorf("installedLine() = %q, want %q prefix", got, path)
	}
	if !strings.Contains(got, "B") {
		t.Errorf("installedLine() = %q, want human readable size", got)
	}
}

func TestConfigLine(t *testing.T) {
	dir := t.TempDir()

	t.Run("absent", func(t *testing.T) {
		path := filepath.Join(dir, "absent.yml")
		if got := configLine(path); got != path+" (absent)" {
			t.Errorf("configLine() = %q", got)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yml")
		if err := os.WriteFile(path, []byte("delimiter: [unclosed"), 0o644); err != nil {
			t.Fatal(err)
		}
		if got := configLine(path); got != path+" (invalid yaml)" {
			t.Errorf("configLine() = %q", got)
		}
	})

	t.Run("unreadable", func(t *testing.T) {
		// A directory at the path fails the read without being absent.
		got := configLine(dir)
		if !strings.Contains(got, "unreadable") {
			t.Errorf("configLine() = %q, want unreadable", got)
		}
	})

	t.Run("empty settings", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yml")
		if err := os.WriteFile(path, []byte("zip: true\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if got := configLine(path); got != path+" (present)" {
			t.Errorf("configLine() = %q", got)
		}
	})

	t.Run("summarizes settings", func(t *testing.T) {
		path := filepath.Join(dir, "full.yml")
		content := "allowed_extensions:\n  - py\n  - go\nsubfolder: context\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		got := configLine(path)
		if !strings.Contains(got, "2 extensions") {
			t.Errorf("configLine() = %q, want extension count", got)
		}
		if !strings.Contains(got, "subfolder context") {
			t.Errorf("configLine() = %q, want subfolder", got)
		}
	})
}
