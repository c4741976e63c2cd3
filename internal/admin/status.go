package admin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/lmprep/lmprep/internal/config"
	"github.com/lmprep/lmprep/internal/installer"
	"github.com/lmprep/lmprep/internal/log"
	"github.com/lmprep/lmprep/internal/platform"
	"github.com/lmprep/lmprep/internal/resource"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installation and configuration state",
	Long: `Report what the launcher would work with on this host: the resolved
platform artifact, the distributable package contents, the installed
binary, and both configuration files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printStatus()
		return nil
	},
}

func printStatus() {
	target := platform.Current()
	pkg := resource.Package()
	name := executableName()

	log.Bold("Platform")
	log.Infof("  host:      %s/%s", target.OS, target.Arch)
	artifact, resolveErr := platform.Resolve(target)
	if resolveErr != nil {
		log.Warn("  " + resolveErr.Error())
	} else {
		log.Info("  artifact:  " + artifact.ResourcePath)
	}
	log.Newline()

	log.Bold("Package")
	log.Info("  source:    " + packageSource())
	if resolveErr == nil {
		log.Info("  binary:    " + resourceLine(pkg, artifact.ResourcePath))
	}
	log.Info("  template:  " + templateLine(pkg))
	log.Newline()

	log.Bold("Install")
	candidates := installer.Candidates()
	for _, c := range candidates {
		log.Info("  candidate: " + c.Dir)
	}
	log.Info("  installed: " + installedLine(candidates, name))
	log.Newline()

	log.Bold("Configuration")
	seeds, err := config.DefaultSeeds()
	if err != nil {
		log.Warn("  " + err.Error())
		return
	}
	for _, seed := range seeds {
		log.Infof("  %-7s %s", seed.Scope.String()+":", configLine(seed.Path))
	}
}

// packageSource names where resources come from: the embedded payload or
// an override directory.
func packageSource() string {
	if dir := os.Getenv(resource.PackageDirEnv); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return "directory " + dir
		}
	}
	return "embedded payload"
}

func resourceLine(pkg fs.FS, path string) string {
	res, err := resource.Locate(pkg, path)
	if err != nil {
		return "missing"
	}
	return fmt.Sprintf("present (%s)", units.HumanSize(float64(res.Size)))
}

func installedLine(candidates []installer.Candidate, name string) string {
	path := installer.InstalledPath(candidates, name)
	if path == "" {
		return "not installed"
	}
	info, err := os.Stat(path)
	if err != nil {
		return path
	}
	return fmt.Sprintf("%s (%s, %s)", path,
		units.HumanSize(float64(info.Size())), info.ModTime().Format("2006-01-02 15:04"))
}

// templateLine reports the bundled template: size plus a summary of the
// defaults it would seed.
func templateLine(pkg fs.FS) string {
	tpl, err := config.LoadTemplate(pkg)
	if err != nil {
		return "missing"
	}
	settings, err := tpl.Settings()
	if err != nil {
		return "present (invalid yaml)"
	}
	line := "present (" + units.HumanSize(float64(len(tpl.Bytes())))
	if summary := settingsSummary(settings); summary != "" {
		line += ", " + summary
	}
	return line + ")"
}

func configLine(path string) string {
	settings, err := config.Load(path)
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return path + " (absent)"
	case errors.As(err, &pathErr):
		return fmt.Sprintf("%s (unreadable: %v)", path, err)
	case err != nil:
		return path + " (invalid yaml)"
	}
	summary := settingsSummary(settings)
	if summary == "" {
		return path + " (present)"
	}
	return fmt.Sprintf("%s (%s)", path, summary)
}

// settingsSummary describes parsed settings in a few words, empty when
// nothing worth naming is set.
func settingsSummary(s config.Settings) string {
	var parts []string
	if n := len(s.AllowedExtensions); n > 0 {
		parts = append(parts, fmt.Sprintf("%d extensions", n))
	}
	if s.Subfolder != "" {
		parts = append(parts, "subfolder "+s.Subfolder)
	}
	return strings.Join(parts, ", ")
}
