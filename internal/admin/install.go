package admin

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lmprep/lmprep/internal/launch"
	"github.com/lmprep/lmprep/internal/log"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the lm binary and seed configuration files",
	Long: `Resolve the bundled binary for this platform, copy it into the first
writable installation directory, and create any missing configuration
files.

Running lm provisions the same way on every invocation; this command
does it once without delegating to the installed binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := launch.Provision(launch.Options{})
		if err != nil {
			return err
		}

		if dir := filepath.Dir(path); !onPath(dir) {
			log.Warnf("%s is not on your PATH", dir)
		}
		log.Newline()
		log.Success("Install complete")
		return nil
	},
}
