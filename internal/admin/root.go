// Package admin implements the lmprep maintenance CLI.
//
// The lm launcher forwards every argument to the installed binary and so
// carries no commands of its own; provisioning, inspection, and removal
// live here instead.
package admin

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lmprep/lmprep/internal/log"
)

// Version, Commit, and Date are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

var rootCmd = &cobra.Command{
	Use:   "lmprep",
	Short: "Manage the lm launcher installation",
	Long: `lmprep maintains the lm installation: the platform binary, the
configuration files, and the launcher itself.

Day-to-day use goes through lm, which provisions on demand; these
commands exist for inspection and explicit maintenance.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("lmprep v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.BoolP("quiet", "q", false, "Suppress all output (exit code only)")
	pf.BoolP("debug", "d", false, "Show debug output")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		applyOutputFlags(cmd.Flags())
	}

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
