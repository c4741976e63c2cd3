package admin

import (
	"github.com/spf13/cobra"

	"github.com/lmprep/lmprep/internal/log"
	"github.com/lmprep/lmprep/internal/upgrade"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show detailed version information",
	Run: func(cmd *cobra.Command, args []string) {
		log.Info(upgrade.VersionString(Version, Commit, Date))
	},
}
