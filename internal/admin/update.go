package admin

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmprep/lmprep/internal/log"
	"github.com/lmprep/lmprep/internal/upgrade"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update lmprep to the latest version",
	Long: `Checks GitHub releases for a newer lmprep and optionally applies it.

The installed lm binary is not affected: it is refreshed from the
bundled payload on every run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		log.Dim("Checking for updates...")

		info, err := upgrade.CheckUpdate(cmd.Context(), Version)
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if info == nil {
			log.Success("Already up to date (v" + Version + ")")
			return nil
		}

		log.Infof("New version available: %s -> %s", Version, info.Version)
		if notes := strings.TrimSpace(info.Notes); notes != "" {
			log.Newline()
			log.Dim(notes)
			log.Newline()
		}

		if !force {
			log.Info("Run with --force to apply the update automatically.")
			return nil
		}

		log.Dim("Downloading and applying update...")
		if err := upgrade.PerformUpdate(cmd.Context(), info); err != nil {
			return fmt.Errorf("update failed: %w", err)
		}

		log.Success("Updated to v" + info.Version)
		return nil
	},
}

func init() {
	updateCmd.Flags().Bool("force", false, "Apply update without confirmation")
}
