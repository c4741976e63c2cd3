package admin

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/lmprep/lmprep/internal/config"
	"github.com/lmprep/lmprep/internal/installer"
	"github.com/lmprep/lmprep/internal/log"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the installed lm binary and configuration files",
	Long: `Remove everything the launcher has materialized:
  - The installed lm binary
  - The global configuration (~/.lmprep.yml)
  - The local configuration (./.lmprep.yml)

The lmprep binary itself cannot be removed automatically.
Its location will be printed so you can remove it manually.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		targets, err := uninstallTargets()
		if err != nil {
			return err
		}

		if !yes {
			log.Yellow("This will remove:")
			for _, t := range targets {
				log.Info("  - " + t.desc)
			}
			log.Newline()
			log.Yellow("Proceed? [y/N] ")

			var answer string
			fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				log.Info("Aborted.")
				return nil
			}
		}

		var freed int64
		removed := 0
		for _, t := range targets {
			info, err := os.Stat(t.path)
			if err != nil {
				continue
			}
			log.Dim("Removing " + t.path + "...")
			if err := os.Remove(t.path); err != nil {
				log.Warnf("Failed to remove %s: %v", t.path, err)
				continue
			}
			freed += info.Size()
			removed++
		}

		log.Newline()
		if removed == 0 {
			log.Info("Nothing to remove.")
		} else {
			log.Success(fmt.Sprintf("Uninstall complete (%d files, %s freed)",
				removed, units.HumanSize(float64(freed))))
		}

		if exe, err := os.Executable(); err == nil {
			log.Dim(fmt.Sprintf("To remove this binary: rm %s", exe))
		}
		return nil
	},
}

func init() {
	uninstallCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}

type uninstallTarget struct {
	path string
	desc string
}

// uninstallTargets lists the files uninstall would remove, whether or
// not they currently exist.
func uninstallTargets() ([]uninstallTarget, error) {
	var targets []uninstallTarget

	if path := installer.InstalledPath(installer.Candidates(), executableName()); path != "" {
		targets = append(targets, uninstallTarget{path, "Installed binary (" + path + ")"})
	}

	seeds, err := config.DefaultSeeds()
	if err != nil {
		return nil, err
	}
	for _, seed := range seeds {
		targets = append(targets, uninstallTarget{
			seed.Path,
			seed.Scope.String() + " configuration (" + seed.Path + ")",
		})
	}
	return targets, nil
}
