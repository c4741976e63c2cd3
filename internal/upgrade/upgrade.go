// Package upgrade self-updates the lmprep launcher from GitHub releases.
//
// Only the launcher updates this way; the lm binary it installs is
// refreshed from the embedded payload on every run and never goes
// through here.
package upgrade

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/creativeprojects/go-selfupdate"
)

// Slug is the GitHub repository releases are fetched from.
const Slug = "lmprep/lmprep"

// UpdateInfo describes a release newer than the running version.
type UpdateInfo struct {
	Version string
	Notes   string
	release *selfupdate.Release
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}
	return updater, nil
}

// CheckUpdate looks for a release newer than currentVersion. A nil
// UpdateInfo with nil error means already up to date.
func CheckUpdate(ctx context.Context, currentVersion string) (*UpdateInfo, error) {
	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(Slug))
	if err != nil {
		return nil, fmt.Errorf("failed to detect latest version: %w", err)
	}
	if !found {
		return nil, nil
	}

	// "dev" builds always take the update so development installs can
	// move onto releases.
	if currentVersion != "dev" && !latest.GreaterThan(currentVersion) {
		return nil, nil
	}

	return &UpdateInfo{
		Version: latest.Version(),
		Notes:   latest.ReleaseNotes,
		release: latest,
	}, nil
}

// PerformUpdate replaces the running lmprep executable with the release
// described by info.
func PerformUpdate(ctx context.Context, info *UpdateInfo) error {
	if info == nil || info.release == nil {
		return fmt.Errorf("no update information available")
	}

	updater, err := newUpdater()
	if err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to determine executable path: %w", err)
	}

	if err := updater.UpdateTo(ctx, info.release, exe); err != nil {
		return fmt.Errorf("failed to apply update: %w", err)
	}
	return nil
}

// VersionString returns a formatted version string with optional build metadata.
func VersionString(version, commit, date string) string {
	s := "lmprep " + version
	if commit != "" {
		short := commit
		if len(short) > 7 {
			short = short[:7]
		}
		s += " (" + short + ")"
	}
	if date != "" {
		s += " built " + date
	}
	s += " " + runtime.GOOS + "/" + runtime.GOARCH
	return s
}
