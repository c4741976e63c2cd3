// Package launch sequences a launcher run.
//
// Pipeline phases, strictly in order:
//  1. Resolve the host platform to a bundled artifact
//  2. Locate the artifact in the distributable package
//  3. Select an installation directory and install the binary
//  4. Seed missing configuration files
//  5. Delegate to the installed binary
//
// Every phase failure aborts the run immediately; nothing is rolled back.
package launch

import (
	"context"
	"io/fs"
	"time"

	"github.com/lmprep/lmprep/internal/config"
	"github.com/lmprep/lmprep/internal/delegate"
	"github.com/lmprep/lmprep/internal/installer"
	"github.com/lmprep/lmprep/internal/log"
	"github.com/lmprep/lmprep/internal/platform"
	"github.com/lmprep/lmprep/internal/resource"
)

// Options holds everything a run needs. The zero value means a real run:
// detected platform, embedded package, standard directories, real
// processes. Tests fill the fields with fakes.
type Options struct {
	// Args are forwarded to the installed binary verbatim.
	Args []string
	// Package is the distributable payload. Nil means resource.Package().
	Package fs.FS
	// Target overrides host detection. Nil means platform.Current().
	Target *platform.Target
	// InstallDirs overrides the candidate list. Nil means installer.Candidates().
	InstallDirs []installer.Candidate
	// Seeds overrides the config destinations. Nil means config.DefaultSeeds().
	Seeds []config.Seed
	// Runner executes the installed binary. Nil means delegate.ExecRunner{}.
	Runner delegate.Runner
	// Timeout caps delegation. Zero means delegate.DefaultTimeout.
	Timeout time.Duration
}

// Provision runs the install phases without delegating: resolve, locate,
// install, seed. Returns the installed binary path.
func Provision(opts Options) (string, error) {
	target := platform.Current()
	if opts.Target != nil {
		target = *opts.Target
	}
	artifact, err := platform.Resolve(target)
	if err != nil {
		return "", err
	}
	log.Debugf("Resolved %s/%s -> %s", target.OS, target.Arch, artifact.ResourcePath)

	pkg := opts.Package
	if pkg == nil {
		pkg = resource.Package()
	}
	res, err := resource.Locate(pkg, artifact.ResourcePath)
	if err != nil {
		return "", err
	}

	candidates := opts.InstallDirs
	if candidates == nil {
		candidates = installer.Candidates()
	}
	dir, err := installer.SelectDir(candidates)
	if err != nil {
		return "", err
	}

	path, err := installer.Install(res, dir, artifact.ExecutableName)
	if err != nil {
		return "", err
	}
	log.Success("Successfully installed lm binary to " + path)

	tpl, err := config.LoadTemplate(pkg)
	if err != nil {
		return "", err
	}
	seeds := opts.Seeds
	if seeds == nil {
		if seeds, err = config.DefaultSeeds(); err != nil {
			return "", err
		}
	}
	if err := config.Bootstrap(tpl, seeds); err != nil {
		return "", err
	}

	return path, nil
}

// Execute provisions and then delegates to the installed binary.
func Execute(ctx context.Context, opts Options) (delegate.Result, error) {
	path, err := Provision(opts)
	if err != nil {
		return delegate.Result{}, err
	}

	// An interrupt during provisioning aborts here, before the child is
	// ever spawned.
	if err := ctx.Err(); err != nil {
		return delegate.Result{}, err
	}

	runner := opts.Runner
	if runner == nil {
		runner = delegate.ExecRunner{}
	}
	log.Debugf("Delegating to %s (%d args)", path, len(opts.Args))
	return runner.Run(ctx, path, opts.Args, delegate.Options{Timeout: opts.Timeout})
}
