// Package cli is the lm launcher entry point.
//
// The launcher owns no flags: every argument is forwarded verbatim to the
// installed binary, --help and -- included. Around the child it adds only
// provisioning, the run timeout, and faithful reporting of what happened.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lmprep/lmprep/internal/launch"
	"github.com/lmprep/lmprep/internal/log"
)

// DebugEnv enables debug logging for a launcher run. The launcher parses
// no flags, so the environment is the only switch.
const DebugEnv = "LMPREP_DEBUG"

// Execute runs the launcher and exits with the resulting code.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes one full launcher invocation: provision, delegate, report.
// The returned code is 0 on success, 1 on any launcher failure (including
// timeout and cancellation), and the child's own code when the child
// exited nonzero.
func Run(args []string, stdout, stderr io.Writer) int {
	return run(args, stdout, stderr, launch.Options{})
}

func run(args []string, stdout, stderr io.Writer, opts launch.Options) int {
	log.SetWriters(stdout, stderr)
	if os.Getenv(DebugEnv) != "" {
		log.SetLevel(log.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts.Args = args
	res, err := launch.Execute(ctx, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "\nOperation cancelled by user")
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if res.TimedOut {
		fmt.Fprintln(stderr, "\nError: Command timed out after 30 seconds")
		return 1
	}

	if res.ExitCode == 0 {
		log.Success("lm completed successfully")
	}
	if res.Stdout != "" {
		relay(stdout, res.Stdout)
	}
	if res.Stderr != "" {
		relay(stderr, res.Stderr)
	}
	return res.ExitCode
}

// relay writes captured child output, guaranteeing a trailing newline so
// following shell prompts land on their own line.
func relay(w io.Writer, s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	io.WriteString(w, s)
}
