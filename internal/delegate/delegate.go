// Package delegate runs the installed lm binary and reports how it went.
//
// Output is captured, never streamed: the caller decides what to relay.
// A run has a hard timeout; hitting it cuts the run off and comes back
// as a flag on the result, not as an error.
package delegate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultTimeout is the hard ceiling on a delegated run.
const DefaultTimeout = 30 * time.Second

// pipeGrace bounds how long the output pipes may stay open once the
// child has exited or the deadline has fired. Background processes that
// inherited the pipes stop holding up the wait at that point; whatever
// they wrote before the close is kept.
const pipeGrace = time.Second

// Options adjusts a single run.
type Options struct {
	// Dir is the child working directory. Empty means inherit.
	Dir string
	// Env is the child environment. Nil means inherit.
	Env []string
	// Timeout caps the run. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Result describes a finished run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	// TimedOut means the run hit the timeout before completing. ExitCode
	// is 1 then; the flag, not the code, is the signal.
	TimedOut bool
}

// Runner executes a binary with arguments. The pipeline depends on this
// interface so tests can substitute a fake.
type Runner interface {
	Run(ctx context.Context, bin string, args []string, opts Options) (Result, error)
}

// ExecRunner runs real processes via os/exec.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run executes bin with args under the run timeout.
//
// Error cases are kept apart deliberately: cancellation of the parent ctx
// returns its error so the caller can report an interrupted run, the
// per-run timeout sets Result.TimedOut, and a nonzero child exit is not
// an error at all. The wait itself is bounded: once the child exits or
// the deadline fires, the pipes are forced closed after pipeGrace, so a
// descendant that inherited them cannot stall the launcher.
func (ExecRunner) Run(ctx context.Context, bin string, args []string, opts Options) (Result, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, bin, args...)
	cmd.Dir = opts.Dir
	if opts.Env != nil {
		cmd.Env = opts.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Without a wait delay, Run blocks on pipe EOF whenever the child
	// leaves a background process behind, long past the deadline.
	cmd.WaitDelay = pipeGrace

	runErr := cmd.Run()

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	// Parent cancellation outranks the timeout check: both contexts are
	// done when the caller was interrupted.
	if ctx.Err() != nil {
		return res, ctx.Err()
	}

	code, timedOut, err := outcome(runErr, runCtx.Err() == context.DeadlineExceeded)
	if err != nil {
		return res, fmt.Errorf("failed to run %s: %w", bin, err)
	}
	res.ExitCode = code
	res.TimedOut = timedOut
	return res, nil
}

// outcome maps the error from a finished cmd.Run onto result fields.
// deadlined reports whether the run deadline had expired. The nil case
// comes first: a child that exits cleanly is never a timeout, even when
// the deadline races its exit (killing an exited child produces no
// error, so runErr stays nil).
func outcome(runErr error, deadlined bool) (exitCode int, timedOut bool, err error) {
	switch {
	case runErr == nil:
		return 0, false, nil
	case deadlined:
		// Either the child was killed at the deadline, or it exited and
		// the pipes were held open past it. Both count as the timeout.
		return 1, true, nil
	case errors.Is(runErr, exec.ErrWaitDelay):
		// Clean exit within the deadline; an orphan kept the pipes open
		// past the grace. The child's status stands.
		return 0, false, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		return 0, false, runErr
	}
	code := exitErr.ExitCode()
	if code < 0 {
		// Killed by a signal outside our timeout path.
		code = 1
	}
	return code, false, nil
}
