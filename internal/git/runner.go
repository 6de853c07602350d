// Package git wraps the git binary and go-git for the repository operations
// the pickers need: ref enumeration, worktree checks, and the checkout,
// delete, and rename mutations.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/atomicstack/git-pick/internal/logging/events"
)

// DefaultCommandTimeout bounds a single git invocation.
const DefaultCommandTimeout = 30 * time.Second

// Runner executes git commands. Implementations are the real binary and a
// mock that replays canned output in tests.
type Runner interface {
	// Run executes git with the given arguments and returns trimmed stdout.
	// Non-zero exits produce a *CommandError.
	Run(ctx context.Context, args ...string) (string, error)

	// Try executes git and treats exit status 1 as a negative answer rather
	// than a failure: it returns ok=false with a nil error. Other non-zero
	// statuses are reported as errors.
	Try(ctx context.Context, args ...string) (out string, ok bool, err error)
}

// CommandRunner invokes the git binary in a fixed working directory.
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner returns a runner rooted at dir. An empty dir uses the
// process working directory.
func NewCommandRunner(dir string) *CommandRunner {
	return &CommandRunner{workingDir: dir}
}

func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	out, _, err := r.exec(ctx, false, args...)
	return out, err
}

func (r *CommandRunner) Try(ctx context.Context, args ...string) (string, bool, error) {
	return r.exec(ctx, true, args...)
}

func (r *CommandRunner) exec(ctx context.Context, tolerateOne bool, args ...string) (string, bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	events.Git.Command(args)

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	if err != nil {
		var exitErr *exec.ExitError
		if tolerateOne && errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			events.Git.Denied(args)
			return out, false, nil
		}
		cmdErr := &CommandError{
			Args:   append([]string(nil), args...),
			Stdout: out,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
		events.Git.Error(args, cmdErr)
		return "", false, cmdErr
	}
	events.Git.Success(args)
	return out, true, nil
}

// Lines runs a git command and splits its output into non-empty lines.
func Lines(ctx context.Context, r Runner, args ...string) ([]string, error) {
	out, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	raw := strings.Split(out, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines, nil
}

// Succeeds runs a git command and reports whether it exited zero, treating
// exit status 1 as a plain "no".
func Succeeds(ctx context.Context, r Runner, args ...string) (bool, error) {
	_, ok, err := r.Try(ctx, args...)
	return ok, err
}
