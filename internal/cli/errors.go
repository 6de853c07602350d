package cli

import (
	"errors"

	"github.com/atomicstack/git-pick/internal/git"
)

// Exit codes reported to the shell. 130 matches the convention for an
// interrupted interactive program, so aliases can distinguish "picked
// nothing" from "the action failed".
const (
	ExitSuccess   = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitNoRepo    = 3
	ExitCancelled = 130
)

// errCancelled marks a session the user left without selecting anything.
var errCancelled = errors.New("cancelled")

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps an error from Execute to a shell exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, errCancelled) {
		return ExitCancelled
	}
	var usage *usageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	if errors.Is(err, git.ErrNotARepository) {
		return ExitNoRepo
	}
	return ExitFailure
}
