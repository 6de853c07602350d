package git

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common repository conditions.
var (
	// ErrNotARepository indicates the working directory is not inside a git
	// working tree.
	ErrNotARepository = errors.New("not a git repository")

	// ErrProtectedRef indicates an operation was refused because it targets
	// the currently checked-out branch.
	ErrProtectedRef = errors.New("ref is protected")

	// ErrDirtyWorktree indicates uncommitted changes block a branch switch.
	ErrDirtyWorktree = errors.New("worktree has uncommitted changes")

	// ErrDetachedHead indicates HEAD does not point at a branch.
	ErrDetachedHead = errors.New("not on a branch")
)

// CommandError carries the full context of a failed git invocation.
type CommandError struct {
	Args   []string
	Stdout string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(e.Stdout)
	}
	if detail == "" {
		return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), detail)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CheckoutError reports a failed branch switch. Git guarantees the worktree
// is untouched when the switch fails, so this is always recoverable.
type CheckoutError struct {
	Ref string
	Err error
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout %s: %v", e.Ref, e.Err)
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// ProtectedRefError reports a refused destructive operation on the
// currently checked-out branch.
type ProtectedRefError struct {
	Ref string
}

func (e *ProtectedRefError) Error() string {
	return fmt.Sprintf("refusing to delete the checked-out branch %s", e.Ref)
}

// Is matches ErrProtectedRef.
func (e *ProtectedRefError) Is(target error) bool {
	return target == ErrProtectedRef
}

// UpstreamMismatchError reports a remote checkout that would collide with a
// local branch tracking a different upstream.
type UpstreamMismatchError struct {
	Local    string
	Wanted   string
	Tracking string
}

func (e *UpstreamMismatchError) Error() string {
	if e.Tracking == "" {
		return fmt.Sprintf("branch %s already exists but tracks no upstream (expected %s)", e.Local, e.Wanted)
	}
	return fmt.Sprintf("branch %s already exists but tracks %s (expected %s)", e.Local, e.Tracking, e.Wanted)
}
