package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Checkout switches the worktree to the named local branch. Git leaves the
// worktree untouched when the switch fails, so a CheckoutError is always
// recoverable.
func (r *Repository) Checkout(ctx context.Context, name string) error {
	if _, err := r.runner.Run(ctx, "switch", name); err != nil {
		return &CheckoutError{Ref: name, Err: err}
	}
	return nil
}

// CheckoutRemote switches to the local counterpart of a remote-tracking ref
// such as "origin/feature". An existing local branch is reused only when it
// already tracks the selected ref; otherwise a tracking branch is created.
func (r *Repository) CheckoutRemote(ctx context.Context, remoteRef string) error {
	_, local, found := strings.Cut(remoteRef, "/")
	if !found || local == "" {
		return &CheckoutError{Ref: remoteRef, Err: fmt.Errorf("%q is not a remote ref", remoteRef)}
	}

	exists, err := r.RefExists(ctx, "refs/heads/"+local)
	if err != nil {
		return &CheckoutError{Ref: remoteRef, Err: err}
	}
	if exists {
		upstream, ok, err := r.Upstream(ctx, local)
		if err != nil {
			return &CheckoutError{Ref: remoteRef, Err: err}
		}
		if !ok || upstream != remoteRef {
			return &UpstreamMismatchError{Local: local, Wanted: remoteRef, Tracking: upstream}
		}
		return r.Checkout(ctx, local)
	}

	if _, err := r.runner.Run(ctx, "switch", "--track", remoteRef, "--create", local); err != nil {
		return &CheckoutError{Ref: remoteRef, Err: err}
	}
	return nil
}

// Delete removes a local branch. The currently checked-out branch is
// refused before git runs. force uses -D to discard unmerged work.
func (r *Repository) Delete(ctx context.Context, name string, force bool) error {
	current, err := r.CurrentBranch(ctx)
	if err != nil && !errors.Is(err, ErrDetachedHead) {
		return err
	}
	if current != "" && name == current {
		return &ProtectedRefError{Ref: name}
	}
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := r.runner.Run(ctx, "branch", flag, name); err != nil {
		return err
	}
	return nil
}

// Rename moves a local branch to a new name.
func (r *Repository) Rename(ctx context.Context, oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("new branch name is empty")
	}
	if _, err := r.runner.Run(ctx, "branch", "-m", oldName, newName); err != nil {
		return err
	}
	return nil
}

// AliasScope selects which git config file receives installed aliases.
type AliasScope string

const (
	AliasScopeUser   AliasScope = "--global"
	AliasScopeSystem AliasScope = "--system"
	AliasScopeLocal  AliasScope = "--local"
)

// Alias binds a git alias name to one of this binary's subcommands.
type Alias struct {
	Name       string
	Subcommand string
}

// DefaultAliases lists the aliases install registers.
func DefaultAliases() []Alias {
	return []Alias{
		{Name: "iswitch", Subcommand: "switch"},
		{Name: "idelete", Subcommand: "delete"},
		{Name: "irename", Subcommand: "rename"},
	}
}

// InstallAliases writes alias.<name> entries invoking exePath at the given
// config scope. The path is normalised to forward slashes; git config
// expects unix-style paths even on Windows.
func InstallAliases(ctx context.Context, runner Runner, scope AliasScope, exePath string, aliases []Alias) error {
	path := filepath.ToSlash(exePath)
	for _, alias := range aliases {
		key := "alias." + alias.Name
		value := fmt.Sprintf("!%s %s", path, alias.Subcommand)
		if _, err := runner.Run(ctx, "config", string(scope), key, value); err != nil {
			return err
		}
	}
	return nil
}
