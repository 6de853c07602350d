package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/atomicstack/git-pick/internal/app"
	"github.com/atomicstack/git-pick/internal/branch"
	"github.com/atomicstack/git-pick/internal/config"
	"github.com/atomicstack/git-pick/internal/git"
	"github.com/atomicstack/git-pick/internal/ui"
)

// pickerParams carries the per-subcommand behaviour of a picker session.
type pickerParams struct {
	title        string
	actionName   string
	action       branch.Action
	scope        git.Scope
	confirm      bool
	force        bool
	wrap         bool
	fuzzy        bool
	requireClean bool
}

func newSwitchCmd(opts *rootOptions, defaults config.Config) *cobra.Command {
	var remote, all bool
	params := pickerParams{
		title:        "switch branch",
		actionName:   "switch",
		action:       branch.CheckoutAction,
		requireClean: true,
	}
	cmd := &cobra.Command{
		Use:   "switch [query]",
		Short: "Pick a branch and switch to it",
		Long:  "Opens the branch list and switches the worktree to the selection. Picking a remote-tracking ref creates or reuses a local tracking branch.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.scope = git.ScopeLocal
			if all {
				params.scope = git.ScopeAll
			} else if remote {
				params.scope = git.ScopeRemote
			}
			return runPicker(opts, params, args)
		},
	}
	cmd.Flags().BoolVarP(&remote, "remote", "r", false, "list remote-tracking branches instead of local ones")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "list local and remote-tracking branches")
	addPickerFlags(cmd, &params, defaults)
	return cmd
}

func newDeleteCmd(opts *rootOptions, defaults config.Config) *cobra.Command {
	params := pickerParams{
		title:      "delete branch",
		actionName: "delete",
		action:     branch.DeleteAction,
		scope:      git.ScopeLocal,
		confirm:    true,
	}
	cmd := &cobra.Command{
		Use:   "delete [query]",
		Short: "Pick a local branch and delete it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(opts, params, args)
		},
	}
	cmd.Flags().BoolVarP(&params.force, "force", "f", false, "delete even when the branch is not fully merged")
	addPickerFlags(cmd, &params, defaults)
	return cmd
}

func newRenameCmd(opts *rootOptions, defaults config.Config) *cobra.Command {
	params := pickerParams{
		title:      "rename branch",
		actionName: "rename",
		action:     branch.RenameAction,
		scope:      git.ScopeLocal,
	}
	cmd := &cobra.Command{
		Use:   "rename [query]",
		Short: "Pick a local branch and rename it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(opts, params, args)
		},
	}
	addPickerFlags(cmd, &params, defaults)
	return cmd
}

func addPickerFlags(cmd *cobra.Command, params *pickerParams, defaults config.Config) {
	cmd.Flags().BoolVar(&params.wrap, "wrap", defaults.UI.Wrap, "wrap cursor movement at the list edges")
	cmd.Flags().BoolVar(&params.fuzzy, "fuzzy", defaults.UI.Fuzzy, "use fuzzy matching instead of substring matching")
}

func runPicker(opts *rootOptions, params pickerParams, args []string) error {
	if !stdoutIsTerminal() {
		return fmt.Errorf("standard output is not a terminal")
	}
	repo, err := git.Discover(".")
	if err != nil {
		return err
	}
	if params.requireClean {
		clean, err := repo.IsWorktreeClean(context.Background())
		if err != nil {
			return err
		}
		if !clean {
			return fmt.Errorf("%w: commit or stash your changes first", git.ErrDirtyWorktree)
		}
	}
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	outcome, err := app.Run(app.Config{
		Repo:         repo,
		Title:        params.title,
		Action:       params.action,
		ActionName:   params.actionName,
		Scope:        params.scope,
		Confirm:      params.confirm,
		Force:        params.force,
		Wrap:         params.wrap,
		Fuzzy:        params.fuzzy,
		Verbose:      opts.verbose,
		ShowFooter:   opts.footer,
		InitialQuery: query,
		Width:        opts.width,
		Height:       opts.height,
	})
	switch outcome {
	case ui.OutcomeCancelled:
		return errCancelled
	case ui.OutcomeFailed:
		if err != nil {
			return err
		}
		return fmt.Errorf("session failed")
	default:
		return err
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
