package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atomicstack/git-pick/internal/git"
)

// aliasRunner builds the runner used to write git config; tests swap it
// for a mock.
var aliasRunner = func(dir string) git.Runner {
	return git.NewCommandRunner(dir)
}

// executablePath resolves the path written into the aliases.
var executablePath = os.Executable

func newInstallCmd() *cobra.Command {
	var user, system, local bool
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the iswitch, idelete and irename git aliases",
		Long:  "Writes alias.iswitch, alias.idelete and alias.irename entries invoking this binary into the selected git config scope.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := aliasScope(user, system, local)
			if err != nil {
				return err
			}
			exe, err := executablePath()
			if err != nil {
				return fmt.Errorf("resolve executable path: %w", err)
			}
			runner := aliasRunner(".")
			if err := git.InstallAliases(cmd.Context(), runner, scope, exe, git.DefaultAliases()); err != nil {
				return err
			}
			for _, alias := range git.DefaultAliases() {
				fmt.Fprintf(cmd.OutOrStdout(), "installed alias.%s -> %s %s\n", alias.Name, exe, alias.Subcommand)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&user, "user", false, "install into the user (global) git config (default)")
	cmd.Flags().BoolVar(&system, "system", false, "install into the system git config")
	cmd.Flags().BoolVar(&local, "local", false, "install into the current repository's git config")
	return cmd
}

func aliasScope(user, system, local bool) (git.AliasScope, error) {
	count := 0
	for _, set := range []bool{user, system, local} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", &usageError{err: fmt.Errorf("--user, --system and --local are mutually exclusive")}
	}
	switch {
	case system:
		return git.AliasScopeSystem, nil
	case local:
		return git.AliasScopeLocal, nil
	default:
		return git.AliasScopeUser, nil
	}
}
