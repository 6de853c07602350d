// Package cli defines the git-pick command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atomicstack/git-pick/internal/config"
	"github.com/atomicstack/git-pick/internal/logging"
)

type rootOptions struct {
	logFile string
	trace   bool
	verbose bool
	footer  bool
	width   int
	height  int
}

// NewRootCmd creates the root cobra command. Flag defaults come from
// GIT_PICK_* environment variables so aliases can carry settings.
func NewRootCmd(version string) *cobra.Command {
	defaults := config.Load()
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "git-pick",
		Short:         "Interactive branch picker for git",
		Long:          "git-pick opens an interactive, filterable branch list and switches, deletes, or renames the selection.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.logFile, "log-file", defaults.Logging.FilePath, "path to the log file")
	pf.BoolVar(&opts.trace, "trace", defaults.Logging.Trace, "enable verbose JSON trace logging")
	pf.BoolVar(&opts.verbose, "verbose", defaults.UI.Verbose, "print success messages for actions")
	pf.BoolVar(&opts.footer, "footer", defaults.UI.ShowFooter, "enable footer hint row")
	pf.IntVar(&opts.width, "width", defaults.UI.Width, "viewport width in cells (0 uses terminal width)")
	pf.IntVar(&opts.height, "height", defaults.UI.Height, "viewport height in rows (0 uses terminal height)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if opts.width < 0 || opts.height < 0 {
			return &usageError{err: fmt.Errorf("width and height must be >= 0")}
		}
		logging.Configure(opts.logFile)
		logging.SetTraceEnabled(opts.trace)
		return nil
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(
		newSwitchCmd(opts, defaults),
		newDeleteCmd(opts, defaults),
		newRenameCmd(opts, defaults),
		newInstallCmd(),
		newVersionCmd(version),
	)
	return root
}

// Execute runs the command tree and returns the shell exit code.
func Execute(version string) int {
	err := NewRootCmd(version).Execute()
	if err != nil && !errors.Is(err, errCancelled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the git-pick version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "git-pick %s\n", version)
		},
	}
}
