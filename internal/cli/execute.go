package cli

import (
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/ui"
	"github.com/spf13/cobra"
)

// Exit statuses
const (
	ExitOK     = 0
	ExitError  = 1
	ExitDenied = 2
)

// Execute runs the command line and returns the process exit status
func Execute(args []string) int {
	rootCmd, a := newRootCmd()
	rootCmd.SetArgs(args)
	return run(rootCmd, a)
}

func run(rootCmd *cobra.Command, a *app) int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}
	reportError(rootCmd, a, err)
	if errors.IsErrorCode(err, errors.ErrSimDenied) {
		return ExitDenied
	}
	return ExitError
}

// reportError writes err to standard error in the output format of the
// invocation. When the configuration never loaded the --format flag is
// used as given.
func reportError(rootCmd *cobra.Command, a *app, err error) {
	format := a.outputFormat
	if a.cfg == nil {
		if f, parseErr := ui.ParseFormat(a.format); parseErr == nil {
			format = f
		}
	}

	renderer, rendErr := ui.NewRenderer(format, rootCmd.ErrOrStderr())
	if rendErr == nil {
		rendErr = renderer.RenderError(err)
	}
	if rendErr != nil {
		rootCmd.PrintErrln("Error:", err)
	}
}
