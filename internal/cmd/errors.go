package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	oerrors "github.com/freshmaven/cli/internal/errors"
	"github.com/freshmaven/cli/internal/output"
)

// ExitCodeFromError determines the exit code for an error returned by a command.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, oerrors.ErrQuit) {
		return ExitSuccess
	}
	return ExitGeneralError
}

// reportError prints err as an [ERROR] line and marks it as printed so
// main does not print it again.
func reportError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return err
	}

	output.Error(err.Error())

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Debug("Error details.", "type", detail.Type)
	}
	return &oerrors.ExitError{Err: err, Code: ExitCodeFromError(err), Printed: true}
}

// Execute runs root and returns the process exit code. Errors no command
// printed, such as flag parsing errors, are written as [ERROR] lines to
// the command's output.
func Execute(root *cobra.Command) int {
	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		// flag errors return before PersistentPreRun sets up logging
		output.SetupLogging(output.LogConfig{
			Verbose: output.IsVerbose(),
			Writer:  root.OutOrStdout(),
		})
		err = reportError(err)
	}

	code := ExitCodeFromError(err)
	output.Debug("Exit.", "code", code, "status", ExitCodeName(code))
	return code
}
