package cmd

import (
	"errors"
	"io"
	"strings"

	oerrors "github.com/sofa-framework/plugin-maker/internal/errors"
	"github.com/sofa-framework/plugin-maker/internal/output"
)

// Execute runs the root command with args and returns the process exit code.
// Report lines go to stdout; errors and logs go to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	output.SetWriters(stdout, stderr)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	output.Debug("command failed", "kind", ErrorKind(err))
	output.Errorln(formatError(err))

	// The usage text follows a wrong argument count or a bad flag.
	var uerr *usageError
	if errors.Is(err, oerrors.ErrArgumentCount) || errors.As(err, &uerr) {
		output.Errorln(strings.TrimRight(rootCmd.UsageString(), "\n"))
	}

	return ExitCodeFromError(err)
}

// formatError renders err for stderr. DetailError already carries its "Error:" prefix.
func formatError(err error) string {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return strings.TrimRight(detail.Error(), "\n")
	}
	return "Error: " + err.Error()
}

// usageError marks flag parsing failures.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }
