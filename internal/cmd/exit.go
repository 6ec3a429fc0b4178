package cmd

import (
	"errors"

	oerrors "github.com/sofa-framework/plugin-maker/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the plugin tree was created (or planned) successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates any validation, configuration or filesystem failure.
	ExitGeneralError = 1
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitGeneralError
}

// ErrorKind names the failure class of err for debug logging.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, oerrors.ErrArgumentCount):
		return "argument count"
	case errors.Is(err, oerrors.ErrInvalidName):
		return "invalid name"
	case errors.Is(err, oerrors.ErrPathNotFound):
		return "path not found"
	case errors.Is(err, oerrors.ErrNameCollision):
		return "name collision"
	case errors.Is(err, oerrors.ErrIO):
		return "io"
	default:
		return "general"
	}
}
