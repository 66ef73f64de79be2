package cli

import "errors"

// Exit codes for snifftrap.
const (
	// ExitSuccess indicates successful execution with no violations.
	ExitSuccess = 0

	// ExitViolations indicates the check completed and found violations.
	ExitViolations = 1

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrViolationsFound is returned when the check found API violations.
// It carries no message for the user; it only selects the exit code.
var ErrViolationsFound = errors.New("violations found")

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrViolationsFound):
		return ExitViolations
	default:
		return ExitInternalError
	}
}
