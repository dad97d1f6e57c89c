// Package cmd provides command implementations for fresh-maven-project.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates help, version, quit or a finished generation.
	ExitSuccess = 0

	// ExitGeneralError indicates a validation, i/o or resolution failure.
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
