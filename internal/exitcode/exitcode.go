package exitcode

import (
	"os"
	"strings"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ValidationFailed indicates structural validation findings blocked the operation
	ValidationFailed = 3

	// CycleDetected indicates a circular dependency aborted compilation
	CycleDetected = 4

	// NotFound indicates a missing plan or unknown task identifier
	NotFound = 5

	// Interrupted indicates the operation was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	errMsg := strings.ToLower(err.Error())

	// Circular dependencies
	if strings.Contains(errMsg, "circular dependency") {
		return CycleDetected
	}

	// Structural validation findings
	if strings.Contains(errMsg, "validation failed") {
		return ValidationFailed
	}

	// Missing plans and unknown identifiers
	if strings.Contains(errMsg, "not found") {
		return NotFound
	}

	// Usage problems surfaced by cobra
	if strings.Contains(errMsg, "unknown flag") || strings.Contains(errMsg, "unknown command") ||
		strings.Contains(errMsg, "accepts") || strings.Contains(errMsg, "requires") {
		return UsageError
	}

	return GeneralError
}
