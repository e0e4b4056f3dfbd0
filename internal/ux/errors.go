package ux

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// File not found errors
	if strings.Contains(errMsg, "no such file or directory") {
		if strings.Contains(errMsg, "yadasmith.json") {
			return NewErrorWithSuggestion(err,
				"Compile a plan by running 'dpsmith compile'")
		}
		return NewErrorWithSuggestion(err,
			"Check the --root and --dir flags point at your project")
	}

	// Validation errors
	if strings.Contains(errMsg, "validation failed") {
		return NewErrorWithSuggestion(err,
			"Fix the findings above, then run 'dpsmith validate' to verify")
	}

	// Cycle errors
	if strings.Contains(errMsg, "circular dependency") {
		return NewErrorWithSuggestion(err,
			"Remove one of the dependencies in the reported chain, then recompile")
	}

	// Unknown task identifiers
	if strings.Contains(errMsg, "task not found") {
		return NewErrorWithSuggestion(err,
			"Run 'dpsmith status --format json' to list tracked task identifiers")
	}

	// Permission errors
	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check file permissions on the project's .dpsmith directory")
	}

	return err
}

// FormatError provides consistent error formatting with context
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
