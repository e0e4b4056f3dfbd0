package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Prescription errors (DP-001 to DP-099)
	ErrCodePrescriptionDirNotFound ErrorCode = "DP-001"
	ErrCodePrescriptionParse       ErrorCode = "DP-002"
	ErrCodePrescriptionInvalid     ErrorCode = "DP-003"
	ErrCodePrescriptionDuplicate   ErrorCode = "DP-004"

	// Graph errors (GRAPH-001 to GRAPH-099)
	ErrCodeGraphCyclicDep  ErrorCode = "GRAPH-001"
	ErrCodeGraphMissingDep ErrorCode = "GRAPH-002"

	// Plan errors (PLAN-001 to PLAN-099)
	ErrCodePlanNotFound    ErrorCode = "PLAN-001"
	ErrCodePlanInvalid     ErrorCode = "PLAN-002"
	ErrCodePlanTaskMissing ErrorCode = "PLAN-003"
	ErrCodePlanNotCompiled ErrorCode = "PLAN-004"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
	ErrCodeFileUnmarshal   ErrorCode = "IO-005"
	ErrCodeFileMarshal     ErrorCode = "IO-006"
)

// DpsmithError represents an enhanced error with code, suggestions, and documentation
type DpsmithError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *DpsmithError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *DpsmithError) Unwrap() error {
	return e.Cause
}

// New creates a new DpsmithError
func New(code ErrorCode, message string) *DpsmithError {
	return &DpsmithError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new DpsmithError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *DpsmithError {
	return &DpsmithError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *DpsmithError) WithSuggestion(suggestion string) *DpsmithError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *DpsmithError) WithSuggestions(suggestions ...string) *DpsmithError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *DpsmithError) WithDocs(url string) *DpsmithError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewPrescriptionDirNotFoundError creates a prescription directory not found error
func NewPrescriptionDirNotFoundError(dir string) *DpsmithError {
	return New(ErrCodePrescriptionDirNotFound, fmt.Sprintf("prescription directory not found: %s", dir)).
		WithSuggestion("Check the --dir flag points at your DP definitions").
		WithSuggestion("Create the directory and add prescription YAML files")
}

// NewPrescriptionInvalidError creates a validation error from collected findings
func NewPrescriptionInvalidError(count int) *DpsmithError {
	return New(ErrCodePrescriptionInvalid, fmt.Sprintf("prescription validation failed with %d error(s)", count)).
		WithSuggestion("Run 'dpsmith validate' to see every finding").
		WithSuggestion("Fix the reported prescriptions, then compile again")
}

// NewCycleError creates a circular dependency error
func NewCycleError(chain string) *DpsmithError {
	return New(ErrCodeGraphCyclicDep, fmt.Sprintf("circular dependency detected: %s", chain)).
		WithSuggestion("Break the cycle by removing one of the listed dependencies").
		WithSuggestion("Run 'dpsmith graph' to inspect the dependency structure")
}

// NewPlanNotFoundError creates a missing compiled plan error
func NewPlanNotFoundError(path string) *DpsmithError {
	return New(ErrCodePlanNotFound, fmt.Sprintf("compiled plan not found: %s", path)).
		WithSuggestion("Run 'dpsmith compile' to produce a plan").
		WithSuggestion("Check the --root flag points at your project")
}

// NewTaskNotFoundError creates an unknown task identifier error
func NewTaskNotFoundError(id string) *DpsmithError {
	return New(ErrCodePlanTaskMissing, fmt.Sprintf("task not found in plan: %s", id)).
		WithSuggestion("Run 'dpsmith status' to list tracked tasks").
		WithSuggestion("Recompile if the prescription was added after the last compile")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *DpsmithError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
