package model

import (
	"errors"
	"fmt"
)

// Error taxonomy. Components wrap these with fmt.Errorf("...: %w") so callers
// can classify failures with errors.Is while still getting a precise message.
var (
	// ErrMissingOutputFile means no output path was given on the command
	// line or in a preset file.
	ErrMissingOutputFile = errors.New("an output filename must be provided with --outputfile=<FILE>")

	// ErrNoIntervals means no --colours interval was supplied.
	ErrNoIntervals = errors.New("at least a colour interval must be provided")

	// ErrTooManyIntervals means there are more intervals than slots, so at
	// least one interval would be empty.
	ErrTooManyIntervals = fmt.Errorf("at most %d colour intervals can be provided", TotalSlots)

	// ErrIntervalArity means a --colours occurrence did not hold exactly a
	// start and an end colour.
	ErrIntervalArity = errors.New("each colour interval must contain exactly two colours")

	// ErrPercentageSum means the supplied percentages do not add up to 100.
	ErrPercentageSum = errors.New("sum of percentages must be 100")

	// ErrPercentageCount means the number of percentages differs from the
	// number of intervals.
	ErrPercentageCount = errors.New("one percentage per colour interval must be provided")

	// ErrPercentageRange means a percentage was outside [1, 100].
	ErrPercentageRange = errors.New("percentages must be integers between 1 and 100")

	// ErrInvalidColorName means a colour name is not in the palette table.
	ErrInvalidColorName = errors.New("invalid colour name")
)

// ExitCode defines standard CLI exit codes.
// These codes allow scripts to programmatically determine the outcome of a run.
type ExitCode int

const (
	// ExitSuccess indicates the colormap was written, or help was printed.
	ExitSuccess ExitCode = 0

	// ExitValidation indicates invalid input (missing output file, no
	// intervals, bad percentages, unknown colour) or a failed write.
	ExitValidation ExitCode = 1

	// ExitUsage indicates malformed command-line arguments.
	ExitUsage ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
