package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrUsage indicates the command line could not be parsed.
	ErrUsage = errors.New("usage")

	// ErrOpenFailed indicates the file could not be opened or read.
	ErrOpenFailed = errors.New("open failed")

	// ErrIOFailed indicates the file could not be written back.
	ErrIOFailed = errors.New("i/o failed")
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitIO      = 2
)

// ExitCode maps an error returned by the application to a process exit
// status. A nil error or ErrQuit is a clean exit.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, ErrQuit):
		return ExitOK
	case errors.Is(err, ErrIOFailed):
		return ExitIO
	default:
		return ExitFailure
	}
}

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op      string // Operation name (e.g., "save", "open", "build")
	Target  string // Target of the operation (e.g., file path)
	Context string // Additional context
	Err     error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

// WithContext adds context to the error.
// Safe to call on nil receiver - returns nil.
func (e *OperationError) WithContext(ctx string) *OperationError {
	if e == nil {
		return nil
	}
	e.Context = ctx
	return e
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	var msg string
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	} else {
		msg = e.Op
	}

	if e.Context != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Context)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for OperationError.
// Matches both the wrapper itself and the wrapped error.
func (e *OperationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*OperationError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// fileError wraps cause so that it matches both kind and the underlying
// error.
func fileError(op, path string, kind, cause error) *OperationError {
	return NewOperationError(op, path, fmt.Errorf("%w: %w", kind, cause))
}
