package chainsim

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for common failure conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidInput indicates the run input is incomplete or malformed
	// before any simulation work starts.
	ErrInvalidInput = errors.New("invalid run input")

	// ErrSimulationFailed indicates the simulation itself could not run.
	// Note that a simulation terminating without reaching its end
	// condition is a normal outcome, not this error.
	ErrSimulationFailed = errors.New("simulation failed")
)

// Error kinds categorize errors by their type.
const (
	// KindConfiguration represents errors in the bundle/catalog pairing
	// or in input files. Not retried; the run aborts.
	KindConfiguration = "configuration"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindNotFound represents errors where a resource was not found.
	KindNotFound = "not_found"

	// KindIO represents errors reading or writing files.
	KindIO = "io"

	// KindInternal represents internal errors.
	KindInternal = "internal"
)

// Error is a structured error that wraps underlying errors with the
// operation that failed and the category of failure.
//
// Error supports unwrapping, making it compatible with errors.Is() and
// errors.As().
type Error struct {
	// Op is the operation that failed (e.g., "Runner.Run").
	Op string

	// Kind categorizes the error (e.g., KindConfiguration).
	Kind string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface, returning a formatted message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("chainsim: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("chainsim: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and
// errors.As() to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching, allowing comparison against another
// *Error by kind (and op, when set) or against the underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}
	return errors.Is(e.Err, target)
}

// NewConfigurationError creates a new Error with KindConfiguration.
func NewConfigurationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}

// NewValidationError creates a new Error with KindValidation.
func NewValidationError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindValidation, Err: err}
}

// NewIOError creates a new Error with KindIO.
func NewIOError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindIO, Err: err}
}

// NewInternalError creates a new Error with KindInternal.
func NewInternalError(op string, err error) *Error {
	return &Error{Op: op, Kind: KindInternal, Err: err}
}

// CloseWithLog attempts to close the provided resource and logs any error
// instead of returning it. Intended for deferred cleanup where a close
// failure should not mask the primary error path.
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
