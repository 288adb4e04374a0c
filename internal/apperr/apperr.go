// Package apperr defines the failure kinds the pipeline reports.
// Every external-call or validation failure is converted into one of
// these sentinels at the call site; callers branch with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks empty or malformed caller input. No external
	// call is made when this is returned.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOracleUnavailable marks a failed or timed-out LLM call.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrUnparseable marks oracle output from which no structured
	// question could be recovered.
	ErrUnparseable = errors.New("unparseable oracle response")

	// ErrPersistence marks a progress store read or write failure.
	ErrPersistence = errors.New("persistence failure")
)

// Wrap attaches a sentinel kind to an underlying cause so both survive
// errors.Is / errors.Unwrap chains.
func Wrap(kind error, cause error) error {
	if cause == nil {
		return kind
	}
	return fmt.Errorf("%w: %w", kind, cause)
}

// Wrapf attaches a sentinel kind with a formatted message.
func Wrapf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
