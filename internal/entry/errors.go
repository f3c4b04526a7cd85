package entry

import (
	"errors"
	"fmt"
)

// MissingFieldError indicates that the line ended before the named segment
// (timestamp, version, max or values).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %s", e.Field)
}

// InvalidTimestampError indicates that the timestamp segment does not match
// the YYYY-MM-DD HH:MM layout.
type InvalidTimestampError struct {
	Err error
}

func (e *InvalidTimestampError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying time parse error.
func (e *InvalidTimestampError) Unwrap() error {
	return e.Err
}

// InvalidVersionError indicates that the version segment was rejected by
// the semver parser. Err holds the semver error.
type InvalidVersionError struct {
	Err error
}

func (e *InvalidVersionError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the nested semver error.
func (e *InvalidVersionError) Unwrap() error {
	return e.Err
}

// InvalidIntegerError indicates that the max segment or a values token is
// not a signed 32-bit integer.
type InvalidIntegerError struct {
	// Field is "max" or "values".
	Field string
	Err   error
}

func (e *InvalidIntegerError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying strconv error.
func (e *InvalidIntegerError) Unwrap() error {
	return e.Err
}

// Stage reports which pipeline stage an Entry parse error belongs to:
// "timestamp", "version", "max" or "values". It returns "" for errors that
// did not come from Parse.
func Stage(err error) string {
	var (
		missing   *MissingFieldError
		timestamp *InvalidTimestampError
		version   *InvalidVersionError
		integer   *InvalidIntegerError
	)
	switch {
	case errors.As(err, &missing):
		return missing.Field
	case errors.As(err, &timestamp):
		return FieldTimestamp
	case errors.As(err, &version):
		return FieldVersion
	case errors.As(err, &integer):
		return integer.Field
	default:
		return ""
	}
}

// Describe renders err for display, prefixing the failing stage when the
// error itself does not name it.
func Describe(err error) string {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Error()
	}
	if stage := Stage(err); stage != "" {
		return fmt.Sprintf("invalid %s: %v", stage, err)
	}
	return err.Error()
}
