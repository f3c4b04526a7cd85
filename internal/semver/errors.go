package semver

import "fmt"

// MissingFieldError indicates that the version string ended before the
// named segment (major, minor or patch).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing segment: %s", e.Field)
}

// InvalidIntegerError indicates that a present segment is not an unsigned
// 16-bit integer. It does not record which segment failed.
type InvalidIntegerError struct {
	Err error
}

func (e *InvalidIntegerError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying strconv error.
func (e *InvalidIntegerError) Unwrap() error {
	return e.Err
}
