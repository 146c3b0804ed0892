package config

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by configuration loading and validation.
var (
	// ErrBadMaxWidth indicates a max_width below Unbounded (-1).
	ErrBadMaxWidth = errors.New("config: max_width must be -1 (unbounded) or non-negative")

	// ErrUnknownMode indicates a mode other than runes, bytes or words.
	ErrUnknownMode = errors.New("config: unknown mode")

	// ErrUnknownFormat indicates a format other than lines, yaml or json.
	ErrUnknownFormat = errors.New("config: unknown format")

	// ErrInvalidConfig indicates that a configuration document does not
	// match the configuration schema.
	ErrInvalidConfig = errors.New("config: document does not match schema")
)

// ValidationError wraps a JSON Schema validation failure with a cleaner message.
// It matches ErrInvalidConfig under errors.Is.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidConfig.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}
