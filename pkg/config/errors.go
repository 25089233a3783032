package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates no settings file exists on the search path.
	ErrConfigNotFound = errors.New("settings file not found")

	// ErrInvalidYAML indicates YAML parsing failed.
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrValidationFailed indicates configuration validation failed.
	ErrValidationFailed = errors.New("configuration validation failed")
)

// MissingConfigurationError reports a required configuration value that is
// unset or empty, identified by its dot-path.
type MissingConfigurationError struct {
	Path string
}

// Error returns the formatted error message.
func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Path)
}

// MissingEnvError reports a required environment variable that is unset or
// empty.
type MissingEnvError struct {
	Name string
}

// Error returns the formatted error message.
func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing required environment variable: %s", e.Name)
}

// ValidationError wraps a configuration validation failure with field context.
type ValidationError struct {
	Field string
	Err   error
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
