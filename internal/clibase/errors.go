package clibase

import (
	"errors"
	"fmt"
)

// ConfigError reports unusable command-line input. Apps map it to exit 2.
type ConfigError struct {
	Flag string // without leading dashes; empty when not tied to one flag
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Flag == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("--%s: %v", e.Flag, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Errorf builds a ConfigError for flag.
func Errorf(flag, format string, a ...any) error {
	return &ConfigError{Flag: flag, Err: fmt.Errorf(format, a...)}
}

// IsConfigError reports whether err (or anything it wraps) is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
