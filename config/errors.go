package config

import (
	"errors"
	"fmt"
)

// InvalidArgumentError indicates that the constructor was handed an option
// set of an unsupported shape. No usable configuration exists when this is
// returned.
type InvalidArgumentError struct {
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("connection options must be a map or a sequence of key/value pairs, got %T", e.Value)
}

// ConfigurationError indicates that a semantically invalid value was
// supplied to a specific setter.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// IsInvalidArgument checks if an error indicates an unsupported option-set
// shape.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

// IsConfigurationError checks if an error indicates a rejected setter
// value.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
