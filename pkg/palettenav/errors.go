package palettenav

import (
	"errors"
	"fmt"
)

// ConfigError represents a failure to assemble the navigation layer: a
// config file that does not decode, a broken route table, a missing message
// file. These are found at startup and are not recoverable by retrying.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "load_config", "build_routes")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("palettenav: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("palettenav: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
