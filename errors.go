package locgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVersionRange is returned when the configured major
	// version range is out of bounds or inverted.
	ErrInvalidVersionRange = errors.New("invalid library version range")
)

// ConfigError indicates a rejected configuration value. The previous
// value stays in effect when a runtime setter returns one.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ConfigError struct {
	Setting string
	Value   string
	Hint    string
	cause   error
}

func (e *ConfigError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Setting, e.Hint)
	}
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Setting)
}

func (e *ConfigError) Unwrap() error { return e.cause }
