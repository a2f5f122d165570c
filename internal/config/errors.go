package config

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for config files whose extension is not
// one of .yaml, .yml, .toml, .json or .jsonc.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ValueError reports a config value that cannot be used.
type ValueError struct {
	Field string
	Value string
	// Reason is optional detail, such as the accepted values.
	Reason string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s: %q (%s)", e.Field, e.Value, e.Reason)
}

// IsValueError checks if an error is a ValueError and returns it.
func IsValueError(err error) (*ValueError, bool) {
	var ve *ValueError
	ok := errors.As(err, &ve)
	return ve, ok
}
