// Where: internal/compiler/errors.go
// What: Configuration error type for stack compilation.
// Why: Let callers distinguish bad configuration from I/O failures.
package compiler

import "fmt"

// ConfigError reports invalid stack configuration discovered during
// compilation. It is fatal and never retried.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
