// internal/router/errors.go
package router

import "fmt"

// UsageError is a malformed command line: unknown option or stray argument.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// ConfigError is an option value that can't be resolved.
type ConfigError struct {
	Option string // "priority" or "facility"
	Value  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Option, e.Value)
}

// AuthorizationError is an option that requires privilege the caller lacks.
type AuthorizationError struct {
	Option string
	Value  string
}

func (e *AuthorizationError) Error() string {
	if e.Option == "facility" {
		return fmt.Sprintf("must be root to use facility code %s", e.Value)
	}
	return fmt.Sprintf("must be root to use %s %s", e.Option, e.Value)
}
