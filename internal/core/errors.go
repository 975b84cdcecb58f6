package core

import (
	"errors"
	"fmt"
)

// ErrNoMatches indicates discovery completed without error but found no
// executables. Callers typically treat this as "nothing found" rather than
// a misconfiguration.
var ErrNoMatches = errors.New("no executables found matching templates")

// ConfigError indicates an invalid template configuration. It is fatal for
// the whole discovery run: no partial results are returned.
type ConfigError struct {
	Template string // offending template, empty when not template-specific
	Reason   string
}

func (e *ConfigError) Error() string {
	if e.Template == "" {
		return fmt.Sprintf("invalid configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid template %q: %s", e.Template, e.Reason)
}

// SelectionError indicates a requested version or tag selector did not
// resolve to any discovered match. It is local to the selection step and
// does not invalidate prior discovery results.
type SelectionError struct {
	Selector string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("no version found matching %q", e.Selector)
}
