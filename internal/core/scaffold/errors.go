// Package scaffold runs a theme scaffolding session: it collects a
// configuration once, validates it, and runs the selected generators in
// their fixed order, stopping at the first failure.
package scaffold

import (
	"errors"
	"fmt"
)

// ErrNoCollector indicates Run was called without a configuration collector.
var ErrNoCollector = errors.New("scaffold: no configuration collector")

// GeneratorError names the generator that failed.
type GeneratorError struct {
	Generator string
	Err       error
}

// Error implements the error interface.
func (e *GeneratorError) Error() string {
	return fmt.Sprintf("%s generator: %v", e.Generator, e.Err)
}

// Unwrap returns the underlying cause.
func (e *GeneratorError) Unwrap() error {
	return e.Err
}
