// Package config loads themegen settings from a YAML file, THEMEGEN_*
// environment variables, and command-line flags, in increasing order of
// precedence, on top of compiled defaults.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for settings operations.
var (
	// ErrInvalidSettings indicates the merged settings failed validation.
	ErrInvalidSettings = errors.New("config: invalid settings")

	// ErrInvalidYAML indicates the settings file is not valid YAML.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrSettingsExist indicates a settings file is already present and
	// overwriting was not requested.
	ErrSettingsExist = errors.New("config: settings file already exists")
)

// SettingError names the settings key that failed validation.
type SettingError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *SettingError) Error() string {
	return fmt.Sprintf("setting %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SettingError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidSettings for every SettingError.
func (e *SettingError) Is(target error) bool {
	return target == ErrInvalidSettings
}
