package config

import (
	"github.com/modu-ai/themegen/internal/logging"
	"github.com/modu-ai/themegen/internal/template"
	"github.com/modu-ai/themegen/pkg/models"
)

// Settings keys, as they appear in the YAML file. Environment variables map
// onto them as THEMEGEN_DEFAULTS_PRIMARY_COLOR -> defaults.primary-color.
const (
	KeyLanguage        = "defaults.language"
	KeyFramework       = "defaults.framework"
	KeyIncludeMui      = "defaults.include-mui"
	KeyIncludeTailwind = "defaults.include-tailwind"
	KeyIncludeShadcn   = "defaults.include-shadcn"
	KeyIncludeScss     = "defaults.include-scss"
	KeyPrimaryColor    = "defaults.primary-color"
	KeyFontFamily      = "defaults.font-family"
	KeyFontSize        = "defaults.font-size"
	KeyOutputDir       = "output-dir"
	KeyLogLevel        = "log-level"
	KeyTailwindContent = "tailwind.content"
)

// Settings is the merged result of defaults, file, environment, and flags.
type Settings struct {
	// Defaults pre-fills every question; with --non-interactive it is the
	// configuration used as-is.
	Defaults models.ThemeConfig

	// OutputDir is the generation root. Empty means the working directory.
	OutputDir string

	// LogLevel is a zerolog level name or "disabled".
	LogLevel string

	// TailwindContent lists the content globs for tailwind.config.js.
	TailwindContent []string
}

// NewDefaultSettings returns the compiled defaults.
func NewDefaultSettings() Settings {
	return Settings{
		Defaults:        models.NewDefaultThemeConfig(),
		LogLevel:        logging.LevelDisabled,
		TailwindContent: append([]string(nil), template.DefaultTailwindContent...),
	}
}

// Validate checks the default answers and the log level.
func (s Settings) Validate() error {
	if err := s.Defaults.Validate(); err != nil {
		return &SettingError{Key: "defaults", Err: err}
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return &SettingError{Key: KeyLogLevel, Err: err}
	}
	return nil
}
