package models

// Default answers used when the user provides no input.
const (
	DefaultLanguage        = LanguageTypeScript
	DefaultFramework       = FrameworkReactVite
	DefaultIncludeMui      = true
	DefaultIncludeTailwind = false
	DefaultIncludeShadcn   = false
	DefaultIncludeScss     = true
	DefaultPrimaryColor    = "#DC3C22"
	DefaultFontFamily      = `"Roboto", sans-serif`
	DefaultFontSize        = "14"
)

// ThemeConfig is the complete set of answers that drives generation.
// It is fully populated before any generator runs and is passed by value.
type ThemeConfig struct {
	Language        Language  `yaml:"language" json:"language" validate:"required,language"`
	Framework       Framework `yaml:"framework" json:"framework" validate:"required,framework"`
	IncludeMui      bool      `yaml:"include_mui" json:"include_mui"`
	IncludeTailwind bool      `yaml:"include_tailwind" json:"include_tailwind"`
	IncludeShadcn   bool      `yaml:"include_shadcn" json:"include_shadcn"`
	IncludeScss     bool      `yaml:"include_scss" json:"include_scss"`
	PrimaryColor    string    `yaml:"primary_color" json:"primary_color" validate:"bare_literal"`
	FontFamily      string    `yaml:"font_family" json:"font_family" validate:"css_value"`
	FontSize        string    `yaml:"font_size" json:"font_size" validate:"bare_literal"`
}

// NewDefaultThemeConfig returns a ThemeConfig holding every default answer.
func NewDefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		Language:        DefaultLanguage,
		Framework:       DefaultFramework,
		IncludeMui:      DefaultIncludeMui,
		IncludeTailwind: DefaultIncludeTailwind,
		IncludeShadcn:   DefaultIncludeShadcn,
		IncludeScss:     DefaultIncludeScss,
		PrimaryColor:    DefaultPrimaryColor,
		FontFamily:      DefaultFontFamily,
		FontSize:        DefaultFontSize,
	}
}

// AnyGeneratorSelected reports whether at least one include flag is set.
func (c ThemeConfig) AnyGeneratorSelected() bool {
	return c.IncludeMui || c.IncludeScss || c.IncludeTailwind || c.IncludeShadcn
}
