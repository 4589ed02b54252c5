// Package ui provides terminal presentation helpers: TTY detection, the
// shared color theme, and progress reporting that degrades to plain log
// lines when no terminal is attached.
package ui

// Brand colors, used for dark terminals.
const (
	ColorPrimary   = "#DC3C22"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#F9FAFB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// ThemeColors holds hex color strings for each role.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// ThemeConfig selects a theme.
type ThemeConfig struct {
	NoColor bool
	Mode    string // "dark" (default) or "light"
}

// Theme carries colors and the no-color switch for all UI components.
type Theme struct {
	NoColor bool
	Colors  ThemeColors
}

// NewTheme builds a Theme from cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{NoColor: cfg.NoColor}
	if cfg.Mode == "light" {
		t.Colors = ThemeColors{
			Primary:   "#C45A3C",
			Secondary: "#5B21B6",
			Success:   "#059669",
			Warning:   "#D97706",
			Error:     "#DC2626",
			Text:      "#111827",
			Muted:     "#9CA3AF",
			Border:    "#D1D5DB",
		}
		return t
	}
	t.Colors = ThemeColors{
		Primary:   ColorPrimary,
		Secondary: ColorSecondary,
		Success:   ColorSuccess,
		Warning:   ColorWarning,
		Error:     ColorError,
		Text:      ColorText,
		Muted:     ColorMuted,
		Border:    ColorBorder,
	}
	return t
}

// Progress creates progress bars.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
}

// ProgressBar tracks a determinate amount of work.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}
