package wizard

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/themegen/internal/ui"
)

// Styles holds lipgloss styles for wizard output outside the forms.
type Styles struct {
	NoColor bool
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles returns the colored wizard styles.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorPrimary)).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorMuted)),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorError)),
	}
}

// NoColorStyles returns styles without colors, for NO_COLOR terminals.
func NoColorStyles() *Styles {
	return &Styles{
		NoColor: true,
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
	}
}

// newThemegenWizardTheme creates a huh.Theme in the themegen brand colors.
func newThemegenWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	light := ui.NewTheme(ui.ThemeConfig{Mode: "light"}).Colors
	dark := ui.NewTheme(ui.ThemeConfig{Mode: "dark"}).Colors
	adaptive := func(l, d string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: l, Dark: d}
	}

	primary := adaptive(light.Primary, dark.Primary)
	secondary := adaptive(light.Secondary, dark.Secondary)
	green := adaptive(light.Success, dark.Success)
	red := adaptive(light.Error, dark.Error)
	text := adaptive(light.Text, dark.Text)
	muted := adaptive(light.Muted, dark.Muted)
	border := adaptive(light.Border, dark.Border)

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.NextIndicator = t.Focused.NextIndicator.Foreground(primary)
	t.Focused.PrevIndicator = t.Focused.PrevIndicator.Foreground(primary)
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
