package wizard

import (
	"strconv"

	"github.com/modu-ai/themegen/pkg/models"
)

// Question IDs, in asking order.
const (
	IDLanguage        = "language"
	IDFramework       = "framework"
	IDIncludeMui      = "include_mui"
	IDIncludeTailwind = "include_tailwind"
	IDIncludeShadcn   = "include_shadcn"
	IDIncludeScss     = "include_scss"
	IDPrimaryColor    = "primary_color"
	IDFontFamily      = "font_family"
	IDFontSize        = "font_size"
)

// DefaultQuestions returns the nine setup questions. Every question is always
// asked; defaults are taken from the given configuration so a settings file
// can pre-fill them.
// The questions follow this order:
// 1. Language
// 2. Framework
// 3. MUI theme
// 4. TailwindCSS
// 5. ShadCN/UI
// 6. SCSS
// 7. Primary color
// 8. Font family
// 9. Base font size
func DefaultQuestions(defaults models.ThemeConfig) []Question {
	return []Question{
		// 1. Language
		{
			ID:      IDLanguage,
			Type:    QuestionTypeSelect,
			Title:   "Choose your language",
			Options: languageOptions(),
			Default: string(defaults.Language),
		},
		// 2. Framework
		{
			ID:          IDFramework,
			Type:        QuestionTypeSelect,
			Title:       "Which framework are you using?",
			Description: "Only changes the setup instructions in the generated guides.",
			Options:     frameworkOptions(),
			Default:     string(defaults.Framework),
		},
		// 3. MUI
		{
			ID:          IDIncludeMui,
			Type:        QuestionTypeConfirm,
			Title:       "Do you want to generate a MUI theme?",
			Description: "Writes theme/ with palette, typography, spacing, shadows, and createTheme.",
			Default:     strconv.FormatBool(defaults.IncludeMui),
		},
		// 4. Tailwind
		{
			ID:          IDIncludeTailwind,
			Type:        QuestionTypeConfirm,
			Title:       "Do you want to include TailwindCSS setup?",
			Description: "Writes tailwind/ with a config, directives stylesheet, and guide.",
			Default:     strconv.FormatBool(defaults.IncludeTailwind),
		},
		// 5. ShadCN
		{
			ID:          IDIncludeShadcn,
			Type:        QuestionTypeConfirm,
			Title:       "Do you want to include ShadCN/UI setup?",
			Description: "Writes SHADCN.md with installation steps.",
			Default:     strconv.FormatBool(defaults.IncludeShadcn),
		},
		// 6. SCSS
		{
			ID:          IDIncludeScss,
			Type:        QuestionTypeConfirm,
			Title:       "Do you want to include SCSS variables?",
			Description: "Writes scss/ with variables, mixins, and an entry stylesheet.",
			Default:     strconv.FormatBool(defaults.IncludeScss),
		},
		// 7. Primary color
		{
			ID:      IDPrimaryColor,
			Type:    QuestionTypeInput,
			Title:   "Enter your primary color (hex)",
			Default: defaults.PrimaryColor,
		},
		// 8. Font family
		{
			ID:      IDFontFamily,
			Type:    QuestionTypeInput,
			Title:   "Enter your font family",
			Default: defaults.FontFamily,
		},
		// 9. Font size
		{
			ID:      IDFontSize,
			Type:    QuestionTypeInput,
			Title:   "Enter base font size (px)",
			Default: defaults.FontSize,
		},
	}
}

func languageOptions() []Option {
	langs := models.ValidLanguages()
	opts := make([]Option, len(langs))
	for i, l := range langs {
		opts[i] = Option{Label: string(l), Value: string(l)}
	}
	return opts
}

func frameworkOptions() []Option {
	fws := models.ValidFrameworks()
	opts := make([]Option, len(fws))
	for i, fw := range fws {
		opts[i] = Option{Label: string(fw), Value: string(fw)}
	}
	return opts
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
