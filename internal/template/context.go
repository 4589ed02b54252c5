package template

import (
	"slices"

	"github.com/modu-ai/themegen/pkg/models"
)

// DefaultTailwindContent lists the content globs written to tailwind.config.js.
var DefaultTailwindContent = []string{
	"./src/**/*.{js,ts,jsx,tsx}",
	"./components/**/*.{js,ts,jsx,tsx}",
	"./pages/**/*.{js,ts,jsx,tsx}",
	"./app/**/*.{js,ts,jsx,tsx}",
}

// TemplateContext provides data for rendering the generator templates.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Answers
	Language     string // "TypeScript", "JavaScript"
	Framework    string // "React + Vite", "Next.js", "None"
	PrimaryColor string // raw, escaped by template helpers
	FontFamily   string // raw, escaped by template helpers
	FontSize     string // raw, escaped by template helpers

	// Derived
	Ext      string // "ts" or "js"
	ShowVite bool   // guides include React + Vite instructions
	ShowNext bool   // guides include Next.js instructions

	// Tailwind
	TailwindContent []string
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext from a theme configuration,
// then applies any provided options.
func NewTemplateContext(cfg models.ThemeConfig, opts ...ContextOption) *TemplateContext {
	fw := cfg.Framework
	ctx := &TemplateContext{
		Language:        string(cfg.Language),
		Framework:       string(fw),
		PrimaryColor:    cfg.PrimaryColor,
		FontFamily:      cfg.FontFamily,
		FontSize:        cfg.FontSize,
		Ext:             cfg.Language.Ext(),
		ShowVite:        fw != models.FrameworkNextJS,
		ShowNext:        fw != models.FrameworkReactVite,
		TailwindContent: slices.Clone(DefaultTailwindContent),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// WithTailwindContent overrides the Tailwind content globs. An empty list
// keeps the defaults.
func WithTailwindContent(globs []string) ContextOption {
	return func(c *TemplateContext) {
		if len(globs) > 0 {
			c.TailwindContent = slices.Clone(globs)
		}
	}
}
