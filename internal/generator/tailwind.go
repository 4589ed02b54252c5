package generator

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/modu-ai/themegen/internal/defs"
	"github.com/modu-ai/themegen/internal/template"
	"github.com/modu-ai/themegen/pkg/models"
)

// NewTailwind creates the Tailwind generator: tailwind.config.js, the
// directives stylesheet, and TAILWIND.md.
func NewTailwind(opts Options) Generator {
	content := opts.TailwindContent
	return newTemplateGenerator(templateGenerator{
		name:     NameTailwind,
		dir:      defs.TailwindDir,
		selected: func(cfg models.ThemeConfig) bool { return cfg.IncludeTailwind },
		plan: func(models.ThemeConfig) []fileSpec {
			return []fileSpec{
				{"tailwind/tailwind.config.js.tmpl", joinTarget(defs.TailwindDir, "tailwind.config.js")},
				{"tailwind/index.css.tmpl", joinTarget(defs.TailwindDir, "index.css")},
				{"tailwind/" + defs.TailwindGuide + ".tmpl", joinTarget(defs.TailwindDir, defs.TailwindGuide)},
			}
		},
		context: func(cfg models.ThemeConfig) (*template.TemplateContext, error) {
			if err := ValidateContentGlobs(content); err != nil {
				return nil, err
			}
			return template.NewTemplateContext(cfg, template.WithTailwindContent(content)), nil
		},
		opts: opts,
	})
}

// ValidateContentGlobs checks that every glob is a well-formed doublestar
// pattern that can be embedded in tailwind.config.js.
func ValidateContentGlobs(globs []string) error {
	for _, g := range globs {
		if g == "" || !doublestar.ValidatePattern(g) {
			return fmt.Errorf("%w: %q", ErrInvalidGlob, g)
		}
	}
	return nil
}
