package generator

import (
	"github.com/modu-ai/themegen/internal/defs"
	"github.com/modu-ai/themegen/pkg/models"
)

// NewSCSS creates the SCSS generator: variables and mixins partials, an
// entry stylesheet, and a README.
func NewSCSS(opts Options) Generator {
	return newTemplateGenerator(templateGenerator{
		name:     NameSCSS,
		dir:      defs.SCSSDir,
		selected: func(cfg models.ThemeConfig) bool { return cfg.IncludeScss },
		plan: func(models.ThemeConfig) []fileSpec {
			return []fileSpec{
				{"scss/_variables.scss.tmpl", joinTarget(defs.SCSSDir, "_variables.scss")},
				{"scss/_mixins.scss.tmpl", joinTarget(defs.SCSSDir, "_mixins.scss")},
				{"scss/main.scss.tmpl", joinTarget(defs.SCSSDir, "main.scss")},
				{"scss/" + defs.SCSSGuide + ".tmpl", joinTarget(defs.SCSSDir, defs.SCSSGuide)},
			}
		},
		opts: opts,
	})
}
