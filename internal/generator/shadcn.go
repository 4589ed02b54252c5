package generator

import (
	"github.com/modu-ai/themegen/internal/defs"
	"github.com/modu-ai/themegen/pkg/models"
)

// NewShadcn creates the ShadCN generator. It creates the shadcn/ directory
// and writes the setup guide to the output root.
func NewShadcn(opts Options) Generator {
	return newTemplateGenerator(templateGenerator{
		name:     NameShadcn,
		dir:      defs.ShadcnDir,
		selected: func(cfg models.ThemeConfig) bool { return cfg.IncludeShadcn },
		plan: func(models.ThemeConfig) []fileSpec {
			return []fileSpec{
				{"shadcn/" + defs.ShadcnGuide + ".tmpl", defs.ShadcnGuide},
			}
		},
		opts: opts,
	})
}
