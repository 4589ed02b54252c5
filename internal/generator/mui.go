package generator

import (
	"github.com/modu-ai/themegen/internal/defs"
	"github.com/modu-ai/themegen/pkg/models"
)

// muiSources lists the theme modules in write order. Each is rendered from
// mui/<name>.tmpl and written as theme/<name>.<ext>.
var muiSources = []string{
	"palette",
	"typography",
	"spacing",
	"shadows",
	"getDesignTokens",
	"theme",
}

// NewMUI creates the MUI theme generator. It writes the six theme modules
// with the extension chosen by the configured language, plus MUI.md.
func NewMUI(opts Options) Generator {
	return newTemplateGenerator(templateGenerator{
		name:     NameMUI,
		dir:      defs.ThemeDir,
		selected: func(cfg models.ThemeConfig) bool { return cfg.IncludeMui },
		plan:     muiPlan,
		opts:     opts,
	})
}

func muiPlan(cfg models.ThemeConfig) []fileSpec {
	ext := cfg.Language.Ext()
	specs := make([]fileSpec, 0, len(muiSources)+1)
	for _, name := range muiSources {
		specs = append(specs, fileSpec{
			template: "mui/" + name + ".tmpl",
			target:   joinTarget(defs.ThemeDir, name+"."+ext),
		})
	}
	return append(specs, fileSpec{
		template: "mui/" + defs.MUIGuide + ".tmpl",
		target:   joinTarget(defs.ThemeDir, defs.MUIGuide),
	})
}
