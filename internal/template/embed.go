package template

import (
	"embed"
	"io/fs"
)

// The all: prefix keeps SCSS partials such as _variables.scss.tmpl.
//
//go:embed all:templates
var templatesFS embed.FS

// EmbeddedTemplates returns the template assets rooted at the templates directory.
func EmbeddedTemplates() (fs.FS, error) {
	return fs.Sub(templatesFS, "templates")
}
