// Package generator turns a theme configuration into files on disk.
//
// Each Generator owns one output directory below an explicit root and
// produces a fixed file set. Generators are stateless: output is a pure
// function of the configuration, so repeated runs are byte-identical.
package generator

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/modu-ai/themegen/internal/template"
	"github.com/modu-ai/themegen/pkg/models"
)

// Generator names, in the order the orchestrator runs them.
const (
	NameMUI      = "mui"
	NameSCSS     = "scss"
	NameTailwind = "tailwind"
	NameShadcn   = "shadcn"
)

// Generator produces a named set of text files from a ThemeConfig.
type Generator interface {
	// Name returns the generator's short name.
	Name() string

	// Selected reports whether cfg asks for this generator.
	Selected(cfg models.ThemeConfig) bool

	// Generate writes the generator's files below root and returns their
	// root-relative paths in write order.
	Generate(ctx context.Context, root string, cfg models.ThemeConfig) ([]string, error)
}

// Options holds the dependencies shared by all generators.
type Options struct {
	Renderer template.Renderer // Required.
	Deployer template.Deployer // Required.
	Reporter Reporter          // Optional; defaults to NopReporter.
	Logger   zerolog.Logger    // Optional; the zero value is used as Nop.

	// TailwindContent overrides the content globs in tailwind.config.js.
	TailwindContent []string
}

// fileSpec maps one template to one root-relative output path.
type fileSpec struct {
	template string
	target   string
}

// templateGenerator implements Generator on top of the embedded templates.
type templateGenerator struct {
	name     string
	dir      string // output directory, created even when no file lands in it
	selected func(models.ThemeConfig) bool
	plan     func(models.ThemeConfig) []fileSpec
	context  func(models.ThemeConfig) (*template.TemplateContext, error)
	opts     Options
}

func newTemplateGenerator(g templateGenerator) *templateGenerator {
	if g.opts.Reporter == nil {
		g.opts.Reporter = NopReporter{}
	}
	if g.context == nil {
		g.context = func(cfg models.ThemeConfig) (*template.TemplateContext, error) {
			return template.NewTemplateContext(cfg), nil
		}
	}
	g.opts.Logger = g.opts.Logger.With().Str("generator", g.name).Logger()
	return &g
}

// Name returns the generator's short name.
func (g *templateGenerator) Name() string { return g.name }

// Selected reports whether cfg asks for this generator.
func (g *templateGenerator) Selected(cfg models.ThemeConfig) bool { return g.selected(cfg) }

// Generate renders every file first, then writes them. A rendering
// failure therefore leaves the output directory untouched.
func (g *templateGenerator) Generate(ctx context.Context, root string, cfg models.ThemeConfig) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := g.Render(cfg)
	if err != nil {
		return nil, err
	}

	g.opts.Reporter.Report(Event{Kind: EventGeneratorStarted, Generator: g.name})
	g.opts.Logger.Debug().Str("root", root).Int("files", len(files)).Msg("writing files")

	if err := g.opts.Deployer.EnsureDir(root, g.dir); err != nil {
		return nil, err
	}

	written, err := g.opts.Deployer.Deploy(ctx, root, files, func(rel string) {
		g.opts.Reporter.Report(Event{Kind: EventFileWritten, Generator: g.name, Path: rel})
	})
	if err != nil {
		return written, err
	}

	g.opts.Reporter.Report(Event{Kind: EventGeneratorFinished, Generator: g.name})
	return written, nil
}

// Render produces the generator's files in memory without touching disk.
func (g *templateGenerator) Render(cfg models.ThemeConfig) ([]template.File, error) {
	tmplCtx, err := g.context(cfg)
	if err != nil {
		return nil, err
	}

	specs := g.plan(cfg)
	files := make([]template.File, 0, len(specs))
	for _, spec := range specs {
		content, err := g.opts.Renderer.Render(spec.template, tmplCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.target, err)
		}
		if template.IsStylesheet(spec.target) {
			if err := template.CheckStylesheet(spec.target, content); err != nil {
				return nil, err
			}
		}
		files = append(files, template.File{Path: spec.target, Content: content})
	}
	return files, nil
}

// Renderable is implemented by generators that can render without writing.
type Renderable interface {
	Render(cfg models.ThemeConfig) ([]template.File, error)
}

// Defaults returns the four generators in orchestration order:
// MUI, SCSS, Tailwind, ShadCN.
func Defaults(opts Options) []Generator {
	return []Generator{
		NewMUI(opts),
		NewSCSS(opts),
		NewTailwind(opts),
		NewShadcn(opts),
	}
}

// Lookup returns the generator with the given name (case-insensitive).
func Lookup(generators []Generator, name string) (Generator, bool) {
	for _, g := range generators {
		if strings.EqualFold(g.Name(), name) {
			return g, true
		}
	}
	return nil, false
}

// joinTarget builds a slash-separated root-relative output path.
func joinTarget(dir, name string) string {
	return path.Join(dir, name)
}
