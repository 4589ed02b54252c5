// Package cli provides the Cobra command tree and dependency injection
// wiring for the themegen CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/modu-ai/themegen/internal/cli/wizard"
	"github.com/modu-ai/themegen/internal/config"
	"github.com/modu-ai/themegen/internal/core/scaffold"
	"github.com/modu-ai/themegen/internal/generator"
	"github.com/modu-ai/themegen/internal/logging"
	"github.com/modu-ai/themegen/internal/template"
	"github.com/modu-ai/themegen/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Settings *config.Settings
	Renderer template.Renderer
	Deployer template.Deployer
	Headless *ui.HeadlessManager
	Theme    *ui.Theme
	Logger   zerolog.Logger

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies from the
// merged settings. Diagnostics go to errOut.
func InitDependencies(settings *config.Settings, in io.Reader, out, errOut io.Writer) error {
	logger, err := logging.New(logging.Options{
		Level:         settings.LogLevel,
		HumanReadable: true,
		Writer:        errOut,
	})
	if err != nil {
		return err
	}

	fsys, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}

	_, noColor := os.LookupEnv("NO_COLOR")

	deps = &Dependencies{
		Settings: settings,
		Renderer: template.NewRenderer(fsys),
		Deployer: template.NewDeployer(),
		Headless: ui.NewHeadlessManager(),
		Theme:    ui.NewTheme(ui.ThemeConfig{NoColor: noColor}),
		Logger:   logger,
		In:       in,
		Out:      out,
		ErrOut:   errOut,
	}
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// Interactive reports whether prompts and the progress bar may use the
// terminal. A forced headless setting wins over TTY detection.
func (d *Dependencies) Interactive() bool {
	if d.Headless.IsHeadless() {
		return false
	}
	return d.Headless.IsForced() || ui.IsTerminal(d.Out)
}

// Generators returns the four generators wired to rep.
func (d *Dependencies) Generators(rep generator.Reporter) []generator.Generator {
	return generator.Defaults(generator.Options{
		Renderer:        d.Renderer,
		Deployer:        d.Deployer,
		Reporter:        rep,
		Logger:          d.Logger,
		TailwindContent: d.Settings.TailwindContent,
	})
}

// Collector picks the front end: defaults only, huh forms on a terminal,
// or line prompts otherwise.
func (d *Dependencies) Collector(nonInteractive bool) wizard.Collector {
	defaults := d.Settings.Defaults
	switch {
	case nonInteractive:
		return wizard.DefaultsCollector{Defaults: defaults}
	case d.Interactive():
		styles := wizard.NewStyles()
		if d.Theme.NoColor {
			styles = wizard.NoColorStyles()
		}
		return wizard.NewFormCollector(wizard.DefaultQuestions(defaults), defaults, wizard.WithStyles(styles))
	default:
		return wizard.NewLineCollector(wizard.DefaultQuestions(defaults), defaults, d.In, d.Out)
	}
}

// Scaffolder wires the orchestrator for one run.
func (d *Dependencies) Scaffolder(nonInteractive bool, rep generator.Reporter) scaffold.Scaffolder {
	opts := scaffold.Options{
		Collector:  d.Collector(nonInteractive),
		Generators: d.Generators(rep),
		Reporter:   rep,
		Logger:     d.Logger,
	}
	if d.Interactive() {
		opts.Progress = ui.NewProgress(d.Theme, d.Headless, d.Out)
	}
	return scaffold.New(opts)
}

// OutputRoot returns the generation root, defaulting to the working directory.
func (d *Dependencies) OutputRoot() string {
	if d.Settings.OutputDir == "" {
		return "."
	}
	return d.Settings.OutputDir
}
