package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/modu-ai/themegen/internal/generator"
	"github.com/modu-ai/themegen/internal/ui"
	"github.com/modu-ai/themegen/pkg/models"
)

// Collector produces the configuration for one run.
type Collector interface {
	Collect(ctx context.Context) (models.ThemeConfig, error)
}

// Result summarizes a completed run.
type Result struct {
	Config     models.ThemeConfig // Configuration used.
	Generators []string           // Generators run, in order.
	Files      []string           // Root-relative paths written, in order.
}

// Scaffolder drives collection and generation.
type Scaffolder interface {
	// Run collects the configuration exactly once, then generates.
	Run(ctx context.Context, root string) (*Result, error)

	// Generate validates cfg and runs every selected generator below root.
	Generate(ctx context.Context, root string, cfg models.ThemeConfig) (*Result, error)
}

// Options holds the Scaffolder's dependencies.
type Options struct {
	Collector  Collector             // Required by Run.
	Generators []generator.Generator // Run in slice order; see generator.Defaults.
	Reporter   generator.Reporter    // Receives EventGeneratorFailed. Optional.
	Progress   ui.Progress           // Optional progress bar over generators.
	Logger     zerolog.Logger
}

// scaffolder is the concrete implementation of Scaffolder.
type scaffolder struct {
	opts Options
}

// New creates a Scaffolder.
func New(opts Options) Scaffolder {
	if opts.Reporter == nil {
		opts.Reporter = generator.NopReporter{}
	}
	return &scaffolder{opts: opts}
}

// Run collects the configuration, then generates below root.
func (s *scaffolder) Run(ctx context.Context, root string) (*Result, error) {
	if s.opts.Collector == nil {
		return nil, ErrNoCollector
	}

	cfg, err := s.opts.Collector.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect configuration: %w", err)
	}
	s.opts.Logger.Debug().Interface("config", cfg).Msg("configuration collected")

	return s.Generate(ctx, root, cfg)
}

// Generate validates cfg and invokes each selected generator to completion
// before starting the next. Output already written by earlier generators is
// left in place when a later one fails.
func (s *scaffolder) Generate(ctx context.Context, root string, cfg models.ThemeConfig) (*Result, error) {
	root = filepath.Clean(root)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var selected []generator.Generator
	for _, g := range s.opts.Generators {
		if g.Selected(cfg) {
			selected = append(selected, g)
		}
	}

	result := &Result{Config: cfg}
	if len(selected) == 0 {
		s.opts.Logger.Info().Msg("no generator selected")
		return result, nil
	}

	var bar ui.ProgressBar
	if s.opts.Progress != nil {
		bar = s.opts.Progress.Start("Generating theme files", len(selected))
		defer bar.Done()
	}

	for _, g := range selected {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if bar != nil {
			bar.SetTitle(g.Name())
		}

		log := s.opts.Logger.With().Str("generator", g.Name()).Logger()
		log.Info().Str("root", root).Msg("running generator")

		files, err := g.Generate(ctx, root, cfg)
		result.Files = append(result.Files, files...)
		if err != nil {
			log.Error().Err(err).Int("written", len(files)).Msg("generator failed")
			s.opts.Reporter.Report(generator.Event{Kind: generator.EventGeneratorFailed, Generator: g.Name(), Err: err})
			return result, &GeneratorError{Generator: g.Name(), Err: err}
		}

		result.Generators = append(result.Generators, g.Name())
		if bar != nil {
			bar.Increment(1)
		}
		log.Info().Int("files", len(files)).Msg("generator finished")
	}

	return result, nil
}
