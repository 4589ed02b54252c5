package cli

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/themegen/internal/core/scaffold"
	"github.com/modu-ai/themegen/internal/defs"
	"github.com/modu-ai/themegen/internal/generator"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Ask the setup questions and write the selected theme files",
		Long: `Ask the nine setup questions, then write the files for each selected stack
in this order: MUI, SCSS, Tailwind, ShadCN. Existing files are overwritten.

When stdin is not a terminal, answers are read one per line; an empty line
takes the default. Use --non-interactive to skip the questions entirely.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
}

// runGenerate executes one scaffolding session.
func runGenerate(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}
	out := cmd.OutOrStdout()
	nonInteractive, _ := cmd.Flags().GetBool(flagNonInteractive)

	if !nonInteractive {
		_, _ = fmt.Fprintln(out, cliPrimary.Render("Welcome to the Theme Generator CLI"))
	}

	// While the progress bar owns the terminal, file events are held back
	// and printed once it has closed.
	console := newConsoleReporter(out)
	rep := console
	held := &generator.Recorder{}
	if deps.Interactive() {
		rep = held
	}

	result, err := deps.Scaffolder(nonInteractive, rep).Run(cmd.Context(), deps.OutputRoot())
	for _, e := range held.Events() {
		console.Report(e)
	}
	if err != nil {
		return err
	}

	printSummary(out, result)
	return nil
}

// newConsoleReporter prints one line per written file.
func newConsoleReporter(w io.Writer) generator.Reporter {
	return generator.ReporterFunc(func(e generator.Event) {
		switch e.Kind {
		case generator.EventFileWritten:
			_, _ = fmt.Fprintf(w, "  %s Created %s\n", symSuccess(), e.Path)
		case generator.EventGeneratorFailed:
			_, _ = fmt.Fprintf(w, "  %s %s generator failed\n", symError(), e.Generator)
		}
	})
}

// guideFor maps generator names to the guide each one writes.
var guideFor = map[string]string{
	generator.NameMUI:      path.Join(defs.ThemeDir, defs.MUIGuide),
	generator.NameSCSS:     path.Join(defs.SCSSDir, defs.SCSSGuide),
	generator.NameTailwind: path.Join(defs.TailwindDir, defs.TailwindGuide),
	generator.NameShadcn:   defs.ShadcnGuide,
}

// printSummary prints the completion card.
func printSummary(out io.Writer, result *scaffold.Result) {
	_, _ = fmt.Fprintln(out)
	if len(result.Generators) == 0 {
		_, _ = fmt.Fprintf(out, "%s %s\n", symWarning(), cliWarn.Render("No generator selected; nothing was written."))
		return
	}

	lines := []string{
		fmt.Sprintf("%s %d files written (%s)", symSuccess(), len(result.Files), strings.Join(result.Generators, ", ")),
		"",
		"Next steps:",
	}
	for _, name := range result.Generators {
		lines = append(lines, "  Read "+guideFor[name])
	}
	_, _ = fmt.Fprintln(out, summaryCard("Theme files generated", lines))
}
