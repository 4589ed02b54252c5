package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/modu-ai/themegen/internal/generator"
	"github.com/modu-ai/themegen/internal/ui"
)

// guideWrap is the word-wrap width for rendered guides.
const guideWrap = 80

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "guide <mui|scss|tailwind|shadcn>",
		Short:     "Show a generator's setup guide for the current settings",
		Long:      "Render the markdown guide a generator would write, using the configured defaults, without writing any file.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{generator.NameMUI, generator.NameSCSS, generator.NameTailwind, generator.NameShadcn},
		RunE:      runGuide,
	}
}

func runGuide(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	g, ok := generator.Lookup(deps.Generators(nil), args[0])
	if !ok {
		return fmt.Errorf("unknown generator %q: choose one of mui, scss, tailwind, shadcn", args[0])
	}
	r, ok := g.(generator.Renderable)
	if !ok {
		return fmt.Errorf("%s generator cannot render without writing", g.Name())
	}

	files, err := r.Render(deps.Settings.Defaults)
	if err != nil {
		return err
	}

	for _, f := range files {
		if path.Ext(f.Path) != ".md" {
			continue
		}
		return printMarkdown(cmd, string(f.Content))
	}
	return fmt.Errorf("%s generator has no guide", g.Name())
}

// printMarkdown styles md with glamour on a terminal and prints it as-is otherwise.
func printMarkdown(cmd *cobra.Command, md string) error {
	out := cmd.OutOrStdout()
	if !ui.IsTerminal(out) || deps.Theme.NoColor {
		_, err := fmt.Fprint(out, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(guideWrap),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}
	_, err = fmt.Fprint(out, strings.TrimLeft(rendered, "\n"))
	return err
}
