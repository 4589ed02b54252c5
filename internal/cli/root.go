package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/modu-ai/themegen/internal/cli/wizard"
	"github.com/modu-ai/themegen/internal/config"
	"github.com/modu-ai/themegen/internal/defs"
	"github.com/modu-ai/themegen/pkg/version"
)

// Persistent flag names.
const (
	flagConfig         = "config"
	flagDir            = "dir"
	flagNonInteractive = "non-interactive"
	flagLogLevel       = "log-level"
	flagVerbose        = "verbose"
)

// NewRootCmd builds the themegen command tree. Running it without a
// subcommand is the same as "themegen generate".
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "themegen",
		Short: "Scaffold MUI, SCSS, Tailwind, and ShadCN theme files",
		Long: `themegen asks a short series of questions about your frontend project and
writes ready-to-edit theme files for the styling stacks you pick:

  theme/      MUI theme modules (TypeScript or JavaScript) and MUI.md
  scss/       SCSS variables, mixins, entry stylesheet, and README.md
  tailwind/   tailwind.config.js, index.css, and TAILWIND.md
  SHADCN.md   ShadCN/UI setup guide

Defaults for every question can be stored in .themegen.yaml
("themegen config init") or set with THEMEGEN_* environment variables.`,
		Version:           version.GetVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadDependencies,
		RunE:              runGenerate,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("themegen %s\n", version.GetFullVersion()))

	pf := rootCmd.PersistentFlags()
	pf.String(flagConfig, defs.SettingsFile, "Settings file (ignored if missing)")
	pf.String(flagDir, "", "Output root directory (default: current directory)")
	pf.Bool(flagNonInteractive, false, "Use configured defaults without prompting")
	pf.String(flagLogLevel, "", "Diagnostic log level: debug, info, warn, error, disabled")
	pf.Bool(flagVerbose, false, "Shorthand for --log-level debug")

	rootCmd.AddCommand(newGenerateCmd(), newConfigCmd(), newGuideCmd())
	return rootCmd
}

// loadDependencies merges settings and wires the composition root before
// any command runs.
func loadDependencies(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString(flagConfig)
	settings, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		settings.LogLevel = "debug"
	}
	return InitDependencies(settings, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Execute runs the CLI with the process arguments and standard streams.
// It prints a single styled line for any error and returns it so main can
// exit non-zero. A cancelled wizard is not an error.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return ExecuteContext(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// ExecuteContext runs the CLI with explicit arguments and streams.
func ExecuteContext(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	return runCommand(ctx, NewRootCmd(), args, in, out, errOut)
}

func runCommand(ctx context.Context, rootCmd *cobra.Command, args []string, in io.Reader, out, errOut io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	if errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(errOut, cliMuted.Render("Cancelled. No files were written."))
		return nil
	}
	if err != nil {
		printError(errOut, err)
	}
	return err
}
