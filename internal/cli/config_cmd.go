package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/themegen/internal/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the themegen settings file",
		// Settings are loaded by each subcommand so that a broken file can
		// still be replaced with "config init --force".
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file holding the built-in defaults",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing settings file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged settings (file, environment, and flags)",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString(flagConfig)
	force, _ := cmd.Flags().GetBool("force")

	if err := config.Write(path, config.NewDefaultSettings(), force); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", symSuccess(), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString(flagConfig)
	settings, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	data, err := config.Marshal(*settings)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
