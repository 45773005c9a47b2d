package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/warp/deposit-engine/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Generate or validate configuration files",
		Long: `Manage configuration files shared by the CLI and the server.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  deposit config init --output deposit.yaml
  deposit config validate --file deposit.yaml`,
	}

	var output string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if err := cfg.SaveToFile(output); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", output)
			return nil
		},
	}
	initCmd.Flags().StringVarP(&output, "output", "o", "deposit.yaml", "output config file path")

	var path string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(path)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Configuration valid: %s\n", path)
			fmt.Fprintf(out, "  Server port: %d\n", cfg.Server.Port)
			fmt.Fprintf(out, "  Log: %s (%s)\n", cfg.Log.Level, cfg.Log.Format)
			fmt.Fprintf(out, "  Default plan type: %s\n", cfg.Defaults.PlanType)
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&path, "file", "f", "", "path to config file (required)")
	validateCmd.MarkFlagRequired("file")

	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(validateCmd)
	return configCmd
}
