package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/naveenspark/folio/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect folio configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'config' requires a subcommand (show)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration attributes and their sources",
	Long: `Show configuration attributes and where each value came from:
the built-in default, the config file or the environment.

Config file location: ~/.folio/config.yml (or FOLIO_CONFIG)

Example:
  folio config show
  folio config show --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		path, _ := cmd.Flags().GetString("config")
		if err := config.LoadDotenv(); err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return showConfiguration(cmd.OutOrStdout(), cfg, output)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showConfiguration(w io.Writer, cfg *config.Config, output string) error {
	switch output {
	case "json":
		out, err := cfg.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out) //nolint:errcheck
	case "text", "":
		fmt.Fprint(w, cfg.FormatText()) //nolint:errcheck
	default:
		return fmt.Errorf("unknown output format %q (text or json)", output)
	}
	return nil
}
