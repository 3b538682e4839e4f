package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/k0ns0l/configdrift/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage the configdrift configuration file.

Examples:
  configdrift config show         # Show current configuration
  configdrift config init         # Initialize default configuration file`,
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configdrift configuration in the specified format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		outputFormat, err := cmd.Flags().GetString("output")
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", "output", err)
		}

		switch outputFormat {
		case "json":
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(cfg)
		case "yaml":
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			defer encoder.Close()
			return encoder.Encode(cfg)
		default:
			return fmt.Errorf("unsupported output format: %s (supported: json, yaml)", outputFormat)
		}
	},
}

// configInitCmd initializes a default configuration file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configdrift configuration file in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return fmt.Errorf("failed to get force flag: %w", err)
		}

		path := config.DefaultConfigFileName
		if cfgFile != "" {
			path = cfgFile
		}

		if config.ConfigExists(path) && !force {
			return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", path)
		}

		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configShowCmd.Flags().StringP("output", "o", "yaml", "output format (json, yaml)")
	configInitCmd.Flags().BoolP("force", "f", false, "overwrite an existing configuration file")
}
