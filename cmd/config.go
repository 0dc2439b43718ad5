package cmd

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/dealer/internal/config"
	"github.com/arcanaland/dealer/internal/deck"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the dealer configuration",
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", settingsPath())
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(settings)
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set writes one key to the config file.
Keys: log_file, include_time, policy, image_dir, log_level`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settingsPath()

		// start from the file, not the flag/env overridden settings
		cfg, err := config.ReadFile(path)
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "log_file":
			cfg.LogFile = value
		case "include_time":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("include_time must be true or false: %v", err)
			}
			cfg.IncludeTime = b
		case "policy":
			if _, err := deck.ParsePolicy(value); err != nil {
				return err
			}
			cfg.Policy = value
		case "image_dir":
			cfg.ImageDir = value
		case "log_level":
			cfg.LogLevel = value
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := config.Save(path, cfg); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", key, value)
		return nil
	},
}

func settingsPath() string {
	if configFile != "" {
		return configFile
	}
	return config.GetConfigFilePath()
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
