package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aikawa-legal/saikengen/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
	Long: `View and set configuration values.

Known keys:
  templates_dir      - Template storage directory
  data_dir           - Creditor database directory
  default_court      - Court used when --court is omitted
  default_procedure  - Procedure used when --procedure is omitted`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// knownConfigKeys drives the show command's output order.
var knownConfigKeys = []string{
	driven.ConfigKeyTemplatesDir,
	driven.ConfigKeyDataDir,
	driven.ConfigKeyDefaultCourt,
	driven.ConfigKeyDefaultProcedure,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Configuration (%s)\n\n", configStore.Path())
	for _, key := range knownConfigKeys {
		value := configStore.GetString(key)
		if value == "" {
			value = "(not set)"
		}
		cmd.Printf("  %-18s %s\n", key, value)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key not set: %s", args[0])
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}
