package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and modify configuration values.

Keys use dot notation, e.g. llm.model or server.addr.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configKeys are the keys printed by show, in display order.
var configKeys = []string{
	"llm.base_url",
	"llm.model",
	"llm.api_key_env",
	"llm.timeout_secs",
	"llm.retry_transient",
	"llm.rate_limit_rps",
	"vector.url",
	"vector.collection",
	"vector.timeout_secs",
	"search.top_k",
	"catalog.parts_path",
	"catalog.model_parts_path",
	"catalog.sqlite_path",
	"server.addr",
	"server.timeout_secs",
	"prompts.dir",
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n", configStore.Path())
	cmd.Println()

	for _, key := range configKeys {
		if val, ok := configStore.Get(key); ok {
			cmd.Printf("  %-26s %v\n", key, val)
		} else {
			cmd.Printf("  %-26s (unset)\n", key)
		}
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	value := coerceValue(args[1])

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

// coerceValue converts string input to bool, int, or float where the
// text is unambiguous, otherwise keeps it as a string.
func coerceValue(s string) any {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
