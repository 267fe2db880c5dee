// Package main provides configuration inspection commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cindergrace/cockpit/internal/config"
	"github.com/cindergrace/cockpit/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit settings",
	Long: `View and edit cockpit settings by JSON path.

EXAMPLES:
  cockpit config path
  cockpit config show
  cockpit config get settings.project_root
  cockpit config set settings.show_hidden true
  cockpit config set settings.terminal_command konsole`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the full configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a setting by JSON path",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting by JSON path",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	store, err := config.NewStore()
	if err != nil {
		return err
	}
	fmt.Println(store.Path())
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return printJSON(cfg)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	result := gjson.GetBytes(data, args[0])
	if !result.Exists() {
		return fmt.Errorf("unknown key %q", args[0])
	}
	fmt.Println(result.String())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	if !gjson.GetBytes(data, key).Exists() {
		return fmt.Errorf("unknown key %q", key)
	}

	updated, err := sjson.SetBytes(data, key, typedValue(raw))
	if err != nil {
		return err
	}

	// Round-trip through the typed config so a bad value fails here, not at
	// the next load.
	var next config.Config
	if err := json.Unmarshal(updated, &next); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	next.Normalize()

	if err := store.Save(&next); err != nil {
		return err
	}
	ui.PrintSuccess("Set %s", key)
	return nil
}

// typedValue interprets a CLI argument as bool, number, or string.
func typedValue(raw string) interface{} {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
