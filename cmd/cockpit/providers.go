// Package main provides provider management commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/config"
	"github.com/cindergrace/cockpit/internal/ui"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List and manage provider CLIs",
	Long: `List and manage the LLM CLI providers sessions can run.

EXAMPLES:
  cockpit providers
  cockpit providers enable codex
  cockpit providers disable gemini`,
	RunE: runProvidersList,
}

var providersAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a provider CLI",
	Args:  cobra.ExactArgs(1),
	RunE:  runProvidersAdd,
}

var providersEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProviderEnabled(args[0], true)
	},
}

var providersDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProviderEnabled(args[0], false)
	},
}

func init() {
	providersAddCmd.Flags().String("name", "", "Display name (defaults to the id)")
	providersAddCmd.Flags().String("command", "", "CLI command to run (defaults to the id)")
	providersAddCmd.Flags().String("flags", "", "Default flags appended to the command")
	providersAddCmd.Flags().String("skip-flag", "", "Flag appended by --skip-permissions")
	providersAddCmd.Flags().String("color", "", "Accent color (hex)")

	providersCmd.AddCommand(providersAddCmd)
	providersCmd.AddCommand(providersEnableCmd)
	providersCmd.AddCommand(providersDisableCmd)
}

func runProvidersAdd(cmd *cobra.Command, args []string) error {
	id := args[0]
	name, _ := cmd.Flags().GetString("name")
	command, _ := cmd.Flags().GetString("command")
	flags, _ := cmd.Flags().GetString("flags")
	skipFlag, _ := cmd.Flags().GetString("skip-flag")
	color, _ := cmd.Flags().GetString("color")

	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if name == "" {
		name = id
	}
	if command == "" {
		command = id
	}
	provider := config.Provider{
		ID:                  id,
		Name:                name,
		Command:             command,
		Color:               color,
		DefaultFlags:        flags,
		SkipPermissionsFlag: skipFlag,
		Enabled:             true,
	}
	if err := cfg.AddProvider(provider); err != nil {
		return err
	}
	if err := store.Save(cfg); err != nil {
		return err
	}
	ui.PrintSuccess("Added provider %s (%s)", id, command)
	return nil
}

func runProvidersList(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(cfg.Providers)
	}

	table := ui.NewTable("ID", "NAME", "COMMAND", "ENABLED")
	table.SetMaxWidth(2, 48)
	for _, p := range cfg.Providers {
		enabled := "no"
		if p.Enabled {
			enabled = "yes"
		}
		table.AddRow(p.ID, p.Name, p.Command, enabled)
	}
	table.Render()
	return nil
}

func setProviderEnabled(id string, enabled bool) error {
	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	provider := cfg.Provider(id)
	if provider == nil {
		return fmt.Errorf("unknown provider %q", id)
	}
	provider.Enabled = enabled
	cfg.Normalize()
	if err := store.Save(cfg); err != nil {
		return err
	}

	if enabled {
		ui.PrintSuccess("Enabled %s", id)
	} else {
		ui.PrintSuccess("Disabled %s", id)
	}
	return nil
}
