// Package main provides the clear command.
package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/ui"
)

var clearCmd = &cobra.Command{
	Use:   "clear [project]",
	Short: "Remove ended session records",
	Long: `Remove retained records of ended, stopped, or failed sessions. With a
project argument only that project's record is cleared; without one, every
non-live record goes. Live sessions are never cleared.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	manager, state := newSessionManager(store, cfg)
	reg := manager.Registry()

	cleared := 0
	if len(args) == 1 {
		if reg.Clear(args[0]) {
			cleared++
		}
	} else {
		for _, s := range reg.List() {
			if reg.Clear(s.Project) {
				cleared++
			}
		}
	}
	// Full replace, not merge-on-save: merging back the on-disk snapshot
	// would resurrect the records just cleared.
	if err := state.Save(reg.List()); err != nil {
		log.Warn("Failed to save session state", "error", err)
	}

	if cleared == 0 {
		ui.PrintDim("Nothing to clear")
		return nil
	}
	ui.PrintSuccess("Cleared %d session record(s)", cleared)
	return nil
}
