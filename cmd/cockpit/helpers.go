// Package main provides shared helpers for cockpit commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/config"
	"github.com/cindergrace/cockpit/internal/session"
	"github.com/cindergrace/cockpit/internal/wm"
)

// loadConfig opens the config store and loads (or defaults) the configuration.
//
// Returns:
//   - *config.Store: The store, for later saves.
//   - *config.Config: The loaded configuration.
//   - error: Any error that occurred.
func loadConfig() (*config.Store, *config.Config, error) {
	store, err := config.NewStore()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// newSessionManager builds the session manager and restores the registry
// snapshot from the previous invocation. Restored records are re-probed
// immediately so stale sessions show as ended, not running.
//
// Parameters:
//   - store: The config store; its directory holds the snapshot.
//   - cfg: The loaded configuration.
//
// Returns:
//   - *session.Manager: The ready manager.
//   - *session.StateFile: The snapshot file for saveSessions.
func newSessionManager(store *config.Store, cfg *config.Config) (*session.Manager, *session.StateFile) {
	focuser := wm.Detect()
	log.Debug("Window focus backend", "name", focuser.Name())

	manager := session.NewManager(cfg, focuser)
	state := session.NewStateFile(store.Dir())

	sessions, err := state.Load()
	if err != nil {
		// Losing track of sessions is recoverable; refusing to run is not.
		log.Warn("Discarding unreadable session state", "error", err)
	} else if len(sessions) > 0 {
		manager.Registry().Restore(sessions)
		manager.CheckLiveness()
	}
	return manager, state
}

// saveSessions persists the registry snapshot. The snapshot on disk is
// re-read and merged first, so a record written by a command that ran
// between our load and this save survives instead of being overwritten.
// Failures are logged, not fatal: the command's real work already happened.
func saveSessions(manager *session.Manager, state *session.StateFile) {
	persisted, err := state.Load()
	if err != nil {
		persisted = nil
	}
	merged := session.MergeSnapshots(manager.Registry().List(), persisted)
	if err := state.Save(merged); err != nil {
		log.Warn("Failed to save session state", "error", err)
	}
}

// jsonOutput reports whether the global --json flag is set.
func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Root().PersistentFlags().GetBool("json")
	return v
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
