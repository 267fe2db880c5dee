// Package main provides the stop command.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/session"
	"github.com/cindergrace/cockpit/internal/ui"
)

var stopCmd = &cobra.Command{
	Use:   "stop <project>",
	Short: "Stop a project's terminal session",
	Long: `Stop the tracked terminal session for a project. The terminal process
group gets a graceful termination signal first and is killed only if it does
not exit within the grace period. Stopping an already-ended session is a
no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	project := args[0]

	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	manager, state := newSessionManager(store, cfg)

	ui.StartSpinner("Stopping " + project)
	err = manager.Stop(project)
	ui.StopSpinner()
	saveSessions(manager, state)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			ui.PrintWarning("No session tracked for %s", project)
		}
		return err
	}

	ui.PrintSuccess("Stopped %s", project)
	return nil
}
