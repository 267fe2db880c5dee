// Package main provides the focus command.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/session"
	"github.com/cindergrace/cockpit/internal/ui"
	"github.com/cindergrace/cockpit/internal/wm"
)

var focusCmd = &cobra.Command{
	Use:   "focus <project>",
	Short: "Raise the terminal window of a project's session",
	Long: `Bring the terminal window of a project's live session to the
foreground. Window control is best effort: on platforms without it the
session keeps running and the command reports that focus is unavailable.`,
	Args: cobra.ExactArgs(1),
	RunE: runFocus,
}

func runFocus(cmd *cobra.Command, args []string) error {
	project := args[0]

	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	manager, state := newSessionManager(store, cfg)

	err = manager.Focus(project)
	saveSessions(manager, state)
	switch {
	case err == nil:
		ui.PrintSuccess("Focused %s", project)
		return nil
	case errors.Is(err, wm.ErrUnsupported):
		// Informational, not a failure: the session is unaffected.
		ui.PrintInfo("Window focus is not supported on this platform")
		return nil
	case errors.Is(err, session.ErrNoSession):
		ui.PrintWarning("No live session for %s -- try 'cockpit launch %s'", project, project)
		return err
	default:
		return err
	}
}
