// Package main provides the ps command.
package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/ui"
)

var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "List tracked terminal sessions",
	Long: `List every tracked session, live and ended. Records of ended sessions
stay visible until 'cockpit clear' removes them.`,
	RunE: runPs,
}

func runPs(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	manager, state := newSessionManager(store, cfg)
	sessions := manager.Registry().List()
	saveSessions(manager, state)

	if jsonOutput(cmd) {
		return printJSON(sessions)
	}

	if len(sessions) == 0 {
		ui.PrintDim("No sessions tracked")
		return nil
	}

	table := ui.NewTable("PROJECT", "PROVIDER", "STATE", "PID", "STARTED", "DIRECTORY")
	// Keep STATE wide enough for the longest state so columns do not
	// shift between renders as sessions end.
	table.SetMinWidth(2, 8)
	table.SetMaxWidth(5, 48)
	for _, s := range sessions {
		pid := ""
		if s.PID > 0 {
			pid = strconv.Itoa(s.PID)
		}
		table.AddRow(
			s.Project,
			s.Provider,
			string(s.State),
			pid,
			s.StartedAt.Format(time.DateTime),
			s.WorkingDir,
		)
	}
	table.Render()
	return nil
}
