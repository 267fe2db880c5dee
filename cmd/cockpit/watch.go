// Package main provides the watch command -- the live session dashboard.
package main

import (
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/instance"
	"github.com/cindergrace/cockpit/internal/session"
	"github.com/cindergrace/cockpit/internal/tui"
	"github.com/cindergrace/cockpit/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard of projects and their sessions",
	Long: `Watch all projects and their terminal sessions, sweeping liveness every
few seconds. In an interactive terminal this opens a full-screen dashboard
with launch/focus/stop/clear keys; with --quiet, --json, or piped output it
prints state transitions as they happen instead.

Only one watcher runs at a time per user.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("interval", session.DefaultPollInterval, "Liveness sweep interval")
}

func runWatch(cmd *cobra.Command, args []string) error {
	interval, _ := cmd.Flags().GetDuration("interval")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Only one watcher may own the liveness poller.
	lock, err := instance.Acquire(store.Dir())
	if err != nil {
		if errors.Is(err, instance.ErrAlreadyRunning) {
			ui.PrintWarning("Another cockpit watcher is already running (pid %d)", instance.Holder(store.Dir()))
		}
		return err
	}
	defer lock.Release()

	manager, state := newSessionManager(store, cfg)
	defer saveSessions(manager, state)

	if tui.ShouldRunTUI(jsonOutput(cmd), quiet) {
		return tui.RunWatch(cfg, manager, version, interval)
	}
	return watchHeadless(cmd, manager, interval)
}

// watchHeadless runs the poller without a TUI, printing each state
// transition, until interrupted.
func watchHeadless(cmd *cobra.Command, manager *session.Manager, interval time.Duration) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	asJSON := jsonOutput(cmd)
	poller := session.NewPoller(manager, interval)
	poller.OnChange = func(s session.Session) {
		if asJSON {
			_ = printJSON(s)
			return
		}
		ui.PrintInfo("%s: %s (pid %d)", s.Project, ui.StateStyle(string(s.State)).Render(string(s.State)), s.PID)
	}
	poller.Run(ctx)
	return nil
}
