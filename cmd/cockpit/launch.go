// Package main provides the launch command.
package main

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/session"
	"github.com/cindergrace/cockpit/internal/ui"
)

var launchCmd = &cobra.Command{
	Use:   "launch <project>",
	Short: "Open a terminal session running a provider CLI in a project",
	Long: `Open a terminal window in the project's working directory, running the
resolved provider CLI (explicit flag, then project default, then last used,
then first enabled).

EXAMPLES:
  cockpit launch myapp
  cockpit launch myapp --provider codex
  cockpit launch myapp --skip-permissions
  cockpit launch myapp --print --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	launchCmd.Flags().StringP("provider", "p", "", "Provider CLI to run (e.g. claude, codex, gemini)")
	launchCmd.Flags().Bool("skip-permissions", false, "Append the provider's skip-permissions flag")
	launchCmd.Flags().Bool("print", false, "Print the terminal invocation instead of spawning it")
	launchCmd.Flags().Bool("copy", false, "With --print, also copy the invocation to the clipboard")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	project := args[0]
	providerID, _ := cmd.Flags().GetString("provider")
	skipPermissions, _ := cmd.Flags().GetBool("skip-permissions")
	printOnly, _ := cmd.Flags().GetBool("print")
	copyLine, _ := cmd.Flags().GetBool("copy")

	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	manager, state := newSessionManager(store, cfg)

	if printOnly {
		inv, err := manager.Invocation(project, providerID, skipPermissions)
		if err != nil {
			return err
		}
		line := strings.Join(inv.Argv(), " ")
		ui.PrintInfo("%s", line)
		if copyLine {
			if err := clipboard.WriteAll(line); err != nil {
				ui.PrintWarning("Could not copy to clipboard: %v", err)
			} else {
				ui.PrintDim("Copied to clipboard")
			}
		}
		return nil
	}

	ui.StartSpinner("Starting " + project)
	sess, err := manager.Launch(project, providerID, skipPermissions)
	ui.StopSpinner()
	saveSessions(manager, state)
	if err != nil {
		if errors.Is(err, session.ErrSessionAlreadyRunning) {
			ui.PrintWarning("%s already has a live session -- try 'cockpit focus %s'", project, project)
		}
		return err
	}

	// Remember the provider for the next resolution.
	if cfg.Settings.LastProvider != sess.Provider {
		cfg.Settings.LastProvider = sess.Provider
		if err := store.Save(cfg); err != nil {
			log.Warn("Failed to record last provider", "error", err)
		}
	}

	ui.PrintSuccess("Started %s in %s (pid %d)", sess.Provider, sess.WorkingDir, sess.PID)
	return nil
}
