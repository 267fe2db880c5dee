// Package main provides config sync commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/config"
	"github.com/cindergrace/cockpit/internal/syncfile"
	"github.com/cindergrace/cockpit/internal/ui"
	"github.com/cindergrace/cockpit/internal/vault"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync configuration through an encrypted shared-folder file",
	Long: `Export and import the configuration as a password-encrypted file in a
shared folder (Dropbox, Syncthing, a network mount). Machine-local settings
such as the project root never leave the machine.

EXAMPLES:
  cockpit sync folder ~/Dropbox/cockpit
  cockpit sync export
  cockpit sync import
  cockpit sync watch`,
}

var syncFolderCmd = &cobra.Command{
	Use:   "folder <path>",
	Short: "Set the shared folder used for sync",
	Args:  cobra.ExactArgs(1),
	RunE:  runSyncFolder,
}

var syncExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the encrypted config to the shared folder",
	RunE:  runSyncExport,
}

var syncImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import and merge the encrypted config from the shared folder",
	RunE:  runSyncImport,
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync folder and file state",
	RunE:  runSyncStatus,
}

var syncWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the shared folder and import on change",
	RunE:  runSyncWatch,
}

func init() {
	syncCmd.AddCommand(syncFolderCmd)
	syncCmd.AddCommand(syncExportCmd)
	syncCmd.AddCommand(syncImportCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncWatchCmd)
}

// syncFolder returns the configured sync folder or a setup hint error.
func syncFolder(cfg *config.Config) (string, error) {
	folder := cfg.Settings.SyncFolder
	if folder == "" {
		return "", fmt.Errorf("no sync folder configured -- run 'cockpit sync folder <path>' first")
	}
	return folder, nil
}

// friendlySyncError prints the taxonomy errors in user terms before they
// bubble up.
func friendlySyncError(err error, folder string) error {
	switch {
	case errors.Is(err, syncfile.ErrNoSyncFile):
		ui.PrintWarning("No sync file found in %s", folder)
	case errors.Is(err, vault.ErrWrongPasswordOrCorrupt):
		ui.PrintWarning("Wrong password, or the sync file is corrupt")
	case errors.Is(err, syncfile.ErrSchemaMismatch):
		ui.PrintWarning("The sync file was written by a newer cockpit -- upgrade this machine")
	case errors.Is(err, syncfile.ErrFolderUnwritable):
		ui.PrintWarning("Cannot write to %s -- check that the folder exists and is writable", folder)
	}
	return err
}

func runSyncFolder(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	folder, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	cfg.Settings.SyncFolder = folder
	cfg.Settings.SyncEnabled = true
	if err := store.Save(cfg); err != nil {
		return err
	}
	ui.PrintSuccess("Sync folder set to %s", folder)
	return nil
}

func runSyncExport(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	folder, err := syncFolder(cfg)
	if err != nil {
		return err
	}

	password, err := ui.PromptPassword("Password:")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	if err := syncfile.Export(cfg, folder, password); err != nil {
		return friendlySyncError(err, folder)
	}
	ui.PrintSuccess("Exported config to %s", syncfile.Path(folder))
	return nil
}

func runSyncImport(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	folder, err := syncFolder(cfg)
	if err != nil {
		return err
	}

	password, err := ui.PromptPassword("Password:")
	if err != nil {
		return err
	}

	imported, err := syncfile.Import(folder, password)
	if err != nil {
		return friendlySyncError(err, folder)
	}

	merged := syncfile.Merge(cfg, imported)
	if err := store.Save(merged); err != nil {
		return err
	}
	ui.PrintSuccess("Imported %d project(s) and %d provider(s)", len(merged.Projects), len(merged.Providers))
	return nil
}

func runSyncStatus(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Settings.SyncFolder == "" {
		ui.PrintDim("Sync is not configured")
		return nil
	}

	path := syncfile.Path(cfg.Settings.SyncFolder)
	info, statErr := os.Stat(path)

	if jsonOutput(cmd) {
		out := map[string]interface{}{
			"folder":  cfg.Settings.SyncFolder,
			"enabled": cfg.Settings.SyncEnabled,
			"file":    path,
			"exists":  statErr == nil,
		}
		if statErr == nil {
			out["modified"] = info.ModTime()
		}
		return printJSON(out)
	}

	lines := fmt.Sprintf("Folder:  %s\nEnabled: %v", cfg.Settings.SyncFolder, cfg.Settings.SyncEnabled)
	if statErr != nil {
		lines += "\nNo sync file yet -- run 'cockpit sync export'"
	} else {
		lines += fmt.Sprintf("\nFile:    %s\nSize:    %d bytes\nWritten: %s",
			path, info.Size(), info.ModTime().Format(time.DateTime))
	}
	ui.PrintBox("Sync", lines)
	return nil
}

func runSyncWatch(cmd *cobra.Command, args []string) error {
	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	folder, err := syncFolder(cfg)
	if err != nil {
		return err
	}

	// The password is asked once and reused for every import; a wrong
	// password surfaces on the first change, not silently later.
	password, err := ui.PromptPassword("Password:")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	changes, err := syncfile.Watch(ctx, folder)
	if err != nil {
		return err
	}

	if !ui.Quiet() {
		ui.PrintInfo("Watching %s", syncfile.Path(folder))
	}
	for range changes {
		imported, err := syncfile.Import(folder, password)
		if err != nil {
			_ = friendlySyncError(err, folder)
			log.Warn("Import failed", "error", err)
			continue
		}
		merged := syncfile.Merge(cfg, imported)
		if err := store.Save(merged); err != nil {
			log.Warn("Failed to save imported config", "error", err)
			continue
		}
		cfg = merged
		ui.PrintSuccess("Imported config update (%s)", time.Now().Format(time.TimeOnly))
	}
	return nil
}
