// Package syncfile exports and imports the configuration to a shared
// folder as an encrypted, self-contained blob.
//
// The folder is typically cloud-synced (Google Drive, Dropbox, Syncthing).
// Conflict handling is whole-file last-writer-wins: an import replaces the
// local configuration, no field-level merge is attempted.
package syncfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cindergrace/cockpit/internal/config"
	"github.com/cindergrace/cockpit/internal/util"
	"github.com/cindergrace/cockpit/internal/vault"
)

// FileName is the fixed name of the sync blob inside the shared folder.
const FileName = "cockpit-sync.enc"

var (
	// ErrNoSyncFile is returned by Import when the folder holds no blob.
	ErrNoSyncFile = errors.New("no sync file found")

	// ErrFolderUnwritable is returned by Export when the folder cannot be
	// created or written.
	ErrFolderUnwritable = errors.New("sync folder is not writable")

	// ErrSchemaMismatch is returned by Import when the decrypted document
	// (or the blob format) is newer than this build understands.
	ErrSchemaMismatch = errors.New("sync file was written by a newer version")
)

// envelope is the plaintext document inside the blob.
type envelope struct {
	Schema     int            `json:"schema"`
	ExportedAt time.Time      `json:"exported_at"`
	Config     *config.Config `json:"config"`
}

// Path returns the sync blob path inside a folder.
func Path(folder string) string {
	return filepath.Join(folder, FileName)
}

// Exists reports whether a sync blob is present in the folder.
func Exists(folder string) bool {
	_, err := os.Stat(Path(folder))
	return err == nil
}

// Export encrypts the configuration and writes it to the shared folder.
// The write is atomic (temp file + rename) so a cloud-sync daemon watching
// the folder never uploads a partial blob.
//
// Parameters:
//   - cfg: The configuration to export.
//   - folder: The shared folder path, created if missing.
//   - password: The passphrase protecting the blob.
//
// Returns:
//   - error: ErrFolderUnwritable when the folder rejects the write, or any
//     serialization/encryption error.
func Export(cfg *config.Config, folder, password string) error {
	env := envelope{
		Schema:     config.SchemaVersion,
		ExportedAt: time.Now().UTC(),
		Config:     cfg,
	}
	plaintext, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}

	blob, err := vault.Seal(plaintext, password)
	if err != nil {
		return fmt.Errorf("failed to encrypt configuration: %w", err)
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrFolderUnwritable, err)
	}
	if err := util.WriteFileAtomic(Path(folder), blob, 0600); err != nil {
		return fmt.Errorf("%w: %v", ErrFolderUnwritable, err)
	}
	return nil
}

// Import reads and decrypts the sync blob from the shared folder.
//
// The returned configuration is a full replacement for the local one; the
// caller decides what machine-local fields to retain (see Merge).
//
// Parameters:
//   - folder: The shared folder path.
//   - password: The passphrase.
//
// Returns:
//   - *config.Config: The imported configuration, normalized.
//   - error: ErrNoSyncFile, vault.ErrWrongPasswordOrCorrupt, or
//     ErrSchemaMismatch.
func Import(folder, password string) (*config.Config, error) {
	blob, err := os.ReadFile(Path(folder))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSyncFile
		}
		return nil, fmt.Errorf("failed to read sync file: %w", err)
	}

	plaintext, err := vault.Open(blob, password)
	if err != nil {
		if errors.Is(err, vault.ErrUnsupportedFormat) {
			return nil, ErrSchemaMismatch
		}
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(plaintext, &env); err != nil {
		// Decryption succeeded but the payload is not ours.
		return nil, vault.ErrWrongPasswordOrCorrupt
	}
	if env.Schema > config.SchemaVersion {
		return nil, ErrSchemaMismatch
	}
	if env.Config == nil {
		return nil, vault.ErrWrongPasswordOrCorrupt
	}

	env.Config.Normalize()
	return env.Config, nil
}

// Merge applies an imported configuration over the local one, keeping
// machine-local fields that would break on this machine if clobbered:
// provider command paths survive when the imported provider carries an
// empty command, and the local project root and sync folder always win.
//
// Parameters:
//   - local: The current local configuration.
//   - imported: The configuration returned by Import.
//
// Returns:
//   - *config.Config: The merged configuration, ready to save.
func Merge(local, imported *config.Config) *config.Config {
	merged := *imported
	merged.Settings.ProjectRoot = local.Settings.ProjectRoot
	merged.Settings.SyncFolder = local.Settings.SyncFolder
	merged.Settings.SyncEnabled = local.Settings.SyncEnabled
	if merged.Settings.TerminalCommand == "" {
		merged.Settings.TerminalCommand = local.Settings.TerminalCommand
	}

	for i := range merged.Providers {
		if merged.Providers[i].Command != "" {
			continue
		}
		if lp := local.Provider(merged.Providers[i].ID); lp != nil {
			merged.Providers[i].Command = lp.Command
		}
	}

	merged.Normalize()
	return &merged
}
