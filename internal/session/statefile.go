package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cindergrace/cockpit/internal/util"
)

// stateFileName is the registry snapshot inside the app config dir.
const stateFileName = "sessions.json"

// StateFile persists registry snapshots between CLI invocations, so a
// short-lived front-end can resume tracking sessions it launched earlier.
// It is front-end glue, not part of the registry contract: the snapshot is
// advisory and every record is re-probed after Restore.
type StateFile struct {
	path string
}

// NewStateFile creates a state file inside the given directory.
func NewStateFile(dir string) *StateFile {
	return &StateFile{path: filepath.Join(dir, stateFileName)}
}

// Load reads the snapshot. A missing file is an empty snapshot, and an
// unreadable one is treated the same with the damage logged by the caller —
// losing track of sessions is recoverable, refusing to start is not.
//
// Returns:
//   - []Session: The persisted session records.
//   - error: Error when the file exists but cannot be read or parsed.
func (f *StateFile) Load() ([]Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session state: %w", err)
	}

	var sessions []Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to parse session state: %w", err)
	}
	return sessions, nil
}

// MergeSnapshots combines in-memory registry records with the snapshot
// already on disk, so two commands running at once do not erase each
// other's records on save. One record survives per project: the same
// session keeps the in-memory copy (its state is fresher), and a session
// launched by another command in the meantime keeps whichever record
// started later.
func MergeSnapshots(local, persisted []Session) []Session {
	merged := make([]Session, 0, len(local)+len(persisted))
	index := make(map[string]int, len(local))

	for _, s := range local {
		index[s.Project] = len(merged)
		merged = append(merged, s)
	}
	for _, p := range persisted {
		i, ok := index[p.Project]
		if !ok {
			index[p.Project] = len(merged)
			merged = append(merged, p)
			continue
		}
		if p.ID != merged[i].ID && p.StartedAt.After(merged[i].StartedAt) {
			merged[i] = p
		}
	}
	return merged
}

// Save writes the snapshot atomically.
func (f *StateFile) Save(sessions []Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}
	return util.WriteFileAtomic(f.path, data, 0600)
}
