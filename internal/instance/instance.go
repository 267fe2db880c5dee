// Package instance enforces that at most one long-lived cockpit front-end
// runs per user. Short-lived commands do not take the lock; only modes that
// own the liveness poller (watch) do.
package instance

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cindergrace/cockpit/internal/terminal"
)

const lockFileName = "cockpit.lock"

// ErrAlreadyRunning reports that another front-end instance holds the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// lockInfo is the lock file payload. Comm lets a holder check survive PID
// reuse: a recycled PID running some other binary does not count as a
// live holder.
type lockInfo struct {
	PID       int       `json:"pid"`
	Comm      string    `json:"comm"`
	StartedAt time.Time `json:"started_at"`
}

// Lock is a held single-instance lock.
type Lock struct {
	path string
	pid  int
}

// Acquire takes the single-instance lock inside dir.
//
// Returns:
//   - *Lock: The held lock; callers must Release it on exit.
//   - error: ErrAlreadyRunning (wrapped with the holder's PID) when a live
//     holder exists, or an I/O error.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	path := filepath.Join(dir, lockFileName)

	info := lockInfo{
		PID:       os.Getpid(),
		Comm:      selfComm(),
		StartedAt: time.Now(),
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, err
	}

	// The payload is written to a private file and linked into place, so
	// the lock is taken atomically and is never observable half-written:
	// of two instances starting at once, exactly one wins the link.
	tmp, err := os.CreateTemp(dir, lockFileName+".*")
	if err != nil {
		return nil, fmt.Errorf("failed to write instance lock: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write instance lock: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write instance lock: %w", err)
	}

	// A leftover file from a crashed holder is removed and the link
	// retried, once.
	for attempt := 0; attempt < 2; attempt++ {
		err := os.Link(tmpPath, path)
		if err == nil {
			return &Lock{path: path, pid: info.PID}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create instance lock: %w", err)
		}
		// Holder treats an unreadable liveness check as live, so a probe
		// failure cannot steal a running holder's lock. A corrupt or
		// dead-PID file reads as no holder and is cleared.
		if pid := Holder(dir); pid != 0 {
			return nil, fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, pid)
		}
		log.Debug("Removing stale instance lock", "path", path)
		if rerr := os.Remove(path); rerr != nil && !os.IsNotExist(rerr) {
			return nil, fmt.Errorf("failed to remove stale instance lock: %w", rerr)
		}
	}
	// Lost the link race twice in a row; somebody else holds the lock.
	return nil, ErrAlreadyRunning
}

// Release removes the lock file if this process still owns it.
func (l *Lock) Release() {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return
	}
	var info lockInfo
	if err := json.Unmarshal(data, &info); err == nil && info.PID != l.pid {
		// Someone replaced a lock they judged stale; leave theirs alone.
		return
	}
	_ = os.Remove(l.path)
}

// Holder reports the live holder of the lock in dir, if any.
//
// Returns:
//   - int: The holder's PID, or 0 when nobody holds the lock.
func Holder(dir string) int {
	data, err := os.ReadFile(filepath.Join(dir, lockFileName))
	if err != nil {
		return 0
	}
	var info lockInfo
	if err := json.Unmarshal(data, &info); err != nil || info.PID <= 0 {
		return 0
	}
	if alive, err := terminal.Alive(info.PID, info.Comm); !alive && err == nil {
		return 0
	}
	return info.PID
}

func selfComm() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}
