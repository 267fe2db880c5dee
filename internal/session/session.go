// Package session tracks terminal sessions running LLM CLI tools, one live
// session per project.
//
// The Registry is the client-facing state machine; the Manager performs
// launch/stop/focus against the OS through the terminal and wm packages;
// the Poller sweeps liveness on a fixed interval.
package session

import "time"

// State is a session's lifecycle state.
//
// Starting → Running → (Ended | Stopped); Starting → Failed.
// Ended, Stopped, and Failed are terminal.
type State string

const (
	// StateStarting is the window between accepting a launch and the
	// spawn completing.
	StateStarting State = "starting"

	// StateRunning means the terminal process was spawned and last looked
	// alive.
	StateRunning State = "running"

	// StateEnded means the process exited on its own, detected by the
	// liveness poll.
	StateEnded State = "ended"

	// StateStopped means the session was terminated via Stop.
	StateStopped State = "stopped"

	// StateFailed means the spawn itself failed.
	StateFailed State = "failed"
)

// Terminal reports whether no further transitions can leave the state.
func (s State) Terminal() bool {
	switch s {
	case StateEnded, StateStopped, StateFailed:
		return true
	}
	return false
}

// Live reports whether the session counts against the one-live-session-per-
// project invariant.
func (s State) Live() bool {
	return s == StateStarting || s == StateRunning
}

// Session is one tracked terminal process tied to one project.
type Session struct {
	// ID uniquely identifies this session record.
	ID string `json:"id"`

	// Project is the owning project's name.
	Project string `json:"project"`

	// Provider is the id of the LLM CLI launched inside the terminal.
	Provider string `json:"provider"`

	// PID is the terminal process id — the liveness handle. It belongs to
	// the emulator (the direct child), not the CLI inside it.
	PID int `json:"pid"`

	// Comm is the expected command name for the PID, recorded at spawn
	// and cross-checked by liveness probes against PID recycling.
	Comm string `json:"comm,omitempty"`

	// WorkingDir is the resolved absolute working directory.
	WorkingDir string `json:"working_dir"`

	// WindowTitle is the terminal window title used for focus lookup.
	WindowTitle string `json:"window_title,omitempty"`

	// WindowID caches the resolved window handle once focus found it.
	WindowID string `json:"window_id,omitempty"`

	// StartedAt is when the spawn was initiated.
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when a terminal state was entered.
	EndedAt time.Time `json:"ended_at,omitzero"`

	// State is the current lifecycle state.
	State State `json:"state"`
}
