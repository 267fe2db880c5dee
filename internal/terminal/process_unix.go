//go:build !windows

package terminal

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// setDetached configures the command to run in its own process group so
// signals aimed at the launcher do not reach the terminal, and the whole
// group can be terminated together.
func setDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// Alive reports whether the process still exists and still looks like the
// terminal that was spawned.
//
// A bare signal-0 probe is fooled by PID recycling, so the PID's current
// command name is cross-checked against the recorded one. An established
// identity mismatch reports not-alive: a recycled PID must read as ended,
// never as a running session. When the probe infrastructure itself fails
// (ps cannot run), the answer is unknown and an error is returned so
// callers can retry instead of declaring death.
//
// Parameters:
//   - pid: The tracked terminal PID.
//   - comm: The expected command name recorded at spawn (may be empty for
//     records from older state files, which skips the identity check).
//
// Returns:
//   - bool: Whether the session process is still running.
//   - error: Error when liveness could not be established either way.
func Alive(pid int, comm string) (bool, error) {
	if pid <= 0 {
		return false, nil
	}
	if err := syscall.Kill(pid, 0); err != nil {
		// EPERM means the PID exists but belongs to someone else's
		// process; the identity check below settles it.
		if !errors.Is(err, syscall.EPERM) {
			return false, nil
		}
	}
	if comm == "" {
		return true, nil
	}
	current, err := commOf(pid)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ps ran and found no such PID: the process is gone.
			return false, nil
		}
		// ps itself could not run; liveness is unknown.
		return false, err
	}
	return current == comm, nil
}

// commOf returns the command name of a PID via ps, which works unprivileged
// on both Linux and macOS.
func commOf(pid int) (string, error) {
	out, err := exec.Command("ps", "-o", "comm=", "-p", strconv.Itoa(pid)).Output()
	if err != nil {
		return "", err
	}
	return filepath.Base(strings.TrimSpace(string(out))), nil
}

// terminateGrace is how long Terminate waits between SIGTERM and SIGKILL.
const terminateGrace = 3 * time.Second

// Terminate stops the terminal's process group: SIGTERM first, then after a
// bounded grace period SIGKILL for survivors. A process that is already
// gone is a no-op success, which makes Stop idempotent.
//
// Parameters:
//   - pid: The tracked terminal PID (process group leader).
//   - comm: The expected command name; a recycled PID is left alone.
//
// Returns:
//   - error: Error only for permission failures, never for absent processes.
func Terminate(pid int, comm string) error {
	if alive, err := Alive(pid, comm); err == nil && !alive {
		return nil
	}

	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil {
		if errors.Is(err, syscall.ESRCH) {
			return nil
		}
		// Group signal can fail when the leader already exited; try the
		// process itself before giving up.
		if err := syscall.Kill(pid, syscall.SIGTERM); err != nil && !errors.Is(err, syscall.ESRCH) {
			return err
		}
	}

	deadline := time.Now().Add(terminateGrace)
	for time.Now().Before(deadline) {
		if alive, err := Alive(pid, comm); err == nil && !alive {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	_ = syscall.Kill(-pid, syscall.SIGKILL)
	_ = syscall.Kill(pid, syscall.SIGKILL)
	return nil
}
