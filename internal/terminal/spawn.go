package terminal

import (
	"fmt"
	"os/exec"
)

// Spawn starts the composed invocation as a detached child in its own
// process group, so the launcher can exit or keep running without taking
// the terminal down with it.
//
// The returned PID belongs to the direct child — the terminal emulator (or
// its script host), not the CLI running inside it. Emulators that hand the
// window off to a background server and exit (gnome-terminal without
// --wait) defeat PID tracking; that matches the liveness contract's
// conservative bias, the session just reports ended early.
//
// Parameters:
//   - inv: The composed invocation.
//
// Returns:
//   - int: PID of the spawned terminal process.
//   - error: Error when the executable is missing or the OS refuses the spawn.
func Spawn(inv Invocation) (int, error) {
	cmd := exec.Command(inv.Path, inv.Args...)
	cmd.Dir = inv.Dir
	setDetached(cmd)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", inv.Path, err)
	}

	// Reap the child when it exits so it never lingers as a zombie while
	// the launcher is still running.
	go func() { _ = cmd.Wait() }()

	return cmd.Process.Pid, nil
}
