//go:build !windows

package terminal

import (
	"os/exec"
	"testing"
	"time"
)

// mustAlive is Alive with probe-infrastructure failures failing the test:
// in this environment ps is available, so an error means a bug.
func mustAlive(t *testing.T, pid int, comm string) bool {
	t.Helper()
	alive, err := Alive(pid, comm)
	if err != nil {
		t.Fatalf("Alive(%d, %q) error = %v", pid, comm, err)
	}
	return alive
}

func TestAliveAndTerminateRealProcess(t *testing.T) {
	cmd := exec.Command("sleep", "60")
	setDetached(cmd)
	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start sleep: %v", err)
	}
	pid := cmd.Process.Pid
	go func() { _ = cmd.Wait() }()

	if !mustAlive(t, pid, "sleep") {
		t.Error("Alive() = false for a running process with matching comm")
	}

	// Identity mismatch must read as not alive even though the PID exists.
	if mustAlive(t, pid, "gnome-terminal") {
		t.Error("Alive() = true for a PID whose comm does not match")
	}

	if err := Terminate(pid, "sleep"); err != nil {
		t.Errorf("Terminate() error = %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && mustAlive(t, pid, "sleep") {
		time.Sleep(50 * time.Millisecond)
	}
	if mustAlive(t, pid, "sleep") {
		t.Error("process still alive after Terminate()")
	}

	// Idempotent: terminating an ended process is a no-op success.
	if err := Terminate(pid, "sleep"); err != nil {
		t.Errorf("second Terminate() error = %v", err)
	}
}

func TestAliveInvalidPID(t *testing.T) {
	if mustAlive(t, 0, "sleep") {
		t.Error("Alive(0) should be false")
	}
	if mustAlive(t, -5, "sleep") {
		t.Error("Alive(negative) should be false")
	}
}

// A PID that is gone is a definitive answer, not a probe error: ps exiting
// non-zero for an absent PID must not be reported as unknown.
func TestAliveAbsentPIDIsDefinitive(t *testing.T) {
	alive, err := Alive(4194000, "sleep")
	if err != nil {
		t.Fatalf("Alive() of absent PID error = %v, want definitive answer", err)
	}
	if alive {
		t.Error("Alive() = true for an absent PID")
	}
}

func TestTerminateAbsentPID(t *testing.T) {
	// PIDs just below the default pid_max are very unlikely to be in use.
	if err := Terminate(4194000, "sleep"); err != nil {
		t.Errorf("Terminate() of absent PID error = %v", err)
	}
}
