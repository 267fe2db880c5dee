//go:build windows

package terminal

import (
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sys/windows"
)

// setDetached starts the terminal in a new process group, detached from the
// launcher's console.
func setDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}

// Alive reports whether the PID exists and still runs the recorded image.
// tasklist is used instead of OpenProcess so the check needs no extra
// privileges; its CSV output carries the image name for the identity
// cross-check against PID recycling. When tasklist itself cannot run the
// answer is unknown and an error is returned so callers can retry instead
// of declaring death.
func Alive(pid int, comm string) (bool, error) {
	if pid <= 0 {
		return false, nil
	}
	out, err := exec.Command("tasklist", "/FI", "PID eq "+strconv.Itoa(pid), "/FO", "CSV", "/NH").Output()
	if err != nil {
		return false, err
	}
	line := strings.TrimSpace(string(out))
	if line == "" || !strings.HasPrefix(line, `"`) {
		// tasklist prints an INFO sentence, not CSV, when no task matches.
		return false, nil
	}
	fields := strings.Split(line, `","`)
	if len(fields) < 2 {
		return false, nil
	}
	image := strings.Trim(fields[0], `"`)
	if comm == "" {
		return true, nil
	}
	return strings.EqualFold(strings.TrimSuffix(image, ".exe"), strings.TrimSuffix(comm, ".exe")), nil
}

// terminateGrace is how long Terminate waits before forcing termination.
const terminateGrace = 3 * time.Second

// Terminate stops the terminal process tree: a polite taskkill first, then
// a forced one (/F) for survivors after a bounded grace period. Absent
// processes are a no-op success.
func Terminate(pid int, comm string) error {
	if alive, err := Alive(pid, comm); err == nil && !alive {
		return nil
	}

	_ = exec.Command("taskkill", "/T", "/PID", strconv.Itoa(pid)).Run()

	deadline := time.Now().Add(terminateGrace)
	for time.Now().Before(deadline) {
		if alive, err := Alive(pid, comm); err == nil && !alive {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	return exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
