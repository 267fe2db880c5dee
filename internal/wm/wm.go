// Package wm raises terminal windows to the foreground where the platform
// allows it.
//
// Focus support is a capability probed once at startup, not a branch at
// every call site: Windows has no unprivileged way to steal focus, Wayland
// compositors forbid window control for unprivileged clients unless the X
// tools still reach them through XWayland, X11 goes through wmctrl or
// xdotool, and macOS activates Terminal.app via osascript.
package wm

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// ErrUnsupported is returned by Focus on platforms without window control.
// It is an expected, informational outcome, not a failure to surface loudly.
var ErrUnsupported = errors.New("window focus is not supported on this platform")

// Focuser raises the window of a tracked terminal process.
type Focuser interface {
	// Name identifies the selected capability for logging.
	Name() string

	// Focus raises the window belonging to pid. windowID is a previously
	// resolved window handle ("" if unknown); title is the window title
	// used as a fallback lookup. The possibly newly resolved window id is
	// returned for caching.
	Focus(pid int, windowID, title string) (string, error)
}

// runner executes an external window-tool command. Injectable for tests.
type runner func(name string, args ...string) ([]byte, error)

func run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// Detect probes the environment once and returns the focus capability.
func Detect() Focuser {
	switch runtime.GOOS {
	case "windows":
		return unsupported{reason: "no unprivileged window control on Windows"}
	case "darwin":
		return macFocuser{run: run}
	default:
		haveWmctrl := lookPathOK("wmctrl")
		haveXdotool := lookPathOK("xdotool")
		if !haveWmctrl && !haveXdotool {
			return unsupported{reason: "wmctrl/xdotool not installed"}
		}
		return x11Focuser{run: run, haveWmctrl: haveWmctrl, haveXdotool: haveXdotool}
	}
}

func lookPathOK(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// unsupported is the no-op capability.
type unsupported struct {
	reason string
}

func (u unsupported) Name() string { return "unsupported" }

func (u unsupported) Focus(int, string, string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrUnsupported, u.reason)
}

// macFocuser activates Terminal.app. macOS offers no per-window handle via
// scripting without accessibility permissions, so activation is app-level.
type macFocuser struct {
	run runner
}

func (m macFocuser) Name() string { return "macos-osascript" }

func (m macFocuser) Focus(pid int, windowID, title string) (string, error) {
	if _, err := m.run("osascript", "-e", `tell application "Terminal" to activate`); err != nil {
		return "", fmt.Errorf("failed to activate Terminal: %w", err)
	}
	return windowID, nil
}

// x11Focuser drives wmctrl and/or xdotool.
type x11Focuser struct {
	run         runner
	haveWmctrl  bool
	haveXdotool bool
}

func (x x11Focuser) Name() string { return "x11-tools" }

func (x x11Focuser) Focus(pid int, windowID, title string) (string, error) {
	if windowID == "" && x.haveWmctrl {
		windowID = x.findWindow(pid, title)
	}

	if windowID != "" && x.haveWmctrl {
		if _, err := x.run("wmctrl", "-i", "-a", windowID); err == nil {
			return windowID, nil
		}
		// Stale id (window re-created); drop it and fall through.
		windowID = ""
	}

	if x.haveXdotool {
		if _, err := x.run("xdotool", "search", "--pid", strconv.Itoa(pid), "windowactivate"); err == nil {
			return windowID, nil
		}
	}

	return "", fmt.Errorf("window for pid %d not found", pid)
}

// findWindow resolves a window id by PID, falling back to a title match.
func (x x11Focuser) findWindow(pid int, title string) string {
	out, err := x.run("wmctrl", "-lp")
	if err != nil {
		return ""
	}
	if id := windowByPID(string(out), pid); id != "" {
		return id
	}
	if title == "" {
		return ""
	}
	out, err = x.run("wmctrl", "-l")
	if err != nil {
		return ""
	}
	return windowByTitle(string(out), title)
}

// windowByPID parses `wmctrl -lp` output: window id, desktop, pid, host, title.
func windowByPID(out string, pid int) string {
	want := strconv.Itoa(pid)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 3 && fields[2] == want {
			return fields[0]
		}
	}
	return ""
}

// windowByTitle parses `wmctrl -l` output and matches on a title substring.
func windowByTitle(out, title string) string {
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.Contains(line, title) {
			if fields := strings.Fields(line); len(fields) > 0 {
				return fields[0]
			}
		}
	}
	return ""
}
