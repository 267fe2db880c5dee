// Package terminal composes and controls visible terminal-emulator
// processes that run an LLM CLI inside a project directory.
//
// It owns the platform-sensitive pieces of session handling: building the
// emulator invocation per OS, spawning it detached, probing liveness with a
// PID-identity cross-check, and bounded termination.
package terminal

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Invocation is a fully composed terminal launch: argv plus metadata the
// session layer tracks for liveness and focus.
type Invocation struct {
	// Path is the executable to start (the terminal emulator or its host).
	Path string

	// Args are the arguments after argv[0].
	Args []string

	// Dir is the working directory for the spawned process.
	Dir string

	// Title is the terminal window title, used for focus lookup.
	Title string
}

// Comm returns the process identity the liveness probe cross-checks: the
// basename of the spawned executable.
func (inv Invocation) Comm() string {
	return filepath.Base(inv.Path)
}

// Argv returns the full command line for display (--print).
func (inv Invocation) Argv() []string {
	return append([]string{inv.Path}, inv.Args...)
}

// linuxEmulators are probed in order when no terminal is configured.
var linuxEmulators = []string{
	"gnome-terminal",
	"konsole",
	"xfce4-terminal",
	"mate-terminal",
	"xterm",
}

// DefaultCommand returns the platform's default terminal launcher when the
// configuration does not name one.
//
// Linux probes a list of common emulators on PATH and falls back to xterm.
// Windows prefers Windows Terminal when installed, else the classic console
// host. macOS always goes through osascript to drive Terminal.app.
func DefaultCommand() string {
	switch runtime.GOOS {
	case "windows":
		wt := filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "WindowsApps", "wt.exe")
		if _, err := os.Stat(wt); err == nil {
			return "wt"
		}
		if _, err := exec.LookPath("wt"); err == nil {
			return "wt"
		}
		return "cmd"
	case "darwin":
		return "osascript"
	default:
		for _, name := range linuxEmulators {
			if _, err := exec.LookPath(name); err == nil {
				return name
			}
		}
		return "xterm"
	}
}

// Compose builds the terminal invocation that opens a new window, changes
// into workdir, and runs command. The command string must already be
// validated (see util.ValidateCommand); Compose quotes it for the shell
// wrapper but performs no validation of its own.
//
// Parameters:
//   - terminalCmd: Emulator command from settings, or "" for the default.
//   - workdir: The project working directory.
//   - title: Window title ("<provider>: <project>").
//   - command: The CLI command line to run inside the terminal.
//
// Returns:
//   - Invocation: The composed launch.
//   - error: Error for an unusable terminal command.
func Compose(terminalCmd, workdir, title, command string) (Invocation, error) {
	if terminalCmd == "" {
		terminalCmd = DefaultCommand()
	}

	switch runtime.GOOS {
	case "windows":
		return composeWindows(terminalCmd, workdir, title, command), nil
	case "darwin":
		return composeDarwin(workdir, title, command), nil
	default:
		return composeLinux(terminalCmd, workdir, title, command), nil
	}
}

// holdSuffix keeps the window open after the CLI exits so the user can read
// its final output.
func holdSuffix(title string) string {
	return fmt.Sprintf("; echo '%s finished. Press Enter to close...'; read", sanitizeTitle(title))
}

// sanitizeTitle strips quote characters that would break the shell wrappers
// and AppleScript strings the title is embedded into.
func sanitizeTitle(title string) string {
	title = strings.ReplaceAll(title, "'", "")
	title = strings.ReplaceAll(title, `"`, "")
	return title
}

// singleQuote wraps s in single quotes for embedding in a shell line,
// closing and reopening the quote around any literal apostrophe. Paths
// like "it's-a-project" stay a single shell word.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func composeLinux(terminalCmd, workdir, title, command string) Invocation {
	title = sanitizeTitle(title)
	script := command + holdSuffix(title)

	var args []string
	switch filepath.Base(terminalCmd) {
	case "gnome-terminal", "mate-terminal":
		args = []string{
			"--title=" + title,
			"--working-directory=" + workdir,
			"--",
			"bash", "-c", script,
		}
	case "konsole":
		args = []string{
			"--workdir", workdir,
			"-e", "bash", "-c", script,
		}
	case "xfce4-terminal":
		args = []string{
			"--title=" + title,
			"--working-directory=" + workdir,
			"-e", fmt.Sprintf(`bash -c "%s"`, script),
		}
	default:
		// xterm and compatibles have no working-directory option.
		args = []string{
			"-T", title,
			"-e", "bash", "-c",
			fmt.Sprintf("cd %s && %s", singleQuote(workdir), script),
		}
	}

	return Invocation{Path: terminalCmd, Args: args, Dir: workdir, Title: title}
}

func composeDarwin(workdir, title, command string) Invocation {
	title = sanitizeTitle(title)
	script := fmt.Sprintf(`tell application "Terminal"
	activate
	do script "cd \"%s\" && %s"
end tell`, workdir, command+holdSuffix(title))

	return Invocation{
		Path:  "osascript",
		Args:  []string{"-e", script},
		Dir:   workdir,
		Title: title,
	}
}

func composeWindows(terminalCmd, workdir, title, command string) Invocation {
	title = sanitizeTitle(title)
	if filepath.Base(terminalCmd) == "wt" || filepath.Base(terminalCmd) == "wt.exe" {
		return Invocation{
			Path:  "wt",
			Args:  []string{"--title", title, "-d", workdir, "cmd", "/k", command},
			Dir:   workdir,
			Title: title,
		}
	}
	return Invocation{
		Path:  "cmd",
		Args:  []string{"/c", fmt.Sprintf(`start "%s" /d "%s" cmd /k %s`, title, workdir, command)},
		Dir:   workdir,
		Title: title,
	}
}
