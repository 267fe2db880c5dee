package session

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/cindergrace/cockpit/internal/config"
	"github.com/cindergrace/cockpit/internal/terminal"
	"github.com/cindergrace/cockpit/internal/util"
	"github.com/cindergrace/cockpit/internal/wm"
)

// Spawner starts a composed terminal invocation and returns its PID.
type Spawner func(inv terminal.Invocation) (int, error)

// Prober reports whether a tracked process is still alive. A non-nil error
// means liveness could not be established either way (the probe
// infrastructure failed); callers must retry later, not infer death.
type Prober func(pid int, comm string) (bool, error)

// Terminator stops a tracked process with bounded force escalation.
type Terminator func(pid int, comm string) error

// Manager is the process manager: it launches, stops, and focuses terminal
// sessions and maintains the registry invariants while doing so.
type Manager struct {
	cfg       *config.Config
	reg       *Registry
	focuser   wm.Focuser
	spawn     Spawner
	probe     Prober
	terminate Terminator
}

// NewManager creates a manager bound to a configuration, using the real OS
// spawn/probe/terminate implementations.
func NewManager(cfg *config.Config, focuser wm.Focuser) *Manager {
	return &Manager{
		cfg:       cfg,
		reg:       NewRegistry(),
		focuser:   focuser,
		spawn:     terminal.Spawn,
		probe:     terminal.Alive,
		terminate: terminal.Terminate,
	}
}

// Registry returns the manager's session registry.
func (m *Manager) Registry() *Registry {
	return m.reg
}

// Invocation resolves and composes the terminal invocation a launch would
// run, without spawning anything. Used by launch --print.
func (m *Manager) Invocation(projectName, providerID string, skipPermissions bool) (terminal.Invocation, error) {
	project, provider, workdir, err := m.resolve(projectName, providerID)
	if err != nil {
		return terminal.Invocation{}, err
	}
	command, err := m.command(project, provider, skipPermissions)
	if err != nil {
		return terminal.Invocation{}, err
	}
	title := provider.Name + ": " + project.Name
	return terminal.Compose(m.cfg.Settings.TerminalCommand, workdir, title, command)
}

// Launch starts a terminal session for a project.
//
// Parameters:
//   - projectName: The project to launch.
//   - providerID: Provider override; "" resolves via project default /
//     last used / first enabled.
//   - skipPermissions: Append the provider's skip-permissions flag.
//
// Returns:
//   - *Session: The new session in state Running.
//   - error: ErrInvalidWorkingDirectory, ErrProviderDisabled,
//     ErrSessionAlreadyRunning, or ErrSpawnFailed.
func (m *Manager) Launch(projectName, providerID string, skipPermissions bool) (*Session, error) {
	project, provider, workdir, err := m.resolve(projectName, providerID)
	if err != nil {
		return nil, err
	}
	command, err := m.command(project, provider, skipPermissions)
	if err != nil {
		return nil, err
	}

	title := provider.Name + ": " + project.Name
	inv, err := terminal.Compose(m.cfg.Settings.TerminalCommand, workdir, title, command)
	if err != nil {
		return nil, err
	}

	slot := m.reg.acquire(project.Name)
	defer slot.release()

	if prev := slot.sess; prev != nil && prev.State.Live() {
		alive, perr := m.probe(prev.PID, prev.Comm)
		if alive || perr != nil {
			// On a probe failure the session may well still be there;
			// refusing the launch beats spawning a duplicate.
			return nil, fmt.Errorf("%w (pid %d)", ErrSessionAlreadyRunning, prev.PID)
		}
		// The tracked process died since the last sweep; record it and
		// fall through to the relaunch.
		prev.State = StateEnded
		prev.EndedAt = time.Now()
	}

	sess := &Session{
		ID:          uuid.NewString(),
		Project:     project.Name,
		Provider:    provider.ID,
		Comm:        inv.Comm(),
		WorkingDir:  workdir,
		WindowTitle: inv.Title,
		StartedAt:   time.Now(),
		State:       StateStarting,
	}
	slot.sess = sess

	pid, err := m.spawn(inv)
	if err != nil {
		sess.State = StateFailed
		sess.EndedAt = time.Now()
		log.Error("Spawn failed", "project", project.Name, "terminal", inv.Path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}

	sess.PID = pid
	sess.State = StateRunning
	log.Debug("Session started", "project", project.Name, "provider", provider.ID, "pid", pid)

	copy := *sess
	return &copy, nil
}

// resolve validates the launch target and picks the provider.
func (m *Manager) resolve(projectName, providerID string) (*config.Project, *config.Provider, string, error) {
	project := m.cfg.Project(projectName)
	if project == nil {
		return nil, nil, "", fmt.Errorf("unknown project %q", projectName)
	}

	provider := m.cfg.ResolveProvider(providerID, project)
	if provider == nil {
		return nil, nil, "", fmt.Errorf("no provider configured")
	}
	if !provider.Enabled {
		return nil, nil, "", fmt.Errorf("%w: %s", ErrProviderDisabled, provider.ID)
	}

	workdir := project.AbsolutePath(m.cfg.Settings.ProjectRoot)
	info, err := os.Stat(workdir)
	if err != nil || !info.IsDir() {
		return nil, nil, "", fmt.Errorf("%w: %s", ErrInvalidWorkingDirectory, workdir)
	}
	return project, provider, workdir, nil
}

// command picks and validates the CLI command to run inside the terminal.
func (m *Manager) command(project *config.Project, provider *config.Provider, skipPermissions bool) (string, error) {
	command := provider.FullCommand(skipPermissions)
	if project.CustomStartCommand != "" {
		command = project.CustomStartCommand
	}
	if err := util.ValidateCommand(command); err != nil {
		return "", fmt.Errorf("invalid launch command: %w", err)
	}
	return command, nil
}

// Stop terminates a project's session. Idempotent: stopping a session that
// already reached a terminal state is a no-op success.
//
// Returns:
//   - error: ErrNoSession when no record exists, or a termination error.
func (m *Manager) Stop(projectName string) error {
	slot := m.reg.acquire(projectName)
	defer slot.release()

	sess := slot.sess
	if sess == nil {
		return ErrNoSession
	}
	if sess.State.Terminal() {
		return nil
	}

	if err := m.terminate(sess.PID, sess.Comm); err != nil {
		return fmt.Errorf("failed to stop session: %w", err)
	}
	sess.State = StateStopped
	sess.EndedAt = time.Now()
	log.Debug("Session stopped", "project", projectName, "pid", sess.PID)
	return nil
}

// Focus raises the session's terminal window. Best effort: on platforms
// without window control it returns wm.ErrUnsupported, which callers must
// treat as informational.
func (m *Manager) Focus(projectName string) error {
	slot := m.reg.acquire(projectName)
	defer slot.release()

	sess := slot.sess
	if sess == nil || !sess.State.Live() {
		return ErrNoSession
	}

	windowID, err := m.focuser.Focus(sess.PID, sess.WindowID, sess.WindowTitle)
	if err != nil {
		return err
	}
	sess.WindowID = windowID
	return nil
}

// CheckLiveness probes every live session once and transitions dead ones to
// Ended. Called by the Poller and before snapshot saves.
//
// Returns:
//   - []Session: Copies of the sessions that changed state.
func (m *Manager) CheckLiveness() []Session {
	var changed []Session
	for _, snap := range m.reg.List() {
		if !snap.State.Live() {
			continue
		}
		alive, err := m.probe(snap.PID, snap.Comm)
		if err != nil {
			// The probe could not run; retry on the next sweep rather
			// than declare a still-running session ended.
			log.Debug("Liveness probe failed, retrying next sweep",
				"project", snap.Project, "pid", snap.PID, "error", err)
			continue
		}
		if alive {
			continue
		}

		slot := m.reg.acquire(snap.Project)
		// Re-check under the lock: a Stop or relaunch may have won.
		if sess := slot.sess; sess != nil && sess.ID == snap.ID && sess.State.Live() {
			sess.State = StateEnded
			sess.EndedAt = time.Now()
			changed = append(changed, *sess)
			log.Debug("Session ended", "project", sess.Project, "pid", sess.PID)
		}
		slot.release()
	}
	return changed
}
