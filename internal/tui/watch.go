// Package tui provides the watch model -- the live session dashboard.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cindergrace/cockpit/internal/config"
	"github.com/cindergrace/cockpit/internal/session"
	"github.com/cindergrace/cockpit/internal/wm"
)

// row is one project line on the dashboard.
type row struct {
	Project  string
	Provider string
	State    string
	PID      int
	Started  time.Time
}

// tickMsg drives the periodic liveness sweep.
type tickMsg time.Time

// actionMsg carries the result of a launch/stop/focus action.
type actionMsg struct {
	verb    string
	project string
	err     error
}

// watchModel is the Bubble Tea model for `cockpit watch`.
type watchModel struct {
	cfg     *config.Config
	manager *session.Manager
	version string

	rows   []row
	cursor int

	spinner  spinner.Model
	interval time.Duration
	status   string
	width    int
	height   int
}

// newWatchModel creates the initial dashboard model.
func newWatchModel(cfg *config.Config, manager *session.Manager, version string, interval time.Duration) watchModel {
	if interval <= 0 {
		interval = session.DefaultPollInterval
	}
	m := watchModel{
		cfg:      cfg,
		manager:  manager,
		version:  version,
		spinner:  newSpinner(),
		interval: interval,
	}
	m.rows = m.buildRows()
	return m
}

// buildRows merges the visible project list with the session registry.
func (m watchModel) buildRows() []row {
	var rows []row
	for i := range m.cfg.Projects {
		p := &m.cfg.Projects[i]
		if p.Hidden && !m.cfg.Settings.ShowHidden {
			continue
		}
		r := row{Project: p.Name, State: "-"}
		if sess := m.manager.Registry().Get(p.Name); sess != nil {
			r.Provider = sess.Provider
			r.State = string(sess.State)
			r.PID = sess.PID
			r.Started = sess.StartedAt
		}
		rows = append(rows, r)
	}
	return rows
}

func (m watchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tickCmd())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.manager.CheckLiveness()
		m.rows = m.buildRows()
		if m.cursor >= len(m.rows) && len(m.rows) > 0 {
			m.cursor = len(m.rows) - 1
		}
		return m, m.tickCmd()

	case actionMsg:
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, wm.ErrUnsupported):
				m.status = warningStyle.Render("window focus is not supported here")
			case errors.Is(msg.err, session.ErrSessionAlreadyRunning):
				m.status = warningStyle.Render(fmt.Sprintf("%s already has a live session", msg.project))
			default:
				m.status = errorStyle.Render(fmt.Sprintf("%s %s: %v", msg.verb, msg.project, msg.err))
			}
		} else {
			m.status = dimStyle.Render(fmt.Sprintf("%s %s", msg.verb, msg.project))
		}
		m.rows = m.buildRows()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "enter", "l":
			if r, ok := m.selected(); ok {
				return m, m.launchOrFocusCmd(r)
			}
		case "f":
			if r, ok := m.selected(); ok {
				return m, m.actionCmd("focused", r.Project, func() error {
					return m.manager.Focus(r.Project)
				})
			}
		case "s":
			if r, ok := m.selected(); ok {
				return m, m.actionCmd("stopped", r.Project, func() error {
					return m.manager.Stop(r.Project)
				})
			}
		case "c":
			if r, ok := m.selected(); ok {
				m.manager.Registry().Clear(r.Project)
				m.rows = m.buildRows()
			}
		}
	}
	return m, nil
}

func (m watchModel) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// launchOrFocusCmd starts a session for the selected project, or raises its
// window when one is already live.
func (m watchModel) launchOrFocusCmd(r row) tea.Cmd {
	if sess := m.manager.Registry().Get(r.Project); sess != nil && sess.State.Live() {
		return m.actionCmd("focused", r.Project, func() error {
			return m.manager.Focus(r.Project)
		})
	}
	return m.actionCmd("launched", r.Project, func() error {
		_, err := m.manager.Launch(r.Project, "", false)
		return err
	})
}

func (m watchModel) actionCmd(verb, project string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{verb: verb, project: project, err: fn()}
	}
}

func (m watchModel) View() string {
	width := m.width
	if width <= 0 {
		width = 72
	}

	s := titleStyle.Render("COCKPIT") + " " + versionStyle.Render(m.version) + "\n"
	s += separator(width) + "\n"
	s += sectionStyle.Render("Sessions") + "\n"

	if len(m.rows) == 0 {
		s += dimStyle.Render("  no projects configured -- run 'cockpit projects add'") + "\n"
	}

	for i, r := range m.rows {
		cursor := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = selectedStyle.Render("> ")
			nameStyle = selectedStyle
		}

		pid := ""
		if r.PID > 0 {
			pid = "pid " + strconv.Itoa(r.PID)
		}
		started := ""
		if !r.Started.IsZero() {
			started = "up " + time.Since(r.Started).Round(time.Second).String()
		}

		line := fmt.Sprintf("%s%s  %s  %s  %s",
			cursor,
			nameStyle.Width(24).Render(r.Project),
			stateBadge(r.State),
			dimStyle.Render(pid),
			dimStyle.Render(started),
		)
		s += line + "\n"
	}

	s += "\n"
	if m.status != "" {
		s += m.status + "\n"
	}
	s += m.spinner.View() + dimStyle.Render(" watching") + "\n"
	s += helpStyle.Render("enter launch/focus · f focus · s stop · c clear · q quit")
	return s
}

// stateBadge renders a fixed-width colored state label.
func stateBadge(state string) string {
	label := fmt.Sprintf("%-8s", state)
	switch state {
	case "running":
		return runningStyle.Render(label)
	case "starting":
		return startingStyle.Render(label)
	case "stopped":
		return warningStyle.Render(label)
	case "failed":
		return errorStyle.Render(label)
	case "ended":
		return dimStyle.Render(label)
	default:
		return dimStyle.Render(label)
	}
}

// RunWatch launches the session dashboard and blocks until the user quits.
//
// Parameters:
//   - cfg: The loaded configuration.
//   - manager: The session manager; its registry backs the dashboard rows.
//   - version: CLI version string for the header.
//   - interval: Liveness sweep interval; non-positive uses the default.
//
// Returns:
//   - error: Any terminal-handling error from Bubble Tea.
func RunWatch(cfg *config.Config, manager *session.Manager, version string, interval time.Duration) error {
	model := newWatchModel(cfg, manager, version, interval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
