// Package ui provides terminal output components using Charm libraries.
//
// This package contains the styling, rendering, and interactive components
// for the cockpit CLI's terminal interface.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// quietMode suppresses decorative output (banner, spinners) when set.
var quietMode bool

// SetQuietMode enables or disables quiet mode.
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// Quiet reports whether quiet mode is active.
func Quiet() bool {
	return quietMode
}

func init() {
	// Piped output gets plain text.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Brand colors.
var (
	// Primary brand color - ember orange
	Ember = lipgloss.Color("#F97316")

	// Secondary colors
	Teal    = lipgloss.Color("#14B8A6")
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	Gray    = lipgloss.Color("#6B7280")
	DimGray = lipgloss.Color("#9CA3AF")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Ember)

	// SubtitleStyle for secondary headings
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// AccentStyle for highlighted fragments inside normal text
	AccentStyle = lipgloss.NewStyle().
			Foreground(Ember)
)

// Box styles.
var (
	// BoxStyle for content boxes
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Ember).
			Padding(0, 1)

	// BoxTitleStyle for box titles
	BoxTitleStyle = lipgloss.NewStyle().
			Foreground(Ember).
			Bold(true)
)

// Table styles.
var (
	// TableHeaderStyle for table headers
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Bold(true)

	// TableCellStyle for table cells
	TableCellStyle = lipgloss.NewStyle()
)

// Session state styles.
var (
	// StateRunningStyle for live sessions
	StateRunningStyle = lipgloss.NewStyle().
				Foreground(Green)

	// StateStartingStyle for sessions that have not reported a PID yet
	StateStartingStyle = lipgloss.NewStyle().
				Foreground(Teal)

	// StateStoppedStyle for sessions the user stopped
	StateStoppedStyle = lipgloss.NewStyle().
				Foreground(Amber)

	// StateEndedStyle for sessions that exited on their own
	StateEndedStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// StateFailedStyle for sessions that never started
	StateFailedStyle = lipgloss.NewStyle().
				Foreground(Red)
)

// StateStyle returns the style for a session state string.
func StateStyle(state string) lipgloss.Style {
	switch state {
	case "running":
		return StateRunningStyle
	case "starting":
		return StateStartingStyle
	case "stopped":
		return StateStoppedStyle
	case "failed":
		return StateFailedStyle
	default:
		return StateEndedStyle
	}
}
