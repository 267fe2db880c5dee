// Package ui provides the ASCII banner for the cockpit CLI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// banner is the ASCII art logo.
const banner = `
   ██████╗ ██████╗  ██████╗██╗  ██╗██████╗ ██╗████████╗
  ██╔════╝██╔═══██╗██╔════╝██║ ██╔╝██╔══██╗██║╚══██╔══╝
  ██║     ██║   ██║██║     █████╔╝ ██████╔╝██║   ██║
  ██║     ██║   ██║██║     ██╔═██╗ ██╔═══╝ ██║   ██║
  ╚██████╗╚██████╔╝╚██████╗██║  ██╗██║     ██║   ██║
   ╚═════╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═╝     ╚═╝   ╚═╝`

// tagline is the product tagline.
const tagline = "One terminal per project, one keystroke away"

// PrintBanner prints the banner with version info.
//
// Parameters:
//   - version: The CLI version string to display
func PrintBanner(version string) {
	if quietMode {
		return
	}

	styledBanner := lipgloss.NewStyle().
		Foreground(Ember).
		Bold(true).
		Render(banner)

	fmt.Println(styledBanner)
	fmt.Println()

	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		PaddingLeft(2)
	fmt.Println(taglineStyle.Render(tagline))
	fmt.Println()

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)

	fmt.Println(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
	fmt.Println()
}

// GetCondensedHelp returns a compact cheat-sheet for the common journey.
// Shown when the user runs `cockpit` with no arguments. No ASCII banner,
// no Cobra auto-generated command list -- just the essentials.
func GetCondensedHelp() string {
	ember := AccentStyle.Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	return fmt.Sprintf(`%s

%s
  %s       Add a project under your project root
  %s          Open a terminal running your provider CLI there
  %s                        List sessions and their state
  %s                     Live session dashboard

%s
  %s              List and manage projects
  %s             List and manage provider CLIs
  %s           Encrypted config export to a shared folder
  %s           Encrypted config import from a shared folder

%s
`,
		ember.Render("cockpit")+" - "+dim.Render(tagline),
		ember.Render("Getting Started:"),
		ember.Render("cockpit projects add <name>"),
		ember.Render("cockpit launch <project>"),
		ember.Render("cockpit ps"),
		ember.Render("cockpit watch"),
		ember.Render("Manage:"),
		ember.Render("cockpit projects"),
		ember.Render("cockpit providers"),
		ember.Render("cockpit sync export"),
		ember.Render("cockpit sync import"),
		hint.Render(`Use "cockpit --help" for a full list of commands.`),
	)
}
