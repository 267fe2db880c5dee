// Package main provides project management commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cindergrace/cockpit/internal/config"
	"github.com/cindergrace/cockpit/internal/ui"
	"github.com/cindergrace/cockpit/internal/util"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List and manage projects",
	Long: `List and manage the projects under your project root.

EXAMPLES:
  cockpit projects
  cockpit projects add myapp
  cockpit projects add myapp --path tools/myapp --provider codex
  cockpit projects remove myapp`,
	RunE: runProjectsList,
}

var projectsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsAdd,
}

var projectsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsRemove,
}

func init() {
	projectsAddCmd.Flags().String("path", "", "Path relative to the project root (defaults to the name)")
	projectsAddCmd.Flags().String("category", "", "Category for grouping")
	projectsAddCmd.Flags().String("description", "", "Short description")
	projectsAddCmd.Flags().String("provider", "", "Default provider CLI for this project")
	projectsAddCmd.Flags().String("start-command", "", "Custom start command overriding the provider CLI")
	projectsAddCmd.Flags().Bool("favorite", false, "Mark as favorite")

	projectsRemoveCmd.Flags().BoolP("yes", "y", false, "Remove without asking for confirmation")

	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsRemoveCmd)
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		return printJSON(cfg.Projects)
	}

	if len(cfg.Projects) == 0 {
		ui.PrintDim("No projects configured -- run 'cockpit projects add <name>'")
		return nil
	}

	table := ui.NewTable("NAME", "PATH", "CATEGORY", "PROVIDER", "")
	table.SetMaxWidth(1, 40)
	for _, p := range cfg.Projects {
		if p.Hidden && !cfg.Settings.ShowHidden {
			continue
		}
		marks := ""
		if p.Favorite {
			marks += "★"
		}
		table.AddRow(p.Name, p.RelativePath, p.Category, p.DefaultProvider, marks)
	}
	table.Render()
	return nil
}

func runProjectsAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	relPath, _ := cmd.Flags().GetString("path")
	category, _ := cmd.Flags().GetString("category")
	description, _ := cmd.Flags().GetString("description")
	providerID, _ := cmd.Flags().GetString("provider")
	startCommand, _ := cmd.Flags().GetString("start-command")
	favorite, _ := cmd.Flags().GetBool("favorite")

	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if relPath == "" {
		relPath = name
	}
	if providerID != "" && cfg.Provider(providerID) == nil {
		return fmt.Errorf("unknown provider %q", providerID)
	}
	if err := util.ValidateOptionalCommand(startCommand); err != nil {
		return fmt.Errorf("invalid start command: %w", err)
	}

	project := config.Project{
		Name:               name,
		RelativePath:       relPath,
		Description:        description,
		Category:           category,
		DefaultProvider:    providerID,
		CustomStartCommand: startCommand,
		Favorite:           favorite,
	}
	if err := cfg.AddProject(project); err != nil {
		return err
	}

	// A missing directory is worth a warning at add time, but only launch
	// refuses to proceed: the checkout may simply not exist yet.
	workdir := project.AbsolutePath(cfg.Settings.ProjectRoot)
	if info, err := os.Stat(workdir); err != nil || !info.IsDir() {
		ui.PrintWarning("Directory %s does not exist yet", workdir)
	}

	if err := store.Save(cfg); err != nil {
		return err
	}
	ui.PrintSuccess("Added project %s (%s)", name, workdir)
	return nil
}

func runProjectsRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	yes, _ := cmd.Flags().GetBool("yes")

	store, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Project(name) == nil {
		return fmt.Errorf("unknown project %q", name)
	}

	if !yes {
		ok, err := ui.PromptConfirm(fmt.Sprintf("Remove project %s?", name), false)
		if err != nil {
			return err
		}
		if !ok {
			ui.PrintDim("Aborted")
			return nil
		}
	}

	if !cfg.RemoveProject(name) {
		return fmt.Errorf("unknown project %q", name)
	}
	if err := store.Save(cfg); err != nil {
		return err
	}
	ui.PrintSuccess("Removed project %s", name)
	return nil
}
