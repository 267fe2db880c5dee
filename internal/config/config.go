// Package config provides launcher configuration management.
//
// The configuration is a single JSON document holding general settings, the
// provider list, and the project list. Providers describe LLM CLI tools
// (claude, codex, gemini, ...); projects are launch targets with a working
// directory relative to a configurable project root.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cindergrace/cockpit/internal/util"
)

// SchemaVersion is the version of the configuration document schema. A sync
// import refuses documents with a newer schema.
const SchemaVersion = 1

// DefaultCategory is assigned to projects without an explicit category.
const DefaultCategory = "General"

// Provider describes one configured LLM CLI tool.
type Provider struct {
	// ID is the unique identifier (e.g. "claude").
	ID string `json:"id"`

	// Name is the display name (e.g. "Claude Code").
	Name string `json:"name"`

	// Command is the path or executable name of the CLI tool.
	Command string `json:"command"`

	// Color is a hex color used by front-ends for this provider.
	Color string `json:"color,omitempty"`

	// DefaultFlags are always appended to the command.
	DefaultFlags string `json:"default_flags,omitempty"`

	// SkipPermissionsFlag is appended only when the caller asks to skip
	// interactive permission prompts (e.g. "--dangerously-skip-permissions").
	SkipPermissionsFlag string `json:"skip_permissions_flag,omitempty"`

	// Enabled controls whether sessions may be launched with this provider.
	Enabled bool `json:"enabled"`
}

// FullCommand composes the command line to run inside the terminal.
//
// Parameters:
//   - skipPermissions: Whether to append the skip-permissions flag.
//
// Returns:
//   - string: Command, default flags, and optionally the skip flag, space-joined.
func (p Provider) FullCommand(skipPermissions bool) string {
	parts := []string{p.Command}
	if p.DefaultFlags != "" {
		parts = append(parts, p.DefaultFlags)
	}
	if skipPermissions && p.SkipPermissionsFlag != "" {
		parts = append(parts, p.SkipPermissionsFlag)
	}
	return strings.Join(parts, " ")
}

// Validate checks that the provider is complete and its command strings are
// safe to embed into a terminal invocation.
func (p Provider) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("provider id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("provider %q: name is required", p.ID)
	}
	if err := util.ValidateCommand(p.Command); err != nil {
		return fmt.Errorf("provider %q: invalid command: %w", p.ID, err)
	}
	if err := util.ValidateOptionalCommand(p.DefaultFlags); err != nil {
		return fmt.Errorf("provider %q: invalid default flags: %w", p.ID, err)
	}
	if err := util.ValidateOptionalCommand(p.SkipPermissionsFlag); err != nil {
		return fmt.Errorf("provider %q: invalid skip-permissions flag: %w", p.ID, err)
	}
	return nil
}

// Project is a launch target: a named working directory plus metadata.
type Project struct {
	// Name is the unique project identifier.
	Name string `json:"name"`

	// RelativePath is the working directory relative to Settings.ProjectRoot.
	RelativePath string `json:"relative_path"`

	// Description is free-form text shown by front-ends.
	Description string `json:"description,omitempty"`

	// Category groups projects in listings.
	Category string `json:"category,omitempty"`

	// DefaultProvider is the provider used when none is specified.
	DefaultProvider string `json:"default_provider,omitempty"`

	// CustomStartCommand overrides the provider command when set.
	CustomStartCommand string `json:"custom_start_command,omitempty"`

	// Hidden projects are omitted from listings unless requested.
	Hidden bool `json:"hidden,omitempty"`

	// Favorite projects sort first in listings.
	Favorite bool `json:"favorite,omitempty"`
}

// AbsolutePath resolves the project's working directory under the given
// project root. The result is contained within the root: a relative path
// escaping the root (path traversal) resolves to the root itself.
//
// Parameters:
//   - projectRoot: The configured root directory for all projects.
//
// Returns:
//   - string: The absolute working directory path.
func (p Project) AbsolutePath(projectRoot string) string {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return projectRoot
	}
	abs := filepath.Join(root, p.RelativePath)
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return root
	}
	return abs
}

// Settings holds general, machine-local options.
type Settings struct {
	// ProjectRoot is the directory project paths are relative to.
	ProjectRoot string `json:"project_root"`

	// TerminalCommand is the terminal emulator to launch sessions in.
	// Empty means probe a platform default at launch time.
	TerminalCommand string `json:"terminal_command,omitempty"`

	// DefaultStartCommand is the fallback custom start command template.
	DefaultStartCommand string `json:"default_start_command,omitempty"`

	// LastProvider is the provider used by the most recent launch.
	LastProvider string `json:"last_provider,omitempty"`

	// ShowHidden includes hidden projects in listings.
	ShowHidden bool `json:"show_hidden,omitempty"`

	// SyncFolder is the cloud-synced folder for encrypted config sync.
	SyncFolder string `json:"sync_folder,omitempty"`

	// SyncEnabled turns the sync feature on.
	SyncEnabled bool `json:"sync_enabled,omitempty"`
}

// Config is the full configuration document.
type Config struct {
	Schema    int        `json:"schema"`
	Settings  Settings   `json:"settings"`
	Providers []Provider `json:"providers"`
	Projects  []Project  `json:"projects"`
}

// Provider returns the provider with the given id.
//
// Returns:
//   - *Provider: Pointer into the config's provider slice, or nil if absent.
func (c *Config) Provider(id string) *Provider {
	for i := range c.Providers {
		if c.Providers[i].ID == id {
			return &c.Providers[i]
		}
	}
	return nil
}

// EnabledProviders returns all providers with Enabled set.
func (c *Config) EnabledProviders() []Provider {
	var out []Provider
	for _, p := range c.Providers {
		if p.Enabled {
			out = append(out, p)
		}
	}
	return out
}

// Project returns the project with the given name, or nil.
func (c *Config) Project(name string) *Project {
	for i := range c.Projects {
		if c.Projects[i].Name == name {
			return &c.Projects[i]
		}
	}
	return nil
}

// AddProvider validates and appends a provider, enforcing id uniqueness.
func (c *Config) AddProvider(p Provider) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if c.Provider(p.ID) != nil {
		return fmt.Errorf("provider %q already exists", p.ID)
	}
	c.Providers = append(c.Providers, p)
	return nil
}

// AddProject appends a project, enforcing name uniqueness.
func (c *Config) AddProject(p Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	if c.Project(p.Name) != nil {
		return fmt.Errorf("project %q already exists", p.Name)
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	c.Projects = append(c.Projects, p)
	return nil
}

// RemoveProject deletes the project with the given name.
//
// Returns:
//   - bool: Whether a project was removed.
func (c *Config) RemoveProject(name string) bool {
	for i := range c.Projects {
		if c.Projects[i].Name == name {
			c.Projects = append(c.Projects[:i], c.Projects[i+1:]...)
			return true
		}
	}
	return false
}

// ResolveProvider picks the provider for a launch: the explicit id if given,
// else the project's default, else the last used, else the first enabled.
//
// Parameters:
//   - explicit: Provider id requested by the caller, may be empty.
//   - project: The project being launched, may be nil.
//
// Returns:
//   - *Provider: The resolved provider, or nil when none is configured.
func (c *Config) ResolveProvider(explicit string, project *Project) *Provider {
	candidates := []string{explicit}
	if project != nil {
		candidates = append(candidates, project.DefaultProvider)
	}
	candidates = append(candidates, c.Settings.LastProvider)
	for _, id := range candidates {
		if id == "" {
			continue
		}
		if p := c.Provider(id); p != nil {
			return p
		}
	}
	enabled := c.EnabledProviders()
	if len(enabled) > 0 {
		return c.Provider(enabled[0].ID)
	}
	return nil
}

// Normalize repairs dangling references after load or import: project
// default providers and the last-used provider must exist or fall back to
// the first configured provider.
func (c *Config) Normalize() {
	if c.Schema == 0 {
		c.Schema = SchemaVersion
	}
	fallback := ""
	if len(c.Providers) > 0 {
		fallback = c.Providers[0].ID
	}
	if c.Provider(c.Settings.LastProvider) == nil {
		c.Settings.LastProvider = fallback
	}
	for i := range c.Projects {
		if c.Projects[i].DefaultProvider != "" && c.Provider(c.Projects[i].DefaultProvider) == nil {
			c.Projects[i].DefaultProvider = fallback
		}
		if c.Projects[i].Category == "" {
			c.Projects[i].Category = DefaultCategory
		}
	}
}
