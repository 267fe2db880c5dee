package config

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestMapLegacyFullDocument(t *testing.T) {
	doc := `{
		"project_root": "/home/u/projekte",
		"sync_path": "/home/u/GoogleDrive/sync",
		"terminal_command": "konsole",
		"last_provider": "codex",
		"show_hidden": true,
		"providers": [
			{"id": "claude", "name": "Claude Code", "command": "/opt/claude", "skip_permissions_flag": "--dangerously-skip-permissions", "enabled": true},
			{"id": "aider", "name": "Aider", "command": "aider", "enabled": false}
		],
		"projects": [
			{"name": "p1", "relative_path": "p1", "category": "Work", "favorite": true},
			{"name": "p2", "path": "/home/u/old/deep/p2"}
		]
	}`

	cfg := mapLegacy(gjson.Parse(doc))

	if cfg.Settings.ProjectRoot != "/home/u/projekte" {
		t.Errorf("ProjectRoot = %q", cfg.Settings.ProjectRoot)
	}
	if cfg.Settings.SyncFolder != "/home/u/GoogleDrive/sync" || !cfg.Settings.SyncEnabled {
		t.Errorf("sync settings not migrated: %+v", cfg.Settings)
	}
	if cfg.Settings.TerminalCommand != "konsole" {
		t.Errorf("TerminalCommand = %q", cfg.Settings.TerminalCommand)
	}
	if cfg.Settings.LastProvider != "codex" {
		t.Errorf("LastProvider = %q", cfg.Settings.LastProvider)
	}

	claude := cfg.Provider("claude")
	if claude == nil || claude.Command != "/opt/claude" || claude.SkipPermissionsFlag != "--dangerously-skip-permissions" {
		t.Errorf("claude provider not migrated: %+v", claude)
	}
	aider := cfg.Provider("aider")
	if aider == nil || aider.Enabled {
		t.Errorf("disabled provider not migrated: %+v", aider)
	}

	if p := cfg.Project("p1"); p == nil || p.Category != "Work" || !p.Favorite {
		t.Errorf("project p1 not migrated: %+v", p)
	}
	// Absolute legacy "path" keeps only the final directory name.
	if p := cfg.Project("p2"); p == nil || p.RelativePath != "p2" {
		t.Errorf("legacy path project not migrated: %+v", cfg.Project("p2"))
	}
}

func TestMapLegacyEmptyDocumentKeepsDefaults(t *testing.T) {
	cfg := mapLegacy(gjson.Parse(`{}`))
	if len(cfg.Providers) == 0 {
		t.Error("empty legacy document should keep default providers")
	}
}

func TestMapLegacyEmptyProviderListKeepsDefaults(t *testing.T) {
	cfg := mapLegacy(gjson.Parse(`{"providers": []}`))
	if len(cfg.Providers) == 0 {
		t.Error("empty legacy provider list should fall back to defaults")
	}
}
