package config

import (
	"os"
	"path/filepath"
)

// DefaultProviders returns the provider set created on first run.
//
// Commands are bare executable names resolved via PATH, except claude which
// npm installs under the user's npm prefix on a default setup.
func DefaultProviders() []Provider {
	home, err := os.UserHomeDir()
	claudeCmd := "claude"
	if err == nil {
		npmClaude := filepath.Join(home, ".npm-global", "bin", "claude")
		if _, statErr := os.Stat(npmClaude); statErr == nil {
			claudeCmd = npmClaude
		}
	}

	return []Provider{
		{
			ID:                  "claude",
			Name:                "Claude Code",
			Command:             claudeCmd,
			Color:               "#E07A5F",
			SkipPermissionsFlag: "--dangerously-skip-permissions",
			Enabled:             true,
		},
		{
			ID:                  "codex",
			Name:                "OpenAI Codex CLI",
			Command:             "codex",
			Color:               "#10A37F",
			SkipPermissionsFlag: "--full-auto",
			Enabled:             true,
		},
		{
			ID:      "gemini",
			Name:    "Gemini CLI",
			Command: "gemini",
			Color:   "#4285F4",
			Enabled: true,
		},
	}
}

// Default returns a fresh configuration with the initial provider set and a
// best-guess project root (~/projects when it exists, else the home dir).
func Default() *Config {
	root := ""
	if home, err := os.UserHomeDir(); err == nil {
		root = filepath.Join(home, "projects")
		if _, statErr := os.Stat(root); statErr != nil {
			root = home
		}
	}

	cfg := &Config{
		Schema: SchemaVersion,
		Settings: Settings{
			ProjectRoot:  root,
			LastProvider: "claude",
		},
		Providers: DefaultProviders(),
	}
	return cfg
}
