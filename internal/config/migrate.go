package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
)

// legacyDirs are config directories of earlier releases, checked in order.
var legacyDirs = []string{
	"cindergrace-launcher",
	"llm-cockpit",
	"claude-cockpit",
}

// legacyFiles are candidate document names inside a legacy dir.
var legacyFiles = []string{"local.json", "config.json"}

// migrateLegacy looks for a configuration from an earlier release and maps
// it into the current schema. Older documents vary in shape, so fields are
// extracted tolerantly with gjson rather than decoded into a struct.
//
// Returns:
//   - *Config: The migrated configuration.
//   - bool: Whether a legacy document was found.
func migrateLegacy() (*Config, bool) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, false
	}

	for _, dir := range legacyDirs {
		for _, file := range legacyFiles {
			path := filepath.Join(base, dir, file)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if !gjson.ValidBytes(data) {
				log.Warn("Skipping invalid legacy config", "path", path)
				continue
			}
			log.Info("Migrating legacy configuration", "path", path)
			return mapLegacy(gjson.ParseBytes(data)), true
		}
	}
	return nil, false
}

// mapLegacy converts a parsed legacy document into the current Config.
func mapLegacy(doc gjson.Result) *Config {
	cfg := Default()

	if v := doc.Get("project_root"); v.Exists() {
		cfg.Settings.ProjectRoot = v.String()
	}
	if v := doc.Get("sync_path"); v.Exists() {
		cfg.Settings.SyncFolder = v.String()
		cfg.Settings.SyncEnabled = v.String() != ""
	}
	if v := doc.Get("terminal_command"); v.Exists() {
		cfg.Settings.TerminalCommand = v.String()
	}
	if v := doc.Get("default_start_command"); v.Exists() {
		cfg.Settings.DefaultStartCommand = v.String()
	}
	if v := doc.Get("last_provider"); v.Exists() {
		cfg.Settings.LastProvider = v.String()
	}
	if v := doc.Get("show_hidden"); v.Exists() {
		cfg.Settings.ShowHidden = v.Bool()
	}

	if providers := doc.Get("providers"); providers.IsArray() {
		cfg.Providers = nil
		providers.ForEach(func(_, p gjson.Result) bool {
			prov := Provider{
				ID:                  p.Get("id").String(),
				Name:                p.Get("name").String(),
				Command:             p.Get("command").String(),
				Color:               p.Get("color").String(),
				DefaultFlags:        p.Get("default_flags").String(),
				SkipPermissionsFlag: p.Get("skip_permissions_flag").String(),
				Enabled:             true,
			}
			if e := p.Get("enabled"); e.Exists() {
				prov.Enabled = e.Bool()
			}
			if prov.ID != "" && cfg.Provider(prov.ID) == nil {
				cfg.Providers = append(cfg.Providers, prov)
			}
			return true
		})
		if len(cfg.Providers) == 0 {
			cfg.Providers = DefaultProviders()
		}
	}

	if projects := doc.Get("projects"); projects.IsArray() {
		projects.ForEach(func(_, p gjson.Result) bool {
			proj := Project{
				Name:               p.Get("name").String(),
				RelativePath:       p.Get("relative_path").String(),
				Description:        p.Get("description").String(),
				Category:           p.Get("category").String(),
				DefaultProvider:    p.Get("default_provider").String(),
				CustomStartCommand: p.Get("custom_start_command").String(),
				Hidden:             p.Get("hidden").Bool(),
				Favorite:           p.Get("favorite").Bool(),
			}
			// Very old documents stored an absolute "path" instead of a
			// root-relative one; keep only the final directory name.
			if proj.RelativePath == "" {
				if old := p.Get("path"); old.Exists() {
					proj.RelativePath = filepath.Base(old.String())
				}
			}
			if proj.Name != "" && cfg.Project(proj.Name) == nil {
				cfg.Projects = append(cfg.Projects, proj)
			}
			return true
		})
	}

	return cfg
}
