package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cindergrace/cockpit/internal/util"
)

// appDirName is the directory under the user config dir holding all state.
const appDirName = "cindergrace-cockpit"

// configFileName is the configuration document inside the app dir.
const configFileName = "config.json"

// Store handles configuration persistence.
type Store struct {
	// dir is the directory the configuration lives in.
	dir string
}

// NewStore creates a store rooted at the platform config location
// (e.g. ~/.config/cindergrace-cockpit on Linux).
//
// Returns:
//   - *Store: The store.
//   - error: Error when the platform config dir cannot be determined.
func NewStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return &Store{dir: filepath.Join(base, appDirName)}, nil
}

// NewStoreWithDir creates a store rooted at a custom directory. Used by
// tests and the COCKPIT_CONFIG_DIR override.
func NewStoreWithDir(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the configuration and related state.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the path of the configuration file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, configFileName)
}

// Load reads the configuration. When no file exists, it tries migrating a
// legacy config dir; failing that it returns defaults (and does not write —
// the first Save creates the file).
//
// Returns:
//   - *Config: The loaded (or default) configuration, normalized.
//   - error: Error when an existing file cannot be read or parsed.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			if cfg, ok := migrateLegacy(); ok {
				cfg.Normalize()
				return cfg, nil
			}
			cfg := Default()
			cfg.Normalize()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Providers) == 0 {
		cfg.Providers = DefaultProviders()
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration atomically: the document is written to a
// temp file in the same directory and renamed over the target, so a crash
// or a concurrent reader never sees a partial file.
//
// Parameters:
//   - cfg: The configuration to persist.
//
// Returns:
//   - error: Any error during write.
func (s *Store) Save(cfg *Config) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return util.WriteFileAtomic(s.Path(), data, 0600)
}
