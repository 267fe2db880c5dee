package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())

	cfg := Default()
	cfg.Settings.TerminalCommand = "konsole"
	if err := cfg.AddProject(Project{Name: "p1", RelativePath: "p1", Category: "Work"}); err != nil {
		t.Fatalf("AddProject() error = %v", err)
	}

	if err := store.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Settings.TerminalCommand != "konsole" {
		t.Errorf("TerminalCommand = %q, want %q", got.Settings.TerminalCommand, "konsole")
	}
	if got.Project("p1") == nil || got.Project("p1").Category != "Work" {
		t.Errorf("project p1 not round-tripped: %+v", got.Projects)
	}
	if len(got.Providers) != len(cfg.Providers) {
		t.Errorf("providers not round-tripped: got %d, want %d", len(got.Providers), len(cfg.Providers))
	}
}

func TestStoreLoadMissingReturnsDefaults(t *testing.T) {
	// Point the user config dir somewhere empty so legacy migration
	// cannot pick up a real config from the host.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	store := NewStoreWithDir(filepath.Join(t.TempDir(), "nonexistent"))
	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Providers) == 0 {
		t.Error("default config should include initial providers")
	}
	if cfg.Provider("claude") == nil || cfg.Provider("codex") == nil || cfg.Provider("gemini") == nil {
		t.Errorf("default providers missing: %+v", cfg.Providers)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("Load() of a missing config should not create the file")
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreWithDir(dir)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); err == nil {
		t.Error("Load() of corrupt config should fail")
	}
}

func TestStoreSaveAtomicReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreWithDir(dir)

	cfg := Default()
	if err := store.Save(cfg); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	cfg.Settings.TerminalCommand = "xterm"
	if err := store.Save(cfg); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Settings.TerminalCommand != "xterm" {
		t.Errorf("TerminalCommand = %q, want %q", got.Settings.TerminalCommand, "xterm")
	}

	// No temp file debris left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != configFileName {
			t.Errorf("unexpected file left in config dir: %s", e.Name())
		}
	}
}
