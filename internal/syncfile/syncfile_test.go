package syncfile

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cindergrace/cockpit/internal/config"
	"github.com/cindergrace/cockpit/internal/vault"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Settings.ProjectRoot = "/home/u/projects"
	cfg.Projects = []config.Project{
		{Name: "p1", RelativePath: "p1", Category: "Work", DefaultProvider: "claude"},
		{Name: "p2", RelativePath: "deep/p2", Favorite: true},
	}
	return cfg
}

func TestExportImportRoundTrip(t *testing.T) {
	folder := t.TempDir()
	cfg := testConfig()

	if err := Export(cfg, folder, "correct-horse"); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !Exists(folder) {
		t.Fatal("Exists() = false after export")
	}

	got, err := Import(folder, "correct-horse")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(got.Projects) != 2 {
		t.Fatalf("imported %d projects, want 2", len(got.Projects))
	}
	p1 := got.Project("p1")
	if p1 == nil || p1.Category != "Work" || p1.DefaultProvider != "claude" {
		t.Errorf("project p1 not round-tripped: %+v", p1)
	}
	if got.Project("p2") == nil || !got.Project("p2").Favorite {
		t.Errorf("project p2 not round-tripped: %+v", got.Project("p2"))
	}
	if len(got.Providers) != len(cfg.Providers) {
		t.Errorf("providers not round-tripped: got %d, want %d", len(got.Providers), len(cfg.Providers))
	}
}

func TestImportWrongPassword(t *testing.T) {
	folder := t.TempDir()
	if err := Export(testConfig(), folder, "correct-horse"); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	_, err := Import(folder, "wrong-password")
	if !errors.Is(err, vault.ErrWrongPasswordOrCorrupt) {
		t.Errorf("Import() with wrong password error = %v, want ErrWrongPasswordOrCorrupt", err)
	}

	// The correct password still works afterwards.
	if _, err := Import(folder, "correct-horse"); err != nil {
		t.Errorf("Import() with correct password error = %v", err)
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(t.TempDir(), "pw")
	if !errors.Is(err, ErrNoSyncFile) {
		t.Errorf("Import() from empty folder error = %v, want ErrNoSyncFile", err)
	}
}

func TestImportNewerSchema(t *testing.T) {
	folder := t.TempDir()
	blob, err := vault.Seal([]byte(`{"schema": 999, "config": {"schema": 999}}`), "pw")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(folder), blob, 0600); err != nil {
		t.Fatal(err)
	}

	_, err = Import(folder, "pw")
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("Import() of newer schema error = %v, want ErrSchemaMismatch", err)
	}
}

func TestImportGarbagePayload(t *testing.T) {
	folder := t.TempDir()
	blob, err := vault.Seal([]byte("not json at all"), "pw")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(folder), blob, 0600); err != nil {
		t.Fatal(err)
	}

	_, err = Import(folder, "pw")
	if !errors.Is(err, vault.ErrWrongPasswordOrCorrupt) {
		t.Errorf("Import() of garbage payload error = %v, want ErrWrongPasswordOrCorrupt", err)
	}
}

func TestExportUnwritableFolder(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforceable here")
	}
	parent := t.TempDir()
	folder := filepath.Join(parent, "locked", "sync")
	if err := os.Mkdir(filepath.Join(parent, "locked"), 0500); err != nil {
		t.Fatal(err)
	}

	err := Export(testConfig(), folder, "pw")
	if !errors.Is(err, ErrFolderUnwritable) {
		t.Errorf("Export() into unwritable folder error = %v, want ErrFolderUnwritable", err)
	}
}

func TestMergeKeepsMachineLocalFields(t *testing.T) {
	local := config.Default()
	local.Settings.ProjectRoot = "/local/root"
	local.Settings.SyncFolder = "/local/sync"
	local.Settings.SyncEnabled = true
	local.Settings.TerminalCommand = "konsole"
	local.Provider("claude").Command = "/local/bin/claude"

	imported := config.Default()
	imported.Settings.ProjectRoot = "/other/root"
	imported.Settings.TerminalCommand = ""
	imported.Provider("claude").Command = ""
	imported.Projects = []config.Project{{Name: "new", RelativePath: "new"}}

	merged := Merge(local, imported)

	if merged.Settings.ProjectRoot != "/local/root" {
		t.Errorf("ProjectRoot = %q, want local value", merged.Settings.ProjectRoot)
	}
	if merged.Settings.SyncFolder != "/local/sync" || !merged.Settings.SyncEnabled {
		t.Errorf("sync settings clobbered: %+v", merged.Settings)
	}
	if merged.Settings.TerminalCommand != "konsole" {
		t.Errorf("TerminalCommand = %q, want local fallback", merged.Settings.TerminalCommand)
	}
	if merged.Provider("claude").Command != "/local/bin/claude" {
		t.Errorf("empty imported provider command should keep local path, got %q", merged.Provider("claude").Command)
	}
	if merged.Project("new") == nil {
		t.Error("imported project missing after merge")
	}
}
